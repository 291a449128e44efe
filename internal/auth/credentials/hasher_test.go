package credentials

import (
	"errors"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("MyAmazingPassw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "MyAmazingPassw0rd" {
		t.Fatal("hash equals plaintext")
	}
	if !IsValid(hash, "MyAmazingPassw0rd") {
		t.Fatal("IsValid rejected the right password")
	}
	if IsValid(hash, "wrong-password") {
		t.Fatal("IsValid accepted a wrong password")
	}

	again, _ := HashPassword("MyAmazingPassw0rd")
	if again == hash {
		t.Fatal("hashes are not salted")
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("err = %v, want ErrPasswordTooShort", err)
	}
}

func TestIsValidEmptyInputs(t *testing.T) {
	if IsValid("", "password") || IsValid("$2a$10$abc", "") {
		t.Fatal("IsValid accepted empty input")
	}
}

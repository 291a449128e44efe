// Package redact obfuscates personally identifiable values in log output.
package redact

import (
	"regexp"
	"strings"
)

const (
	// Redaction replaces every redacted value.
	Redaction = "***"
	// Separator terminates a key=value pair inside a message.
	Separator = ";"
)

// PIIFields are the keys treated as personal data by default.
var PIIFields = []string{"name", "email", "phone", "ssn", "password"}

// Redactor hides the values of a fixed set of fields.
type Redactor struct {
	fields    map[string]struct{}
	pattern   *regexp.Regexp
	redaction string
	separator string
}

// New builds a Redactor for fields. Field names match case-insensitively
// when redacting structured values and literally inside messages.
func New(fields []string, redaction, separator string) *Redactor {
	r := &Redactor{
		fields:    make(map[string]struct{}, len(fields)),
		redaction: redaction,
		separator: separator,
	}
	if len(fields) == 0 {
		return r
	}

	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		r.fields[strings.ToLower(f)] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(f))
	}
	r.pattern = regexp.MustCompile(
		"(" + strings.Join(quoted, "|") + ")=.*?" + regexp.QuoteMeta(separator),
	)
	return r
}

// Default redacts PIIFields with Redaction and Separator.
func Default() *Redactor {
	return New(PIIFields, Redaction, Separator)
}

// Message rewrites every "field=value<sep>" in message to
// "field=<redaction><sep>".
func (r *Redactor) Message(message string) string {
	if r.pattern == nil {
		return message
	}
	return r.pattern.ReplaceAllStringFunc(message, func(match string) string {
		key := match[:strings.Index(match, "=")]
		return key + "=" + r.redaction + r.separator
	})
}

// IsField reports whether key names a redacted field.
func (r *Redactor) IsField(key string) bool {
	_, ok := r.fields[strings.ToLower(key)]
	return ok
}

// FilterDatum is the one-shot form of New(fields, redaction, separator).Message(message).
func FilterDatum(fields []string, redaction, message, separator string) string {
	return New(fields, redaction, separator).Message(message)
}

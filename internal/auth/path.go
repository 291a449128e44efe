package auth

import "strings"

// RequiresAuth reports whether path is protected given the excluded
// patterns. A pattern ending in "*" exempts every path with that prefix;
// any other pattern must equal the path, ignoring trailing slashes.
// An empty path or an empty pattern list always requires auth.
func RequiresAuth(path string, excluded []string) bool {
	if path == "" || len(excluded) == 0 {
		return true
	}

	normalized := strings.TrimRight(path, "/") + "/"

	for _, pattern := range excluded {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(normalized, prefix) {
				return false
			}
			continue
		}

		if strings.TrimRight(pattern, "/") == strings.TrimRight(normalized, "/") {
			return false
		}
	}

	return true
}

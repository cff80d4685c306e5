// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged or returned in error responses. It
// targets the secrets this service actually handles: database connection
// strings, LLM provider API keys, JWT tokens, emails, and SQL fragments
// that surface in driver errors.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

// Precompiled regex patterns
var (
	// Database connection strings with embedded credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`)

	// Passwords appearing in key=value or key: value form
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)

	// Generic api key / token / secret assignments
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|bearer|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google API keys (the Gemini provider authenticates with these)
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)

	// OpenAI API keys
	openaiKeyRegex = regexp.MustCompile(`sk-[A-Za-z0-9_-]{20,}`)

	// JWT tokens: three base64url segments, first two starting with eyJ
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// SQL queries leaking from driver errors
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE)(?:[\s\w,*()='"]+)?`,
	)

	// Host:port pairs from dial errors
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	patterns = []*regexp.Regexp{
		dbConnRegex, passwordRegex, apiKeyRegex, googleKeyRegex, openaiKeyRegex,
		jwtTokenRegex, unixPathRegex, emailRegex, sqlRegex, hostPortRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		dbConnRegex:    RedactedCredentialPlaceholder,
		passwordRegex:  RedactedCredentialPlaceholder,
		apiKeyRegex:    RedactedKeyPlaceholder,
		googleKeyRegex: RedactedKeyPlaceholder,
		openaiKeyRegex: RedactedKeyPlaceholder,
		jwtTokenRegex:  "[REDACTED_JWT]",
		unixPathRegex:  RedactedPathPlaceholder,
		emailRegex:     "[REDACTED_EMAIL]",
		sqlRegex:       "[REDACTED_SQL]",
		hostPortRegex:  "[REDACTED_HOST]",
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

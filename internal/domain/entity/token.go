// Package entity contains the core business objects of the project.
package entity

// Token is an opaque delivery token issued by the push transport. Tokens
// rotate over an install's lifetime and are treated as sensitive: anything
// user-facing or logged goes through Prefix or Redacted, never the raw value.
type Token string

// RedactPrefixLength is the prefix length used when redacting a token for
// logs. Listing endpoints use the configured registry.tokenPrefixLength
// instead.
const RedactPrefixLength = 10

// Prefix returns the first n characters of the token, or the whole token
// when it is shorter than n.
func (t Token) Prefix(n int) string {
	if n < 0 {
		n = 0
	}
	if len(t) <= n {
		return string(t)
	}

	return string(t[:n])
}

// Redacted returns a log-safe representation of the token.
func (t Token) Redacted() string {
	if len(t) <= RedactPrefixLength {
		return string(t)
	}

	return string(t[:RedactPrefixLength]) + "..."
}

// String implements fmt.Stringer with the redacted form so a token can never
// leak in full through formatted output.
func (t Token) String() string {
	return t.Redacted()
}

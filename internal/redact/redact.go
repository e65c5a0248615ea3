// Package redact masks secrets before they reach logs or the terminal.
package redact

import "strings"

// SecretKeyPatterns contains substrings that indicate a key likely holds
// sensitive data. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// TokenPrefixes contains known API token prefixes that mark a value as
// sensitive regardless of its key.
var TokenPrefixes = []string{
	"ghp_",        // GitHub personal access token
	"gho_",        // GitHub OAuth token
	"ghu_",        // GitHub user-to-server token
	"ghs_",        // GitHub server-to-server token
	"ghr_",        // GitHub refresh token
	"github_pat_", // GitHub fine-grained token
	"ATATT",       // Atlassian API token
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// Field returns value unchanged unless key or value looks secret, in which
// case the masked form is returned. Empty values stay empty.
func Field(key, value string) string {
	if value == "" {
		return ""
	}
	if ShouldMask(key) || ContainsTokenPrefix(value) {
		return MaskValue(value)
	}
	return value
}

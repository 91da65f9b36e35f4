package contextutils

import (
	"strings"
)

// MaskSecret masks a credential for logging, keeping only the first and last
// four characters of values longer than eight
func MaskSecret(secret string) string {
	if secret == "" {
		return "[EMPTY]"
	}

	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}

	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}

// MaskHeaders returns a copy of exporter headers with every value masked
func MaskHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	masked := make(map[string]string, len(headers))
	for k, v := range headers {
		masked[k] = MaskSecret(v)
	}
	return masked
}

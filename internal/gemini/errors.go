package gemini

import (
	"errors"
	"strings"

	"google.golang.org/genai"
)

// IsQuota reports whether an error is rate-limit or quota exhaustion.
// Structured API errors are checked first; the substring check catches
// errors that arrive already flattened to text.
func IsQuota(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return true
		}
	}
	return strings.Contains(err.Error(), "429")
}

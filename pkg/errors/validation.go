package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// containerIDRegex matches container identifiers: a lowercase kind name,
// optionally followed by a colon and a free-form instance name.
var containerIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*(:[A-Za-z0-9._-]+)?$`)

// ValidateContainerID validates a surface container identifier such as
// "svg" or "png:report". It only checks the shape of the identifier;
// whether the container exists is decided by the surface registry.
func ValidateContainerID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "container id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidConfig, "container id too long (max 128 characters)")
	}
	if !containerIDRegex.MatchString(id) {
		return New(ErrCodeInvalidConfig, "invalid container id: %q", id)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for reading datasets or
// writing artifacts.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a scheme accepted by the cache backends.
func ValidateURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	for _, s := range schemes {
		if strings.HasPrefix(rawURL, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "URL must use one of the schemes: %s", strings.Join(schemes, ", "))
}

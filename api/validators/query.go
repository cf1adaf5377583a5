package validators

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
)

// QueryInt parses an optional integer query parameter, returning the fallback
// when absent.
func QueryInt(values url.Values, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be an integer", name))
	}
	return parsed, nil
}

// QueryList splits a comma-separated query parameter into trimmed non-empty
// values.
func QueryList(values url.Values, name string) []string {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

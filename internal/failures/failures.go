package failures

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNetwork         = errors.New("network error")
	ErrDeserialization = errors.New("deserialization error")
	ErrIO              = errors.New("io error")
	ErrConfiguration   = errors.New("configuration error")
	ErrNotFound        = errors.New("not found")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above; nil defaults to ErrIO.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Hint maps a tagged error to a short, user-facing next step. Untagged errors
// yield an empty hint.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "set GW2_API_KEY (or API_KEY in .env) or run 'gw2inventory config init'"
	case errors.Is(err, ErrNetwork):
		return "check connectivity and that the API key has the account, characters and inventories permissions"
	case errors.Is(err, ErrDeserialization):
		return "the API response or cache snapshot has an unexpected shape; run 'gw2inventory cache clear' and retry"
	case errors.Is(err, ErrIO):
		return "check permissions on the cache snapshot path"
	case errors.Is(err, ErrNotFound):
		return "the item cache is stale; run 'gw2inventory cache refresh'"
	default:
		return ""
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}

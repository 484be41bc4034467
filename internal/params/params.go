// Package params decodes parameter lists and load payloads into merge
// values.
package params

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

// ErrInvalidParameters is returned when parameter text is not a JSON array.
var ErrInvalidParameters = errors.New("invalid parameters")

// DecodeArray decodes a JSON array into merge values. Blank text decodes to
// an empty list. Numbers decode as float64; nested arrays and objects become
// Other values.
func DecodeArray(text string) ([]merge.Value, error) {
	if strings.TrimSpace(text) == "" {
		return []merge.Value{}, nil
	}

	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrInvalidParameters, typeName(raw))
	}
	return merge.Values(list...), nil
}

// typeName names the JSON type of a decoded value.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

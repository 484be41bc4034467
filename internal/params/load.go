package params

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlmerge/pkg/merge"
)

// ErrMalformedPayload is returned when a load payload lacks its sql or
// values field.
var ErrMalformedPayload = errors.New("malformed load payload")

// Kind is the encoding of a load payload.
type Kind int

// Payload encodings.
const (
	KindJSON Kind = iota
	KindYAML
)

// String returns the encoding name.
func (k Kind) String() string {
	if k == KindYAML {
		return "yaml"
	}
	return "json"
}

// KindFromPath picks the encoding from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return KindYAML
	default:
		return KindJSON
	}
}

// Payload is a query and the parameters to merge into it.
type Payload struct {
	SQL    string
	Values []merge.Value
}

// payloadDoc is the decoded shape of a load payload.
type payloadDoc struct {
	SQL    string `mapstructure:"sql"`
	Values []any  `mapstructure:"values"`
}

// DecodeLoad decodes a load payload: an object with a string sql field and
// an array values field. Other fields are ignored.
func DecodeLoad(data []byte, kind Kind) (Payload, error) {
	var doc map[string]any
	var err error
	switch kind {
	case KindYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Payload{}, fmt.Errorf("%w: invalid %s: %v", ErrMalformedPayload, kind, err)
	}
	if doc == nil {
		return Payload{}, fmt.Errorf("%w: expected an object", ErrMalformedPayload)
	}

	var p payloadDoc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnset: true,
		Result:     &p,
	})
	if err != nil {
		return Payload{}, err
	}
	if err := dec.Decode(doc); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if _, ok := doc["sql"].(string); !ok {
		return Payload{}, fmt.Errorf("%w: sql must be a string", ErrMalformedPayload)
	}
	if _, ok := doc["values"].([]any); !ok {
		return Payload{}, fmt.Errorf("%w: values must be an array", ErrMalformedPayload)
	}

	return Payload{
		SQL:    p.SQL,
		Values: merge.Values(p.Values...),
	}, nil
}

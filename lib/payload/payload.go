package payload

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/models"
)

// Encode a model as JSON. An empty indent produces compact output.
func Encode(v any, indent string) ([]byte, error) {
	if indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", indent)
}

// Decode a JSON payload into the model registered under `schema`.
// Unknown fields are ignored; missing required fields are an error.
func Decode(schema string, data []byte) (any, error) {
	s, ok := models.Lookup(schema)
	if !ok {
		return nil, fmt.Errorf("%w: %q", constants.ErrUnknownSchema, schema)
	}

	v := s.New()
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Name, err)
	}

	return v, nil
}

// Decode a YAML (or JSON, which is valid YAML) payload into the model
// registered under `schema`.
func DecodeYAML(schema string, data []byte) (any, error) {
	j, err := ToJSON(data)
	if err != nil {
		return nil, err
	}
	return Decode(schema, j)
}

// Convert a YAML document to JSON. Input that is already valid JSON is
// returned unchanged so encoding/json rules (e.g. last duplicate key wins) apply.
func ToJSON(data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}

	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return j, nil
}

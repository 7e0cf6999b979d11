package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/models"
	"golang.org/x/exp/slices"
)

// JSON Schema documents for every model, keyed by schema name.
//
//go:embed schemas.yaml
var schemasYAML []byte

var (
	once     sync.Once
	compiled map[string]*jsonschema.Schema
	initErr  error
)

func load() {
	var docs map[string]any
	if err := yaml.Unmarshal(schemasYAML, &docs); err != nil {
		initErr = fmt.Errorf("parse schemas: %w", err)
		return
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	for name, doc := range docs {
		// Round-trip through JSON so the compiler only sees JSON-native types.
		raw, err := json.Marshal(doc)
		if err != nil {
			initErr = fmt.Errorf("encode schema %s: %w", name, err)
			return
		}
		var object any
		if err := json.Unmarshal(raw, &object); err != nil {
			initErr = fmt.Errorf("decode schema %s: %w", name, err)
			return
		}
		if err := compiler.AddResource(name+".json", object); err != nil {
			initErr = fmt.Errorf("add schema %s: %w", name, err)
			return
		}
	}

	compiled = make(map[string]*jsonschema.Schema, len(docs))
	for name := range docs {
		s, err := compiler.Compile(name + ".json")
		if err != nil {
			initErr = fmt.Errorf("compile schema %s: %w", name, err)
			return
		}
		compiled[name] = s
	}
}

// Names of the schemas that have a validation document, sorted.
func Names() ([]string, error) {
	once.Do(load)
	if initErr != nil {
		return nil, initErr
	}
	names := lo.Keys(compiled)
	slices.Sort(names)
	return names, nil
}

// Validate a JSON payload against the document for `schema`.
// Unlike the models themselves, this checks types and enumerations
// (e.g. the merge strategy).
func Validate(schema string, payload []byte) error {
	once.Do(load)
	if initErr != nil {
		return initErr
	}

	s, ok := models.Lookup(schema)
	if !ok {
		return fmt.Errorf("%w: %q", constants.ErrUnknownSchema, schema)
	}
	sch, ok := compiled[s.Name]
	if !ok {
		return fmt.Errorf("%w: no validation document for %s", constants.ErrUnknownSchema, s.Name)
	}

	// Numbers stay json.Number, so large integers keep their precision.
	document, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("unable to parse payload: %w", err)
	}

	return sch.Validate(document)
}

// Encode a model and validate the result.
func ValidateModel(schema string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return Validate(schema, raw)
}

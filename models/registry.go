package models

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Schema-to-type mapping rules, applied to every model in this package:
//
//   - one struct per API schema, named after the schema;
//   - every field carries a `json` tag with the exact wire name;
//   - required fields are plain values without `omitempty`;
//   - optional fields are pointers tagged `omitempty`, so nil means absent and
//     any non-nil value (false, 0, "", empty map) is serialized;
//   - the constructor takes the required fields in schema order;
//   - unknown fields are ignored when decoding, missing required fields are not.

// A single field of a model as it appears on the wire.
type Field struct {
	// Go field name.
	Name string
	// JSON key.
	Wire     string
	Required bool
}

// Mapping between an API schema and its Go model.
type Schema struct {
	// Schema name, e.g. `TagCreation`.
	Name string
	// Snake-case alias, e.g. `tag_creation`.
	Alias string
	// Returns a pointer to a zero instance of the model.
	New    func() any
	Fields []Field
}

// Wire names of the required fields, in declaration order.
func (s Schema) Required() []string {
	return lo.FilterMap(s.Fields, func(f Field, _ int) (string, bool) {
		return f.Wire, f.Required
	})
}

// Wire names of the optional fields, in declaration order.
func (s Schema) Optional() []string {
	return lo.FilterMap(s.Fields, func(f Field, _ int) (string, bool) {
		return f.Wire, !f.Required
	})
}

var registry = []Schema{
	newSchema("ActionRun", func() any { return &ActionRun{} }),
	newSchema("ActionRunList", func() any { return &ActionRunList{} }),
	newSchema("BranchCreation", func() any { return &BranchCreation{} }),
	newSchema("CommitCreation", func() any { return &CommitCreation{} }),
	newSchema("HookRun", func() any { return &HookRun{} }),
	newSchema("HookRunList", func() any { return &HookRunList{} }),
	newSchema("LoginInformation", func() any { return &LoginInformation{} }),
	newSchema("Merge", func() any { return &Merge{} }),
	newSchema("Pagination", func() any { return &Pagination{} }),
	newSchema("TagCreation", func() any { return &TagCreation{} }),
}

// Return every known schema, sorted by name.
func Schemas() []Schema {
	out := make([]Schema, len(registry))
	copy(out, registry)
	return out
}

// Return the names of every known schema, sorted.
func SchemaNames() []string {
	names := lo.Map(registry, func(s Schema, _ int) string { return s.Name })
	slices.Sort(names)
	return names
}

// Find a schema by name or alias. Matching is case-insensitive and treats
// dashes as underscores.
func Lookup(name string) (Schema, bool) {
	key := strings.ReplaceAll(strings.TrimSpace(name), "-", "_")
	return lo.Find(registry, func(s Schema) bool {
		return strings.EqualFold(s.Name, key) || strings.EqualFold(s.Alias, key)
	})
}

func newSchema(name string, factory func() any) Schema {
	return Schema{
		Name:   name,
		Alias:  snakeCase(name),
		New:    factory,
		Fields: fieldsOf(reflect.TypeOf(factory()).Elem()),
	}
}

func fieldsOf(t reflect.Type) []Field {
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("json")
		if !ok || tag == "-" {
			continue
		}

		wire, opts, _ := strings.Cut(tag, ",")
		if wire == "" {
			wire = f.Name
		}

		fields = append(fields, Field{
			Name:     f.Name,
			Wire:     wire,
			Required: !strings.Contains(opts, "omitempty"),
		})
	}
	return fields
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

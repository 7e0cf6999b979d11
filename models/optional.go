package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
)

// Returned (wrapped with the wire name) when an incoming payload lacks a required field.
var ErrMissingRequiredField = errors.New("missing required field")

// Reports whether `data` is the JSON literal null. UnmarshalJSON treats it as a no-op.
func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// Check that every wire name in `required` is present in a JSON object.
// An explicit null counts as present, for the object itself as well as for
// its keys. Unknown keys are ignored.
func requireFields(data []byte, required ...string) error {
	if isNull(data) {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, name := range required {
		if _, ok := raw[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
		}
	}

	return nil
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return lo.ToPtr(lo.FromPtr(p))
}

func equalMapPtr(a, b *map[string]string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return maps.Equal(*a, *b)
}

// A present map that is nil would encode as null and decode back as absent.
// Substitute an empty map so presence survives the round trip.
func presentMap(p *map[string]string) *map[string]string {
	if p != nil && *p == nil {
		return &map[string]string{}
	}
	return p
}

func cloneMapPtr(p *map[string]string) *map[string]string {
	if p == nil {
		return nil
	}
	m := maps.Clone(*p)
	if m == nil {
		m = map[string]string{}
	}
	return &m
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

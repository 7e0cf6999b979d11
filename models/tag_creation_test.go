package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreationRequiredOnly(t *testing.T) {
	out, err := json.Marshal(NewTagCreation("v1", "main"))
	require.NoError(t, err)
	assert.Equal(t, `{"id":"v1","ref":"main"}`, string(out))
}

func TestTagCreationForceFalse(t *testing.T) {
	tag := NewTagCreation("v1", "main")
	tag.SetForce(false)

	out, err := json.Marshal(tag)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"v1","ref":"main","force":false}`, string(out))
}

func TestTagCreationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *TagCreation
		missing string
	}{
		{
			name:    "required only",
			payload: `{"id":"v1","ref":"main"}`,
			want:    NewTagCreation("v1", "main"),
		},
		{
			name:    "unknown field ignored",
			payload: `{"id":"v1","ref":"main","force":true,"created_by":"someone"}`,
			want:    &TagCreation{ID: "v1", Ref: "main", Force: lo.ToPtr(true)},
		},
		{
			name:    "missing ref",
			payload: `{"id":"v1"}`,
			missing: "ref",
		},
		{
			name:    "missing id",
			payload: `{"ref":"main","force":false}`,
			missing: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagCreation
			err := json.Unmarshal([]byte(tt.payload), &got)
			if tt.missing != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingRequiredField))
				assert.Contains(t, err.Error(), tt.missing)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(&got))
		})
	}
}

func TestTagCreationEqualAndClone(t *testing.T) {
	a := NewTagCreation("v1", "main")
	b := NewTagCreation("v1", "main")
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(NewTagCreation("v2", "main")))
	assert.False(t, a.Equal(NewTagCreation("v1", "dev")))

	b.SetForce(false)
	assert.False(t, a.Equal(b))

	c := b.Clone()
	require.True(t, b.Equal(c))
	*c.Force = true
	assert.False(t, b.GetForce())
}

package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zfh521/lakeFS/constants"
	"github.com/zfh521/lakeFS/models"
)

func TestEncode(t *testing.T) {
	tag := models.NewTagCreation("v1", "main")

	out, err := Encode(tag, "")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"v1","ref":"main"}`, string(out))

	out, err = Encode(tag, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"v1\",\n  \"ref\": \"main\"\n}", string(out))
}

func TestDecode(t *testing.T) {
	v, err := Decode("tag_creation", []byte(`{"id":"v1","ref":"main","force":false,"extra":"ignored"}`))
	require.NoError(t, err)

	tag, ok := v.(*models.TagCreation)
	require.True(t, ok)
	assert.Equal(t, "v1", tag.ID)
	assert.Equal(t, "main", tag.Ref)
	assert.True(t, tag.HasForce())
	assert.False(t, tag.GetForce())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("nope", []byte(`{}`))
	assert.ErrorIs(t, err, constants.ErrUnknownSchema)

	_, err = Decode("TagCreation", []byte(`{"id":"v1"}`))
	assert.ErrorIs(t, err, models.ErrMissingRequiredField)

	_, err = Decode("Merge", []byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
message: nightly merge
metadata:
  owner: data-team
strategy: source-wins
force: false
`
	v, err := DecodeYAML("merge", []byte(doc))
	require.NoError(t, err)

	m, ok := v.(*models.Merge)
	require.True(t, ok)
	assert.Equal(t, "nightly merge", m.GetMessage())
	assert.Equal(t, map[string]string{"owner": "data-team"}, m.GetMetadata())
	assert.Equal(t, models.MergeStrategySourceWins, m.GetStrategy())
	assert.True(t, m.HasForce())

	out, err := Encode(m, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"nightly merge","metadata":{"owner":"data-team"},"strategy":"source-wins","force":false}`, string(out))
}

func TestDecodeYAMLAcceptsJSON(t *testing.T) {
	v, err := DecodeYAML("Merge", []byte(`{"strategy":"dest-wins"}`))
	require.NoError(t, err)
	assert.True(t, v.(*models.Merge).HasStrategy())
}

func TestDecodeYAMLDuplicateJSONKeys(t *testing.T) {
	data := []byte(`{"id":"v1","ref":"main","id":"v2"}`)

	want, err := Decode("TagCreation", data)
	require.NoError(t, err)

	got, err := DecodeYAML("TagCreation", data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "v2", got.(*models.TagCreation).ID)
}

func TestToJSONPassesJSONThrough(t *testing.T) {
	data := []byte(`{"strategy": "dest-wins"}`)
	out, err := ToJSON(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

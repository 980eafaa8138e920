package apiclient

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "incubator/internal/platform/errors"
)

type item struct {
	ID string `json:"id"`
}

func TestDecodeListEnvelopes(t *testing.T) {
	shapes := map[string]string{
		"bare":          `[{"id":"a"},{"id":"b"}]`,
		"data":          `{"data":[{"id":"a"},{"id":"b"}]}`,
		"nested data":   `{"data":{"data":[{"id":"a"},{"id":"b"}]}}`,
		"relation data": `{"relationData":[{"id":"a"},{"id":"b"}],"relationType":"members"}`,
		"projects":      `{"projects":[{"id":"a"},{"id":"b"}],"total":2}`,
	}
	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeList[item](json.RawMessage(body))
			require.NoError(t, err)
			assert.Equal(t, []item{{ID: "a"}, {ID: "b"}}, got)
		})
	}
}

func TestDecodeListEmptyPayloads(t *testing.T) {
	for _, body := range []string{"", "null", "  ", "[]", `{"data":[]}`, `{"data":null}`} {
		got, err := DecodeList[item](json.RawMessage(body))
		require.NoError(t, err, body)
		assert.NotNil(t, got, body)
		assert.Empty(t, got, body)
	}
}

func TestDecodeListRejectsUnknownShapes(t *testing.T) {
	for _, body := range []string{`{"items":[]}`, `"text"`, `42`} {
		_, err := DecodeList[item](json.RawMessage(body))
		assert.ErrorIs(t, err, apperrors.ErrShape, body)
	}
}

func TestDecodeObject(t *testing.T) {
	got, err := DecodeObject[item](json.RawMessage(`{"data":{"id":"p1"}}`))
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	got, err = DecodeObject[item](json.RawMessage(`{"id":"p2","data":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "p2", got.ID)

	got, err = DecodeObject[item](json.RawMessage(`{"message":"ok","data":{"id":"p3"}}`))
	require.NoError(t, err)
	assert.Equal(t, "p3", got.ID)

	_, err = DecodeObject[item](json.RawMessage(`[]`))
	assert.ErrorIs(t, err, apperrors.ErrShape)
}

func TestSnippetKeepsRunesWhole(t *testing.T) {
	long := strings.Repeat("a", 199) + strings.Repeat("é", 10)
	got := snippet(long)
	assert.True(t, utf8.ValidString(got), got)
	assert.Equal(t, strings.Repeat("a", 199)+"…", got)
	assert.Equal(t, "short", snippet("short"))
}

package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "incubator/internal/platform/errors"
)

// listEnvelope covers every wrapper the backend uses around collections.
type listEnvelope struct {
	Data         json.RawMessage `json:"data"`
	RelationData json.RawMessage `json:"relationData"`
	Projects     json.RawMessage `json:"projects"`
}

// DecodeList accepts a bare array, {"data":[…]}, {"data":{"data":[…]}},
// {"relationData":[…]} or {"projects":[…]}. An empty or null payload is an
// empty list.
func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	return decodeList[T](raw, 0)
}

func decodeList[T any](raw json.RawMessage, depth int) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	if depth > 3 {
		return nil, fmt.Errorf("%w: list nested too deeply", apperrors.ErrShape)
	}
	switch trimmed[0] {
	case '[':
		out := []T{}
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("%w: decode list: %v", apperrors.ErrShape, err)
		}
		return out, nil
	case '{':
		env := listEnvelope{}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: decode envelope: %v", apperrors.ErrShape, err)
		}
		for _, inner := range []json.RawMessage{env.Data, env.RelationData, env.Projects} {
			if len(bytes.TrimSpace(inner)) > 0 {
				return decodeList[T](inner, depth+1)
			}
		}
		return nil, fmt.Errorf("%w: object has no data, relationData or projects field", apperrors.ErrShape)
	default:
		return nil, fmt.Errorf("%w: expected list, got %s", apperrors.ErrShape, snippet(string(trimmed)))
	}
}

// DecodeObject accepts a bare object or one wrapped as {"data":{…}}. The
// wrapper may carry siblings such as "message"; an object with its own "id"
// is the entity itself even when it has a "data" field.
func DecodeObject[T any](raw json.RawMessage) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return out, fmt.Errorf("%w: expected object", apperrors.ErrShape)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return out, fmt.Errorf("%w: decode object: %v", apperrors.ErrShape, err)
	}
	_, hasID := fields["id"]
	if inner, ok := fields["data"]; ok && !hasID {
		inner = bytes.TrimSpace(inner)
		if len(inner) > 0 && inner[0] == '{' {
			trimmed = inner
		}
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, fmt.Errorf("%w: decode object: %v", apperrors.ErrShape, err)
	}
	return out, nil
}

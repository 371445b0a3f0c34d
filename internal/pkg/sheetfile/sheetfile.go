// Package sheetfile reads character snapshots from YAML or JSON files
package sheetfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Load reads a snapshot from path. Files ending in .json are decoded as
// JSON, everything else as YAML.
func Load(path string) (*dnd5e.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}

// DecodeJSON decodes a JSON snapshot
func DecodeJSON(data []byte) (*dnd5e.Character, error) {
	var char dnd5e.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed character json")
	}
	return &char, nil
}

// DecodeYAML decodes a YAML snapshot. The document is normalized to JSON
// first so both formats share one set of field names and the property
// "type" discriminant.
func DecodeYAML(data []byte) (*dnd5e.Character, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed character yaml")
	}
	if doc == nil {
		return nil, errors.InvalidArgument("character document is empty")
	}

	normalized, err := normalize(doc)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(normalized)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "character yaml is not representable as json")
	}
	return DecodeJSON(body)
}

// normalize converts yaml maps with non-string keys, e.g. spell slot levels,
// into string keyed maps encoding/json accepts
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				b, err := json.Marshal(k)
				if err != nil {
					return nil, errors.InvalidArgumentf("unsupported map key %v", k)
				}
				key = string(b)
			}
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

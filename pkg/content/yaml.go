package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into the same tree shape ParseJSON produces,
// so YAML bodies take part in lookups exactly like JSON bodies.
func ParseYAML(data []byte) (JSONValue, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return JSONValue{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return NewJSON(normalizeYAML(tree)), nil
}

// normalizeYAML rewrites yaml.v3 output into encoding/json shapes:
// string keys, json.Number numbers and RFC 3339 timestamps.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeYAML(item)
		}
		return out
	case int:
		return json.Number(strconv.Itoa(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case time.Time:
		return t.Format(time.RFC3339Nano)
	}
	return v
}

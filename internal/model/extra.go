package model

import (
	"encoding/json"
	"reflect"
	"strings"
)

// The stored tables carry columns the admin panel never learned about.
// Records keep those in an Extra side table so round-trips preserve them
// verbatim instead of dropping them on the floor.

// knownJSONKeys returns the json field names declared on a struct type.
func knownJSONKeys(t reflect.Type) map[string]struct{} {
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		keys[tag] = struct{}{}
	}
	return keys
}

// extraFields returns the decoded values of every key in data that is not a
// declared field. Returns nil when there is nothing extra.
func extraFields(data []byte, known map[string]struct{}) map[string]any {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	var extra map[string]any
	for k, raw := range fields {
		if _, ok := known[k]; ok {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

// marshalWithExtra marshals v then layers the extra keys underneath: typed
// fields always win a collision.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}

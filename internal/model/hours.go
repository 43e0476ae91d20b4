package model

import (
	"bytes"
	"encoding/json"
)

// defaultOpen/defaultClose fill in for days stored without a usable interval.
const (
	defaultOpen  = "09:00"
	defaultClose = "17:00"
)

// Hours is the canonical operating-hours shape: an ordered list of
// {day, open, close} records. Historical rows stored either this list or a
// mapping from day name to an interval object, so decoding normalizes.
type Hours []map[string]any

// UnmarshalJSON accepts both stored shapes. A list passes through unchanged,
// a mapping becomes a list in the document's key order, and anything else
// (including nulls and scalar junk) normalizes to absent.
func (h *Hours) UnmarshalJSON(data []byte) error {
	*h = NormalizeHours(data)
	return nil
}

// NormalizeHours converts a raw JSON hours value into the canonical list.
// Normalizing an already-normalized list is a no-op.
func NormalizeHours(raw []byte) Hours {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var entries []map[string]any
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil
		}
		return entries
	case '{':
		return normalizeMapping(trimmed)
	default:
		return nil
	}
}

// normalizeMapping walks the object with a token decoder so the stored key
// order survives into the list.
func normalizeMapping(raw []byte) Hours {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // consume '{'
		return nil
	}
	var entries Hours
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		day, ok := keyTok.(string)
		if !ok {
			return nil
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil
		}
		entry := map[string]any{"day": day}
		var interval map[string]any
		if err := json.Unmarshal(value, &interval); err == nil && interval != nil {
			for k, v := range interval {
				entry[k] = v
			}
		} else {
			entry["open"] = defaultOpen
			entry["close"] = defaultClose
		}
		entries = append(entries, entry)
	}
	return entries
}

package service

import (
	"strings"

	"spotnere-backend/internal/supabase"
)

// PostgREST renders an embedded many-to-one resource as an object, but some
// server versions wrap it in a single-element array. These helpers flatten
// either shape.

func embeddedRow(v any) map[string]any {
	switch e := v.(type) {
	case map[string]any:
		return e
	case []any:
		if len(e) > 0 {
			if row, ok := e[0].(map[string]any); ok {
				return row
			}
		}
	}
	return nil
}

func stringField(row map[string]any, key string) string {
	if row == nil {
		return ""
	}
	s, _ := row[key].(string)
	return s
}

func fullName(row map[string]any) string {
	return strings.TrimSpace(stringField(row, "first_name") + " " + stringField(row, "last_name"))
}

// flattenUserPlace replaces the embedded users/places objects on a row with
// flat user_name, user_email and place_name fields.
func flattenUserPlace(row supabase.Row) supabase.Row {
	user := embeddedRow(row["users"])
	place := embeddedRow(row["places"])
	out := make(supabase.Row, len(row)+3)
	for k, v := range row {
		if k == "users" || k == "places" {
			continue
		}
		out[k] = v
	}
	out["user_name"] = fullName(user)
	out["user_email"] = stringField(user, "email")
	out["place_name"] = stringField(place, "name")
	return out
}

package model

import (
	"encoding/json"
	"testing"
)

func TestNormalizeHoursListPassthrough(t *testing.T) {
	raw := []byte(`[{"day":"monday","open":"08:00","close":"20:00"}]`)
	hours := NormalizeHours(raw)
	if len(hours) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(hours))
	}
	if hours[0]["day"] != "monday" || hours[0]["open"] != "08:00" || hours[0]["close"] != "20:00" {
		t.Fatalf("entry mangled: %v", hours[0])
	}
}

func TestNormalizeHoursMappingKeepsKeyOrder(t *testing.T) {
	raw := []byte(`{"monday":{"open":"08:00","close":"20:00"},"tuesday":{"open":"10:00","close":"18:00"},"sunday":{"open":"11:00","close":"15:00"}}`)
	hours := NormalizeHours(raw)
	if len(hours) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(hours))
	}
	wantDays := []string{"monday", "tuesday", "sunday"}
	for i, day := range wantDays {
		if hours[i]["day"] != day {
			t.Fatalf("entry %d: expected day %q, got %v", i, day, hours[i]["day"])
		}
	}
	if hours[1]["open"] != "10:00" {
		t.Fatalf("interval fields lost: %v", hours[1])
	}
}

func TestNormalizeHoursDefaultsForScalarValues(t *testing.T) {
	raw := []byte(`{"monday":"closed"}`)
	hours := NormalizeHours(raw)
	if len(hours) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(hours))
	}
	if hours[0]["open"] != defaultOpen || hours[0]["close"] != defaultClose {
		t.Fatalf("expected default interval, got %v", hours[0])
	}
}

func TestNormalizeHoursEmptyIntervalKeepsDayOnly(t *testing.T) {
	raw := []byte(`{"monday":{}}`)
	hours := NormalizeHours(raw)
	if len(hours) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(hours))
	}
	if hours[0]["day"] != "monday" {
		t.Fatalf("expected day entry, got %v", hours[0])
	}
	if _, ok := hours[0]["open"]; ok {
		t.Fatalf("empty interval should not gain defaults: %v", hours[0])
	}
}

func TestNormalizeHoursJunkBecomesAbsent(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `42`, `"weekdays"`, ``} {
		if got := NormalizeHours([]byte(raw)); got != nil {
			t.Fatalf("input %q: expected nil, got %v", raw, got)
		}
	}
}

func TestNormalizeHoursIdempotent(t *testing.T) {
	raw := []byte(`{"friday":{"open":"09:30","close":"23:00"}}`)
	once := NormalizeHours(raw)
	encoded, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	twice := NormalizeHours(encoded)
	if len(twice) != len(once) {
		t.Fatalf("second pass changed length: %d vs %d", len(twice), len(once))
	}
	if twice[0]["day"] != once[0]["day"] || twice[0]["open"] != once[0]["open"] {
		t.Fatalf("second pass changed content: %v vs %v", twice[0], once[0])
	}
}

func TestHoursUnmarshalInsidePlace(t *testing.T) {
	var p Place
	data := []byte(`{"id":"p1","hours":{"saturday":{"open":"10:00","close":"22:00"}}}`)
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(p.Hours) != 1 || p.Hours[0]["day"] != "saturday" {
		t.Fatalf("hours not normalized on decode: %v", p.Hours)
	}
}

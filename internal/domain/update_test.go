package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDecodeFields_InvalidBody(t *testing.T) {
	_, err := DecodeFields([]byte("not json"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestFields_AbsentVsNullVsValue(t *testing.T) {
	fields, err := DecodeFields([]byte(`{"station_id": null, "slot_number": 4}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Absent key
	if fields.Has("status") {
		t.Error("expected 'status' to be absent")
	}

	// Explicit null
	if !fields.Has("station_id") {
		t.Error("expected 'station_id' to be present")
	}
	if !fields.IsNull("station_id") {
		t.Error("expected 'station_id' to be null")
	}
	v, err := fields.Uint("station_id")
	if err != nil {
		t.Fatalf("expected no error for null uint, got %v", err)
	}
	if v != nil {
		t.Errorf("expected nil for null uint, got %v", *v)
	}

	// Concrete value
	if fields.IsNull("slot_number") {
		t.Error("expected 'slot_number' to be non-null")
	}
	n, err := fields.Int("slot_number")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n == nil || *n != 4 {
		t.Errorf("expected slot_number 4, got %v", n)
	}
}

func TestFields_TypeMismatch(t *testing.T) {
	fields := Fields{
		"user_id":     json.RawMessage(`"abc"`),
		"monthly_fee": json.RawMessage(`"free"`),
		"name":        json.RawMessage(`42`),
		"is_active":   json.RawMessage(`"yes"`),
	}

	if _, err := fields.Uint("user_id"); err == nil {
		t.Error("expected error for string in uint field")
	}
	if _, err := fields.Float("monthly_fee"); err == nil {
		t.Error("expected error for string in float field")
	}
	if _, err := fields.String("name"); err == nil {
		t.Error("expected error for number in string field")
	}
	if _, err := fields.Bool("is_active"); err == nil {
		t.Error("expected error for string in bool field")
	}

	_, err := fields.Uint("user_id")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestFields_Time(t *testing.T) {
	fields := Fields{
		"start_time": json.RawMessage(`"2026-08-28T14:30:00Z"`),
		"end_time":   json.RawMessage(`null`),
		"bad_time":   json.RawMessage(`"28/08/2026"`),
	}

	v, err := fields.Time("start_time")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	if v == nil || !v.Equal(want) {
		t.Errorf("expected %v, got %v", want, v)
	}

	nullV, err := fields.Time("end_time")
	if err != nil {
		t.Fatalf("expected no error for null time, got %v", err)
	}
	if nullV != nil {
		t.Errorf("expected nil for null time, got %v", nullV)
	}

	if _, err := fields.Time("bad_time"); err == nil {
		t.Error("expected error for non-RFC3339 timestamp")
	}
}

func TestFields_IsNullIgnoresWhitespace(t *testing.T) {
	fields := Fields{"battery_id": json.RawMessage(" null ")}
	if !fields.IsNull("battery_id") {
		t.Error("expected whitespace-padded null to be detected")
	}
}

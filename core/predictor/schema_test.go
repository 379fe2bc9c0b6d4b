package predictor

import (
	"errors"
	"testing"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema([]string{"hour", "minute", "is_holiday", "lag_30min"})
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	if i, ok := s.Index("lag_30min"); !ok || i != 3 {
		t.Fatalf("Index(lag_30min) = %d,%v", i, ok)
	}
	if _, ok := s.Index("missing"); ok {
		t.Fatalf("unexpected index for unknown field")
	}
}

func TestNewSchema_MissingClockField(t *testing.T) {
	_, err := NewSchema([]string{"hour", "is_holiday"})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestNewSchema_DuplicateField(t *testing.T) {
	_, err := NewSchema([]string{"hour", "minute", "hour"})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestSchema_FieldsCopy(t *testing.T) {
	s, err := NewSchema([]string{"hour", "minute"})
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	f := s.Fields()
	f[0] = "mutated"
	if got := s.Fields()[0]; got != "hour" {
		t.Fatalf("schema mutated through Fields(): %q", got)
	}
}

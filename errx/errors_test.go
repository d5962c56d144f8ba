package errx

import (
	"errors"
	"strings"
	"testing"
)

func TestMissingIndex_Is(t *testing.T) {
	missing := MissingIndex("order by", "user_id", "ORDER BY user_id DESC")
	if !errors.Is(missing, ErrMissingIndex) {
		t.Fatalf("expected errors.Is(ErrMissingIndex)")
	}
	if !IsMissingIndex(missing) {
		t.Fatalf("expected IsMissingIndex")
	}
	if IsUnsupportedVariant(missing) {
		t.Fatalf("unexpected IsUnsupportedVariant")
	}
}

func TestMissingIndex_Message(t *testing.T) {
	missing := MissingIndex("aggregation", "cnt", "COUNT(order_id)")
	message := missing.Error()
	if !strings.Contains(message, "label=cnt") || !strings.Contains(message, "COUNT(order_id)") {
		t.Fatalf("expected label and item in message, got: %v", message)
	}
}

func TestUnsupportedVariant_Is(t *testing.T) {
	unsupported := UnsupportedVariant("order by", struct{ X int }{})
	if !errors.Is(unsupported, ErrUnsupportedVariant) {
		t.Fatalf("expected errors.Is(ErrUnsupportedVariant)")
	}
	if !IsUnsupportedVariant(unsupported) {
		t.Fatalf("expected IsUnsupportedVariant")
	}
}

func TestWrappedCause_Is(t *testing.T) {
	cause := errors.New("label lookup failed")
	wrapped := &Error{Kind: ErrMissingIndex, Op: "group by", Cause: cause}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected errors.Is on cause")
	}
}

package errx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingIndex indicates a column label required by aggregation or
	// order/group resolution was absent from the label to position mapping.
	ErrMissingIndex = errors.New("missing index")

	// ErrUnsupportedVariant indicates an item variant outside the closed set
	// reached a resolution routine; an upstream parser contract violation.
	ErrUnsupportedVariant = errors.New("unsupported variant")
)

// Error carries structured context while remaining compatible with errors.Is().
type Error struct {
	Kind  error
	Op    string
	Label string
	Item  string
	Cause error
}

func (e *Error) Error() string {
	sb := &strings.Builder{}
	sb.WriteString("shardingsphere")
	if e.Op != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Op)
	}
	sb.WriteString(": ")
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	} else {
		sb.WriteString("error")
	}
	if e.Label != "" {
		sb.WriteString(" label=")
		sb.WriteString(e.Label)
	}
	if e.Item != "" {
		sb.WriteString(" item=")
		sb.WriteString(e.Item)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if e.Kind != nil && target == e.Kind {
		return true
	}
	if e.Cause != nil {
		return errors.Is(e.Cause, target)
	}
	return false
}

// MissingIndex creates an index resolution error, label names the missing
// column label and item describes the offending select or order item.
func MissingIndex(op, label, item string) error {
	return &Error{
		Kind:  ErrMissingIndex,
		Op:    op,
		Label: label,
		Item:  item,
	}
}

// UnsupportedVariant creates a closed-set violation error for variant.
func UnsupportedVariant(op string, variant interface{}) error {
	return &Error{
		Kind: ErrUnsupportedVariant,
		Op:   op,
		Item: fmt.Sprintf("%T", variant),
	}
}

func IsMissingIndex(err error) bool { return errors.Is(err, ErrMissingIndex) }

func IsUnsupportedVariant(err error) bool { return errors.Is(err, ErrUnsupportedVariant) }

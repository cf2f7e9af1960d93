package svg

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrMissingAttribute = errors.New("missing mandatory attribute")
	ErrUnknownVariant   = errors.New("unknown element variant")
	ErrInvalidValue     = errors.New("invalid attribute value")
)

// MissingAttributeError is returned by Serialize when an element lacks one
// of the attributes its variant requires.
type MissingAttributeError struct {
	Variant Variant
	Field   string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("the field %s does not exist for %s", e.Field, e.Variant)
}

// Is reports whether target is ErrMissingAttribute.
func (e *MissingAttributeError) Is(target error) bool { return target == ErrMissingAttribute }

// UnknownVariantError is returned when a tag does not name any variant.
type UnknownVariantError struct {
	Tag string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("the tag %q is not implemented", e.Tag)
}

// Is reports whether target is ErrUnknownVariant.
func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }

// InvalidValueError is returned by Serialize when an attribute is present
// but its value is malformed for the variant.
type InvalidValueError struct {
	Variant Variant
	Field   string
	Reason  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s on %s: %s", e.Field, e.Variant, e.Reason)
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

func newMissingAttribute(v Variant, field string) error {
	return errors.WithStack(&MissingAttributeError{Variant: v, Field: field})
}

func newUnknownVariant(tag string) error {
	return errors.WithStack(&UnknownVariantError{Tag: tag})
}

func newInvalidValue(v Variant, field, reason string) error {
	return errors.WithStack(&InvalidValueError{Variant: v, Field: field, Reason: reason})
}

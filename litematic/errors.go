package litematic

import (
	"errors"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// ErrMissingField marks a named field that was absent from its compound.
// Wrap checks go through errors.Is.
var ErrMissingField = errors.New("missing field")

// UnsupportedVersionError is returned when the root Version tag is not the
// one version this codec speaks.
type UnsupportedVersionError struct {
	Version int32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("litematic version %d is unsupported (want %d)", e.Version, FormatVersion)
}

// FieldError reports a named field that is missing or not of the expected
// kind. Err carries the cause (ErrMissingField or the decoder's error).
type FieldError struct {
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Name, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// unmarshalField requires name in fields and decodes it into dst, tagging
// failures with the field name.
func unmarshalField(fields map[string]nbt.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok {
		return &FieldError{Name: name, Err: ErrMissingField}
	}
	if err := raw.Unmarshal(dst); err != nil {
		return &FieldError{Name: name, Err: err}
	}
	return nil
}

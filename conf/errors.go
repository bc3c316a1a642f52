package conf

import (
	"fmt"

	"github.com/zeebo/errs/v2"
)

// ErrInvalidConfiguration matches, via errors.Is, every error produced by
// Invalid. Such errors are always reported before any timing begins.
var ErrInvalidConfiguration = errs.Tag("invalid configuration")

// Invalid returns an ErrInvalidConfiguration for the named field.
func Invalid(field, format string, args ...any) error {
	return ErrInvalidConfiguration.Errorf("%s %s", field, fmt.Sprintf(format, args...))
}

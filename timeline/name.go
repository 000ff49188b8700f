package timeline

import (
	"regexp"

	"github.com/oomph-ac/pathrec/oerror"
)

// MaxNameLength is the maximum amount of characters in a record name.
const MaxNameLength = 32

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName checks that name can be used as a record name: it must be non-empty, at most
// MaxNameLength characters and only contain letters, digits, underscores and dashes.
func ValidateName(name string) error {
	switch {
	case name == "":
		return oerror.Wrap(oerror.ErrInvalidName, "name must not be empty")
	case len(name) > MaxNameLength:
		return oerror.Wrap(oerror.ErrInvalidName, "name %q is longer than %d characters", name, MaxNameLength)
	case !namePattern.MatchString(name):
		return oerror.Wrap(oerror.ErrInvalidName, "name %q may only contain letters, digits, '_' and '-'", name)
	}
	return nil
}

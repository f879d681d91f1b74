package templates

import (
	"fmt"
	"regexp"

	"github.com/rigforge/cli/internal/errors"
)

// Module type names must be valid manifest type identifiers: a letter
// followed by letters, digits, or underscores. Matches the catalog schema.
var typeNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Version ordinals are four-digit zero-padded strings.
var versionRegex = regexp.MustCompile(`^[0-9]{4}$`)

// ValidateTypeName checks that a module type name is scaffoldable.
func ValidateTypeName(name string) error {
	if name == "" {
		return errors.Wrap(errors.ErrValidation, "module type name cannot be empty")
	}
	if !typeNameRegex.MatchString(name) {
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid module type name %q: must start with a letter and contain only letters, digits, and underscores", name))
	}
	return nil
}

// ValidateVersion checks that a version is a four-digit ordinal.
func ValidateVersion(version string) error {
	if !versionRegex.MatchString(version) {
		return errors.Wrap(errors.ErrValidation,
			fmt.Sprintf("invalid version %q: must be a four-digit ordinal like 0000", version))
	}
	return nil
}

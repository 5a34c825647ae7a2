package project

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CheckFormatVersion gates loading on the document's format version.
// Documents written by a different major version of the format are
// rejected; minor and patch differences are readable.
func CheckFormatVersion(version string) error {
	if version == "" {
		return fmt.Errorf("missing format_version")
	}

	docVer, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid format_version %q: %w", version, err)
	}
	supported := semver.MustParse(FormatVersion)

	if docVer.Major() != supported.Major() {
		return fmt.Errorf("unsupported format_version %s (this build reads %d.x)", version, supported.Major())
	}
	return nil
}

package config

import (
	"github.com/Masterminds/semver/v3"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// SchemaVersion is the configuration schema version this package reads.
const SchemaVersion = "0.1.0"

// IsCompatible reports whether a file declaring version can be read by this package.
// Compatibility is the caret range ^SchemaVersion, so while the schema is 0.x only
// patch releases of the same minor version qualify.
// It fails with errors.CodeInvalidConfig when version is not a semantic version.
func IsCompatible(version string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SchemaVersion)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeInternal, "invalid schema version constraint")
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, errors.WrapWithContext(
			err,
			errors.CodeInvalidConfig,
			"configuration version is not a semantic version",
			map[string]interface{}{"version": version},
		)
	}

	return constraint.Check(v), nil
}

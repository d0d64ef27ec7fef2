package fonto

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted Fonto application version ("8.8.0"), grounded on
// original_source/format/src/formats/fonto/version.rs's FontoVersion.
type Version []int

// ParseVersion parses a dotted version string such as "8.8.0". It is a
// separate, fallible constructor rather than an Option so that a malformed
// --fonto-version flag surfaces as an error before export begins, per
// original_source/format/src/formats/fonto/version.rs's
// FontoVersion::try_from_str.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("fonto: invalid version %q: %w", s, err)
		}
		v[i] = n
	}
	return v, nil
}

// DefaultVersion is the Fonto application version assumed when none is
// given: 8.8.0.
func DefaultVersion() Version { return Version{8, 8, 0} }

func (v Version) IsEight() bool {
	return len(v) > 0 && v[0] == 8
}

func (v Version) IsEightEight() bool {
	return len(v) > 1 && v[0] == 8 && v[1] == 8
}

func (v Version) IsSeven() bool {
	return len(v) > 0 && v[0] == 7
}

// CompilerVersion is the Fonto schema *compiler* version stamped into the
// exported document's "version" field, distinct from the Fonto application
// Version it was derived from.
type CompilerVersion []int

// DefaultCompilerVersion is the schema compiler version used when no
// application Version narrows it further: 2.3.2.
func DefaultCompilerVersion() CompilerVersion { return CompilerVersion{2, 3, 2} }

// MinSchemaCompilerVersion maps an application Version to the minimum
// schema compiler version it requires, per
// original_source/format/src/formats/fonto/version.rs's
// FontoVersion::min_schema_compiler_version. Only the 8.8 family is
// distinguished today; every other version (8.x, 7.x, future majors) uses
// the 2.3.3 baseline.
func (v Version) MinSchemaCompilerVersion() CompilerVersion {
	if v.IsEightEight() {
		return CompilerVersion{2, 3, 2}
	}
	return CompilerVersion{2, 3, 3}
}

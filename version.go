package envprobe

import (
	"fmt"
	"strings"
)

// Version is a dotted interpreter version. Minor and Patch are -1 when the
// source string did not carry them ("3" parses as {3, -1, -1}).
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "X.Y.Z", "X.Y" or "X". Anything after the last number
// is ignored, so "3.13.0rc1" and "3.12.1+" both parse.
func ParseVersion(s string) (Version, error) {
	v := Version{Minor: -1, Patch: -1}
	s = strings.TrimSpace(s)
	if _, err := fmt.Sscanf(s, "%d.%d.%d", &v.Major, &v.Minor, &v.Patch); err != nil {
		v.Minor, v.Patch = -1, -1
		if _, err = fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor); err != nil {
			v.Minor = -1
			if _, err = fmt.Sscanf(s, "%d", &v.Major); err != nil {
				return Version{}, fmt.Errorf("parse version %q: %w", s, err)
			}
		}
	}
	if v.Major < 0 || v.Minor < -1 || v.Patch < -1 {
		return Version{}, fmt.Errorf("invalid version: %q", s)
	}
	return v, nil
}

// ParsePythonVersion parses the output of "python --version", for example
// "Python 3.12.4".
func ParsePythonVersion(s string) (Version, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 || fields[0] != "Python" {
		return Version{}, fmt.Errorf("not a python version string: %q", strings.TrimSpace(s))
	}
	return ParseVersion(fields[1])
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	default:
		return cmpInt(v.Patch, other.Patch)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// String omits components that were not specified: "3.12.4", "3.12", "3".
func (v Version) String() string {
	if v.Patch != -1 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != -1 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d", v.Major)
}

// MinorString returns "major.minor", e.g. "3.12".
func (v Version) MinorString() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

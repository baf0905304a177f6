package domain

import "fmt"

// Version is a four-part release version number as encoded in release tags:
// <major>.<minor>.<patch>-<increment>. The increment counts re-releases of
// the same upstream version.
type Version struct {
	Major     int `yaml:"major"`
	Minor     int `yaml:"minor"`
	Patch     int `yaml:"patch"`
	Increment int `yaml:"increment"`
}

// Compare returns -1, 0 or 1 ordering versions lexicographically on the
// (major, minor, patch, increment) tuple.
func (v Version) Compare(other Version) int {
	pairs := [4][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
		{v.Increment, other.Increment},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String renders the version in release-tag form, e.g. "16.0.4-2".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.Increment)
}

// Package tagpattern compiles release tag templates into structural matchers.
//
// A template is a literal tag string with a {package} and a {version}
// placeholder, e.g. "release/humble/{package}/{version}". The compiled
// matcher extracts the package name and the four-part version number from
// candidate tags.
package tagpattern

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	packagePlaceholder = "{package}"
	versionPlaceholder = "{version}"

	// The version placeholder expands to the fixed four-field release
	// grammar <major>.<minor>.<patch>-<increment>, digits only.
	versionExpr = `(\d+)\.(\d+)\.(\d+)-(\d+)`

	// The package placeholder expands to a maximal run of word characters.
	packageExpr = `(\w+)`
)

// Release is a successful match of a tag against a compiled pattern.
type Release struct {
	Package string
	Version domain.Version
}

// Matcher matches candidate tag strings against one compiled template.
type Matcher struct {
	re         *regexp.Regexp
	packageIdx int
	versionIdx int
}

// Compile turns a release tag template into a Matcher. The template must
// contain {package} and {version} exactly once each; everything else is
// matched literally.
func Compile(template string) (*Matcher, error) {
	if err := checkPlaceholder(template, packagePlaceholder); err != nil {
		return nil, err
	}
	if err := checkPlaceholder(template, versionPlaceholder); err != nil {
		return nil, err
	}

	escaped := regexp.QuoteMeta(template)

	// QuoteMeta escapes the braces, so the placeholders are replaced in
	// their escaped spelling. Group indices depend on placeholder order.
	escapedPackage := regexp.QuoteMeta(packagePlaceholder)
	escapedVersion := regexp.QuoteMeta(versionPlaceholder)

	packageIdx, versionIdx := 1, 2
	if strings.Index(escaped, escapedVersion) < strings.Index(escaped, escapedPackage) {
		packageIdx, versionIdx = 5, 1
	}

	escaped = strings.Replace(escaped, escapedPackage, packageExpr, 1)
	escaped = strings.Replace(escaped, escapedVersion, versionExpr, 1)

	// Matching is anchored at the start of the tag only; trailing
	// characters after a full match are ignored.
	re, err := regexp.Compile("^" + escaped)
	if err != nil {
		return nil, errors.Join(domain.ErrValidation,
			zerr.With(zerr.Wrap(err, "release tag pattern does not compile"), "pattern", template))
	}

	return &Matcher{re: re, packageIdx: packageIdx, versionIdx: versionIdx}, nil
}

func checkPlaceholder(template, placeholder string) error {
	var err error
	switch strings.Count(template, placeholder) {
	case 1:
		return nil
	case 0:
		err = zerr.New("release tag pattern is missing a placeholder")
	default:
		err = zerr.New("release tag pattern repeats a placeholder")
	}
	err = zerr.With(err, "pattern", template)
	err = zerr.With(err, "placeholder", placeholder)
	return errors.Join(domain.ErrValidation, err)
}

// Match extracts the package name and version from a tag. A tag that does
// not match the pattern reports ok == false; it is never an error.
func (m *Matcher) Match(tag string) (Release, bool) {
	groups := m.re.FindStringSubmatch(tag)
	if groups == nil {
		return Release{}, false
	}

	version := domain.Version{
		Major:     mustAtoi(groups[m.versionIdx]),
		Minor:     mustAtoi(groups[m.versionIdx+1]),
		Patch:     mustAtoi(groups[m.versionIdx+2]),
		Increment: mustAtoi(groups[m.versionIdx+3]),
	}

	return Release{Package: groups[m.packageIdx], Version: version}, true
}

// mustAtoi converts a digits-only capture. The pattern guarantees the text
// is numeric.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

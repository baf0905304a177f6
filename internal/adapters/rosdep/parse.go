package rosdep

import (
	"errors"
	"regexp"
	"strings"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
)

// `rosdep resolve` emits repeating three-line records:
//
//	#ROSDEP[<key>]
//	#<source>
//	<package> <package> ...
//
// Parsing is a strict three-state cycle; any line that does not match the
// grammar of the current state, or input ending mid-record, is a parse
// error.
type parseState int

const (
	awaitHeader parseState = iota
	awaitSource
	awaitPackages
)

var (
	headerRe   = regexp.MustCompile(`^#ROSDEP\[(\S+)\]`)
	sourceRe   = regexp.MustCompile(`^#(\S+)$`)
	packagesRe = regexp.MustCompile(`^\S+(?:\s+\S+)*$`)
)

func parseResolveOutput(out string) (map[string]domain.ResolvedRosdep, error) {
	resolved := make(map[string]domain.ResolvedRosdep)

	state := awaitHeader
	var key, source string

	for _, line := range strings.Split(out, "\n") {
		if state == awaitHeader && strings.TrimSpace(line) == "" {
			continue
		}

		switch state {
		case awaitHeader:
			m := headerRe.FindStringSubmatch(line)
			if m == nil {
				return nil, parseError("expected #ROSDEP[<key>] header", line)
			}
			key = m[1]
			state = awaitSource

		case awaitSource:
			m := sourceRe.FindStringSubmatch(line)
			if m == nil {
				return nil, parseError("expected #<source> line", line)
			}
			source = m[1]
			state = awaitPackages

		case awaitPackages:
			if !packagesRe.MatchString(strings.TrimRight(line, " \t")) {
				return nil, parseError("expected package list line", line)
			}

			// Fields drops the empty tokens a malformed list line would
			// otherwise contribute.
			resolved[key] = domain.ResolvedRosdep{
				Key:      key,
				Source:   source,
				Packages: strings.Fields(line),
			}
			state = awaitHeader
		}
	}

	if state != awaitHeader {
		return nil, errors.Join(domain.ErrParse,
			zerr.With(zerr.New("rosdep resolve output ended mid-record"), "key", key))
	}

	return resolved, nil
}

func parseError(msg, line string) error {
	return errors.Join(domain.ErrParse, zerr.With(zerr.New(msg), "line", line))
}

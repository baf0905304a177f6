// Package rosdistro reads distribution declaration files and caches release
// catalogs built from them.
package rosdistro

import (
	"errors"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reason codes recorded for repositories that cannot contribute to the
// release catalog.
const (
	InvalidRepoNoRelease        = "No release data"
	InvalidRepoNoReleaseRepoURL = "No release repository URL"
	InvalidRepoNoTagPattern     = "No release tag pattern"
)

// ExtractionResult separates well-formed release declarations from invalid
// ones. Invalid entries carry a reason and never abort the build.
type ExtractionResult struct {
	ReleaseInfo  map[string]domain.ReleaseRepoInfo
	InvalidRepos map[string]string
}

type distributionFile struct {
	Repositories map[string]repositoryEntry `yaml:"repositories"`
}

type repositoryEntry struct {
	Release *releaseEntry `yaml:"release"`
}

type releaseEntry struct {
	URL  string `yaml:"url"`
	Tags struct {
		Release string `yaml:"release"`
	} `yaml:"tags"`
}

// ExtractReleaseRepos reads a distribution declaration and extracts the
// release repository of every entry that declares one completely. A
// document without a repositories mapping yields an empty result.
func ExtractReleaseRepos(declaration []byte) (ExtractionResult, error) {
	var doc distributionFile
	if err := yaml.Unmarshal(declaration, &doc); err != nil {
		return ExtractionResult{}, errors.Join(domain.ErrParse, zerr.Wrap(err, "failed to parse distribution file"))
	}

	result := ExtractionResult{
		ReleaseInfo:  make(map[string]domain.ReleaseRepoInfo),
		InvalidRepos: make(map[string]string),
	}

	for name, repo := range doc.Repositories {
		switch {
		case repo.Release == nil:
			result.InvalidRepos[name] = InvalidRepoNoRelease
		case repo.Release.URL == "":
			result.InvalidRepos[name] = InvalidRepoNoReleaseRepoURL
		case repo.Release.Tags.Release == "":
			result.InvalidRepos[name] = InvalidRepoNoTagPattern
		default:
			result.ReleaseInfo[name] = domain.ReleaseRepoInfo{
				URL:        repo.Release.URL,
				TagPattern: repo.Release.Tags.Release,
			}
		}
	}

	return result, nil
}

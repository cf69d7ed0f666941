// Package brew tracks Homebrew bottle downloads. Homebrew is pointed at this
// server via the `root_url` of the bottle block, so every `brew install`
// fetches `{root_url}/{project}/{filename}`, which this package records
// before redirecting to the real GitHub release asset.
package brew

import (
	"fmt"
	"strings"
)

// bottleSuffix is the fixed tail of every bottle filename.
const bottleSuffix = ".bottle.tar.gz"

// project holds the GitHub coordinates a bottle download redirects to.
type project struct {
	Org  string
	Repo string
}

// projects is the registry of formulas served by this instance. Anything not
// listed here is rejected before any database work happens.
var projects = map[string]project{
	"rona":           {Org: "rona-rs", Repo: "rona"},
	"clean-dev-dirs": {Org: "clean-dev-dirs", Repo: "clean-dev-dirs"},
}

// LookupProject returns the GitHub org and repo for a known project.
func LookupProject(name string) (org, repo string, ok bool) {
	p, ok := projects[name]
	if !ok {
		return "", "", false
	}
	return p.Org, p.Repo, true
}

// ParseBottleFilename splits a bottle filename into (version, platform).
//
// Expected format: {project}-{version}.{platform}.bottle.tar.gz
// Example: rona-2.17.7.arm64_sequoia.bottle.tar.gz -> ("2.17.7", "arm64_sequoia")
//
// The platform is everything after the LAST dot of the suffix-stripped name,
// so versions containing dots are preserved verbatim and platforms can never
// span more than one dot segment. The project prefix check is a literal
// "{project}-" match.
func ParseBottleFilename(projectName, filename string) (version, platform string, ok bool) {
	base, found := strings.CutSuffix(filename, bottleSuffix)
	if !found {
		return "", "", false
	}

	dot := strings.LastIndexByte(base, '.')
	if dot < 0 {
		return "", "", false
	}
	platform = base[dot+1:]

	version, found = strings.CutPrefix(base[:dot], projectName+"-")
	if !found {
		return "", "", false
	}

	return version, platform, true
}

// RedirectURL builds the GitHub release asset URL a tracked download is
// redirected to.
func RedirectURL(org, repo, version, filename string) string {
	return fmt.Sprintf("https://github.com/%s/%s/releases/download/v%s/%s", org, repo, version, filename)
}

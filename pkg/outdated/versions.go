package outdated

import (
	"context"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/pkgrove/revscan/pkg/graph"
	"github.com/pkgrove/revscan/pkg/logging"
	"github.com/pkgrove/revscan/pkg/remotes"
)

// RemoteRef is the best remote version found for one dependency name.
type RemoteRef struct {
	Ref    string `json:"ref"`
	Remote string `json:"remote"`
}

// VersionStatus is the version-mode result for one dependency name.
type VersionStatus struct {
	CurrentVersions []string   `json:"current_versions"`
	VersionRanges   []string   `json:"version_ranges"`
	LatestRemote    *RemoteRef `json:"latest_remote"`
}

// VersionChecker compares the versions cached in the graph against the
// versions the remotes offer.
type VersionChecker struct {
	search remotes.VersionSearcher
}

// NewVersionChecker creates a VersionChecker querying remotes through the
// given searcher.
func NewVersionChecker(search remotes.VersionSearcher) *VersionChecker {
	return &VersionChecker{search: search}
}

// Check returns, per dependency name, the cached versions, the version
// ranges the graph declared for it, and the newest remote version — for
// exactly the names where some remote offers a strictly newer version.
// Remotes are queried in order; per-remote errors are absorbed.
func (c *VersionChecker) Check(ctx context.Context, g *graph.Graph, rems []remotes.Remote) map[string]*VersionStatus {
	logging.C(ctx).Info("Checking dependency versions against remotes",
		zap.Int("nodes", len(g.Dependencies())),
		zap.Int("remotes", len(rems)))

	cached := map[string][]string{}
	ranges := map[string][]string{}
	for _, node := range g.Dependencies() {
		if node.Ref.IsZero() {
			continue
		}
		name := node.Ref.Name
		v := node.Ref.WithoutRevision().String()
		if !contains(cached[name], v) {
			cached[name] = append(cached[name], v)
		}
	}
	for _, node := range g.Nodes {
		for _, req := range node.Requires {
			name, expr, ok := parseRequireRange(req)
			if !ok {
				continue
			}
			if _, known := cached[name]; !known {
				continue
			}
			if !contains(ranges[name], expr) {
				ranges[name] = append(ranges[name], expr)
			}
		}
	}

	names := make([]string, 0, len(cached))
	for name := range cached {
		names = append(names, name)
	}
	sort.Strings(names)

	result := map[string]*VersionStatus{}
	for _, name := range names {
		best, bestRemote := c.bestRemoteVersion(ctx, name, ranges[name], rems)
		if best == "" {
			continue
		}
		newest := ""
		for _, cachedRef := range cached[name] {
			v := versionOf(cachedRef)
			if newest == "" || versionLess(newest, v) {
				newest = v
			}
		}
		if newest != "" && !versionLess(newest, best) {
			continue
		}
		result[name] = &VersionStatus{
			CurrentVersions: cached[name],
			VersionRanges:   ranges[name],
			LatestRemote: &RemoteRef{
				Ref:    name + "/" + best,
				Remote: bestRemote,
			},
		}
	}
	return result
}

// bestRemoteVersion sweeps the remotes in order and returns the highest
// version offered for name, constrained by the declared ranges when they
// parse. Ties keep the earlier remote.
func (c *VersionChecker) bestRemoteVersion(ctx context.Context, name string, exprs []string, rems []remotes.Remote) (string, string) {
	var constraints []*semver.Constraints
	for _, expr := range exprs {
		if cons, err := semver.NewConstraint(expr); err == nil {
			constraints = append(constraints, cons)
		}
	}
	best, bestRemote := "", ""
	for _, remote := range rems {
		refs, err := c.search.SearchVersions(ctx, name, remote)
		if err != nil {
			continue
		}
		for _, ref := range refs {
			if ref.Name != name || !satisfies(ref.Version, constraints) {
				continue
			}
			if best == "" || versionLess(best, ref.Version) {
				best, bestRemote = ref.Version, remote.Name
			}
		}
	}
	return best, bestRemote
}

func satisfies(version string, constraints []*semver.Constraints) bool {
	if len(constraints) == 0 {
		return true
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	for _, cons := range constraints {
		if !cons.Check(v) {
			return false
		}
	}
	return true
}

// versionLess orders two version strings, semver when both parse,
// lexicographic otherwise.
func versionLess(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.LessThan(vb)
	}
	return a < b
}

// parseRequireRange extracts the range expression from a requirement like
// "zlib/[>=1.2 <2]". Pinned requirements report ok=false.
func parseRequireRange(req string) (name, expr string, ok bool) {
	i := strings.IndexByte(req, '/')
	if i <= 0 {
		return "", "", false
	}
	name = req[:i]
	rest := req[i+1:]
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return "", "", false
	}
	return name, rest[1 : len(rest)-1], true
}

func versionOf(ref string) string {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		v := ref[i+1:]
		if j := strings.IndexByte(v, '@'); j >= 0 {
			v = v[:j]
		}
		return v
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

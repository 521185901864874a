package outdated

import (
	"context"

	"go.uber.org/zap"

	"github.com/pkgrove/revscan/pkg/graph"
	"github.com/pkgrove/revscan/pkg/logging"
	"github.com/pkgrove/revscan/pkg/remotes"
)

// Checker runs the revision comparisons. It is stateless between calls;
// every call processes the full node list from scratch.
type Checker struct {
	lookup remotes.RevisionLookup
}

// NewChecker creates a Checker querying remotes through the given lookup.
func NewChecker(lookup remotes.RevisionLookup) *Checker {
	return &Checker{lookup: lookup}
}

// CheckRecipeRevisions reports, per recipe reference, whether any remote
// holds a newer recipe revision. nodes must exclude the graph root. A node
// without a reference is ignored; a reference without a revision is
// recorded as skipped. Two nodes with the same full reference share one
// record, seeded and resolved when the first of them is seen.
func (c *Checker) CheckRecipeRevisions(ctx context.Context, nodes []graph.Node, rems []remotes.Remote) *Report {
	logging.C(ctx).Info("Checking recipe revisions against remotes",
		zap.Int("nodes", len(nodes)),
		zap.Int("remotes", len(rems)))

	report := &Report{Mode: ModeRecipeRevisions, Recipes: map[string]*Record{}}
	skipped := map[string]bool{}
	for _, node := range nodes {
		if node.Ref.IsZero() {
			continue
		}
		if node.Ref.Revision == "" {
			report.skip(skipped, node.Ref.WithoutRevision().String())
			continue
		}
		key := node.Ref.String()
		if _, seen := report.Recipes[key]; seen {
			continue
		}
		rec := &Record{CurrentRevision: node.Ref.Revision}
		report.Recipes[key] = rec
		for _, remote := range rems {
			rev, err := c.lookup.LatestRecipeRevision(ctx, node.Ref.WithoutRevision(), remote)
			if err != nil {
				// No answer from this remote for this key; keep going.
				continue
			}
			rec.observe(remote.Name, *rev)
		}
	}
	return report
}

// CheckPackageRevisions reports, per (recipe, package_id) pair, whether any
// remote holds a newer package revision. nodes must exclude the graph root.
// Virtual nodes and nodes without a binary are ignored; a binary that was
// never built or installed (no recorded package revision) is recorded as
// skipped.
func (c *Checker) CheckPackageRevisions(ctx context.Context, nodes []graph.Node, rems []remotes.Remote) *Report {
	logging.C(ctx).Info("Checking package revisions against remotes",
		zap.Int("nodes", len(nodes)),
		zap.Int("remotes", len(rems)))

	report := &Report{Mode: ModePackageRevisions, Packages: map[string]*Record{}}
	skipped := map[string]bool{}
	for _, node := range nodes {
		if node.Ref.IsZero() || node.PackageID == "" {
			continue
		}
		if node.PackageRevision == "" {
			report.skip(skipped, node.Ref.WithoutRevision().String())
			continue
		}
		pref := graph.PackageRef{Ref: node.Ref, PackageID: node.PackageID}
		key := pref.String()
		if _, seen := report.Packages[key]; seen {
			continue
		}
		rec := &Record{CurrentRevision: node.PackageRevision}
		report.Packages[key] = rec
		for _, remote := range rems {
			rev, err := c.lookup.LatestPackageRevision(ctx, pref, remote)
			if err != nil {
				continue
			}
			rec.observe(remote.Name, *rev)
		}
	}
	return report
}

// skip appends key to Skipped once, keeping first-seen order.
func (r *Report) skip(seen map[string]bool, key string) {
	if seen[key] {
		return
	}
	seen[key] = true
	r.Skipped = append(r.Skipped, key)
}

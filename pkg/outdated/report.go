// Package outdated compares the revisions and versions recorded in a
// resolved dependency graph against what the configured remotes offer.
package outdated

import (
	"time"

	"github.com/pkgrove/revscan/pkg/remotes"
)

// Mode discriminates which check produced a Report.
type Mode string

// The three check modes.
const (
	ModeVersions         Mode = "versions"
	ModeRecipeRevisions  Mode = "recipe-revisions"
	ModePackageRevisions Mode = "package-revisions"
)

// RemoteRevision is the best remote answer recorded for one key.
type RemoteRevision struct {
	Revision string    `json:"revision"`
	Remote   string    `json:"remote"`
	Time     time.Time `json:"-"`
}

// Record is the comparison result for one recipe or package key.
type Record struct {
	CurrentRevision string          `json:"current_revision"`
	LatestRemote    *RemoteRevision `json:"latest_remote"`
	IsOutdated      bool            `json:"is_outdated"`
}

// observe merges one remote answer into the record. The slot is taken by
// the first answer; afterwards only an answer with a strictly greater
// timestamp replaces it. An answer without a timestamp never displaces one,
// and a recorded answer without a timestamp is always beatable. Equal
// timestamps keep the earlier remote.
func (r *Record) observe(remote string, rev remotes.Revision) {
	switch {
	case r.LatestRemote == nil:
	case rev.Time.IsZero():
		return
	case !r.LatestRemote.Time.IsZero() && !rev.Time.After(r.LatestRemote.Time):
		return
	}
	r.LatestRemote = &RemoteRevision{Revision: rev.Revision, Remote: remote, Time: rev.Time}
	r.IsOutdated = rev.Revision != r.CurrentRevision
}

// Report is the result of a revision check. Exactly one of Recipes and
// Packages is populated, matching Mode. Skipped lists, in first-seen order,
// the references that had no local revision to compare.
type Report struct {
	Mode     Mode               `json:"mode"`
	Recipes  map[string]*Record `json:"recipes,omitempty"`
	Packages map[string]*Record `json:"packages,omitempty"`
	Skipped  []string           `json:"skipped_no_revision"`
}

// Records returns whichever key map the mode populated.
func (r *Report) Records() map[string]*Record {
	if r.Mode == ModePackageRevisions {
		return r.Packages
	}
	return r.Recipes
}

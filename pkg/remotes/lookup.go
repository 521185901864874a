//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=lookup.go -destination=mock.gen.go -package=remotes

package remotes

import (
	"context"
	"time"

	"github.com/pkgrove/revscan/pkg/graph"
)

// Revision is one remote's answer for the latest known revision.
type Revision struct {
	// Revision is the revision identifier.
	Revision string
	// Time is when the remote recorded the revision. Zero when the remote
	// reports no timestamp.
	Time time.Time
}

// RevisionLookup answers "what is the latest revision for X" against a
// single remote. Implementations return ErrNotFound when the remote does
// not know the reference; any other error is a recoverable query failure.
type RevisionLookup interface {
	// LatestRecipeRevision resolves the newest recipe revision for a
	// reference given without its revision.
	LatestRecipeRevision(ctx context.Context, ref graph.Ref, remote Remote) (*Revision, error)
	// LatestPackageRevision resolves the newest package revision for a
	// binary of the given recipe revision.
	LatestPackageRevision(ctx context.Context, pref graph.PackageRef, remote Remote) (*Revision, error)
}

// VersionSearcher lists the recipe versions a remote offers for a name.
type VersionSearcher interface {
	SearchVersions(ctx context.Context, name string, remote Remote) ([]graph.Ref, error)
}

// Service is what a remote adapter provides.
type Service interface {
	RevisionLookup
	VersionSearcher
}

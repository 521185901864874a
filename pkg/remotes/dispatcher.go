package remotes

import (
	"context"
	"fmt"

	"github.com/pkgrove/revscan/pkg/graph"
)

// Dispatcher routes lookups to the adapter registered for the remote's
// kind. An unregistered kind yields a per-query error, which the checks
// absorb like any other recoverable failure.
type Dispatcher struct {
	byKind map[string]Service
}

// Ensure Dispatcher satisfies the full adapter contract.
var _ Service = (*Dispatcher)(nil)

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{byKind: make(map[string]Service)}
}

// Register binds an adapter to a remote kind.
func (d *Dispatcher) Register(kind string, svc Service) {
	d.byKind[kind] = svc
}

func (d *Dispatcher) service(remote Remote) (Service, error) {
	svc, ok := d.byKind[remote.Kind]
	if !ok {
		return nil, fmt.Errorf("remote %s: unsupported kind %q", remote.Name, remote.Kind)
	}
	return svc, nil
}

// LatestRecipeRevision implements RevisionLookup.
func (d *Dispatcher) LatestRecipeRevision(ctx context.Context, ref graph.Ref, remote Remote) (*Revision, error) {
	svc, err := d.service(remote)
	if err != nil {
		return nil, err
	}
	return svc.LatestRecipeRevision(ctx, ref, remote)
}

// LatestPackageRevision implements RevisionLookup.
func (d *Dispatcher) LatestPackageRevision(ctx context.Context, pref graph.PackageRef, remote Remote) (*Revision, error) {
	svc, err := d.service(remote)
	if err != nil {
		return nil, err
	}
	return svc.LatestPackageRevision(ctx, pref, remote)
}

// SearchVersions implements VersionSearcher.
func (d *Dispatcher) SearchVersions(ctx context.Context, name string, remote Remote) ([]graph.Ref, error) {
	svc, err := d.service(remote)
	if err != nil {
		return nil, err
	}
	return svc.SearchVersions(ctx, name, remote)
}

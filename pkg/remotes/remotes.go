// Package remotes defines the remote repository descriptors and the lookup
// contracts the outdated checks are written against.
package remotes

import (
	"errors"
	"fmt"
)

// Remote kinds understood by the stock adapters.
const (
	KindConan  = "conan"
	KindGitHub = "github"
)

// ErrNotFound is returned by lookups when a remote does not know the
// requested reference or package. Checks treat it as "no answer from this
// remote".
var ErrNotFound = errors.New("not found on remote")

// Remote describes one named, ordered remote repository.
type Remote struct {
	Name  string `mapstructure:"name"`
	Kind  string `mapstructure:"kind"`
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

// Select returns the subset of remotes matching the given names, preserving
// the configured order. An empty name list selects everything. A name with
// no matching remote is an error.
func Select(all []Remote, names []string) ([]Remote, error) {
	if len(names) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = false
	}
	var out []Remote
	for _, r := range all {
		if _, ok := wanted[r.Name]; ok {
			wanted[r.Name] = true
			out = append(out, r)
		}
	}
	for n, found := range wanted {
		if !found {
			return nil, fmt.Errorf("remote %q is not configured", n)
		}
	}
	return out, nil
}

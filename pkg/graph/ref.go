package graph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRef is returned when a reference string cannot be parsed.
var ErrInvalidRef = errors.New("invalid reference")

// Ref identifies a recipe: name, version, optional user/channel and
// optional recipe revision.
type Ref struct {
	Name     string
	Version  string
	User     string
	Channel  string
	Revision string
}

// ParseRef parses a textual reference of the form
// "name/version[@user[/channel]][#revision]".
func ParseRef(s string) (Ref, error) {
	var ref Ref
	rest := s
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		ref.Revision = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		uc := rest[i+1:]
		rest = rest[:i]
		if j := strings.IndexByte(uc, '/'); j >= 0 {
			ref.User, ref.Channel = uc[:j], uc[j+1:]
		} else {
			ref.User = uc
		}
		if ref.User == "" {
			return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
		}
	}
	i := strings.IndexByte(rest, '/')
	if i <= 0 || i == len(rest)-1 {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
	}
	ref.Name, ref.Version = rest[:i], rest[i+1:]
	return ref, nil
}

// IsZero reports whether the reference is empty (virtual or root nodes).
func (r Ref) IsZero() bool {
	return r.Name == ""
}

// WithoutRevision returns a copy of the reference with the revision dropped.
func (r Ref) WithoutRevision() Ref {
	r.Revision = ""
	return r
}

// String renders the reference in the same form ParseRef accepts.
func (r Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteByte('/')
	sb.WriteString(r.Version)
	if r.User != "" {
		sb.WriteByte('@')
		sb.WriteString(r.User)
		if r.Channel != "" {
			sb.WriteByte('/')
			sb.WriteString(r.Channel)
		}
	}
	if r.Revision != "" {
		sb.WriteByte('#')
		sb.WriteString(r.Revision)
	}
	return sb.String()
}

// PackageRef identifies one binary configuration built from a recipe.
type PackageRef struct {
	Ref       Ref
	PackageID string
}

// String renders "name/version[@user/channel]:package_id". The recipe
// revision is deliberately not part of the rendering: a package key must
// stay stable across recipe revisions.
func (p PackageRef) String() string {
	return p.Ref.WithoutRevision().String() + ":" + p.PackageID
}

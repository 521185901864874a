package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
	}{
		{"zlib/1.3", Ref{Name: "zlib", Version: "1.3"}},
		{"zlib/1.3#abc12", Ref{Name: "zlib", Version: "1.3", Revision: "abc12"}},
		{"tool/0.1@corp/stable", Ref{Name: "tool", Version: "0.1", User: "corp", Channel: "stable"}},
		{"tool/0.1@corp/stable#deadbeef", Ref{Name: "tool", Version: "0.1", User: "corp", Channel: "stable", Revision: "deadbeef"}},
		{"tool/0.1@corp", Ref{Name: "tool", Version: "0.1", User: "corp"}},
	}
	for _, tt := range tests {
		ref, err := ParseRef(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, ref, tt.in)
		require.Equal(t, tt.in, ref.String(), tt.in)
	}
}

func TestParseRef_Invalid(t *testing.T) {
	for _, in := range []string{"", "zlib", "/1.3", "zlib/", "zlib/1.3@/stable"} {
		_, err := ParseRef(in)
		require.ErrorIs(t, err, ErrInvalidRef, in)
	}
}

func TestRef_WithoutRevision(t *testing.T) {
	ref, err := ParseRef("zlib/1.3@corp/stable#abc12")
	require.NoError(t, err)
	require.Equal(t, "zlib/1.3@corp/stable", ref.WithoutRevision().String())
	// The receiver is untouched.
	require.Equal(t, "abc12", ref.Revision)
}

func TestPackageRef_String(t *testing.T) {
	ref, err := ParseRef("zlib/1.3#abc12")
	require.NoError(t, err)
	pref := PackageRef{Ref: ref, PackageID: "p1"}
	// Package keys never carry the recipe revision.
	require.Equal(t, "zlib/1.3:p1", pref.String())
}

func TestRef_IsZero(t *testing.T) {
	require.True(t, Ref{}.IsZero())
	require.False(t, Ref{Name: "zlib", Version: "1.3"}.IsZero())
}

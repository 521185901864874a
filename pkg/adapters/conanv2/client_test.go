package conanv2

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkgrove/revscan/pkg/graph"
	"github.com/pkgrove/revscan/pkg/remotes"
)

func testRemote(url string) remotes.Remote {
	return remotes.Remote{Name: "test", Kind: remotes.KindConan, URL: url}
}

func TestLatestRecipeRevision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/conans/zlib/1.3/_/_/latest", r.URL.Path)
		fmt.Fprint(w, `{"revision": "abc12", "time": "2024-03-01T10:00:00.000+0000"}`)
	}))
	defer srv.Close()

	c := New()
	rev, err := c.LatestRecipeRevision(context.Background(), graph.Ref{Name: "zlib", Version: "1.3"}, testRemote(srv.URL))
	require.NoError(t, err)
	require.Equal(t, "abc12", rev.Revision)
	require.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), rev.Time.UTC())
}

func TestLatestRecipeRevision_UserChannelInPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/conans/tool/0.1/corp/stable/latest", r.URL.Path)
		fmt.Fprint(w, `{"revision": "r9"}`)
	}))
	defer srv.Close()

	c := New()
	ref := graph.Ref{Name: "tool", Version: "0.1", User: "corp", Channel: "stable"}
	rev, err := c.LatestRecipeRevision(context.Background(), ref, testRemote(srv.URL))
	require.NoError(t, err)
	require.Equal(t, "r9", rev.Revision)
	require.True(t, rev.Time.IsZero())
}

func TestLatestPackageRevision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/conans/zlib/1.3/_/_/revisions/rA/packages/p1/latest", r.URL.Path)
		fmt.Fprint(w, `{"revision": "prev2", "time": "2024-03-01T10:00:00Z"}`)
	}))
	defer srv.Close()

	c := New()
	pref := graph.PackageRef{Ref: graph.Ref{Name: "zlib", Version: "1.3", Revision: "rA"}, PackageID: "p1"}
	rev, err := c.LatestPackageRevision(context.Background(), pref, testRemote(srv.URL))
	require.NoError(t, err)
	require.Equal(t, "prev2", rev.Revision)
}

func TestLatestPackageRevision_RequiresRecipeRevision(t *testing.T) {
	c := New()
	pref := graph.PackageRef{Ref: graph.Ref{Name: "zlib", Version: "1.3"}, PackageID: "p1"}
	_, err := c.LatestPackageRevision(context.Background(), pref, testRemote("http://unused"))
	require.ErrorContains(t, err, "recipe revision required")
}

func TestLatestRecipeRevision_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New()
	_, err := c.LatestRecipeRevision(context.Background(), graph.Ref{Name: "nope", Version: "1.0"}, testRemote(srv.URL))
	require.ErrorIs(t, err, remotes.ErrNotFound)
}

func TestGetJSON_RetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"revision": "r1"}`)
	}))
	defer srv.Close()

	c := New()
	rev, err := c.LatestRecipeRevision(context.Background(), graph.Ref{Name: "zlib", Version: "1.3"}, testRemote(srv.URL))
	require.NoError(t, err)
	require.Equal(t, "r1", rev.Revision)
	require.Equal(t, 3, calls)
}

func TestGetJSON_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"revision": "r1"}`)
	}))
	defer srv.Close()

	remote := testRemote(srv.URL)
	remote.Token = "s3cret"
	c := New()
	_, err := c.LatestRecipeRevision(context.Background(), graph.Ref{Name: "zlib", Version: "1.3"}, remote)
	require.NoError(t, err)
}

func TestSearchVersions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/conans/search", r.URL.Path)
		require.Equal(t, "zlib", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"results": ["zlib/1.2.13", "zlib/1.3", "zlib-ng/2.0"]}`)
	}))
	defer srv.Close()

	c := New()
	refs, err := c.SearchVersions(context.Background(), "zlib", testRemote(srv.URL))
	require.NoError(t, err)
	// Results for other names are dropped.
	require.Equal(t, []graph.Ref{
		{Name: "zlib", Version: "1.2.13"},
		{Name: "zlib", Version: "1.3"},
	}, refs)
}

func TestParseTime(t *testing.T) {
	require.True(t, parseTime("").IsZero())
	require.True(t, parseTime("not a time").IsZero())
	require.False(t, parseTime("2024-03-01T10:00:00Z").IsZero())
	require.False(t, parseTime("2024-03-01T10:00:00.000+0000").IsZero())
	require.False(t, parseTime("2024-03-01 10:00:00 UTC").IsZero())
}

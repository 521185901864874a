// Package conanv2 talks to repositories implementing the v2 revisions REST
// API (conan_server, Artifactory conan repositories).
package conanv2

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pkgrove/revscan/pkg/graph"
	"github.com/pkgrove/revscan/pkg/remotes"
)

const requestTimeout = 30 * time.Second

// client implements remotes.Service over the v2 REST API.
type client struct {
	http *http.Client
}

var _ remotes.Service = (*client)(nil)

// New creates a client with a default HTTP client.
func New() remotes.Service {
	return NewWithHTTPClient(&http.Client{Timeout: requestTimeout})
}

// NewWithHTTPClient creates a client using the given HTTP client.
func NewWithHTTPClient(hc *http.Client) remotes.Service {
	return &client{http: hc}
}

// LatestRecipeRevision implements remotes.RevisionLookup.
func (c *client) LatestRecipeRevision(ctx context.Context, ref graph.Ref, remote remotes.Remote) (*remotes.Revision, error) {
	u := recipeURL(remote, ref) + "/latest"
	return c.fetchLatest(ctx, remote, u)
}

// LatestPackageRevision implements remotes.RevisionLookup.
func (c *client) LatestPackageRevision(ctx context.Context, pref graph.PackageRef, remote remotes.Remote) (*remotes.Revision, error) {
	if pref.Ref.Revision == "" {
		return nil, fmt.Errorf("package lookup for %s: recipe revision required", pref)
	}
	u := fmt.Sprintf("%s/revisions/%s/packages/%s/latest",
		recipeURL(remote, pref.Ref), url.PathEscape(pref.Ref.Revision), url.PathEscape(pref.PackageID))
	return c.fetchLatest(ctx, remote, u)
}

// SearchVersions implements remotes.VersionSearcher.
func (c *client) SearchVersions(ctx context.Context, name string, remote remotes.Remote) ([]graph.Ref, error) {
	u := fmt.Sprintf("%s/v2/conans/search?q=%s", strings.TrimSuffix(remote.URL, "/"), url.QueryEscape(name))
	var doc struct {
		Results []string `json:"results"`
	}
	if err := c.getJSON(ctx, remote, u, &doc); err != nil {
		return nil, err
	}
	var refs []graph.Ref
	for _, result := range doc.Results {
		ref, err := graph.ParseRef(result)
		if err != nil || ref.Name != name {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

type latestDoc struct {
	Revision string `json:"revision"`
	Time     string `json:"time"`
}

func (c *client) fetchLatest(ctx context.Context, remote remotes.Remote, u string) (*remotes.Revision, error) {
	var doc latestDoc
	if err := c.getJSON(ctx, remote, u, &doc); err != nil {
		return nil, err
	}
	if doc.Revision == "" {
		return nil, remotes.ErrNotFound
	}
	return &remotes.Revision{Revision: doc.Revision, Time: parseTime(doc.Time)}, nil
}

// getJSON issues a GET with retry. Transport errors and 5xx responses are
// retried with exponential backoff; 404 maps to remotes.ErrNotFound and
// other 4xx responses fail immediately.
func (c *client) getJSON(ctx context.Context, remote remotes.Remote, u string, out any) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if remote.Token != "" {
			req.Header.Set("Authorization", "Bearer "+remote.Token)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(remotes.ErrNotFound)
		case resp.StatusCode >= 500:
			return fmt.Errorf("remote %s: %s", remote.Name, resp.Status)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("remote %s: %s", remote.Name, resp.Status))
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("remote %s: decoding response: %w", remote.Name, err))
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	return backoff.Retry(op, bo)
}

func recipeURL(remote remotes.Remote, ref graph.Ref) string {
	user, channel := ref.User, ref.Channel
	if user == "" {
		user = "_"
	}
	if channel == "" {
		channel = "_"
	}
	return fmt.Sprintf("%s/v2/conans/%s/%s/%s/%s",
		strings.TrimSuffix(remote.URL, "/"),
		url.PathEscape(ref.Name), url.PathEscape(ref.Version),
		url.PathEscape(user), url.PathEscape(channel))
}

// parseTime accepts the timestamp encodings the API emits. An absent or
// unrecognized value yields the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02 15:04:05 MST",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

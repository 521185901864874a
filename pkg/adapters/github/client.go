// Package github treats a GitHub repository laid out as a recipe index
// (recipes/<name>/<version>/..., with a per-recipe config.yml listing the
// versions) as a remote. The latest commit touching a recipe's directory is
// its recipe revision; an index hosts no binaries, so package revision
// lookups always answer not-found.
package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v2"

	"github.com/pkgrove/revscan/pkg/graph"
	"github.com/pkgrove/revscan/pkg/remotes"
)

// client implements remotes.Service using go-github.
type client struct {
	gh *github.Client
}

var _ remotes.Service = (*client)(nil)

// New creates a recipe-index client. An empty token yields an
// unauthenticated client subject to the public rate limits.
func New(token string) remotes.Service {
	if token == "" {
		return &client{gh: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &client{gh: github.NewClient(oauth2.NewClient(context.Background(), ts))}
}

// LatestRecipeRevision implements remotes.RevisionLookup. The revision is
// the SHA of the newest commit under recipes/<name>, its timestamp the
// commit date.
func (c *client) LatestRecipeRevision(ctx context.Context, ref graph.Ref, remote remotes.Remote) (*remotes.Revision, error) {
	owner, repo, err := parseOwnerAndRepo(remote.URL)
	if err != nil {
		return nil, err
	}
	commits, resp, err := c.gh.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		Path:        recipeDir(ref.Name),
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, remotes.ErrNotFound
		}
		return nil, err
	}
	if len(commits) == 0 {
		return nil, remotes.ErrNotFound
	}
	head := commits[0]
	rev := &remotes.Revision{Revision: head.GetSHA()}
	if commit := head.GetCommit(); commit != nil {
		rev.Time = commit.GetCommitter().GetDate().Time
	}
	return rev, nil
}

// LatestPackageRevision implements remotes.RevisionLookup.
func (c *client) LatestPackageRevision(_ context.Context, _ graph.PackageRef, _ remotes.Remote) (*remotes.Revision, error) {
	return nil, remotes.ErrNotFound
}

// recipeConfig is the per-recipe config.yml of a recipe index.
type recipeConfig struct {
	Versions map[string]struct {
		Folder string `yaml:"folder"`
	} `yaml:"versions"`
}

// SearchVersions implements remotes.VersionSearcher by reading the
// versions listed in recipes/<name>/config.yml.
func (c *client) SearchVersions(ctx context.Context, name string, remote remotes.Remote) ([]graph.Ref, error) {
	owner, repo, err := parseOwnerAndRepo(remote.URL)
	if err != nil {
		return nil, err
	}
	fileContent, _, resp, err := c.gh.Repositories.GetContents(
		ctx, owner, repo, recipeDir(name)+"/config.yml", nil,
	)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, remotes.ErrNotFound
		}
		return nil, err
	}
	if fileContent == nil {
		return nil, remotes.ErrNotFound
	}
	content, err := fileContent.GetContent()
	if err != nil {
		return nil, err
	}
	var cfg recipeConfig
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config.yml for %s: %w", name, err)
	}
	refs := make([]graph.Ref, 0, len(cfg.Versions))
	for version := range cfg.Versions {
		refs = append(refs, graph.Ref{Name: name, Version: version})
	}
	return refs, nil
}

func recipeDir(name string) string {
	return "recipes/" + name
}

// ErrInvalidRepoURL is returned when the remote URL is not a GitHub
// repository URL.
var ErrInvalidRepoURL = fmt.Errorf("invalid github repository URL")

// parseOwnerAndRepo extracts owner and repository from a URL like
// https://github.com/owner/repo[.git].
func parseOwnerAndRepo(rawURL string) (owner, repo string, err error) {
	idx := strings.Index(rawURL, "github.com/")
	if idx == -1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoURL, rawURL)
	}
	rest := strings.TrimSuffix(rawURL[idx+len("github.com/"):], ".git")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoURL, rawURL)
	}
	return parts[0], parts[1], nil
}

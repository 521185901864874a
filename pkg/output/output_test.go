package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkgrove/revscan/pkg/outdated"
)

func sampleReport() *outdated.Report {
	return &outdated.Report{
		Mode: outdated.ModeRecipeRevisions,
		Recipes: map[string]*outdated.Record{
			"lib/1.0#rA": {
				CurrentRevision: "rA",
				LatestRemote:    &outdated.RemoteRevision{Revision: "rB", Remote: "remote2", Time: time.Unix(200, 0)},
				IsOutdated:      true,
			},
			"other/2.0#rX": {
				CurrentRevision: "rX",
			},
		},
		Skipped: []string{"never/0.1"},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReport(), false)
	out := buf.String()

	require.Contains(t, out, "======== Outdated recipe revisions ========")
	require.Contains(t, out, "lib/1.0#rA")
	require.Contains(t, out, "OUTDATED")
	require.Contains(t, out, "Latest in remote:  rB - remote2")
	require.Contains(t, out, "UP-TO-DATE")
	require.Contains(t, out, "No remote answered")
	require.Contains(t, out, "Skipped (no local revision):")
	require.Contains(t, out, "never/0.1")
	require.NotContains(t, out, "\033[")
}

func TestText_Color(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReport(), true)
	require.Contains(t, buf.String(), "\033[31mOUTDATED")
}

func TestText_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, &outdated.Report{Mode: outdated.ModePackageRevisions}, false)
	require.Contains(t, buf.String(), "No package revisions to check in graph")
}

func TestJSON_ReportFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleReport()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "recipe-revisions", doc["mode"])

	recipes, ok := doc["recipes"].(map[string]any)
	require.True(t, ok)
	rec, ok := recipes["lib/1.0#rA"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "rA", rec["current_revision"])
	require.Equal(t, true, rec["is_outdated"])
	latest, ok := rec["latest_remote"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "rB", latest["revision"])
	require.Equal(t, "remote2", latest["remote"])

	skipped, ok := doc["skipped_no_revision"].([]any)
	require.True(t, ok)
	require.Equal(t, []any{"never/0.1"}, skipped)
}

func TestVersionsText(t *testing.T) {
	var buf bytes.Buffer
	VersionsText(&buf, map[string]*outdated.VersionStatus{
		"zlib": {
			CurrentVersions: []string{"zlib/1.2.12"},
			VersionRanges:   []string{">=1.2 <2"},
			LatestRemote:    &outdated.RemoteRef{Ref: "zlib/1.3", Remote: "corp"},
		},
	}, false)
	out := buf.String()
	require.Contains(t, out, "======== Outdated dependencies ========")
	require.Contains(t, out, "Current versions:  zlib/1.2.12")
	require.Contains(t, out, "Latest in remote(s):  zlib/1.3 - corp")
	require.Contains(t, out, "Version ranges: >=1.2 <2")
}

func TestVersionsText_Empty(t *testing.T) {
	var buf bytes.Buffer
	VersionsText(&buf, nil, false)
	require.Contains(t, buf.String(), "No outdated dependencies in graph")
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	require.Equal(t, []string{"a", "b", "c"}, sortedKeys(m))
}

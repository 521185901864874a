// Package output renders check results for terminals and for machines.
// Table rendering uses ASCII and ANSI color codes; colors are dropped when
// stdout is not a TTY or NO_COLOR is set.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/pkgrove/revscan/pkg/outdated"
)

// ANSI color codes.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorGray    = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted:
// os.Stdout is a TTY and NO_COLOR is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// JSON writes the value as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type printer struct {
	w     io.Writer
	color bool
}

func (p printer) line(color, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if p.color {
		s = color + s + colorReset
	}
	fmt.Fprintln(p.w, s)
}

// Text renders a revision report for humans.
func Text(w io.Writer, rep *outdated.Report, color bool) {
	p := printer{w: w, color: color}
	kind := "recipe"
	if rep.Mode == outdated.ModePackageRevisions {
		kind = "package"
	}
	p.line(colorMagenta, "======== Outdated %s revisions ========", kind)

	records := rep.Records()
	if len(records) == 0 && len(rep.Skipped) == 0 {
		p.line(colorYellow, "No %s revisions to check in graph", kind)
		return
	}

	for _, key := range sortedKeys(records) {
		rec := records[key]
		status, statusColor := "UP-TO-DATE", colorGreen
		if rec.IsOutdated {
			status, statusColor = "OUTDATED", colorRed
		}
		p.line(colorYellow, "%s", key)
		p.line(statusColor, "    Status:  %s", status)
		p.line(colorCyan, "    Current revision:  %s", rec.CurrentRevision)
		if rec.LatestRemote != nil {
			p.line(colorCyan, "    Latest in remote:  %s - %s", rec.LatestRemote.Revision, rec.LatestRemote.Remote)
		} else {
			p.line(colorCyan, "    Latest in remote:  No remote answered")
		}
	}

	if len(rep.Skipped) > 0 {
		p.line(colorMagenta, "Skipped (no local revision):")
		for _, key := range rep.Skipped {
			p.line(colorGray, "    %s", key)
		}
	}
}

// VersionsText renders the version-mode result for humans.
func VersionsText(w io.Writer, result map[string]*outdated.VersionStatus, color bool) {
	p := printer{w: w, color: color}
	p.line(colorMagenta, "======== Outdated dependencies ========")

	if len(result) == 0 {
		p.line(colorYellow, "No outdated dependencies in graph")
		return
	}

	for _, name := range sortedKeys(result) {
		status := result[name]
		p.line(colorYellow, "%s", name)
		current := "No version found in cache"
		if len(status.CurrentVersions) > 0 {
			current = strings.Join(status.CurrentVersions, ", ")
		}
		p.line(colorCyan, "    Current versions:  %s", current)
		p.line(colorCyan, "    Latest in remote(s):  %s - %s", status.LatestRemote.Ref, status.LatestRemote.Remote)
		if len(status.VersionRanges) > 0 {
			p.line(colorCyan, "    Version ranges: %s", strings.Join(status.VersionRanges, ", "))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

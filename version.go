// Package multiline is the root of the console input module. It carries the
// release version; the input model lives in package buffer and the Bubble Tea
// prompt in package editor.
package multiline

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release version in SemVer form, without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// BuildInfo returns VersionTag followed by the Go toolchain and VCS revision
// the binary was built with, when the runtime knows them.
func BuildInfo() string {
	parts := []string{VersionTag()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return parts[0]
	}
	parts = append(parts, bi.GoVersion)
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			rev := s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			parts = append(parts, rev)
		}
	}
	return strings.Join(parts, " ")
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

// Version information for the intlc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the build description printed by `intlc version`.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
	GoVersion  string `json:"go_version"`
}

// Current collects the build variables.
func Current() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		GitMessage: GitMessage,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
	}
}

// Pretty renders info for a terminal; major, minor and patch are coloured
// when colorize is set.
func (i Info) Pretty(colorize bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "intlc %s\n", colorVersion(i.Version, colorize))
	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&b, "commit: %s", commit)
		if i.GitMessage != "" {
			fmt.Fprintf(&b, " (%s)", i.GitMessage)
		}
		b.WriteString("\n")
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&b, "built: %s\n", i.BuildDate)
	}
	fmt.Fprintf(&b, "go: %s\n", i.GoVersion)
	return b.String()
}

// JSON renders info as an indented JSON object.
func (i Info) JSON() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}

// colorVersion раскрашивает major.minor.patch, суффикс остаётся как есть.
func colorVersion(v string, colorize bool) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	paint := func(c *color.Color, s string) string {
		if !colorize {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(versionMajorColor, parts[0]) + "." + paint(versionMinorColor, parts[1]) + "." + paint(versionPatchColor, parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

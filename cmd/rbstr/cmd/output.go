package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Colors
var (
	colorAccent = lipgloss.Color("#F59E0B")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
)

// Styles are built per writer so that output to pipes and files stays plain
func errorStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(colorError)
}

func matchStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(colorAccent)
}

func labelStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(colorMuted)
}

// triple is the result of partition and rpartition
type triple struct {
	Before string `json:"before"`
	Match  string `json:"match"`
	After  string `json:"after"`

	highlight bool
}

// versionInfo is printed by the version command
type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func printResult(cmd *cobra.Command, result interface{}) error {
	w := cmd.OutOrStdout()

	if app.output == outputJSON {
		if segments, ok := result.([]string); ok && segments == nil {
			result = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	}

	switch v := result.(type) {
	case []string:
		for _, segment := range v {
			fmt.Fprintln(w, segment)
		}
	case triple:
		if v.highlight {
			fmt.Fprintln(w, v.Before+matchStyle(w).Render(v.Match)+v.After)
			return nil
		}
		fmt.Fprintln(w, v.Before)
		fmt.Fprintln(w, v.Match)
		fmt.Fprintln(w, v.After)
	case versionInfo:
		label := labelStyle(w)
		fmt.Fprintf(w, "rbstr v%s\n", v.Version)
		fmt.Fprintf(w, "  %s %s\n", label.Render("Git Commit:"), v.GitCommit)
		fmt.Fprintf(w, "  %s %s\n", label.Render("Build Date:"), v.BuildDate)
		fmt.Fprintf(w, "  %s %s\n", label.Render("Go Version:"), v.GoVersion)
		fmt.Fprintf(w, "  %s %s\n", label.Render("OS/Arch:   "), v.Platform)
	default:
		fmt.Fprintln(w, v)
	}
	return nil
}

// readSubject returns arg, or stdin without its final line break when arg
// is "-".
func readSubject(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}

	subject := string(data)
	switch {
	case strings.HasSuffix(subject, "\r\n"):
		subject = subject[:len(subject)-2]
	case strings.HasSuffix(subject, "\n"):
		subject = subject[:len(subject)-1]
	}
	return subject, nil
}

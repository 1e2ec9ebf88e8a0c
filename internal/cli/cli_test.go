package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// captureOutput redirects status lines to a buffer for the test's duration.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

const testDashboard = `title = "Fleet <ops>"
layout = 2
theme = "dark"

[[charts]]
id = "trucks"
type = "html"
content = "<p>42 trucks</p>"

[[charts]]
id = "region"
type = "widget_dropdown"
choices = ["north", "south"]

[[charts]]
id = "notes"
type = "markdown"
content = "**ok**"

[[charts]]
id = "extra"
type = "html"
content = "<p>left out</p>"
`

func writeDashboard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.toml")
	if err := os.WriteFile(path, []byte(testDashboard), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"render", "layouts", "themes", "pick", "serve", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("root command missing %q (have %v)", want, names)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fleet.toml", "fleet.html"},
		{"dir/fleet.yaml", "dir/fleet.html"},
		{"fleet", "fleet.html"},
		{"a.b.json", "a.b.html"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input); got != tt.want {
			t.Errorf("outputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	buf := captureOutput(t)
	input := writeDashboard(t)
	output := filepath.Join(filepath.Dir(input), "out.html")

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs([]string{"render", input, "--no-cache", "-o", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	html, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{
		"Fleet &lt;ops&gt;",
		"<p>42 trucks</p>",
		"<strong>ok</strong>",
		"north",
	} {
		if !strings.Contains(string(html), want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(string(html), "left out") {
		t.Error("third plot rendered into a two-slot layout")
	}

	for _, want := range []string{"Dashboard rendered", "layout2", "1 dropped"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("status output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRenderCommandCachedStats(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	input := writeDashboard(t)
	output := filepath.Join(filepath.Dir(input), "out.html")

	var status string
	for range 2 {
		buf := captureOutput(t)
		root := New(&bytes.Buffer{}, LogInfo).RootCommand()
		root.SetArgs([]string{"render", input, "-o", output})
		if err := root.Execute(); err != nil {
			t.Fatalf("render: %v", err)
		}
		status = buf.String()
	}

	for _, want := range []string{"cached", "3 plots", "1 widget", "1 dropped"} {
		if !strings.Contains(status, want) {
			t.Errorf("cached render output missing %q:\n%s", want, status)
		}
	}
	if strings.Contains(status, "0 plots") {
		t.Errorf("cached render reported zero plots:\n%s", status)
	}
}

func TestRenderCommandLayoutOverride(t *testing.T) {
	captureOutput(t)
	input := writeDashboard(t)
	output := filepath.Join(filepath.Dir(input), "out.html")

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"render", input, "--no-cache", "--layout", "3", "-o", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	html, _ := os.ReadFile(output)
	if !strings.Contains(string(html), "left out") {
		t.Error("layout3 should place all three plots")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	captureOutput(t)
	input := writeDashboard(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.toml"), "--no-cache"}},
		{"bad layout", []string{"render", input, "--no-cache", "--layout", "13"}},
		{"unknown theme", []string{"render", input, "--no-cache", "--theme", "neon"}},
		{"bad backend", []string{"render", input, "--cache-backend", "memcached"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(&bytes.Buffer{})
			if err := root.Execute(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	buf := captureOutput(t)

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(buf.String(), appName) {
		t.Error("bash completion does not mention the program name")
	}
}

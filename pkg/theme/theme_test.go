package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range Names() {
		th, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, th.Name)
		}
		if !strings.HasPrefix(th.LayoutHead, "<!DOCTYPE html>") {
			t.Errorf("Lookup(%q).LayoutHead should start with a doctype", name)
		}
		if th.ChartProperties.String(PropBackground) == "" {
			t.Errorf("Lookup(%q) missing %s property", name, PropBackground)
		}
	}
}

func TestLookupEmptyIsDefault(t *testing.T) {
	th, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\") error: %v", err)
	}
	if th.Name != DefaultName {
		t.Errorf("Lookup(\"\").Name = %q, want %q", th.Name, DefaultName)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("neon")
	if !dgerrors.Is(err, dgerrors.ErrCodeInvalidTheme) {
		t.Errorf("Lookup(neon) error = %v, want %s", err, dgerrors.ErrCodeInvalidTheme)
	}
}

func TestLookupReturnsIndependentProperties(t *testing.T) {
	a, _ := Lookup("dark")
	a.ChartProperties[PropColor] = "red"

	b, _ := Lookup("dark")
	if b.ChartProperties.String(PropColor) == "red" {
		t.Error("mutating a looked-up theme leaked into the built-in table")
	}
}

func TestPropertiesClone(t *testing.T) {
	var nilProps Properties
	if c := nilProps.Clone(); c == nil {
		t.Error("Clone of nil should return an empty map")
	}

	p := Properties{"a": 1, "b": "x"}
	c := p.Clone()
	c["a"] = 2
	if p["a"] != 1 {
		t.Error("Clone should not share storage")
	}
	if got := p.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
}

func TestParseExtends(t *testing.T) {
	data := []byte(`
name = "ocean"
extends = "dark"

[chart_properties]
accent = "#00b4d8"
line_width = 2
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if th.Name != "ocean" {
		t.Errorf("Name = %q, want ocean", th.Name)
	}
	if got := th.ChartProperties.String(PropAccent); got != "#00b4d8" {
		t.Errorf("accent = %q, want #00b4d8", got)
	}
	if got := th.ChartProperties.String(PropBackground); got != "#161b22" {
		t.Errorf("background = %q, want inherited #161b22", got)
	}
	if got := th.ChartProperties["line_width"]; got != int64(2) {
		t.Errorf("line_width = %v (%T), want int64 2", got, got)
	}
	dark, _ := Lookup("dark")
	if th.LayoutHead != dark.LayoutHead {
		t.Error("LayoutHead should be inherited when not set")
	}
}

func TestParseOverridesHead(t *testing.T) {
	th, err := Parse([]byte(`layout_head = "<html><body>"`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if th.LayoutHead != "<html><body>" {
		t.Errorf("LayoutHead = %q", th.LayoutHead)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", `name = `},
		{"unknown key", `colour = "red"`},
		{"unknown base", `extends = "neon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunrise.toml")
	if err := os.WriteFile(path, []byte("extends = \"default\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if th.Name != "sunrise" {
		t.Errorf("Name = %q, want file base name sunrise", th.Name)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	if !dgerrors.Is(err, dgerrors.ErrCodeFileNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want %s", err, dgerrors.ErrCodeFileNotFound)
	}
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/dashgrid/pkg/layout"
)

func mustVariant(t *testing.T, n int) *layout.Variant {
	t.Helper()
	v, err := layout.Get(n)
	if err != nil {
		t.Fatalf("layout.Get(%d): %v", n, err)
	}
	return v
}

func TestPreview(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "┌───┐\n" +
			"│ 1 │\n" +
			"└───┘"},
		{3, "┌───┬───┐\n" +
			"│   │ 2 │\n" +
			"│ 1 ├───┤\n" +
			"│   │ 3 │\n" +
			"└───┴───┘"},
		{5, "┌───────┐\n" +
			"│   1   │\n" +
			"├───┬───┤\n" +
			"│ 2 │ 3 │\n" +
			"└───┴───┘"},
	}

	for _, tt := range tests {
		if got := preview(mustVariant(t, tt.index), 4, 2); got != tt.want {
			t.Errorf("preview(layout%d) =\n%s\nwant\n%s", tt.index, got, tt.want)
		}
	}
}

func TestPreviewLabelsEverySlot(t *testing.T) {
	for _, v := range layout.All() {
		p := preview(v, 6, 2)
		for k := 1; k <= v.Capacity(); k++ {
			if !strings.Contains(p, string(rune('0'+k))) {
				t.Errorf("preview(%s) missing label %d", v.Name(), k)
			}
		}
	}
}

func TestSizeSummary(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "1600×900"},
		{2, "900×900 ×2"},
		{9, "1200×600, 400×300 ×2, 533×300 ×3"},
		{12, "533×300 ×9"},
	}
	for _, tt := range tests {
		if got := sizeSummary(mustVariant(t, tt.index).Sizes()); got != tt.want {
			t.Errorf("sizeSummary(layout%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestLayoutsCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{"table", []string{"layouts"}, []string{"layout0", "layout12", "533×300 ×9"}, false},
		{"single", []string{"layouts", "4"}, []string{"layout4", "528×528 ×3", "chart3"}, false},
		{"out of range", []string{"layouts", "13"}, nil, true},
		{"not a number", []string{"layouts", "four"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestThemesCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{"list", []string{"themes"}, []string{"default", "dark", "rapids"}, false},
		{"show", []string{"themes", "dark"}, []string{"dark", "background", "#161b22"}, false},
		{"unknown", []string{"themes", "neon"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#fff", true},
		{"#161b22", true},
		{"161b22", false},
		{"#16b22", false},
		{"#gggggg", false},
		{"system-ui", false},
	}
	for _, tt := range tests {
		if got := isHexColor(tt.in); got != tt.want {
			t.Errorf("isHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

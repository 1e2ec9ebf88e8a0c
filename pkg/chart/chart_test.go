package chart

import (
	"testing"

	"github.com/matzehuels/dashgrid/pkg/document"
)

type stub struct {
	typ   string
	frame Frame
}

func (s *stub) Type() string            { return s.typ }
func (s *stub) Frame() *Frame           { return &s.frame }
func (s *stub) View() document.Fragment { return document.Fragment(s.typ) }

func TestClassifyType(t *testing.T) {
	tests := []struct {
		chartType string
		want      Kind
	}{
		{"widget_dropdown", Widget},
		{"multi_select_widget", Widget},
		{"widget", Widget},
		{"datasize_indicator", Widget},
		{"datasize_indicator_v2", Plot},
		{"bar", Plot},
		{"graph", Plot},
		{"Widget", Plot}, // case-sensitive
		{"", Plot},
	}

	for _, tt := range tests {
		if got := ClassifyType(tt.chartType); got != tt.want {
			t.Errorf("ClassifyType(%q) = %v, want %v", tt.chartType, got, tt.want)
		}
	}
}

func TestIsWidget(t *testing.T) {
	if !IsWidget(&stub{typ: "widget_range_slider"}) {
		t.Error("range slider should be a widget")
	}
	if IsWidget(&stub{typ: "markdown"}) {
		t.Error("markdown should be a plot")
	}
}

func TestKindString(t *testing.T) {
	if Widget.String() != "widget" || Plot.String() != "plot" {
		t.Errorf("Kind strings = %q, %q", Widget, Plot)
	}
}

func TestSetInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Put("c", &stub{typ: "bar"})
	s.Put("a", &stub{typ: "widget_dropdown"})
	s.Put("b", &stub{typ: "line"})

	want := []string{"c", "a", "b"}
	got := s.IDs()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}

	var seen []string
	for id := range s.All() {
		seen = append(seen, id)
	}
	if len(seen) != 3 || seen[0] != "c" || seen[2] != "b" {
		t.Errorf("All() order = %v, want %v", seen, want)
	}
}

func TestSetReplaceKeepsPosition(t *testing.T) {
	s := NewSet()
	s.Put("a", &stub{typ: "bar"})
	s.Put("b", &stub{typ: "line"})
	s.Put("a", &stub{typ: "widget_dropdown"})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.IDs()[0] != "a" {
		t.Errorf("replaced id moved: %v", s.IDs())
	}
	c, ok := s.Get("a")
	if !ok || c.Type() != "widget_dropdown" {
		t.Errorf("Get(a) = %v, %v", c, ok)
	}
	if s.Count(Widget) != 1 || s.Count(Plot) != 1 {
		t.Errorf("Count(Widget)=%d Count(Plot)=%d, want 1 and 1", s.Count(Widget), s.Count(Plot))
	}
}

func TestSetOf(t *testing.T) {
	s := NewSet()
	s.Put("p1", &stub{typ: "bar"})
	s.Put("w1", &stub{typ: "widget_dropdown"})
	s.Put("p2", &stub{typ: "line"})
	s.Put("w2", &stub{typ: "datasize_indicator"})

	var plots, widgets []string
	for e := range s.Of(Plot) {
		plots = append(plots, e.ID)
	}
	for e := range s.Of(Widget) {
		widgets = append(widgets, e.ID)
	}
	if len(plots) != 2 || plots[0] != "p1" || plots[1] != "p2" {
		t.Errorf("plots = %v, want [p1 p2]", plots)
	}
	if len(widgets) != 2 || widgets[0] != "w1" || widgets[1] != "w2" {
		t.Errorf("widgets = %v, want [w1 w2]", widgets)
	}
}

func TestSetEarlyBreak(t *testing.T) {
	s := NewSet()
	for _, id := range []string{"a", "b", "c"} {
		s.Put(id, &stub{typ: "bar"})
	}
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Len() != 0 {
		t.Error("nil set should be empty")
	}
	for range s.Entries() {
		t.Error("nil set should yield nothing")
	}
}

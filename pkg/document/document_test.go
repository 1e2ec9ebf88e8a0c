package document

import (
	"strings"
	"testing"

	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

const testText = `<h1>{{.title}}</h1><aside>{{.widgets}}</aside><main>{{.chart1}}|{{.chart2}}</main>`

func newTestDoc() *Document {
	return New(testText, []string{"title", "widgets", "chart1", "chart2"})
}

func TestUnboundAndComplete(t *testing.T) {
	d := newTestDoc()
	if d.Complete() {
		t.Fatal("new document should not be complete")
	}
	if got := d.Unbound(); len(got) != 4 {
		t.Errorf("Unbound() = %v, want 4 slots", got)
	}

	d.Bind("title", Fragment("T"))
	d.Bind("chart2", Empty)
	got := d.Unbound()
	want := []string{"widgets", "chart1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Unbound() = %v, want %v", got, want)
	}

	d.Bind("widgets", NewColumn())
	d.Bind("chart1", nil)
	if !d.Complete() {
		t.Errorf("document should be complete, unbound = %v", d.Unbound())
	}
	if v, _ := d.Value("chart1"); !IsEmpty(v) {
		t.Error("binding nil should bind Empty")
	}
}

func TestRender(t *testing.T) {
	d := newTestDoc()
	col := NewColumn()
	col.Append(Fragment("<select></select>"))
	d.Bind("title", Fragment("<b>Sales</b>"))
	d.Bind("widgets", col)
	d.Bind("chart1", Fragment("<svg></svg>"))
	d.Bind("chart2", Empty)

	out, err := d.Bytes()
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	want := `<h1><b>Sales</b></h1><aside><div class="column"><div class="column-item"><select></select></div></div></aside><main><svg></svg>|</main>`
	if string(out) != want {
		t.Errorf("Render() =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderUnbound(t *testing.T) {
	d := newTestDoc()
	d.Bind("title", Fragment("T"))

	_, err := d.Bytes()
	if !dgerrors.Is(err, dgerrors.ErrCodeUnboundSlot) {
		t.Errorf("Render error = %v, want %s", err, dgerrors.ErrCodeUnboundSlot)
	}
}

func TestRenderUndeclaredReference(t *testing.T) {
	d := New(`{{.chart1}}{{.chart9}}`, []string{"chart1"})
	d.Bind("chart1", Empty)

	_, err := d.Bytes()
	if !dgerrors.Is(err, dgerrors.ErrCodeRender) {
		t.Errorf("Render error = %v, want %s", err, dgerrors.ErrCodeRender)
	}
}

func TestColumnOrder(t *testing.T) {
	col := NewColumn()
	for _, s := range []string{"a", "b", "c"} {
		col.Append(Fragment(s))
	}
	if col.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", col.Len())
	}
	items := col.Items()
	for i, want := range []string{"a", "b", "c"} {
		if string(items[i].HTML()) != want {
			t.Errorf("Items()[%d] = %q, want %q", i, items[i].HTML(), want)
		}
	}
}

func TestDocumentIDsDiffer(t *testing.T) {
	a, b := newTestDoc(), newTestDoc()
	if a.ID() == b.ID() {
		t.Error("documents should get distinct IDs")
	}
	if a.Text() != testText {
		t.Error("Text() should return the template text")
	}
	slots := a.Slots()
	slots[0] = "mutated"
	if a.Slots()[0] != "title" {
		t.Error("Slots() should return a copy")
	}
}

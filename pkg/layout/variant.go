package layout

import (
	"math"
	"strconv"
	"strings"

	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// Reserved slot names shared by every skeleton.
const (
	SlotTitle   = "title"
	SlotWidgets = "widgets"
)

const (
	frameWidth  = 1600 // full grid width in pixels
	frameHeight = 900  // full grid height in pixels
	widgetWidth = 280  // sidebar widget width in pixels
)

// Size is a slot's pixel geometry.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return strconv.Itoa(s.Width) + "×" + strconv.Itoa(s.Height)
}

// Variant is one fixed grid template.
type Variant struct {
	index    int
	areas    [][]int
	slots    []Size
	skeleton string
}

// Index returns the variant number (0-12).
func (v *Variant) Index() int { return v.index }

// Name returns the variant name, e.g. "layout9".
func (v *Variant) Name() string { return "layout" + strconv.Itoa(v.index) }

// Capacity returns the number of plot slots.
func (v *Variant) Capacity() int { return len(v.slots) }

// Slot returns the size of the 1-based slot k.
func (v *Variant) Slot(k int) (Size, bool) {
	if k < 1 || k > len(v.slots) {
		return Size{}, false
	}
	return v.slots[k-1], true
}

// Sizes returns the slot sizes in slot order.
func (v *Variant) Sizes() []Size {
	return append([]Size(nil), v.slots...)
}

// Areas returns the grid as rows of 1-based slot numbers. A slot spanning
// several cells appears in each of them.
func (v *Variant) Areas() [][]int {
	out := make([][]int, len(v.areas))
	for i, row := range v.areas {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Skeleton returns the template text for the grid, without theme header.
func (v *Variant) Skeleton() string { return v.skeleton }

// SlotNames returns every slot the skeleton declares.
func (v *Variant) SlotNames() []string {
	names := []string{SlotTitle, SlotWidgets}
	for k := 1; k <= v.Capacity(); k++ {
		names = append(names, SlotName(k))
	}
	return names
}

// SlotName returns the name of the 1-based plot slot k.
func SlotName(k int) string {
	return "chart" + strconv.Itoa(k)
}

// split divides the frame width evenly, truncating.
func split(n int) int { return frameWidth / n }

// scaled returns base*f truncated toward zero.
func scaled(base int, f float64) int { return int(float64(base) * f) }

// rounded returns frameHeight*f rounded half to even.
func rounded(f float64) int { return int(math.RoundToEven(float64(frameHeight) * f)) }

func repeat(n int, s Size) []Size {
	out := make([]Size, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func concat(parts ...[]Size) []Size {
	var out []Size
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// parseAreas turns rows like "1 1 2" into slot numbers.
func parseAreas(rows []string) [][]int {
	areas := make([][]int, len(rows))
	for i, row := range rows {
		for _, f := range strings.Fields(row) {
			n, err := strconv.Atoi(f)
			if err != nil {
				panic("layout: bad area cell " + strconv.Quote(f))
			}
			areas[i] = append(areas[i], n)
		}
	}
	return areas
}

func newVariant(index int, rows []string, slots []Size) *Variant {
	v := &Variant{index: index, areas: parseAreas(rows), slots: slots}
	v.skeleton = buildSkeleton(v)
	return v
}

var variants = []*Variant{
	newVariant(0, []string{"1"},
		[]Size{{frameWidth, rounded(1.0)}}),
	newVariant(1, []string{"1", "2"},
		[]Size{{frameWidth, rounded(0.66)}, {frameWidth, rounded(0.33)}}),
	newVariant(2, []string{"1 2"},
		repeat(2, Size{900, 900})),
	newVariant(3, []string{"1 2", "1 3"},
		concat([]Size{{900, 900}}, repeat(2, Size{800, 450}))),
	newVariant(4, []string{"1 2 3"},
		repeat(3, Size{scaled(frameWidth, 0.33), scaled(frameWidth, 0.33)})),
	newVariant(5, []string{"1 1", "2 3"},
		concat([]Size{{frameWidth, 600}}, repeat(2, Size{800, 300}))),
	newVariant(6, []string{"1 2", "3 4"},
		repeat(4, Size{800, 450})),
	newVariant(7, []string{"1 1 1", "2 3 4"},
		concat([]Size{{frameWidth, 600}}, repeat(3, Size{split(3), 300}))),
	newVariant(8, []string{"1 1 1 1", "2 3 4 5"},
		concat([]Size{{frameWidth, 600}}, repeat(4, Size{split(4), 300}))),
	newVariant(9, []string{"1 1 2", "1 1 3", "4 5 6"},
		concat([]Size{{1200, 600}}, repeat(2, Size{split(4), 300}), repeat(3, Size{split(3), 300}))),
	newVariant(10, []string{"1 2 3", "4 5 6"},
		repeat(6, Size{split(3), 450})),
	newVariant(11, []string{"1 1 2 2", "3 4 5 6"},
		concat(repeat(2, Size{split(2), 600}), repeat(4, Size{split(4), 300}))),
	newVariant(12, []string{"1 2 3", "4 5 6", "7 8 9"},
		repeat(9, Size{split(3), 300})),
}

// Get returns the variant with index n.
func Get(n int) (*Variant, error) {
	if err := dgerrors.ValidateLayoutIndex(n); err != nil {
		return nil, err
	}
	return variants[n], nil
}

// All returns the thirteen variants in index order.
func All() []*Variant {
	return append([]*Variant(nil), variants...)
}

// Count is the number of layout variants.
func Count() int { return len(variants) }

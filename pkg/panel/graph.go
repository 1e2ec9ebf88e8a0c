package panel

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/document"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// Graph is a panel showing a Graphviz graph. The DOT source is rendered once
// when the panel is built; the SVG scales to the panel size.
type Graph struct {
	themed
	svg []byte
}

func newGraph(ctx context.Context, id string, opts Options) (chart.Chart, error) {
	if opts.Content == "" {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: graph needs DOT content", id)
	}
	svg, err := RenderSVG(ctx, opts.Content)
	if err != nil {
		return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "chart %s: render graph", id)
	}
	return &Graph{themed: newThemed(id, TypeGraph, opts.Title), svg: svg}, nil
}

// View implements chart.Chart.
func (g *Graph) View() document.Fragment { return g.render(template.HTML(g.svg)) }

// SVG returns the rendered graph.
func (g *Graph) SVG() []byte { return g.svg }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return fitViewBox(stripProlog(buf.Bytes())), nil
}

var (
	prologRe  = regexp.MustCompile(`(?s)^.*?(<svg[\s>])`)
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// stripProlog drops the XML declaration and doctype so the SVG can be inlined.
func stripProlog(svg []byte) []byte {
	return prologRe.ReplaceAll(svg, []byte("$1"))
}

// fitViewBox replaces the fixed point size of the root element so the graph
// fills its panel.
func fitViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="100%%" height="100%%" preserveAspectRatio="xMidYMid meet">`, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

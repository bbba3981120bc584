// Package svg renders resolved artboards as SVG documents.
//
// The renderer is a thin collaborator over the layout engine's final-box
// query surface: it walks the tree, asks each leaf's content for an outline
// fitted to the resolved content box, and emits paths. It never influences
// layout.
package svg

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/layout"
	"github.com/grzegorzj/easel/pkg/observability"
	"github.com/grzegorzj/easel/pkg/shapes"
	"github.com/grzegorzj/easel/pkg/textmetrics"
)

// Options configures SVG rendering.
type Options struct {
	// Background fills the artboard, empty for none.
	Background string
	// DebugBoxes outlines every element's border box and content box,
	// for layout debugging.
	DebugBoxes bool
}

// Defaults applied when a shape's style leaves paint attributes empty.
const (
	defaultFill     = "#1d3557"
	defaultTextFill = "#1d1d1d"
)

// Render resolves the artboard and produces a complete SVG document.
func Render(a *layout.Artboard, opts Options) ([]byte, error) {
	formats := []string{"svg"}
	start := time.Now()
	observability.Render().OnRenderStart(formats)

	if err := a.Resolve(); err != nil {
		observability.Render().OnRenderComplete(formats, time.Since(start), err)
		return nil, err
	}

	size := a.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %s %s\" width=\"%s\" height=\"%s\">\n",
		num(size.Width), num(size.Height), num(size.Width), num(size.Height))

	if opts.Background != "" {
		fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=%q/>\n", opts.Background)
	}

	var walkErr error
	a.Walk(func(e *layout.Element) bool {
		if err := renderElement(&buf, e, opts); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	if walkErr != nil {
		observability.Render().OnRenderComplete(formats, time.Since(start), walkErr)
		return nil, walkErr
	}

	buf.WriteString("</svg>\n")
	observability.Render().OnRenderComplete(formats, time.Since(start), nil)
	return buf.Bytes(), nil
}

func renderElement(buf *bytes.Buffer, e *layout.Element, opts Options) error {
	content, err := e.ContentBox()
	if err != nil {
		return err
	}

	switch c := e.Content().(type) {
	case shapes.Shape:
		writePath(buf, e.ID(), c.Path(content), c.Paint())
	case textmetrics.Text:
		writeText(buf, e.ID(), c, content)
	}

	if opts.DebugBoxes {
		border, err := e.BorderBox()
		if err != nil {
			return err
		}
		writeDebugRect(buf, border, "#e63946")
		if content != border {
			writeDebugRect(buf, content, "#457b9d")
		}
	}
	return nil
}

func writePath(buf *bytes.Buffer, id, path string, style shapes.Style) {
	attrs := []string{
		fmt.Sprintf("id=%q", id),
		fmt.Sprintf("d=%q", path),
		fmt.Sprintf("fill=%q", orDefault(style.Fill, defaultFill)),
	}
	if style.Stroke != "" {
		attrs = append(attrs, fmt.Sprintf("stroke=%q", style.Stroke))
		width := style.StrokeWidth
		if width <= 0 {
			width = 1
		}
		attrs = append(attrs, fmt.Sprintf("stroke-width=%q", num(width)))
	}
	if style.Opacity > 0 && style.Opacity < 1 {
		attrs = append(attrs, fmt.Sprintf("opacity=%q", num(style.Opacity)))
	}
	fmt.Fprintf(buf, "  <path %s/>\n", strings.Join(attrs, " "))
}

func writeText(buf *bytes.Buffer, id string, t textmetrics.Text, content geom.Rect) {
	size := t.Options.FontSize
	if size <= 0 {
		size = textmetrics.DefaultFontSize
	}
	// The baseline of the first line sits roughly 0.8em below the box top.
	fmt.Fprintf(buf,
		"  <text id=%q x=%q y=%q font-size=%q fill=%q>%s</text>\n",
		id, num(content.X), num(content.Y+0.8*size), num(size),
		orDefault(t.Fill, defaultTextFill), escape(t.Content))
}

func writeDebugRect(buf *bytes.Buffer, r geom.Rect, color string) {
	fmt.Fprintf(buf,
		"  <rect x=%q y=%q width=%q height=%q fill=\"none\" stroke=%q stroke-width=\"0.5\" stroke-dasharray=\"3 2\"/>\n",
		num(r.X), num(r.Y), num(r.Width), num(r.Height), color)
}

func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

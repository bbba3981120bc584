package scene

import (
	"encoding/json"
	"os"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/layout"
)

// Layout is the serializable result of resolving an artboard: the final-box
// query surface a renderer consumes.
type Layout struct {
	Artboard Frame         `json:"artboard"`
	Elements []ElementInfo `json:"elements"`
}

// Frame describes the artboard's fixed extent.
type Frame struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ElementInfo carries one element's resolved geometry.
type ElementInfo struct {
	ID         string                     `json:"id"`
	Kind       string                     `json:"kind"`
	Parent     string                     `json:"parent,omitempty"`
	BorderBox  geom.Rect                  `json:"border_box"`
	ContentBox geom.Rect                  `json:"content_box"`
	Anchors    map[geom.Anchor]geom.Point `json:"anchors"`
}

// Export resolves the artboard and captures every element's absolute boxes
// and anchors, in depth-first tree order.
func Export(a *layout.Artboard) (Layout, error) {
	if err := a.Resolve(); err != nil {
		return Layout{}, err
	}

	size := a.Size()
	out := Layout{
		Artboard: Frame{ID: a.ID(), Width: size.Width, Height: size.Height},
	}

	var walkErr error
	a.Walk(func(e *layout.Element) bool {
		border, err := e.BorderBox()
		if err != nil {
			walkErr = err
			return false
		}
		content, err := e.ContentBox()
		if err != nil {
			walkErr = err
			return false
		}
		info := ElementInfo{
			ID:         e.ID(),
			Kind:       string(e.Kind()),
			BorderBox:  border,
			ContentBox: content,
			Anchors:    geom.Anchors(border),
		}
		if p := e.Parent(); p != nil {
			info.Parent = p.ID()
		}
		out.Elements = append(out.Elements, info)
		return true
	})
	if walkErr != nil {
		return Layout{}, walkErr
	}
	return out, nil
}

// MarshalLayout renders a layout as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshaling layout")
	}
	return append(data, '\n'), nil
}

// WriteLayoutFile writes a layout as JSON to path.
func WriteLayoutFile(path string, l Layout) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing layout file %s", path)
	}
	return nil
}

// ReadLayoutFile loads a layout previously written by WriteLayoutFile.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "reading layout file %s", path)
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing layout file %s", path)
	}
	return l, nil
}

// Find returns the element info with the given ID, if present.
func (l Layout) Find(id string) (ElementInfo, bool) {
	for _, e := range l.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return ElementInfo{}, false
}

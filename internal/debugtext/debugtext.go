// Package debugtext queues formatted lines at screen positions and draws
// them over a frame.
package debugtext

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type entry struct {
	x, y int
	text string
}

// DebugText collects text until DrawAll. Not safe for concurrent use.
type DebugText struct {
	Color color.Color
	Face  font.Face

	x, y    int
	entries []entry
}

// New returns a DebugText drawing white 7×13 text.
func New() *DebugText {
	return &DebugText{
		Color: color.White,
		Face:  basicfont.Face7x13,
	}
}

// SetPos sets the top-left corner of the next Printf.
func (d *DebugText) SetPos(x, y int) {
	d.x, d.y = x, y
}

// Printf queues a line at the current position. The position then moves
// down one line.
func (d *DebugText) Printf(format string, args ...any) {
	d.entries = append(d.entries, entry{x: d.x, y: d.y, text: fmt.Sprintf(format, args...)})
	d.y += d.Face.Metrics().Height.Ceil()
}

// Lines returns the queued text in order.
func (d *DebugText) Lines() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.text
	}
	return out
}

// DrawAll draws every queued line onto dst and clears the queue.
func (d *DebugText) DrawAll(dst draw.Image) {
	d.Draw(dst)
	d.Reset()
}

// Reset drops every queued line.
func (d *DebugText) Reset() {
	d.entries = d.entries[:0]
}

// Draw draws every queued line onto dst and keeps the queue.
func (d *DebugText) Draw(dst draw.Image) {
	dr := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(d.Color),
		Face: d.Face,
	}
	ascent := d.Face.Metrics().Ascent
	for _, e := range d.entries {
		dr.Dot = fixed.Point26_6{X: fixed.I(e.x), Y: fixed.I(e.y) + ascent}
		dr.DrawString(e.text)
	}
}

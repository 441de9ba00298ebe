package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/void191/v0-game-engine/engine"
)

// terminalView draws a top-down projection of the world onto a tcell screen:
// X maps to columns, Z to rows, with the view centered on the main camera
// when one exists. It is a debug surface, not the render pipeline; meshes
// draw as glyphs picked from their mesh path.
type terminalView struct {
	screen tcell.Screen

	// cellsPerUnit scales world units to terminal cells. Terminal cells are
	// roughly twice as tall as wide, so rows use half the column scale.
	cellsPerUnit float64
}

func newTerminalView(screen tcell.Screen) *terminalView {
	return &terminalView{
		screen:       screen,
		cellsPerUnit: 2.0,
	}
}

func (v *terminalView) draw(snap engine.RenderSnapshot) {
	v.screen.Clear()
	w, h := v.screen.Size()

	var cx, cz float64
	if snap.Main != nil {
		cx = snap.Main.Transform.Position.X
		cz = snap.Main.Transform.Position.Z
	}

	project := func(x, z float64) (int, int) {
		col := w/2 + int((x-cx)*v.cellsPerUnit)
		row := h/2 + int((z-cz)*v.cellsPerUnit/2)
		return col, row
	}

	lightStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, l := range snap.Lights {
		col, row := project(l.Transform.Position.X, l.Transform.Position.Z)
		v.set(col, row, '*', lightStyle)
	}

	meshStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, m := range snap.Meshes {
		col, row := project(m.Transform.Position.X, m.Transform.Position.Z)
		v.set(col, row, meshGlyph(m.Mesh.MeshPath), meshStyle)
	}

	status := fmt.Sprintf(" frame %d  t=%.2fs  meshes=%d ", snap.Frame, snap.Time, len(snap.Meshes))
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, statusStyle)
	}

	v.screen.Show()
}

func (v *terminalView) set(col, row int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if col < 0 || col >= w || row < 0 || row >= h {
		return
	}
	v.screen.SetContent(col, row, r, nil, style)
}

// meshGlyph picks a character by a crude look at the asset name.
func meshGlyph(path string) rune {
	switch {
	case strings.Contains(path, "sphere"), strings.Contains(path, "ball"):
		return 'o'
	case strings.Contains(path, "plane"), strings.Contains(path, "floor"):
		return '.'
	case strings.Contains(path, "cube"), strings.Contains(path, "box"), strings.Contains(path, "crate"):
		return '#'
	}
	return '@'
}

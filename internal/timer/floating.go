package timer

import "devtrack/internal/constants"

// Floating reports whether the timer renders as a detached overlay.
func (e *Engine) Floating() bool { return e.floating }

// FloatingPosition returns the overlay's top-left cell.
func (e *Engine) FloatingPosition() Position { return e.pos }

// SetFloating toggles the detached overlay representation.
func (e *Engine) SetFloating(floating bool) {
	e.floating = floating
}

// SetViewport records the terminal size and re-clamps the overlay so a
// shrinking window never strands it off screen.
func (e *Engine) SetViewport(width, height int) {
	e.viewW = width
	e.viewH = height
	e.pos = e.clamp(e.pos)
}

// SetFloatingPosition moves the overlay, clamped so it stays fully inside
// the viewport.
func (e *Engine) SetFloatingPosition(pos Position) {
	e.pos = e.clamp(pos)
}

// MoveFloating nudges the overlay by (dx, dy) cells.
func (e *Engine) MoveFloating(dx, dy int) {
	e.SetFloatingPosition(Position{X: e.pos.X + dx, Y: e.pos.Y + dy})
}

func (e *Engine) clamp(pos Position) Position {
	maxX := e.viewW - constants.FloatingOverlayWidth
	maxY := e.viewH - constants.FloatingOverlayHeight
	if pos.X > maxX {
		pos.X = maxX
	}
	if pos.Y > maxY {
		pos.Y = maxY
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return pos
}

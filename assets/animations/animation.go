package animations

import "github.com/automoto/pupu/assets/texture"

// Animation plays one row of a sprite sheet.
type Animation struct {
	Sheet         texture.ID
	Row           int
	Frames        int
	TicksPerFrame int
	// Once stops on the last frame instead of looping.
	Once bool

	tick  int
	frame int
	done  bool
}

func NewAnimation(sheet texture.ID, row, frames, ticksPerFrame int) *Animation {
	return &Animation{
		Sheet:         sheet,
		Row:           row,
		Frames:        max(frames, 1),
		TicksPerFrame: max(ticksPerFrame, 1),
	}
}

// NewOneShot is an animation that freezes on its last frame.
func NewOneShot(sheet texture.ID, row, frames, ticksPerFrame int) *Animation {
	a := NewAnimation(sheet, row, frames, ticksPerFrame)
	a.Once = true
	return a
}

// Update advances one game tick.
func (a *Animation) Update() {
	if a.done {
		return
	}
	a.tick++
	if a.tick < a.TicksPerFrame {
		return
	}
	a.tick = 0
	a.frame++
	if a.frame >= a.Frames {
		if a.Once {
			a.frame = a.Frames - 1
			a.done = true
		} else {
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a one-shot animation reached its last frame.
func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.tick = 0
	a.frame = 0
	a.done = false
}

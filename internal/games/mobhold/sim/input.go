package sim

// Keys is the digital 4-way movement state.
type Keys struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Vector returns the normalized movement direction. Opposite keys cancel.
func (k Keys) Vector() Vec2 {
	var v Vec2
	if k.Up {
		v.Y--
	}
	if k.Down {
		v.Y++
	}
	if k.Left {
		v.X--
	}
	if k.Right {
		v.X++
	}
	return v.Normalize()
}

// Pointer is a world-space click-to-move source.
type Pointer struct {
	Active bool // Pressed or held this frame
	Held   bool // Follow continuously while held
	Pos    Vec2
}

// Input is the resolved device state for one frame. When several
// sources are active the stick wins, then keys, then the joystick,
// then the pointer.
type Input struct {
	Stick    Vec2 // Gamepad analog, dead zone already applied
	Keys     Keys
	Joystick Vec2 // Touch joystick, length <= 1
	Pointer  Pointer

	Aim    float64 // Explicit aim angle in radians
	HasAim bool
}

package entity

type InputKind uint8

const (
	InputSelect InputKind = iota
	InputQuit
)

// InputEvent - a single discrete event delivered by a frontend.
type InputEvent struct {
	Kind InputKind
	Pos  Pos
}

func SelectEvent(pos Pos) InputEvent {
	return InputEvent{Kind: InputSelect, Pos: pos}
}

func QuitEvent() InputEvent {
	return InputEvent{Kind: InputQuit}
}

// PendingInput - cells requested during the current tick.
type PendingInput struct {
	pressed [BoardSize][BoardSize]bool
}

func (that *PendingInput) Press(pos Pos) {
	mustBeValid(pos)
	that.pressed[pos.Row][pos.Column] = true
}

// Take - returns the earliest pressed cell in row-major order and clears the record.
func (that *PendingInput) Take() (Pos, bool) {
	defer that.Clear()

	for row := range BoardSize {
		for column := range BoardSize {
			if that.pressed[row][column] {
				return Pos{Row: row, Column: column}, true
			}
		}
	}

	return Pos{}, false
}

func (that *PendingInput) Clear() {
	that.pressed = [BoardSize][BoardSize]bool{}
}

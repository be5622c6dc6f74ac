package frontend

import (
	"image"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TopMargin    = 40
	LeftMargin   = 100
	TileSize     = 120
)

// Sprite sheet clips: a 3x3 grid of 42px squares laid out every 39px.
const (
	clipSize = 42
	clipStep = 39

	ComputerClip = 5
	PlayerClip   = 2
	EmptyClip    = 6
)

const playAgainQuestion = "Do you want to play again?"

var keyCells = map[rune]entity.Pos{
	'q': {Row: 0, Column: 0},
	'w': {Row: 0, Column: 1},
	'e': {Row: 0, Column: 2},
	'a': {Row: 1, Column: 0},
	's': {Row: 1, Column: 1},
	'd': {Row: 1, Column: 2},
	'z': {Row: 2, Column: 0},
	'x': {Row: 2, Column: 1},
	'c': {Row: 2, Column: 2},
}

// CellForKey - the cell bound to a letter key, case insensitive.
func CellForKey(key rune) (entity.Pos, bool) {
	pos, ok := keyCells[toLower(key)]
	return pos, ok
}

// KeyForCell - the letter key bound to a cell.
func KeyForCell(pos entity.Pos) rune {
	for key, cell := range keyCells {
		if cell == pos {
			return key
		}
	}

	return ' '
}

func toLower(key rune) rune {
	if key >= 'A' && key <= 'Z' {
		return key + ('a' - 'A')
	}

	return key
}

// Grid - where the tiles sit on a surface. Units are pixels for the window and character
// cells for the terminal.
type Grid struct {
	Top    int
	Left   int
	Width  int
	Height int
}

func DefaultGrid() Grid {
	return Grid{Top: TopMargin, Left: LeftMargin, Width: TileSize, Height: TileSize}
}

// Origin - the top left corner of a tile.
func (that Grid) Origin(pos entity.Pos) (int, int) {
	return that.Left + pos.Column*that.Width, that.Top + pos.Row*that.Height
}

// CellAt - the tile under a point, if any.
func (that Grid) CellAt(x, y int) (entity.Pos, bool) {
	if x < that.Left || y < that.Top || that.Width <= 0 || that.Height <= 0 {
		return entity.Pos{}, false
	}

	pos := entity.Pos{Row: (y - that.Top) / that.Height, Column: (x - that.Left) / that.Width}
	if !pos.Valid() {
		return entity.Pos{}, false
	}

	return pos, true
}

// Clip - the sprite sheet rectangle of clip n.
func Clip(n int) image.Rectangle {
	x, y := (n%3)*clipStep, (n/3)*clipStep

	return image.Rect(x, y, x+clipSize, y+clipSize)
}

// ClipFor - the sprite clip drawn for a cell.
func ClipFor(cell entity.Cell) int {
	switch cell {
	case entity.ComputerOwned:
		return ComputerClip
	case entity.PlayerOwned:
		return PlayerClip
	default:
		return EmptyClip
	}
}

// GameOverMessage - the text shown when a round ends.
func GameOverMessage(status entity.EndStatus) string {
	var message strings.Builder

	switch status {
	case entity.Draw:
		message.WriteString("The game ended in DRAW")
	case entity.PlayerWins:
		message.WriteString("The game ended with PLAYER winning")
	case entity.ComputerWins:
		message.WriteString("The game ended with COMPUTER winning")
	default:
		return ""
	}

	message.WriteString("\n")
	message.WriteString(playAgainQuestion)

	return message.String()
}

// Frame - the presses of one UI frame, reduced to at most one input event. Quit wins,
// otherwise the earliest selected cell in row-major order.
type Frame struct {
	input entity.PendingInput
	quit  bool
}

// Key - records a letter key press; unbound keys are ignored.
func (that *Frame) Key(key rune) {
	if pos, ok := CellForKey(key); ok {
		that.input.Press(pos)
	}
}

// Click - records a click; points outside the board are ignored.
func (that *Frame) Click(grid Grid, x, y int) {
	if pos, ok := grid.CellAt(x, y); ok {
		that.input.Press(pos)
	}
}

func (that *Frame) Quit() {
	that.quit = true
}

// Event - the single event of the frame, and clears it.
func (that *Frame) Event() (entity.InputEvent, bool) {
	defer that.input.Clear()

	if that.quit {
		that.quit = false
		return entity.QuitEvent(), true
	}

	pos, ok := that.input.Take()
	if !ok {
		return entity.InputEvent{}, false
	}

	return entity.SelectEvent(pos), true
}

// Deliver - hands an event to the session. A select is dropped when the queue is full so
// the UI loop never stalls; a quit waits for room until done is closed. Reports whether
// the event was queued.
func Deliver(events chan<- entity.InputEvent, done <-chan struct{}, event entity.InputEvent) bool {
	if event.Kind == entity.InputQuit {
		select {
		case events <- event:
			return true
		case <-done:
			return false
		}
	}

	select {
	case events <- event:
		return true
	case <-done:
		return false
	default:
		return false
	}
}

package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/frontend"
)

const eventsBuffer = 16

// Tiles are seven characters wide and three lines high, with a one character gap.
var boardGrid = frontend.Grid{Top: 2, Left: 4, Width: 8, Height: 4}

var (
	boardStyle    = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	playerStyle   = boardStyle.Foreground(tcell.ColorNavy).Bold(true)
	computerStyle = boardStyle.Foreground(tcell.ColorMaroon).Bold(true)
	hintStyle     = boardStyle.Foreground(tcell.ColorGray)
	textStyle     = tcell.StyleDefault
)

// Frontend - draws the board in a terminal and turns keys and clicks into input events.
// Run owns the screen; Render and AskPlayAgain may be called from any goroutine.
type Frontend struct {
	logger *slog.Logger
	screen tcell.Screen

	events  chan entity.InputEvent
	answers chan bool
	done    chan struct{}
	stop    sync.Once

	mu      sync.Mutex
	board   entity.Board
	status  entity.EndStatus
	message string
	pressed tcell.ButtonMask
}

func New(logger *slog.Logger, screen tcell.Screen) (*Frontend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	screen.SetStyle(textStyle)
	screen.EnableMouse()
	screen.HideCursor()

	return &Frontend{
		logger: logger.With("component", "terminal"),
		screen: screen,

		events:  make(chan entity.InputEvent, eventsBuffer),
		answers: make(chan bool, 1),
		done:    make(chan struct{}),
	}, nil
}

func (that *Frontend) Events() <-chan entity.InputEvent {
	return that.events
}

// Render - stores the board and asks the UI loop to redraw it.
func (that *Frontend) Render(board entity.Board, status entity.EndStatus) {
	that.mu.Lock()
	that.board = board
	that.status = status
	that.mu.Unlock()

	that.redraw()
}

// AskPlayAgain - shows the game over message and waits for Enter (yes) or Esc (no).
func (that *Frontend) AskPlayAgain(ctx context.Context, status entity.EndStatus) (bool, error) {
	select {
	case <-that.answers:
	default:
	}

	that.setMessage(frontend.GameOverMessage(status))
	defer that.setMessage("")

	select {
	case answer := <-that.answers:
		return answer, nil
	case <-that.done:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Run - polls the screen until Stop is called or the context is canceled.
func (that *Frontend) Run(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			that.Stop()
		case <-that.done:
		}
	}()

	that.draw()

	for {
		event := that.screen.PollEvent()
		if event == nil {
			return nil
		}

		that.handle(event)
	}
}

// Stop - releases the terminal. Safe to call more than once.
func (that *Frontend) Stop() {
	that.stop.Do(func() {
		close(that.done)
		that.screen.Fini()
	})
}

func (that *Frontend) handle(event tcell.Event) {
	switch ev := event.(type) {
	case *tcell.EventInterrupt:
		that.draw()
	case *tcell.EventResize:
		that.screen.Sync()
		that.draw()
	case *tcell.EventKey:
		that.handleKey(ev)
	case *tcell.EventMouse:
		that.handleMouse(ev)
	}
}

func (that *Frontend) handleKey(ev *tcell.EventKey) {
	if that.asking() {
		switch ev.Key() {
		case tcell.KeyEnter:
			that.answer(true)
		case tcell.KeyEscape, tcell.KeyCtrlC:
			that.answer(false)
		}

		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		that.send(entity.QuitEvent())
	case tcell.KeyRune:
		if pos, ok := frontend.CellForKey(ev.Rune()); ok {
			that.send(entity.SelectEvent(pos))
		}
	}
}

// handleMouse - a click selects the tile under the pointer on the button press only.
func (that *Frontend) handleMouse(ev *tcell.EventMouse) {
	that.mu.Lock()
	previous := that.pressed
	that.pressed = ev.Buttons()
	that.mu.Unlock()

	if ev.Buttons()&tcell.Button1 == 0 || previous&tcell.Button1 != 0 || that.asking() {
		return
	}

	x, y := ev.Position()
	if pos, ok := tileAt(x, y); ok {
		that.send(entity.SelectEvent(pos))
	}
}

// tileAt - like Grid.CellAt but the gap between tiles selects nothing.
func tileAt(x, y int) (entity.Pos, bool) {
	pos, ok := boardGrid.CellAt(x, y)
	if !ok {
		return entity.Pos{}, false
	}

	left, top := boardGrid.Origin(pos)
	if x-left >= boardGrid.Width-1 || y-top >= boardGrid.Height-1 {
		return entity.Pos{}, false
	}

	return pos, true
}

func (that *Frontend) send(event entity.InputEvent) {
	if !frontend.Deliver(that.events, that.done, event) {
		that.logger.Debug("input dropped", "kind", event.Kind)
	}
}

// answer - hands the choice to AskPlayAgain and closes the dialog so that further keys
// go back to the board.
func (that *Frontend) answer(yes bool) {
	that.mu.Lock()
	that.message = ""
	that.mu.Unlock()

	select {
	case that.answers <- yes:
	default:
	}

	that.draw()
}

func (that *Frontend) asking() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.message != ""
}

func (that *Frontend) setMessage(message string) {
	that.mu.Lock()
	that.message = message
	that.mu.Unlock()

	that.redraw()
}

func (that *Frontend) redraw() {
	if err := that.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		that.logger.Debug("redraw dropped", "error", err)
	}
}

func (that *Frontend) draw() {
	that.mu.Lock()
	board, status, message := that.board, that.status, that.message
	that.mu.Unlock()

	that.screen.Clear()
	drawBoard(that.screen, board)
	drawStatus(that.screen, status, message)
	that.screen.Show()
}

func drawBoard(screen tcell.Screen, board entity.Board) {
	for row := range entity.BoardSize {
		for column := range entity.BoardSize {
			pos := entity.Pos{Row: row, Column: column}
			left, top := boardGrid.Origin(pos)

			for y := top; y < top+boardGrid.Height-1; y++ {
				for x := left; x < left+boardGrid.Width-1; x++ {
					screen.SetContent(x, y, ' ', nil, boardStyle)
				}
			}

			glyph, style := tileGlyph(board.At(pos), pos)
			screen.SetContent(left+(boardGrid.Width-1)/2, top+(boardGrid.Height-1)/2, glyph, nil, style)
		}
	}
}

func tileGlyph(cell entity.Cell, pos entity.Pos) (rune, tcell.Style) {
	switch cell {
	case entity.PlayerOwned:
		return 'X', playerStyle
	case entity.ComputerOwned:
		return 'O', computerStyle
	default:
		return frontend.KeyForCell(pos), hintStyle
	}
}

func drawStatus(screen tcell.Screen, status entity.EndStatus, message string) {
	_, top := boardGrid.Origin(entity.Pos{Row: entity.BoardSize})
	left := boardGrid.Left

	if message == "" {
		drawText(screen, left, top+1, textStyle, "q w e / a s d / z x c to play, Esc to quit")
		return
	}

	lines := strings.Split(message, "\n")
	lines = append(lines, "[Enter] yes   [Esc] no")

	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}

	style := textStyle.Reverse(true)
	for i, line := range lines {
		padded := runewidth.FillRight(line, width)
		drawText(screen, left, top+1+i, style, " "+padded+" ")
	}

	if status.IsFinished() {
		drawText(screen, left, top+2+len(lines), textStyle.Dim(true), "round result: "+status.String())
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

//go:build ebiten

package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/frontend"
)

const (
	eventsBuffer = 16
	sheetSize    = 120
	debugLine    = 16
)

var (
	background    = color.White
	tileColor     = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	borderColor   = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	playerColor   = color.RGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff}
	computerColor = color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
	dialogColor   = color.RGBA{A: 0xc0}
)

var letterKeys = map[ebiten.Key]rune{
	ebiten.KeyQ: 'q', ebiten.KeyW: 'w', ebiten.KeyE: 'e',
	ebiten.KeyA: 'a', ebiten.KeyS: 's', ebiten.KeyD: 'd',
	ebiten.KeyZ: 'z', ebiten.KeyX: 'x', ebiten.KeyC: 'c',
}

// Frontend - an ebiten window drawing the board from a generated sprite sheet. Update and
// Draw run on the ebiten loop; Render and AskPlayAgain may be called from any goroutine.
type Frontend struct {
	logger *slog.Logger
	opts   Options
	sheet  *ebiten.Image

	events  chan entity.InputEvent
	answers chan bool
	done    chan struct{}
	stop    sync.Once

	mu      sync.Mutex
	board   entity.Board
	status  entity.EndStatus
	message string
}

func New(logger *slog.Logger, opts Options) (*Frontend, error) {
	return &Frontend{
		logger: logger.With("component", "window"),
		opts:   opts,

		events:  make(chan entity.InputEvent, eventsBuffer),
		answers: make(chan bool, 1),
		done:    make(chan struct{}),
	}, nil
}

func (that *Frontend) Events() <-chan entity.InputEvent {
	return that.events
}

func (that *Frontend) Render(board entity.Board, status entity.EndStatus) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board = board
	that.status = status
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

// Run - opens the window and blocks until it is closed, Stop is called or the context is
// canceled. Must be called from the main goroutine.
func (that *Frontend) Run(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			that.Stop()
		case <-that.done:
		}
	}()

	ebiten.SetWindowTitle(that.opts.Title)
	ebiten.SetWindowSize(that.opts.Width, that.opts.Height)
	ebiten.SetTPS(that.opts.TPS)

	err := ebiten.RunGame(that)
	that.Stop()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}

	return nil
}

func (that *Frontend) Stop() {
	that.stop.Do(func() {
		close(that.done)
	})
}

func (that *Frontend) Update() error {
	select {
	case <-that.done:
		return ebiten.Termination
	default:
	}

	if that.asking() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			that.answer(true)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			that.answer(false)
		}

		return nil
	}

	var frame frontend.Frame

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		frame.Quit()
	}

	for key, letter := range letterKeys {
		if inpututil.IsKeyJustPressed(key) {
			frame.Key(letter)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(that.opts.Grid, x, y)
	}

	if event, ok := frame.Event(); ok {
		that.send(event)
	}

	return nil
}

func (that *Frontend) Draw(screen *ebiten.Image) {
	if that.sheet == nil {
		that.sheet = newSpriteSheet()
	}

	that.mu.Lock()
	board, message := that.board, that.message
	that.mu.Unlock()

	screen.Fill(background)

	grid := that.opts.Grid
	for row := range entity.BoardSize {
		for column := range entity.BoardSize {
			pos := entity.Pos{Row: row, Column: column}
			x, y := grid.Origin(pos)

			clip := that.sheet.SubImage(frontend.Clip(frontend.ClipFor(board.At(pos)))).(*ebiten.Image)
			bounds := clip.Bounds()

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(grid.Width)/float64(bounds.Dx()), float64(grid.Height)/float64(bounds.Dy()))
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(clip, op)
		}
	}

	if message != "" {
		that.drawDialog(screen, message)
	}
}

func (that *Frontend) drawDialog(screen *ebiten.Image, message string) {
	lines := strings.Split(message, "\n")
	lines = append(lines, "[Enter] yes   [Esc] no")

	height := float32(len(lines)*debugLine + debugLine)
	top := float32(that.opts.Height)/2 - height/2

	vector.DrawFilledRect(screen, 0, top, float32(that.opts.Width), height, dialogColor, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, debugLine, int(top)+debugLine/2+i*debugLine)
	}
}

func (that *Frontend) Layout(_, _ int) (int, int) {
	return that.opts.Width, that.opts.Height
}

func (that *Frontend) send(event entity.InputEvent) {
	if !frontend.Deliver(that.events, that.done, event) {
		that.logger.Debug("input dropped", "kind", event.Kind)
	}
}

func (that *Frontend) answer(yes bool) {
	that.setMessage("")

	select {
	case that.answers <- yes:
	default:
	}
}

func (that *Frontend) asking() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.message != ""
}

func (that *Frontend) setMessage(message string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.message = message
}

// newSpriteSheet - draws the player, computer and empty tiles into their clips.
func newSpriteSheet() *ebiten.Image {
	sheet := ebiten.NewImage(sheetSize, sheetSize)

	drawEmptyClip(sheet.SubImage(frontend.Clip(frontend.EmptyClip)).(*ebiten.Image))
	drawPlayerClip(sheet.SubImage(frontend.Clip(frontend.PlayerClip)).(*ebiten.Image))
	drawComputerClip(sheet.SubImage(frontend.Clip(frontend.ComputerClip)).(*ebiten.Image))

	return sheet
}

func drawEmptyClip(clip *ebiten.Image) {
	b := clip.Bounds()
	x, y, w, h := float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy())

	vector.DrawFilledRect(clip, x, y, w, h, tileColor, false)
	vector.StrokeRect(clip, x+1, y+1, w-2, h-2, 2, borderColor, false)
}

func drawPlayerClip(clip *ebiten.Image) {
	drawEmptyClip(clip)

	b := clip.Bounds()
	x0, y0, x1, y1 := float32(b.Min.X)+8, float32(b.Min.Y)+8, float32(b.Max.X)-8, float32(b.Max.Y)-8

	vector.StrokeLine(clip, x0, y0, x1, y1, 4, playerColor, true)
	vector.StrokeLine(clip, x0, y1, x1, y0, 4, playerColor, true)
}

func drawComputerClip(clip *ebiten.Image) {
	drawEmptyClip(clip)

	b := clip.Bounds()
	cx, cy := float32(b.Min.X+b.Max.X)/2, float32(b.Min.Y+b.Max.Y)/2

	vector.StrokeCircle(clip, cx, cy, float32(b.Dx())/2-8, 4, computerColor, true)
}

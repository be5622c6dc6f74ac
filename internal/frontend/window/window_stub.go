//go:build !ebiten

package window

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Frontend - placeholder for builds without the ebiten tag.
type Frontend struct{}

func New(_ *slog.Logger, _ Options) (*Frontend, error) {
	return nil, apperror.ErrFrontendUnavailable
}

func (that *Frontend) Events() <-chan entity.InputEvent {
	return nil
}

func (that *Frontend) Render(_ entity.Board, _ entity.EndStatus) {}

func (that *Frontend) AskPlayAgain(_ context.Context, _ entity.EndStatus) (bool, error) {
	return false, apperror.ErrFrontendUnavailable
}

func (that *Frontend) Run(_ context.Context) error {
	return apperror.ErrFrontendUnavailable
}

func (that *Frontend) Stop() {}

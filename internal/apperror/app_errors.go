package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrInvalidCell         = errors.New("invalid cell index")
	ErrNoFreeCells         = errors.New("no free cells left")
	ErrUnknownFrontend     = errors.New("unknown frontend")
	ErrFrontendUnavailable = errors.New("frontend is not available in this build")
)

package pkg

import "github.com/google/uuid"

// GenerateRoundID - returns a new identifier for a round, used to correlate log lines.
func GenerateRoundID() string {
	return uuid.NewString()
}

package adapters

import (
	"time"

	"github.com/contacomigo/backend/internal/application/adapter"
)

type systemClock struct{}

// NewSystemClock returns the wall clock.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Package clock abstracts wall-clock reads so jobs and services can be
// driven by a fixed time in tests.
package clock

import (
	"time"

	"go.uber.org/fx"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fixed always reports the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }

var Module = fx.Module("clock",
	fx.Provide(func() Clock { return SystemClock{} }),
)

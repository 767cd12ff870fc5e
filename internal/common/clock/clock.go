package clock

import (
	"time"

	"github.com/f4hy/blightedisland/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/f4hy/blightedisland/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Today returns the calendar day c reports in its local zone
func Today(c Clock) models.Date {
	return models.DateOf(c.Now())
}

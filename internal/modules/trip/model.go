// README: Trip record and module errors.
package trip

import (
	"errors"
	"time"
)

// Trip is a saved generation request. Dates are stored as the caller
// supplied them; parsing/normalization is the generation core's concern.
type Trip struct {
	ID          string
	UserID      string
	Destination string
	Travelers   int
	StartDate   string
	EndDate     string
	Preferences string
	Budget      string
	TravelWith  string
	CreatedAt   time.Time
}

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("bad request")
)

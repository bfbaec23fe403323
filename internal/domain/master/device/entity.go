package device

import "time"

// Device is a registered punch source, either a physical terminal or a
// mobile client identity. Punches referencing an inactive device are
// recorded as pending rather than approved.
type Device struct {
	ID         string
	Name       string
	Location   string
	SerialNo   *string
	IsActive   bool
	LastSeenAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

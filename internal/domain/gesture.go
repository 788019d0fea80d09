package domain

import "time"

// GestureSession is an in-flight drag or resize started by a manager.
// Booking holds the snapshot taken when the gesture began; the commit
// re-validates against fresh data, never against this copy alone.
type GestureSession struct {
	ID         string
	UserID     int64
	PropertyID int64
	Kind       string
	Booking    Booking
	StartedAt  time.Time
}

package domain

import "time"

// Room represents an allocatable room (or room type) of a property.
// Conflict detection keys on the room ID only; TotalUnits is informational.
type Room struct {
	ID            int64
	PropertyID    int64
	Name          string
	TotalUnits    int
	IsActive      bool
	MinStayNights int // 0 = no minimum
	MaxStayNights int // 0 = no maximum
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasMinStay returns true if the room enforces a minimum stay
func (r *Room) HasMinStay() bool {
	return r.MinStayNights > 0
}

// HasMaxStay returns true if the room enforces a maximum stay
func (r *Room) HasMaxStay() bool {
	return r.MaxStayNights > 0
}

// FindRoom returns the room with the given ID from a snapshot, or nil
func FindRoom(rooms []*Room, id int64) *Room {
	for _, r := range rooms {
		if r != nil && r.ID == id {
			return r
		}
	}
	return nil
}

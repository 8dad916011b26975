package program

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Program is a live instance of a mesocycle template for one user:
// the template it was built from plus the current (week, day) cursor
// and the deload override flag. Exactly one active program per user;
// old programs are archived, never deleted, so workout history keeps
// a valid reference.
type Program struct {
	ID             int       `json:"id"`
	UserID         int       `json:"-"`
	TemplateID     int       `json:"templateId"`
	Name           string    `json:"name"`
	Status         Status    `json:"status"`
	CurrentWeek    int       `json:"currentWeek"`
	CurrentDay     int       `json:"currentDay"`
	DeloadOverride bool      `json:"deloadOverride"`
	CreatedAt      time.Time `json:"createdAt"`
}

// IsDeload derives the deload state: either the cursor sits on the
// template's deload week, or the user forced deload entry.
func (p *Program) IsDeload(deloadWeekIndex int) bool {
	return p.DeloadOverride || p.CurrentWeek == deloadWeekIndex
}

// Slot is the per-program occupant of a template slot: the chosen
// exercise and its measured ten-rep-max baseline. The template's key,
// label and default set count are denormalized in so planning a day
// needs no template round trip.
type Slot struct {
	ProgramID    int      `json:"programId"`
	DayIndex     int      `json:"dayIndex"`
	SlotIndex    int      `json:"slotIndex"`
	SlotKey      string   `json:"slotKey"`
	SlotLabel    string   `json:"slotLabel"`
	DefaultSets  int      `json:"defaultSets"`
	ExerciseName string   `json:"exerciseName"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	TenRmWeight  *float64 `json:"tenRmWeight,omitempty"`
	TenRmUnit    string   `json:"tenRmUnit,omitempty"`
}

type Direction string

const (
	DirectionNextDay  Direction = "next-day"
	DirectionPrevDay  Direction = "prev-day"
	DirectionNextWeek Direction = "next-week"
	DirectionPrevWeek Direction = "prev-week"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionNextDay, DirectionPrevDay, DirectionNextWeek, DirectionPrevWeek:
		return true
	default:
		return false
	}
}

type Cursor struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

// AdvanceCursor moves the cursor one step in the given direction within
// a weekCount x dayCount grid. Day steps wrap into the neighboring week;
// week never leaves [1, weekCount].
func AdvanceCursor(c Cursor, direction Direction, weekCount, dayCount int) Cursor {
	switch direction {
	case DirectionNextDay:
		c.Day++
		if c.Day > dayCount {
			c.Day = 1
			c.Week++
		}
	case DirectionPrevDay:
		c.Day--
		if c.Day < 1 {
			c.Day = dayCount
			c.Week--
		}
	case DirectionNextWeek:
		c.Week++
	case DirectionPrevWeek:
		c.Week--
	}
	return ClampCursor(c, weekCount, dayCount)
}

// ClampCursor forces the cursor back into the valid grid. Applied after
// every transition and to direct cursor writes.
func ClampCursor(c Cursor, weekCount, dayCount int) Cursor {
	if c.Week < 1 {
		c.Week = 1
	}
	if c.Week > weekCount {
		c.Week = weekCount
	}
	if c.Day < 1 {
		c.Day = 1
	}
	if c.Day > dayCount {
		c.Day = dayCount
	}
	return c
}

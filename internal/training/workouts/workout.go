package workouts

import (
	"time"

	"github.com/dkovacevic/trainhub/internal/training/planning"
)

// Workout is one calendar day of training, at most one per user per
// date. The program cursor and deload state are captured once at
// creation time; later program changes never rewrite what a past
// workout meant.
type Workout struct {
	ID         int                   `json:"id"`
	UserID     int                   `json:"-"`
	EntryDate  time.Time             `json:"entryDate"`
	ProgramID  *int                  `json:"programId,omitempty"`
	WeekIndex  int                   `json:"weekIndex"`
	DayIndex   int                   `json:"dayIndex"`
	IsDeload   bool                  `json:"isDeload"`
	DeloadMode *planning.DeloadPhase `json:"deloadMode,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// SlotInstance is one versioned occupant of a program slot within a
// workout. Swapping the exercise mid-workout appends instance N+1 and
// leaves every earlier instance and its sets untouched. Recompute may
// overwrite PlannedWeight, nothing else.
type SlotInstance struct {
	ID             int        `json:"id"`
	WorkoutID      int        `json:"workoutId"`
	UserID         int        `json:"-"`
	SlotIndex      int        `json:"slotIndex"`
	SlotInstance   int        `json:"slotInstance"`
	SlotKey        string     `json:"slotKey"`
	ExerciseName   string     `json:"exerciseName"`
	PlannedSets    int        `json:"plannedSets"`
	PlannedRepGoal string     `json:"plannedRepGoal"`
	PlannedWeight  *float64   `json:"plannedWeight,omitempty"`
	Rating         *int       `json:"rating,omitempty"`
	Note           string     `json:"note,omitempty"`
	Sets           []SetEntry `json:"sets"`
}

// SetEntry is a single logged set. All performance fields are optional,
// a row can hold a plan before any weight was lifted.
type SetEntry struct {
	ID             int      `json:"id"`
	SlotInstanceID int      `json:"slotInstanceId"`
	UserID         int      `json:"-"`
	SetIndex       int      `json:"setIndex"`
	Weight         *float64 `json:"weight,omitempty"`
	Reps           *int     `json:"reps,omitempty"`
	RIR            *float64 `json:"rir,omitempty"`
	IsWarmup       bool     `json:"isWarmup"`
}

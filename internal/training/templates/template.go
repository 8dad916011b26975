package templates

// Template is an immutable mesocycle blueprint: a grid of weeks x days,
// with an ordered list of exercise slots per day. Programs are created
// from a template and carry their own per-slot overrides.
type Template struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	DayCount        int            `json:"dayCount"`
	WeekCount       int            `json:"weekCount"`
	DeloadWeekIndex int            `json:"deloadWeekIndex"`
	RepGoalByWeek   map[int]string `json:"repGoalByWeek"`
	Slots           []Slot         `json:"slots,omitempty"`
}

// Slot is a named exercise position within a training day,
// e.g. day 2, position 1, "quads".
type Slot struct {
	DayIndex    int    `json:"dayIndex"`
	SlotIndex   int    `json:"slotIndex"`
	SlotKey     string `json:"slotKey"`
	SlotLabel   string `json:"slotLabel"`
	DefaultSets int    `json:"defaultSets"`
}

// RepGoalFor returns the planned rep goal for the given week. Deload
// workouts get the literal "deload" goal regardless of the week. A week
// without a configured goal yields an empty string, which downstream
// weight projection treats as the default effort target.
func (t *Template) RepGoalFor(week int, isDeload bool) string {
	if isDeload {
		return "deload"
	}
	return t.RepGoalByWeek[week]
}

// SlotsForDay returns the template slots of one day, in slot order.
func (t *Template) SlotsForDay(dayIndex int) []Slot {
	var slots []Slot
	for _, s := range t.Slots {
		if s.DayIndex == dayIndex {
			slots = append(slots, s)
		}
	}
	return slots
}

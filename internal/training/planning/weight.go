package planning

import (
	"math"
	"strconv"
	"strings"
)

// DeloadPhase - within a deload week, the first days only halve the
// training weight, the later days halve the planned set count too
type DeloadPhase string

const (
	DeloadPhaseHalfWeight           DeloadPhase = "half_weight"
	DeloadPhaseHalfWeightHalfVolume DeloadPhase = "half_weight_half_volume"
)

func (p DeloadPhase) String() string {
	return string(p)
}

func (p DeloadPhase) IsValid() bool {
	switch p {
	case DeloadPhaseHalfWeight, DeloadPhaseHalfWeightHalfVolume:
		return true
	default:
		return false
	}
}

// RepGoalDeload is the planned rep goal recorded on slot instances
// created during a deload
const RepGoalDeload = "deload"

const (
	defaultRIR = 2
	maxRIR     = 6

	// the strength baseline is a ten-rep-max, so failure at baseline
	// intensity is assumed at exactly 10 reps
	baselineReps = 10

	// Epley: 1RM = w * (1 + reps/30)
	epleyDivisor = 30.0

	halfWeightFactor = 0.5

	plateIncrementLb = 2.5
	plateIncrementKg = 1.0
)

// DeriveDeloadPhase maps the program day within a deload to its phase.
// Fixed at workout instantiation time, never recomputed afterwards.
func DeriveDeloadPhase(isDeload bool, day int) *DeloadPhase {
	if !isDeload {
		return nil
	}
	phase := DeloadPhaseHalfWeightHalfVolume
	if day <= 3 {
		phase = DeloadPhaseHalfWeight
	}
	return &phase
}

// PlannedSets applies the volume half of a deload: in the
// half-weight-half-volume phase set counts are halved (rounded up, min 1)
func PlannedSets(defaultSets int, phase *DeloadPhase) int {
	sets := defaultSets
	if phase != nil && *phase == DeloadPhaseHalfWeightHalfVolume {
		sets = (sets + 1) / 2
	}
	if sets < 1 {
		sets = 1
	}
	return sets
}

// ParseRepGoalRIR extracts the reps-in-reserve target from a rep goal
// string: a leading integer followed by '/' (e.g. "3/fail" -> 3).
// Unparseable goals fall back to the default RIR of 2; the result is
// clamped to [0, 6].
func ParseRepGoalRIR(repGoal string) int {
	rir := defaultRIR
	if lead, _, found := strings.Cut(repGoal, "/"); found {
		if parsed, err := strconv.Atoi(strings.TrimSpace(lead)); err == nil {
			rir = parsed
		}
	}
	if rir < 0 {
		rir = 0
	}
	if rir > maxRIR {
		rir = maxRIR
	}
	return rir
}

// ProjectWeight computes the planned training weight for a slot from a
// measured ten-rep-max. The 10RM is pushed through the Epley relation to
// an estimated 1RM, then the relation is inverted at the target
// reps-to-failure (10 + RIR). Deload phases halve the result before
// rounding to the nearest plate increment.
//
// Returns nil when there is not enough data to plan the slot.
func ProjectWeight(tenRm *float64, unit, repGoal string, phase *DeloadPhase) *float64 {
	if tenRm == nil || *tenRm <= 0 {
		return nil
	}

	repsToFailure := baselineReps + ParseRepGoalRIR(repGoal)

	oneRm := *tenRm * (1 + float64(baselineReps)/epleyDivisor)
	weight := oneRm / (1 + float64(repsToFailure)/epleyDivisor)

	if phase != nil && phase.IsValid() {
		weight *= halfWeightFactor
	}

	weight = roundToPlateIncrement(weight, unit)
	return &weight
}

func roundToPlateIncrement(weight float64, unit string) float64 {
	increment := plateIncrementLb
	if strings.EqualFold(unit, "kg") {
		increment = plateIncrementKg
	}
	return math.Round(weight/increment) * increment
}

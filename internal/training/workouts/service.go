package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkovacevic/trainhub/internal/telemetry/metrics"
	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"
	"github.com/dkovacevic/trainhub/internal/training/planning"
	"github.com/dkovacevic/trainhub/internal/training/program"
	"github.com/dkovacevic/trainhub/internal/training/templates"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

// ErrNotOwner - the entity exists but belongs to another user.
var ErrNotOwner = errors.New("not the owner")

type workoutsRepo interface {
	GetByDate(ctx context.Context, userID int, date time.Time) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	Create(ctx context.Context, w Workout) (_ *Workout, created bool, err error)
	SeedSlotInstance(ctx context.Context, si SlotInstance) error
	AddSlotInstance(ctx context.Context, si SlotInstance) (*SlotInstance, error)
	MaxSlotInstance(ctx context.Context, workoutID, slotIndex int) (int, error)
	ListSlotInstances(ctx context.Context, workoutID int) ([]SlotInstance, error)
	GetSlotInstance(ctx context.Context, id int) (*SlotInstance, error)
	UpdateSlotInstanceRatingNote(ctx context.Context, id int, rating *int, note *string) error
	UpdatePlannedWeight(ctx context.Context, id int, weight *float64) error
	UpsertSet(ctx context.Context, s SetEntry) (*SetEntry, error)
	GetSet(ctx context.Context, id int) (*SetEntry, error)
	DeleteSet(ctx context.Context, id int) error
}

type programRepo interface {
	GetActive(ctx context.Context, userID int) (*program.Program, error)
	Get(ctx context.Context, id int) (*program.Program, error)
	GetSlots(ctx context.Context, programID, dayIndex int) ([]program.Slot, error)
	GetSlot(ctx context.Context, programID, dayIndex, slotIndex int) (*program.Slot, error)
}

type templatesGetter interface {
	Get(ctx context.Context, id int) (*templates.Template, error)
}

type Service struct {
	repo          workoutsRepo
	programRepo   programRepo
	templatesRepo templatesGetter
	metrics       *metrics.Manager
}

func NewService(
	repo workoutsRepo,
	programRepo programRepo,
	templatesRepo templatesGetter,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:          repo,
		programRepo:   programRepo,
		templatesRepo: templatesRepo,
		metrics:       metricsManager,
	}
}

// WorkoutDetails is a workout with its slot instances and their sets,
// ordered by slot index, instance, set index.
type WorkoutDetails struct {
	Workout       *Workout       `json:"workout"`
	SlotInstances []SlotInstance `json:"slotInstances"`
}

// GetOrCreateWorkout finds the user's workout for the date or creates
// it from the active program's current cursor, seeding one first
// instance per program slot that has an exercise assigned. Safe to call
// repeatedly for the same date.
func (s *Service) GetOrCreateWorkout(ctx context.Context, userID int, date time.Time) (_ *WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	w, err := s.repo.GetByDate(ctx, userID, date)
	switch {
	case err == nil:
		return s.workoutDetails(ctx, w)
	case errors.Is(err, ErrWorkoutNotFound):
		// fall through, instantiate it
	default:
		return nil, err
	}

	w, err = s.instantiateWorkout(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return s.workoutDetails(ctx, w)
}

func (s *Service) instantiateWorkout(ctx context.Context, userID int, date time.Time) (*Workout, error) {
	newWorkout := Workout{
		UserID:    userID,
		EntryDate: date,
	}

	var template *templates.Template
	var activeProgram *program.Program
	var deloadPhase *planning.DeloadPhase

	activeProgram, err := s.programRepo.GetActive(ctx, userID)
	switch {
	case err == nil:
		template, err = s.templatesRepo.Get(ctx, activeProgram.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("get template %d: %w", activeProgram.TemplateID, err)
		}
		isDeload := activeProgram.IsDeload(template.DeloadWeekIndex)
		deloadPhase = planning.DeriveDeloadPhase(isDeload, activeProgram.CurrentDay)

		newWorkout.ProgramID = &activeProgram.ID
		newWorkout.WeekIndex = activeProgram.CurrentWeek
		newWorkout.DayIndex = activeProgram.CurrentDay
		newWorkout.IsDeload = isDeload
		newWorkout.DeloadMode = deloadPhase
	case errors.Is(err, program.ErrNoActiveProgram):
		// a free-form workout, no plan to seed from
		activeProgram = nil
	default:
		return nil, fmt.Errorf("get active program: %w", err)
	}

	w, created, err := s.repo.Create(ctx, newWorkout)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	if !created {
		// another call won the race and did the seeding
		return w, nil
	}

	s.metrics.CounterWorkoutsCreated.Inc()
	log.Debugf("workout %d created for user %d on %s", w.ID, userID, date.Format(time.DateOnly))

	if activeProgram == nil {
		return w, nil
	}

	slots, err := s.programRepo.GetSlots(ctx, activeProgram.ID, w.DayIndex)
	if err != nil {
		return nil, fmt.Errorf("get program slots: %w", err)
	}

	repGoal := template.RepGoalFor(w.WeekIndex, w.IsDeload)
	for _, slot := range slots {
		if slot.ExerciseName == "" {
			continue
		}
		seed := SlotInstance{
			WorkoutID:      w.ID,
			SlotIndex:      slot.SlotIndex,
			SlotInstance:   1,
			SlotKey:        slot.SlotKey,
			ExerciseName:   slot.ExerciseName,
			PlannedSets:    planning.PlannedSets(slot.DefaultSets, deloadPhase),
			PlannedRepGoal: repGoal,
			PlannedWeight:  planning.ProjectWeight(slot.TenRmWeight, slot.TenRmUnit, repGoal, deloadPhase),
		}
		if err := s.repo.SeedSlotInstance(ctx, seed); err != nil {
			return nil, fmt.Errorf("seed slot %d: %w", slot.SlotIndex, err)
		}
	}

	return w, nil
}

func (s *Service) workoutDetails(ctx context.Context, w *Workout) (*WorkoutDetails, error) {
	instances, err := s.repo.ListSlotInstances(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list slot instances: %w", err)
	}
	return &WorkoutDetails{
		Workout:       w,
		SlotInstances: instances,
	}, nil
}

type AssignExerciseParams struct {
	WorkoutID       int
	SlotIndex       int
	SlotKey         string
	ExerciseName    string
	PlannedSetsHint int
}

// AssignExercise puts a new exercise into a workout slot by appending
// instance max+1. Earlier instances and their logged sets stay as they
// are, the slot's history is never rewritten.
func (s *Service) AssignExercise(ctx context.Context, userID int, params AssignExerciseParams) (_ *SlotInstance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.assignexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", params.WorkoutID))
	span.SetAttributes(attribute.Int("slot", params.SlotIndex))

	w, err := s.repo.Get(ctx, params.WorkoutID)
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, ErrNotOwner
	}

	maxInstance, err := s.repo.MaxSlotInstance(ctx, w.ID, params.SlotIndex)
	if err != nil {
		return nil, fmt.Errorf("max slot instance: %w", err)
	}

	newInstance := SlotInstance{
		WorkoutID:    w.ID,
		SlotIndex:    params.SlotIndex,
		SlotInstance: maxInstance + 1,
		SlotKey:      params.SlotKey,
		ExerciseName: params.ExerciseName,
		PlannedSets:  planning.PlannedSets(params.PlannedSetsHint, w.DeloadMode),
	}

	if w.ProgramID != nil {
		repGoal, plannedWeight, err := s.planSlot(ctx, w, params.SlotIndex)
		if err != nil {
			return nil, err
		}
		newInstance.PlannedRepGoal = repGoal
		newInstance.PlannedWeight = plannedWeight
	}

	added, err := s.repo.AddSlotInstance(ctx, newInstance)
	if err != nil {
		return nil, fmt.Errorf("add slot instance: %w", err)
	}

	s.metrics.CounterSlotReassignments.Inc()
	log.Debugf(
		"workout %d slot %d now instance %d: %s",
		w.ID, added.SlotIndex, added.SlotInstance, added.ExerciseName,
	)

	return added, nil
}

// planSlot derives the rep goal and projected weight for a slot from
// the workout's captured cursor and its program's current baseline.
func (s *Service) planSlot(ctx context.Context, w *Workout, slotIndex int) (repGoal string, plannedWeight *float64, err error) {
	p, err := s.programRepo.Get(ctx, *w.ProgramID)
	if err != nil {
		return "", nil, fmt.Errorf("get program %d: %w", *w.ProgramID, err)
	}

	template, err := s.templatesRepo.Get(ctx, p.TemplateID)
	if err != nil {
		return "", nil, fmt.Errorf("get template %d: %w", p.TemplateID, err)
	}
	repGoal = template.RepGoalFor(w.WeekIndex, w.IsDeload)

	slot, err := s.programRepo.GetSlot(ctx, p.ID, w.DayIndex, slotIndex)
	if err != nil {
		if errors.Is(err, program.ErrSlotNotFound) {
			// slot outside the program plan, no baseline to project from
			return repGoal, nil, nil
		}
		return "", nil, fmt.Errorf("get program slot: %w", err)
	}

	return repGoal, planning.ProjectWeight(slot.TenRmWeight, slot.TenRmUnit, repGoal, w.DeloadMode), nil
}

// UpsertSet writes one set row of a slot instance the user owns.
func (s *Service) UpsertSet(ctx context.Context, userID int, set SetEntry) (_ *SetEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.upsertset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("slotinstance.id", set.SlotInstanceID))
	span.SetAttributes(attribute.Int("set", set.SetIndex))

	si, err := s.repo.GetSlotInstance(ctx, set.SlotInstanceID)
	if err != nil {
		return nil, err
	}
	if si.UserID != userID {
		return nil, ErrNotOwner
	}

	saved, err := s.repo.UpsertSet(ctx, set)
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSetUpserts.Inc()
	return saved, nil
}

// DeleteSet removes one set row the user owns. Slot instances are
// append-only; individual set rows are plain user data and can go.
func (s *Service) DeleteSet(ctx context.Context, userID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.deleteset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	set, err := s.repo.GetSet(ctx, setID)
	if err != nil {
		return err
	}
	if set.UserID != userID {
		return ErrNotOwner
	}

	return s.repo.DeleteSet(ctx, setID)
}

// UpdateSlotFeedback sets the user's rating and note on a slot instance.
func (s *Service) UpdateSlotFeedback(ctx context.Context, userID, slotInstanceID int, rating *int, note *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.updateslotfeedback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("slotinstance.id", slotInstanceID))

	si, err := s.repo.GetSlotInstance(ctx, slotInstanceID)
	if err != nil {
		return err
	}
	if si.UserID != userID {
		return ErrNotOwner
	}

	return s.repo.UpdateSlotInstanceRatingNote(ctx, slotInstanceID, rating, note)
}

// Recompute re-projects the planned weight of every slot instance in a
// workout from the program's current baselines and the workout's stored
// deload mode. Logged sets are never touched. Failures on individual
// slots are collected, the rest still update.
func (s *Service) Recompute(ctx context.Context, userID, workoutID int) (updated int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.recompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	w, err := s.repo.Get(ctx, workoutID)
	if err != nil {
		return 0, err
	}
	if w.UserID != userID {
		return 0, ErrNotOwner
	}
	if w.ProgramID == nil {
		return 0, nil
	}

	p, err := s.programRepo.Get(ctx, *w.ProgramID)
	if err != nil {
		return 0, fmt.Errorf("get program %d: %w", *w.ProgramID, err)
	}

	instances, err := s.repo.ListSlotInstances(ctx, workoutID)
	if err != nil {
		return 0, fmt.Errorf("list slot instances: %w", err)
	}

	var errs error
	for _, si := range instances {
		slot, err := s.programRepo.GetSlot(ctx, p.ID, w.DayIndex, si.SlotIndex)
		if err != nil {
			if errors.Is(err, program.ErrSlotNotFound) {
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf("slot %d: %w", si.SlotIndex, err))
			continue
		}

		weight := planning.ProjectWeight(slot.TenRmWeight, slot.TenRmUnit, si.PlannedRepGoal, w.DeloadMode)
		if err := s.repo.UpdatePlannedWeight(ctx, si.ID, weight); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("update slot instance %d: %w", si.ID, err))
			continue
		}
		updated++
	}

	if updated > 0 {
		s.metrics.CounterWeightRecomputes.Inc()
	}
	span.SetAttributes(attribute.Int("updated", updated))

	return updated, errs
}

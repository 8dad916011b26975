package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"
	"github.com/dkovacevic/trainhub/internal/training/planning"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrSlotInstanceNotFound = errors.New("slot instance not found")
	ErrSetNotFound          = errors.New("set not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const workoutColumns = `id, user_id, entry_date, program_id, week_index, day_index, is_deload, deload_mode, created_at`

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	var deloadMode *string
	if err := row.Scan(
		&w.ID, &w.UserID, &w.EntryDate, &w.ProgramID,
		&w.WeekIndex, &w.DayIndex, &w.IsDeload, &deloadMode, &w.CreatedAt,
	); err != nil {
		return nil, err
	}
	if deloadMode != nil {
		w.DeloadMode = planningPhase(*deloadMode)
	}
	return &w, nil
}

func planningPhase(mode string) *planning.DeloadPhase {
	phase := planning.DeloadPhase(mode)
	if !phase.IsValid() {
		return nil
	}
	return &phase
}

// GetByDate returns the user's workout for a calendar date.
func (r *Repo) GetByDate(ctx context.Context, userID int, date time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getbydate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	w, err := scanWorkout(r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE user_id = $1 AND entry_date = $2;`,
		userID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	w, err := scanWorkout(r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE id = $1;`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

// Create inserts the workout for its (user, date) key. A concurrent or
// retried insert hits the unique constraint, does nothing, and the
// existing row is returned instead; created reports which happened.
func (r *Repo) Create(ctx context.Context, w Workout) (_ *Workout, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", w.UserID))
	span.SetAttributes(attribute.String("date", w.EntryDate.Format(time.DateOnly)))

	var deloadMode *string
	if w.DeloadMode != nil {
		mode := w.DeloadMode.String()
		deloadMode = &mode
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout
				(user_id, entry_date, program_id, week_index, day_index, is_deload, deload_mode, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (user_id, entry_date) DO NOTHING
			RETURNING id, created_at;`,
		w.UserID, w.EntryDate, w.ProgramID, w.WeekIndex, w.DayIndex, w.IsDeload, deloadMode,
	).Scan(&w.ID, &w.CreatedAt)
	if err == nil {
		span.SetAttributes(attribute.Int("workout.id", w.ID))
		return &w, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// lost the race, fetch the winner
	existing, err := r.GetByDate(ctx, w.UserID, w.EntryDate)
	if err != nil {
		return nil, false, fmt.Errorf("get workout after conflict: %w", err)
	}
	return existing, false, nil
}

// SeedSlotInstance inserts a first-instance slot row, tolerating
// retried instantiation via the (workout, slot, instance) unique key.
func (r *Repo) SeedSlotInstance(ctx context.Context, si SlotInstance) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.seedslotinstance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", si.WorkoutID))
	span.SetAttributes(attribute.Int("slot", si.SlotIndex))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_slot
				(workout_id, slot_index, slot_instance, slot_key, exercise_name, planned_sets, planned_rep_goal, planned_weight)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (workout_id, slot_index, slot_instance) DO NOTHING;`,
		si.WorkoutID, si.SlotIndex, si.SlotInstance, si.SlotKey,
		si.ExerciseName, si.PlannedSets, si.PlannedRepGoal, si.PlannedWeight,
	)
	return err
}

// AddSlotInstance appends a new slot instance row and returns it.
func (r *Repo) AddSlotInstance(ctx context.Context, si SlotInstance) (_ *SlotInstance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addslotinstance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", si.WorkoutID))
	span.SetAttributes(attribute.Int("slot", si.SlotIndex))
	span.SetAttributes(attribute.Int("instance", si.SlotInstance))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_slot
				(workout_id, slot_index, slot_instance, slot_key, exercise_name, planned_sets, planned_rep_goal, planned_weight)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		si.WorkoutID, si.SlotIndex, si.SlotInstance, si.SlotKey,
		si.ExerciseName, si.PlannedSets, si.PlannedRepGoal, si.PlannedWeight,
	).Scan(&si.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("slotinstance.id", si.ID))
	return &si, nil
}

// MaxSlotInstance returns the highest instance number used so far for
// the slot within a workout, 0 if the slot has no instances yet.
func (r *Repo) MaxSlotInstance(ctx context.Context, workoutID, slotIndex int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.maxslotinstance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))
	span.SetAttributes(attribute.Int("slot", slotIndex))

	var maxInstance int
	err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(MAX(slot_instance), 0) FROM workout_slot WHERE workout_id = $1 AND slot_index = $2;`,
		workoutID, slotIndex,
	).Scan(&maxInstance)
	if err != nil {
		return 0, err
	}
	return maxInstance, nil
}

// ListSlotInstances returns all slot instances of a workout with their
// sets attached, ordered by slot index, then instance, then set index.
func (r *Repo) ListSlotInstances(ctx context.Context, workoutID int) (_ []SlotInstance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listslotinstances")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, slot_index, slot_instance, slot_key, exercise_name, planned_sets, planned_rep_goal, planned_weight, rating, note
			FROM workout_slot
			WHERE workout_id = $1
			ORDER BY slot_index, slot_instance;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var instances []SlotInstance
	for rows.Next() {
		var si SlotInstance
		if err := rows.Scan(
			&si.ID, &si.WorkoutID, &si.SlotIndex, &si.SlotInstance, &si.SlotKey,
			&si.ExerciseName, &si.PlannedSets, &si.PlannedRepGoal, &si.PlannedWeight,
			&si.Rating, &si.Note,
		); err != nil {
			return nil, fmt.Errorf("scan slot instance: %w", err)
		}
		si.Sets = make([]SetEntry, 0)
		instances = append(instances, si)
	}
	rows.Close()

	if instances == nil {
		return make([]SlotInstance, 0), nil
	}

	setRows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.workout_slot_id, s.set_index, s.weight, s.reps, s.rir, s.is_warmup
			FROM workout_set s
			JOIN workout_slot ws ON ws.id = s.workout_slot_id
			WHERE ws.workout_id = $1
			ORDER BY ws.slot_index, ws.slot_instance, s.set_index;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer setRows.Close()

	if err := setRows.Err(); err != nil {
		return nil, err
	}

	setsByInstance := make(map[int][]SetEntry)
	for setRows.Next() {
		var s SetEntry
		if err := setRows.Scan(&s.ID, &s.SlotInstanceID, &s.SetIndex, &s.Weight, &s.Reps, &s.RIR, &s.IsWarmup); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		setsByInstance[s.SlotInstanceID] = append(setsByInstance[s.SlotInstanceID], s)
	}

	for i := range instances {
		if sets, ok := setsByInstance[instances[i].ID]; ok {
			instances[i].Sets = sets
		}
	}

	return instances, nil
}

// GetSlotInstance returns a slot instance together with the owning
// user id of its workout.
func (r *Repo) GetSlotInstance(ctx context.Context, id int) (_ *SlotInstance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getslotinstance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("slotinstance.id", id))

	var si SlotInstance
	err = r.db.QueryRow(
		ctx,
		`SELECT ws.id, ws.workout_id, w.user_id, ws.slot_index, ws.slot_instance, ws.slot_key, ws.exercise_name, ws.planned_sets, ws.planned_rep_goal, ws.planned_weight, ws.rating, ws.note
			FROM workout_slot ws
			JOIN workout w ON w.id = ws.workout_id
			WHERE ws.id = $1;`,
		id,
	).Scan(
		&si.ID, &si.WorkoutID, &si.UserID, &si.SlotIndex, &si.SlotInstance, &si.SlotKey,
		&si.ExerciseName, &si.PlannedSets, &si.PlannedRepGoal, &si.PlannedWeight,
		&si.Rating, &si.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotInstanceNotFound
		}
		return nil, err
	}
	return &si, nil
}

func (r *Repo) UpdateSlotInstanceRatingNote(ctx context.Context, id int, rating *int, note *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateslotratingnote")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("slotinstance.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_slot SET
				rating = COALESCE($1, rating),
				note = COALESCE($2, note)
			WHERE id = $3;`,
		rating, note, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotInstanceNotFound
	}
	return nil
}

// UpdatePlannedWeight overwrites the planned weight only. Used by
// recompute after a baseline edit; logged sets are never touched.
func (r *Repo) UpdatePlannedWeight(ctx context.Context, id int, weight *float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateplannedweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("slotinstance.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_slot SET planned_weight = $1 WHERE id = $2;`,
		weight, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotInstanceNotFound
	}
	return nil
}

// UpsertSet writes a set row, overwriting a previous submission of the
// same (slot instance, set index).
func (r *Repo) UpsertSet(ctx context.Context, s SetEntry) (_ *SetEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsertset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("slotinstance.id", s.SlotInstanceID))
	span.SetAttributes(attribute.Int("set", s.SetIndex))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set
				(workout_slot_id, set_index, weight, reps, rir, is_warmup)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (workout_slot_id, set_index) DO UPDATE SET
				weight = EXCLUDED.weight,
				reps = EXCLUDED.reps,
				rir = EXCLUDED.rir,
				is_warmup = EXCLUDED.is_warmup
			RETURNING id;`,
		s.SlotInstanceID, s.SetIndex, s.Weight, s.Reps, s.RIR, s.IsWarmup,
	).Scan(&s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSet returns a set row with the owning user id of its workout.
func (r *Repo) GetSet(ctx context.Context, id int) (_ *SetEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", id))

	var s SetEntry
	err = r.db.QueryRow(
		ctx,
		`SELECT s.id, s.workout_slot_id, w.user_id, s.set_index, s.weight, s.reps, s.rir, s.is_warmup
			FROM workout_set s
			JOIN workout_slot ws ON ws.id = s.workout_slot_id
			JOIN workout w ON w.id = ws.workout_id
			WHERE s.id = $1;`,
		id,
	).Scan(&s.ID, &s.SlotInstanceID, &s.UserID, &s.SetIndex, &s.Weight, &s.Reps, &s.RIR, &s.IsWarmup)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) DeleteSet(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_set WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

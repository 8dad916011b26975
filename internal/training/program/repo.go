package program

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"
	"github.com/dkovacevic/trainhub/internal/training/templates"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoActiveProgram = errors.New("no active program")
	ErrSlotNotFound    = errors.New("program slot not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetActive returns the user's single active program.
func (r *Repo) GetActive(ctx context.Context, userID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var p Program
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, template_id, name, status, current_week, current_day, deload_override, created_at
			FROM training_program
			WHERE user_id = $1 AND status = 'active';`,
		userID,
	).Scan(
		&p.ID, &p.UserID, &p.TemplateID, &p.Name, &p.Status,
		&p.CurrentWeek, &p.CurrentDay, &p.DeloadOverride, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveProgram
		}
		return nil, err
	}

	return &p, nil
}

// Get returns a program by id regardless of status. Archived programs
// stay readable so historical workouts can resolve their baselines.
func (r *Repo) Get(ctx context.Context, id int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", id))

	var p Program
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, template_id, name, status, current_week, current_day, deload_override, created_at
			FROM training_program
			WHERE id = $1;`,
		id,
	).Scan(
		&p.ID, &p.UserID, &p.TemplateID, &p.Name, &p.Status,
		&p.CurrentWeek, &p.CurrentDay, &p.DeloadOverride, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveProgram
		}
		return nil, err
	}

	return &p, nil
}

// Create archives the user's current active program (if any) and inserts
// a fresh one at cursor (1, 1), with one slot row per template slot, all
// in a single transaction.
func (r *Repo) Create(ctx context.Context, userID int, template *templates.Template, name string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("template.id", template.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`UPDATE training_program SET status = 'archived' WHERE user_id = $1 AND status = 'active';`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("archive previous program: %w", err)
	}

	p := Program{
		UserID:         userID,
		TemplateID:     template.ID,
		Name:           name,
		Status:         StatusActive,
		CurrentWeek:    1,
		CurrentDay:     1,
		DeloadOverride: false,
	}
	err = tx.QueryRow(
		ctx,
		`INSERT INTO training_program
				(user_id, template_id, name, status, current_week, current_day, deload_override, created_at)
				VALUES ($1, $2, $3, 'active', 1, 1, FALSE, NOW())
			RETURNING id, created_at;`,
		userID, template.ID, name,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert program: %w", err)
	}

	for _, slot := range template.Slots {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO program_slot
				(program_id, day_index, slot_index, slot_key, slot_label, default_sets, exercise_name, video_url, ten_rm_weight, ten_rm_unit)
				VALUES ($1, $2, $3, $4, $5, $6, '', '', NULL, 'lb');`,
			p.ID, slot.DayIndex, slot.SlotIndex, slot.SlotKey, slot.SlotLabel, slot.DefaultSets,
		); err != nil {
			return nil, fmt.Errorf("insert program slot [day %d, slot %d]: %w", slot.DayIndex, slot.SlotIndex, err)
		}
	}

	span.SetAttributes(attribute.Int("program.id", p.ID))
	return &p, nil
}

// UpdateCursor persists the cursor and deload override. Last write wins,
// these are single-user low-frequency actions.
func (r *Repo) UpdateCursor(ctx context.Context, programID int, c Cursor, deloadOverride bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.updatecursor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))
	span.SetAttributes(attribute.Int("cursor.week", c.Week))
	span.SetAttributes(attribute.Int("cursor.day", c.Day))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_program SET current_week = $1, current_day = $2, deload_override = $3 WHERE id = $4;`,
		c.Week, c.Day, deloadOverride, programID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoActiveProgram
	}
	return nil
}

// GetSlots returns one day's slots of a program, in slot order.
func (r *Repo) GetSlots(ctx context.Context, programID, dayIndex int) (_ []Slot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getslots")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))
	span.SetAttributes(attribute.Int("day", dayIndex))

	rows, err := r.db.Query(
		ctx,
		`SELECT program_id, day_index, slot_index, slot_key, slot_label, default_sets, exercise_name, video_url, ten_rm_weight, ten_rm_unit
			FROM program_slot
			WHERE program_id = $1 AND ($2 = 0 OR day_index = $2)
			ORDER BY day_index, slot_index;`,
		programID, dayIndex,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var slots []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(
			&s.ProgramID, &s.DayIndex, &s.SlotIndex, &s.SlotKey, &s.SlotLabel,
			&s.DefaultSets, &s.ExerciseName, &s.VideoURL, &s.TenRmWeight, &s.TenRmUnit,
		); err != nil {
			return nil, fmt.Errorf("scan program slot: %w", err)
		}
		slots = append(slots, s)
	}

	if slots == nil {
		slots = make([]Slot, 0)
	}

	return slots, nil
}

// GetAllSlots returns every slot of a program.
func (r *Repo) GetAllSlots(ctx context.Context, programID int) ([]Slot, error) {
	return r.GetSlots(ctx, programID, 0)
}

func (r *Repo) GetSlot(ctx context.Context, programID, dayIndex, slotIndex int) (_ *Slot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getslot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))
	span.SetAttributes(attribute.Int("day", dayIndex))
	span.SetAttributes(attribute.Int("slot", slotIndex))

	var s Slot
	err = r.db.QueryRow(
		ctx,
		`SELECT program_id, day_index, slot_index, slot_key, slot_label, default_sets, exercise_name, video_url, ten_rm_weight, ten_rm_unit
			FROM program_slot
			WHERE program_id = $1 AND day_index = $2 AND slot_index = $3;`,
		programID, dayIndex, slotIndex,
	).Scan(
		&s.ProgramID, &s.DayIndex, &s.SlotIndex, &s.SlotKey, &s.SlotLabel,
		&s.DefaultSets, &s.ExerciseName, &s.VideoURL, &s.TenRmWeight, &s.TenRmUnit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	return &s, nil
}

type UpdateSlotBaselineParams struct {
	ProgramID    int
	DayIndex     int
	SlotIndex    int
	ExerciseName *string
	VideoURL     *string
	TenRmWeight  *float64
	TenRmUnit    string
}

// UpdateSlotBaseline is a direct write of the slot's exercise choice and
// ten-rep-max. It never touches workout slot instances; those only
// change through instantiation, reassignment or recompute.
func (r *Repo) UpdateSlotBaseline(ctx context.Context, params UpdateSlotBaselineParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.updateslotbaseline")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", params.ProgramID))
	span.SetAttributes(attribute.Int("day", params.DayIndex))
	span.SetAttributes(attribute.Int("slot", params.SlotIndex))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE program_slot SET
				exercise_name = COALESCE($1, exercise_name),
				video_url = COALESCE($2, video_url),
				ten_rm_weight = COALESCE($3, ten_rm_weight),
				ten_rm_unit = CASE WHEN $4 = '' THEN ten_rm_unit ELSE $4 END
			WHERE program_id = $5 AND day_index = $6 AND slot_index = $7;`,
		params.ExerciseName, params.VideoURL, params.TenRmWeight, params.TenRmUnit,
		params.ProgramID, params.DayIndex, params.SlotIndex,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotNotFound
	}
	return nil
}

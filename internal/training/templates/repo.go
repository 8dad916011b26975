package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("template not found")

const (
	// templates are immutable, the cache only has to survive restarts-free
	// periods; entries are small JSON blobs
	cacheExpireSeconds = 60 * 60
	cacheSizeBytes     = 512 * 1024
)

type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:    db,
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func templateCacheKey(id int) []byte {
	return []byte("template||" + strconv.Itoa(id))
}

// Get returns a template with its slots, read-through cached.
func (r *Repo) Get(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	if cached, err := r.cache.Get(templateCacheKey(id)); err == nil {
		var t Template
		if err := json.Unmarshal(cached, &t); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &t, nil
		}
		log.Errorf("unmarshal cached template %d: %s", id, err)
	}

	t, err := r.getFromDB(ctx, id)
	if err != nil {
		return nil, err
	}

	if tJson, err := json.Marshal(t); err == nil {
		if err := r.cache.Set(templateCacheKey(id), tJson, cacheExpireSeconds); err != nil {
			log.Errorf("cache template %d: %s", id, err)
		}
	}

	return t, nil
}

func (r *Repo) getFromDB(ctx context.Context, id int) (*Template, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, day_count, week_count, deload_week_index, rep_goals
			FROM training_template
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrTemplateNotFound
	}

	t, err := scanTemplate(rows.Scan)
	if err != nil {
		return nil, err
	}
	rows.Close()

	slotRows, err := r.db.Query(
		ctx,
		`SELECT day_index, slot_index, slot_key, slot_label, default_sets
			FROM training_template_slot
			WHERE template_id = $1
			ORDER BY day_index, slot_index;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer slotRows.Close()

	if err := slotRows.Err(); err != nil {
		return nil, err
	}

	for slotRows.Next() {
		var s Slot
		if err := slotRows.Scan(&s.DayIndex, &s.SlotIndex, &s.SlotKey, &s.SlotLabel, &s.DefaultSets); err != nil {
			return nil, fmt.Errorf("scan template slot: %w", err)
		}
		t.Slots = append(t.Slots, s)
	}

	return t, nil
}

// List returns all templates without their slots.
func (r *Repo) List(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, day_count, week_count, deload_week_index, rep_goals
			FROM training_template
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var ts []Template
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		ts = append(ts, *t)
	}

	if ts == nil {
		ts = make([]Template, 0)
	}

	return ts, nil
}

func scanTemplate(scan func(dest ...any) error) (*Template, error) {
	var t Template
	var repGoalsBytes []byte
	if err := scan(&t.ID, &t.Name, &t.DayCount, &t.WeekCount, &t.DeloadWeekIndex, &repGoalsBytes); err != nil {
		return nil, fmt.Errorf("scan template: %w", err)
	}

	t.RepGoalByWeek = make(map[int]string)
	if len(repGoalsBytes) > 0 {
		// jsonb object keys are strings, convert back to week numbers
		var repGoals map[string]string
		if err := json.Unmarshal(repGoalsBytes, &repGoals); err != nil {
			return nil, fmt.Errorf("unmarshal rep goals for template %d: %w", t.ID, err)
		}
		for weekStr, goal := range repGoals {
			week, err := strconv.Atoi(weekStr)
			if err != nil {
				return nil, fmt.Errorf("rep goal week key %q for template %d: %w", weekStr, t.ID, err)
			}
			t.RepGoalByWeek[week] = goal
		}
	}

	return &t, nil
}

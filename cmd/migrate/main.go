package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/dkovacevic/trainhub/internal/config"
	"github.com/dkovacevic/trainhub/pkg"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

// creates the trainhub schema; with -seed it also inserts a starter
// template and an admin user (password from TRAINHUB_ADMIN_PASSWORD)
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	seed := flag.Bool("seed", false, "insert starter template and admin user after migration")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	dsn := fmt.Sprintf(
		"postgres://postgres@%s:%s/%s?sslmode=disable",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db conn: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping db: %s", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		log.Fatalf("run schema script: %s", err)
	}
	log.Println("schema migrated")

	if !*seed {
		return
	}

	if err := seedData(db); err != nil {
		log.Fatalf("seed data: %s", err)
	}
	log.Println("starter data seeded")
}

func seedData(db *sql.DB) error {
	adminPassword := os.Getenv("TRAINHUB_ADMIN_PASSWORD")
	if adminPassword == "" {
		return fmt.Errorf("admin password not set, use TRAINHUB_ADMIN_PASSWORD")
	}
	passwordHash, err := pkg.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)
			ON CONFLICT (username) DO NOTHING;`,
		"admin", passwordHash,
	); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	var templateID int
	err = db.QueryRow(
		`INSERT INTO training_template (name, day_count, week_count, deload_week_index, rep_goals)
			VALUES ($1, 5, 7, 7, $2)
			RETURNING id;`,
		"5-Day Strength Block",
		`{"1": "4/fail", "2": "3/fail", "3": "3/fail", "4": "2/fail", "5": "1/fail", "6": "1/fail"}`,
	).Scan(&templateID)
	if err != nil {
		return fmt.Errorf("insert starter template: %w", err)
	}

	type seedSlot struct {
		day, slot   int
		key, label  string
		defaultSets int
	}
	slots := []seedSlot{
		{1, 1, "quads", "Squat pattern", 4},
		{1, 2, "chest", "Horizontal press", 3},
		{1, 3, "back", "Horizontal pull", 3},
		{2, 1, "hams", "Hinge pattern", 4},
		{2, 2, "shoulders", "Vertical press", 3},
		{2, 3, "back", "Vertical pull", 3},
		{3, 1, "quads", "Squat accessory", 3},
		{3, 2, "chest", "Incline press", 3},
		{3, 3, "arms", "Biceps", 3},
		{4, 1, "hams", "Hinge accessory", 3},
		{4, 2, "shoulders", "Lateral raise", 3},
		{4, 3, "arms", "Triceps", 3},
		{5, 1, "quads", "Leg press", 3},
		{5, 2, "back", "Row variation", 3},
		{5, 3, "abs", "Core", 3},
	}
	for _, s := range slots {
		if _, err := db.Exec(
			`INSERT INTO training_template_slot (template_id, day_index, slot_index, slot_key, slot_label, default_sets)
				VALUES ($1, $2, $3, $4, $5, $6);`,
			templateID, s.day, s.slot, s.key, s.label, s.defaultSets,
		); err != nil {
			return fmt.Errorf("insert template slot [day %d, slot %d]: %w", s.day, s.slot, err)
		}
	}

	return nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS public.users
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR     NOT NULL UNIQUE,
    password_hash VARCHAR     NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS public.training_template
(
    id                SERIAL PRIMARY KEY,
    name              VARCHAR NOT NULL,
    day_count         INTEGER NOT NULL,
    week_count        INTEGER NOT NULL,
    deload_week_index INTEGER NOT NULL,
    rep_goals         JSONB   NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS public.training_template_slot
(
    id           SERIAL PRIMARY KEY,
    template_id  INTEGER NOT NULL REFERENCES public.training_template (id),
    day_index    INTEGER NOT NULL,
    slot_index   INTEGER NOT NULL,
    slot_key     VARCHAR NOT NULL,
    slot_label   VARCHAR NOT NULL,
    default_sets INTEGER NOT NULL,
    UNIQUE (template_id, day_index, slot_index)
);

CREATE TABLE IF NOT EXISTS public.training_program
(
    id              SERIAL PRIMARY KEY,
    user_id         INTEGER     NOT NULL REFERENCES public.users (id),
    template_id     INTEGER     NOT NULL REFERENCES public.training_template (id),
    name            VARCHAR     NOT NULL,
    status          VARCHAR     NOT NULL,
    current_week    INTEGER     NOT NULL,
    current_day     INTEGER     NOT NULL,
    deload_override BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- one active program per user
CREATE UNIQUE INDEX IF NOT EXISTS ux_training_program_active
    ON public.training_program (user_id) WHERE status = 'active';

CREATE TABLE IF NOT EXISTS public.program_slot
(
    id            SERIAL PRIMARY KEY,
    program_id    INTEGER NOT NULL REFERENCES public.training_program (id),
    day_index     INTEGER NOT NULL,
    slot_index    INTEGER NOT NULL,
    slot_key      VARCHAR NOT NULL,
    slot_label    VARCHAR NOT NULL,
    default_sets  INTEGER NOT NULL,
    exercise_name VARCHAR NOT NULL DEFAULT '',
    video_url     VARCHAR NOT NULL DEFAULT '',
    ten_rm_weight DOUBLE PRECISION,
    ten_rm_unit   VARCHAR NOT NULL DEFAULT 'lb',
    UNIQUE (program_id, day_index, slot_index)
);

CREATE TABLE IF NOT EXISTS public.workout
(
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER     NOT NULL REFERENCES public.users (id),
    entry_date  DATE        NOT NULL,
    program_id  INTEGER REFERENCES public.training_program (id),
    week_index  INTEGER     NOT NULL DEFAULT 0,
    day_index   INTEGER     NOT NULL DEFAULT 0,
    is_deload   BOOLEAN     NOT NULL DEFAULT FALSE,
    deload_mode VARCHAR,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, entry_date)
);

CREATE TABLE IF NOT EXISTS public.workout_slot
(
    id               SERIAL PRIMARY KEY,
    workout_id       INTEGER NOT NULL REFERENCES public.workout (id),
    slot_index       INTEGER NOT NULL,
    slot_instance    INTEGER NOT NULL,
    slot_key         VARCHAR NOT NULL DEFAULT '',
    exercise_name    VARCHAR NOT NULL DEFAULT '',
    planned_sets     INTEGER NOT NULL,
    planned_rep_goal VARCHAR NOT NULL DEFAULT '',
    planned_weight   DOUBLE PRECISION,
    rating           INTEGER,
    note             VARCHAR NOT NULL DEFAULT '',
    UNIQUE (workout_id, slot_index, slot_instance)
);

CREATE TABLE IF NOT EXISTS public.workout_set
(
    id              SERIAL PRIMARY KEY,
    workout_slot_id INTEGER NOT NULL REFERENCES public.workout_slot (id) ON DELETE CASCADE,
    set_index       INTEGER NOT NULL,
    weight          DOUBLE PRECISION,
    reps            INTEGER,
    rir             DOUBLE PRECISION,
    is_warmup       BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (workout_slot_id, set_index)
);

CREATE INDEX IF NOT EXISTS ix_workout_entry_date ON public.workout (entry_date);
CREATE INDEX IF NOT EXISTS ix_workout_slot_workout_id ON public.workout_slot (workout_id);
CREATE INDEX IF NOT EXISTS ix_workout_set_slot_id ON public.workout_set (workout_slot_id);
`

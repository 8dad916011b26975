package program

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovacevic/trainhub/internal/auth"
	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"
	"github.com/dkovacevic/trainhub/internal/training/planning"
	"github.com/dkovacevic/trainhub/internal/training/templates"
	"github.com/dkovacevic/trainhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=program_mocks_test.go -package=program_test

type programRepo interface {
	GetActive(ctx context.Context, userID int) (*Program, error)
	Create(ctx context.Context, userID int, template *templates.Template, name string) (*Program, error)
	UpdateCursor(ctx context.Context, programID int, c Cursor, deloadOverride bool) error
	GetAllSlots(ctx context.Context, programID int) ([]Slot, error)
	UpdateSlotBaseline(ctx context.Context, params UpdateSlotBaselineParams) error
}

type templatesGetter interface {
	Get(ctx context.Context, id int) (*templates.Template, error)
}

type CreateProgramRequest struct {
	TemplateID int    `json:"templateId"`
	Name       string `json:"name"`
}

type CreateProgramResponse struct {
	ProgramID int `json:"programId"`
}

type GetProgramResponse struct {
	Program     *Program `json:"program"`
	Slots       []Slot   `json:"slots"`
	IsDeload    bool     `json:"isDeload"`
	DeloadPhase *string  `json:"deloadPhase"`
	RepGoal     string   `json:"repGoal"`
}

type UpdateCursorRequest struct {
	Week           *int  `json:"week"`
	Day            *int  `json:"day"`
	DeloadOverride *bool `json:"deloadOverride"`
}

type UpdateSlotRequest struct {
	DayIndex     int      `json:"dayIndex"`
	SlotIndex    int      `json:"slotIndex"`
	ExerciseName *string  `json:"exerciseName"`
	VideoURL     *string  `json:"videoUrl"`
	TenRmWeight  *float64 `json:"tenRmWeight"`
	TenRmUnit    string   `json:"tenRmUnit"`
}

type Handler struct {
	repo          programRepo
	templatesRepo templatesGetter
}

func NewHandler(repo programRepo, templatesRepo templatesGetter) *Handler {
	return &Handler{
		repo:          repo,
		templatesRepo: templatesRepo,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req CreateProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create program, unmarshal json params: %s", err)
		http.Error(w, "create program failed", http.StatusBadRequest)
		return
	}
	if req.TemplateID == 0 {
		http.Error(w, "error, template id empty", http.StatusBadRequest)
		return
	}

	template, err := handler.templatesRepo.Get(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("create program, get template %d: %s", req.TemplateID, err)
		http.Error(w, "create program failed", http.StatusInternalServerError)
		return
	}

	name := req.Name
	if name == "" {
		name = template.Name
	}

	p, err := handler.repo.Create(ctx, userID, template, name)
	if err != nil {
		log.Errorf("create program for user %d: %s", userID, err)
		http.Error(w, "create program failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("user %d started program %d from template %d", userID, p.ID, template.ID)

	respJson, err := json.Marshal(CreateProgramResponse{ProgramID: p.ID})
	if err != nil {
		log.Errorf("failed to marshal create program response: %s", err)
		http.Error(w, "create program failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, template, ok := handler.activeProgram(ctx, w, userID)
	if !ok {
		return
	}

	slots, err := handler.repo.GetAllSlots(ctx, p.ID)
	if err != nil {
		log.Errorf("get program %d slots: %s", p.ID, err)
		http.Error(w, "failed to get program", http.StatusInternalServerError)
		return
	}

	isDeload := p.IsDeload(template.DeloadWeekIndex)
	resp := GetProgramResponse{
		Program:  p,
		Slots:    slots,
		IsDeload: isDeload,
		RepGoal:  template.RepGoalFor(p.CurrentWeek, isDeload),
	}
	if phase := planning.DeriveDeloadPhase(isDeload, p.CurrentDay); phase != nil {
		phaseStr := phase.String()
		resp.DeloadPhase = &phaseStr
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal program response: %s", err)
		http.Error(w, "failed to get program", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAdvanceCursor(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.advancecursor")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	direction := Direction(mux.Vars(r)["direction"])
	if !direction.IsValid() {
		http.Error(w, "error, invalid direction", http.StatusBadRequest)
		return
	}

	p, template, ok := handler.activeProgram(ctx, w, userID)
	if !ok {
		return
	}

	cursor := AdvanceCursor(
		Cursor{Week: p.CurrentWeek, Day: p.CurrentDay},
		direction,
		template.WeekCount, template.DayCount,
	)
	if err := handler.repo.UpdateCursor(ctx, p.ID, cursor, p.DeloadOverride); err != nil {
		log.Errorf("advance cursor, program %d: %s", p.ID, err)
		http.Error(w, "failed to advance cursor", http.StatusInternalServerError)
		return
	}

	log.Debugf("program %d cursor %s -> week %d, day %d", p.ID, direction, cursor.Week, cursor.Day)

	respJson, err := json.Marshal(cursor)
	if err != nil {
		log.Errorf("failed to marshal cursor: %s", err)
		http.Error(w, "failed to advance cursor", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleStartDeload forces the program into its deload week. One way
// switch, the override stays set until the user clears it via a cursor
// update.
func (handler *Handler) HandleStartDeload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.startdeload")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, template, ok := handler.activeProgram(ctx, w, userID)
	if !ok {
		return
	}

	cursor := Cursor{Week: template.DeloadWeekIndex, Day: 1}
	if err := handler.repo.UpdateCursor(ctx, p.ID, cursor, true); err != nil {
		log.Errorf("start deload, program %d: %s", p.ID, err)
		http.Error(w, "failed to start deload", http.StatusInternalServerError)
		return
	}

	log.Debugf("program %d entered deload at week %d", p.ID, cursor.Week)
	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

func (handler *Handler) HandleUpdateCursor(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.updatecursor")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpdateCursorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update cursor, unmarshal json params: %s", err)
		http.Error(w, "update cursor failed", http.StatusBadRequest)
		return
	}

	p, template, ok := handler.activeProgram(ctx, w, userID)
	if !ok {
		return
	}

	cursor := Cursor{Week: p.CurrentWeek, Day: p.CurrentDay}
	if req.Week != nil {
		cursor.Week = *req.Week
	}
	if req.Day != nil {
		cursor.Day = *req.Day
	}
	cursor = ClampCursor(cursor, template.WeekCount, template.DayCount)

	deloadOverride := p.DeloadOverride
	if req.DeloadOverride != nil {
		deloadOverride = *req.DeloadOverride
	}

	if err := handler.repo.UpdateCursor(ctx, p.ID, cursor, deloadOverride); err != nil {
		log.Errorf("update cursor, program %d: %s", p.ID, err)
		http.Error(w, "update cursor failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

func (handler *Handler) HandleUpdateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.updateslot")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update slot, unmarshal json params: %s", err)
		http.Error(w, "update slot failed", http.StatusBadRequest)
		return
	}
	if req.DayIndex < 1 || req.SlotIndex < 1 {
		http.Error(w, "error, day or slot index invalid", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoActiveProgram) {
			http.Error(w, "no active program", http.StatusNotFound)
			return
		}
		log.Errorf("update slot, get active program for user %d: %s", userID, err)
		http.Error(w, "update slot failed", http.StatusInternalServerError)
		return
	}

	err = handler.repo.UpdateSlotBaseline(ctx, UpdateSlotBaselineParams{
		ProgramID:    p.ID,
		DayIndex:     req.DayIndex,
		SlotIndex:    req.SlotIndex,
		ExerciseName: req.ExerciseName,
		VideoURL:     req.VideoURL,
		TenRmWeight:  req.TenRmWeight,
		TenRmUnit:    req.TenRmUnit,
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			http.Error(w, "program slot not found", http.StatusNotFound)
			return
		}
		log.Errorf("update slot [program %d, day %d, slot %d]: %s", p.ID, req.DayIndex, req.SlotIndex, err)
		http.Error(w, "update slot failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

// activeProgram loads the user's active program and its template,
// writing the error response itself when either is missing.
func (handler *Handler) activeProgram(
	ctx context.Context,
	w http.ResponseWriter,
	userID int,
) (*Program, *templates.Template, bool) {
	p, err := handler.repo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoActiveProgram) {
			http.Error(w, "no active program", http.StatusNotFound)
			return nil, nil, false
		}
		log.Errorf("get active program for user %d: %s", userID, err)
		http.Error(w, "failed to get program", http.StatusInternalServerError)
		return nil, nil, false
	}

	template, err := handler.templatesRepo.Get(ctx, p.TemplateID)
	if err != nil {
		log.Errorf("get template %d for program %d: %s", p.TemplateID, p.ID, err)
		http.Error(w, "failed to get program template", http.StatusInternalServerError)
		return nil, nil, false
	}

	return p, template, true
}

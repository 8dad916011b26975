package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dkovacevic/trainhub/internal/auth"
	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"
	"github.com/dkovacevic/trainhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	GetOrCreateWorkout(ctx context.Context, userID int, date time.Time) (*WorkoutDetails, error)
	AssignExercise(ctx context.Context, userID int, params AssignExerciseParams) (*SlotInstance, error)
	UpsertSet(ctx context.Context, userID int, set SetEntry) (*SetEntry, error)
	DeleteSet(ctx context.Context, userID, setID int) error
	UpdateSlotFeedback(ctx context.Context, userID, slotInstanceID int, rating *int, note *string) error
	Recompute(ctx context.Context, userID, workoutID int) (int, error)
}

type AssignExerciseRequest struct {
	SlotIndex    int    `json:"slotIndex"`
	SlotKey      string `json:"slotKey"`
	ExerciseName string `json:"exerciseName"`
	PlannedSets  int    `json:"plannedSets"`
}

type AssignExerciseResponse struct {
	SlotInstanceID int `json:"slotInstanceId"`
	SlotInstance   int `json:"slotInstance"`
}

type UpsertSetRequest struct {
	SlotInstanceID int      `json:"slotInstanceId"`
	SetIndex       int      `json:"setIndex"`
	Weight         *float64 `json:"weight"`
	Reps           *int     `json:"reps"`
	RIR            *float64 `json:"rir"`
	IsWarmup       bool     `json:"isWarmup"`
}

type UpdateSlotFeedbackRequest struct {
	Rating *int    `json:"rating"`
	Note   *string `json:"note"`
}

type RecomputeResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetOrCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getorcreate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	details, err := handler.service.GetOrCreateWorkout(ctx, userID, date)
	if err != nil {
		log.Errorf("get or create workout [%s] for user %d: %s", dateStr, userID, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("failed to marshal workout details: %s", err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleAssignExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.assignexercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req AssignExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("assign exercise, unmarshal json params: %s", err)
		http.Error(w, "assign exercise failed", http.StatusBadRequest)
		return
	}
	if req.SlotIndex < 1 {
		http.Error(w, "error, slot index invalid", http.StatusBadRequest)
		return
	}
	if req.ExerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	si, err := handler.service.AssignExercise(ctx, userID, AssignExerciseParams{
		WorkoutID:       workoutID,
		SlotIndex:       req.SlotIndex,
		SlotKey:         req.SlotKey,
		ExerciseName:    req.ExerciseName,
		PlannedSetsHint: req.PlannedSets,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			http.Error(w, "not your workout", http.StatusForbidden)
		default:
			log.Errorf("assign exercise [workout %d, slot %d]: %s", workoutID, req.SlotIndex, err)
			http.Error(w, "assign exercise failed", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(AssignExerciseResponse{
		SlotInstanceID: si.ID,
		SlotInstance:   si.SlotInstance,
	})
	if err != nil {
		log.Errorf("failed to marshal assign exercise response: %s", err)
		http.Error(w, "assign exercise failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleUpsertSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.upsertset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpsertSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert set, unmarshal json params: %s", err)
		http.Error(w, "upsert set failed", http.StatusBadRequest)
		return
	}
	if req.SlotInstanceID < 1 {
		http.Error(w, "error, slot instance id invalid", http.StatusBadRequest)
		return
	}
	if req.SetIndex < 1 {
		http.Error(w, "error, set index invalid", http.StatusBadRequest)
		return
	}

	saved, err := handler.service.UpsertSet(ctx, userID, SetEntry{
		SlotInstanceID: req.SlotInstanceID,
		SetIndex:       req.SetIndex,
		Weight:         req.Weight,
		Reps:           req.Reps,
		RIR:            req.RIR,
		IsWarmup:       req.IsWarmup,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotInstanceNotFound):
			http.Error(w, "slot instance not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			http.Error(w, "not your workout", http.StatusForbidden)
		default:
			log.Errorf("upsert set [slot instance %d, set %d]: %s", req.SlotInstanceID, req.SetIndex, err)
			http.Error(w, "upsert set failed", http.StatusInternalServerError)
		}
		return
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal set: %s", err)
		http.Error(w, "upsert set failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteset")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	setID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteSet(ctx, userID, setID); err != nil {
		switch {
		case errors.Is(err, ErrSetNotFound):
			http.Error(w, "set not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			http.Error(w, "not your workout", http.StatusForbidden)
		default:
			log.Errorf("delete set %d: %s", setID, err)
			http.Error(w, "delete set failed", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(DeleteSetResponse{DeletedID: setID})
	if err != nil {
		log.Errorf("failed to marshal delete set response: %s", err)
		http.Error(w, "delete set failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateSlotFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateslotfeedback")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	slotInstanceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req UpdateSlotFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update slot feedback, unmarshal json params: %s", err)
		http.Error(w, "update slot failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateSlotFeedback(ctx, userID, slotInstanceID, req.Rating, req.Note); err != nil {
		switch {
		case errors.Is(err, ErrSlotInstanceNotFound):
			http.Error(w, "slot instance not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			http.Error(w, "not your workout", http.StatusForbidden)
		default:
			log.Errorf("update slot feedback %d: %s", slotInstanceID, err)
			http.Error(w, "update slot failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONResponseOK(w, `{"ok":true}`)
}

func (handler *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.recompute")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.Recompute(ctx, userID, workoutID)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			http.Error(w, "not your workout", http.StatusForbidden)
		default:
			log.Errorf("recompute workout %d: %s", workoutID, err)
			http.Error(w, "recompute failed", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(RecomputeResponse{UpdatedCount: updated})
	if err != nil {
		log.Errorf("failed to marshal recompute response: %s", err)
		http.Error(w, "recompute failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dkovacevic/trainhub/internal/telemetry/tracing"
	"github.com/dkovacevic/trainhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=templates_mocks_test.go -package=templates_test

type templatesRepo interface {
	Get(ctx context.Context, id int) (*Template, error)
	List(ctx context.Context) ([]Template, error)
}

type Handler struct {
	repo templatesRepo
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	ts, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list templates: %s", err)
		http.Error(w, "failed to list templates", http.StatusInternalServerError)
		return
	}

	tsJson, err := json.Marshal(ts)
	if err != nil {
		log.Errorf("failed to marshal templates: %s", err)
		http.Error(w, "failed to list templates", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, tsJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	t, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get template %d: %s", id, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	tJson, err := json.Marshal(t)
	if err != nil {
		log.Errorf("failed to marshal template %d: %s", id, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, tJson, http.StatusOK)
}

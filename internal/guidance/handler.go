package guidance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=guidance_test

type snapshotService interface {
	Athlete(ctx context.Context, athleteID int) (*athletes.Athlete, error)
	AthleteSnapshot(ctx context.Context, athleteID int) (*athletes.Athlete, *workload.Snapshot, error)
}

type Handler struct {
	service snapshotService
	nowFunc func() time.Time
}

func NewHandler(service snapshotService) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.guidance.schedule")
	defer span.End()

	athlete, snap, ok := handler.athleteSnapshot(ctx, w, r)
	if !ok {
		return
	}

	schedule := TrainingSchedule(*snap, workload.LookupSport(athlete.Sport), handler.nowFunc())
	writeJSON(w, schedule, "schedule")
}

func (handler *Handler) HandleNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.guidance.nutrition")
	defer span.End()

	athlete, snap, ok := handler.athleteSnapshot(ctx, w, r)
	if !ok {
		return
	}

	plan, err := Nutrition(*athlete, *snap)
	if errors.Is(err, ErrMissingBodyData) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		log.Errorf("nutrition plan for athlete %d: %s", athlete.ID, err)
		http.Error(w, "failed to build nutrition plan", http.StatusInternalServerError)
		return
	}
	writeJSON(w, plan, "nutrition plan")
}

func (handler *Handler) HandleCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.guidance.career")
	defer span.End()

	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}

	// the career plan only depends on the athlete profile
	athlete, err := handler.service.Athlete(ctx, athleteID)
	if err != nil {
		writeSnapshotError(w, athleteID, err)
		return
	}

	writeJSON(w, Career(*athlete, workload.LookupSport(athlete.Sport)), "career plan")
}

func (handler *Handler) athleteSnapshot(ctx context.Context, w http.ResponseWriter, r *http.Request) (*athletes.Athlete, *workload.Snapshot, bool) {
	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return nil, nil, false
	}

	athlete, snap, err := handler.service.AthleteSnapshot(ctx, athleteID)
	if err != nil {
		writeSnapshotError(w, athleteID, err)
		return nil, nil, false
	}
	return athlete, snap, true
}

func writeSnapshotError(w http.ResponseWriter, athleteID int, err error) {
	if errors.Is(err, athletes.ErrAthleteNotFound) {
		http.Error(w, "athlete not found", http.StatusNotFound)
		return
	}
	log.Errorf("guidance for athlete %d: %s", athleteID, err)
	http.Error(w, "failed to compute athlete metrics", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any, what string) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal %s: %s", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

package dashboard

import (
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

type StatusResponse struct {
	AthleteID  int                `json:"athleteId"`
	Status     workload.Status    `json:"status"`
	RiskLabel  workload.RiskLabel `json:"riskLabel"`
	RiskScore  float64            `json:"riskScore"`
	ComputedAt time.Time          `json:"computedAt"`
}

type LoadResponse struct {
	AthleteID int                  `json:"athleteId"`
	Days      int                  `json:"days"`
	Points    []workload.LoadPoint `json:"points"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.metrics")
	defer span.End()

	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}

	snap, err := handler.service.Snapshot(ctx, athleteID)
	if err != nil {
		writeServiceError(w, athleteID, err)
		return
	}

	snapJson, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("failed to marshal snapshot: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapJson, http.StatusOK)
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.status")
	defer span.End()

	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}

	snap, err := handler.service.Snapshot(ctx, athleteID)
	if err != nil {
		writeServiceError(w, athleteID, err)
		return
	}

	statusJson, err := json.Marshal(StatusResponse{
		AthleteID:  snap.AthleteID,
		Status:     snap.Status,
		RiskLabel:  snap.Risk.Label,
		RiskScore:  snap.Risk.Score,
		ComputedAt: snap.ComputedAt,
	})
	if err != nil {
		log.Errorf("failed to marshal status: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

func (handler *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.load")
	defer span.End()

	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}

	days, err := pkg.QueryInt(r, "days", DefaultLoadDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := handler.service.LoadSeries(ctx, athleteID, days)
	if err != nil {
		writeServiceError(w, athleteID, err)
		return
	}

	loadJson, err := json.Marshal(LoadResponse{
		AthleteID: athleteID,
		Days:      days,
		Points:    points,
	})
	if err != nil {
		log.Errorf("failed to marshal load series: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, loadJson, http.StatusOK)
}

func (handler *Handler) HandleTeamOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.team")
	defer span.End()

	overview, err := handler.service.TeamOverview(ctx, r.URL.Query().Get("sport"))
	if err != nil {
		log.Errorf("team overview: %s", err)
		http.Error(w, "failed to get team overview", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("failed to marshal team overview: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewJson, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, athleteID int, err error) {
	switch {
	case errors.Is(err, athletes.ErrAthleteNotFound):
		http.Error(w, "athlete not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidDays):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("athlete %d metrics: %s", athleteID, err)
		http.Error(w, "failed to compute athlete metrics", http.StatusInternalServerError)
	}
}

package injuries

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/metrics"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=injuries_test

type injuriesRepo interface {
	Add(ctx context.Context, injury Injury) (*Injury, error)
	Get(ctx context.Context, id int) (*Injury, error)
	Update(ctx context.Context, injury *Injury) error
	Delete(ctx context.Context, id int) error
	ListForAthlete(ctx context.Context, athleteID int) ([]Injury, error)
	MarkRecovered(ctx context.Context, id int, at time.Time) (*Injury, error)
}

type metricsCache interface {
	Invalidate(athleteID int)
}

type RecoverRequest struct {
	RecoveredAt *time.Time `json:"recoveredAt,omitempty"`
}

type DeleteInjuryResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateInjuryResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Injuries []Injury `json:"injuries"`
	Active   int      `json:"active"`
	Total    int      `json:"total"`
}

type Handler struct {
	repo    injuriesRepo
	cache   metricsCache
	metrics *metrics.Manager
}

func NewHandler(repo injuriesRepo, cache metricsCache, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.add")
	defer span.End()

	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var injury Injury
	if err := json.NewDecoder(r.Body).Decode(&injury); err != nil {
		log.Errorf("new injury, unmarshal json params: %s", err)
		http.Error(w, "add injury failed", http.StatusBadRequest)
		return
	}
	injury.AthleteID = athleteID
	if injury.InjuredAt.IsZero() {
		injury.InjuredAt = time.Now().UTC()
	}

	if err := injury.Validate(); err != nil {
		http.Error(w, "error, invalid injury: "+err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, injury)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add injury for athlete %d: %s", athleteID, err)
		http.Error(w, "error, failed to add injury", http.StatusInternalServerError)
		return
	}

	handler.cache.Invalidate(athleteID)
	handler.metrics.CounterInjuriesAdded.Inc()

	log.Debugf("new injury added for athlete %d: %d [%s, %s]", athleteID, added.ID, added.BodyPart, added.Severity)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new injury: %s", err)
		http.Error(w, "error, failed to add injury", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.list")
	defer span.End()

	athleteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}

	injuries, err := handler.repo.ListForAthlete(ctx, athleteID)
	if err != nil {
		log.Errorf("list injuries for athlete %d: %s", athleteID, err)
		http.Error(w, "failed to get injuries", http.StatusInternalServerError)
		return
	}
	if injuries == nil {
		injuries = []Injury{}
	}

	resp := ListResponse{
		Injuries: injuries,
		Total:    len(injuries),
	}
	for _, i := range injuries {
		if i.Active() {
			resp.Active++
		}
	}

	listRespJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal injuries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.update")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var injury Injury
	if err := json.NewDecoder(r.Body).Decode(&injury); err != nil {
		log.Errorf("update injury, unmarshal json params: %s", err)
		http.Error(w, "update injury failed", http.StatusBadRequest)
		return
	}
	if injury.ID <= 0 {
		http.Error(w, "error, id missing", http.StatusBadRequest)
		return
	}

	existing, err := handler.repo.Get(ctx, injury.ID)
	if err != nil {
		handler.writeInjuryError(w, injury.ID, "get", err)
		return
	}
	injury.AthleteID = existing.AthleteID
	if injury.InjuredAt.IsZero() {
		injury.InjuredAt = existing.InjuredAt
	}

	if err := injury.Validate(); err != nil {
		http.Error(w, "error, invalid injury: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &injury); err != nil {
		handler.writeInjuryError(w, injury.ID, "update", err)
		return
	}

	handler.cache.Invalidate(injury.AthleteID)

	updateRespJson, err := json.Marshal(UpdateInjuryResponse{
		UpdatedID: injury.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.delete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["iid"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	existing, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.writeInjuryError(w, id, "get", err)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		handler.writeInjuryError(w, id, "delete", err)
		return
	}

	handler.cache.Invalidate(existing.AthleteID)

	deleteRespJson, err := json.Marshal(DeleteInjuryResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

// HandleRecover marks an injury as recovered, at the given time or now.
func (handler *Handler) HandleRecover(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuries.recover")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["iid"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	// the body is optional
	var req RecoverRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Errorf("recover injury, unmarshal json params: %s", err)
			http.Error(w, "recover injury failed", http.StatusBadRequest)
			return
		}
	}

	at := time.Now().UTC()
	if req.RecoveredAt != nil {
		at = *req.RecoveredAt
	}

	recovered, err := handler.repo.MarkRecovered(ctx, id, at)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyRecovered):
			http.Error(w, "injury already recovered", http.StatusConflict)
			return
		case errors.Is(err, ErrRecoveredBeforeInjured):
			http.Error(w, "error, recoveredAt before injuredAt", http.StatusBadRequest)
			return
		}
		handler.writeInjuryError(w, id, "recover", err)
		return
	}

	handler.cache.Invalidate(recovered.AthleteID)
	log.Debugf("injury %d of athlete %d recovered at %s", recovered.ID, recovered.AthleteID, at)

	recoveredJson, err := json.Marshal(recovered)
	if err != nil {
		log.Errorf("failed to marshal recovered injury: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recoveredJson, http.StatusOK)
}

func (handler *Handler) writeInjuryError(w http.ResponseWriter, id int, op string, err error) {
	if errors.Is(err, ErrInjuryNotFound) {
		http.Error(w, "injury not found", http.StatusNotFound)
		return
	}
	log.Errorf("failed to %s injury %d: %s", op, id, err)
	http.Error(w, "error, failed to "+op+" injury", http.StatusInternalServerError)
}

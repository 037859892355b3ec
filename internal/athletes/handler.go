package athletes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=athletes_test

type athletesRepo interface {
	Add(ctx context.Context, athlete Athlete) (*Athlete, error)
	Get(ctx context.Context, id int) (*Athlete, error)
	Update(ctx context.Context, athlete *Athlete) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params ListParams) (_ []Athlete, total int, err error)
}

type metricsCache interface {
	Invalidate(athleteID int)
}

type DeleteAthleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateAthleteResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Athletes []Athlete `json:"athletes"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo  athletesRepo
	cache metricsCache
}

func NewHandler(repo athletesRepo, cache metricsCache) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var athlete Athlete
	if err := json.NewDecoder(r.Body).Decode(&athlete); err != nil {
		log.Errorf("new athlete, unmarshal json params: %s", err)
		http.Error(w, "add athlete failed", http.StatusBadRequest)
		return
	}

	if err := athlete.Validate(); err != nil {
		http.Error(w, "error, invalid athlete: "+err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, athlete)
	if err != nil {
		log.Errorf("failed to add new athlete [%s], [%s]: %s", athlete.Name, athlete.Sport, err)
		http.Error(w, "error, failed to add new athlete", http.StatusInternalServerError)
		return
	}

	log.Debugf("new athlete added: [%s] [%s]: %d", added.Name, added.Sport, added.ID)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new athlete: %s", err)
		http.Error(w, "error, failed to add new athlete", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	athlete, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAthleteNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get athlete %d: %s", id, err)
		http.Error(w, "failed to get athlete", http.StatusInternalServerError)
		return
	}

	athleteJson, err := json.Marshal(athlete)
	if err != nil {
		log.Errorf("failed to marshal athlete: %s", err)
		http.Error(w, "failed to marshal athlete", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, athleteJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.update")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var athlete Athlete
	if err := json.NewDecoder(r.Body).Decode(&athlete); err != nil {
		log.Errorf("update athlete, unmarshal json params: %s", err)
		http.Error(w, "update athlete failed", http.StatusBadRequest)
		return
	}

	if athlete.ID <= 0 {
		http.Error(w, "error, id missing", http.StatusBadRequest)
		return
	}
	if err := athlete.Validate(); err != nil {
		http.Error(w, "error, invalid athlete: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &athlete); err != nil {
		if errors.Is(err, ErrAthleteNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update athlete %d: %s", athlete.ID, err)
		http.Error(w, "error, failed to update athlete", http.StatusInternalServerError)
		return
	}

	// age, sport and max heart rate all feed the metrics
	handler.cache.Invalidate(athlete.ID)

	updateRespJson, err := json.Marshal(UpdateAthleteResponse{
		UpdatedID: athlete.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.delete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrAthleteNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete athlete %d: %s", id, err)
		http.Error(w, "athlete not deleted", http.StatusInternalServerError)
		return
	}

	handler.cache.Invalidate(id)

	deleteRespJson, err := json.Marshal(DeleteAthleteResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle get athletes page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle get athletes page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	athletes, total, err := handler.repo.List(ctx, ListParams{
		Sport: r.URL.Query().Get("sport"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		log.Errorf("list athletes error: %s", err)
		http.Error(w, "failed to get athletes", http.StatusInternalServerError)
		return
	}

	if athletes == nil {
		athletes = []Athlete{}
	}

	listRespJson, err := json.Marshal(ListResponse{
		Athletes: athletes,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal athletes error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

package performance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/metrics"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=performance_test

type recordsRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	Get(ctx context.Context, id int) (*Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params ListParams) (_ []Record, total int, err error)
	Count(ctx context.Context, params RecordParams) (int, error)
}

type metricsCache interface {
	Invalidate(athleteID int)
}

type AddRecordResponse struct {
	Record
	CountToday int `json:"countToday"`
}

type DeleteRecordResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateRecordResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

type Handler struct {
	repo    recordsRepo
	cache   metricsCache
	metrics *metrics.Manager
}

func NewHandler(repo recordsRepo, cache metricsCache, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.add")
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

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("new training record, unmarshal json params: %s", err)
		http.Error(w, "add training record failed", http.StatusBadRequest)
		return
	}
	record.AthleteID = athleteID

	if err := record.Validate(); err != nil {
		http.Error(w, "error, invalid training record: "+err.Error(), http.StatusBadRequest)
		return
	}
	if record.Date.IsZero() {
		record.Date = time.Now().UTC()
	}

	added, err := handler.repo.Add(ctx, record)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add training record for athlete %d: %s", athleteID, err)
		http.Error(w, "error, failed to add training record", http.StatusInternalServerError)
		return
	}

	handler.cache.Invalidate(athleteID)
	handler.metrics.CounterRecordsAdded.Inc()

	// days are UTC calendar days, as everywhere in the metrics
	addedAt := added.Date.UTC()
	dayStart := time.Date(addedAt.Year(), addedAt.Month(), addedAt.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	countToday, err := handler.repo.Count(ctx, RecordParams{
		AthleteID: athleteID,
		From:      &dayStart,
		To:        &dayEnd,
	})
	if err != nil {
		log.Errorf("failed to count today's records for athlete %d: %s", athleteID, err)
		countToday = -1
	}

	log.Debugf("new training record added for athlete %d: %d [%s]", athleteID, added.ID, added.Date)

	addedJson, err := json.Marshal(AddRecordResponse{
		Record:     *added,
		CountToday: countToday,
	})
	if err != nil {
		log.Errorf("failed to marshal new training record: %s", err)
		http.Error(w, "error, failed to add training record", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.update")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("update training record, unmarshal json params: %s", err)
		http.Error(w, "update training record failed", http.StatusBadRequest)
		return
	}

	if record.ID <= 0 {
		http.Error(w, "error, id missing", http.StatusBadRequest)
		return
	}
	if err := record.Validate(); err != nil {
		http.Error(w, "error, invalid training record: "+err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := handler.repo.Get(ctx, record.ID)
	if err != nil {
		handler.writeRecordError(w, record.ID, "get", err)
		return
	}
	record.AthleteID = existing.AthleteID
	if record.Date.IsZero() {
		record.Date = existing.Date
	}

	if err := handler.repo.Update(ctx, &record); err != nil {
		handler.writeRecordError(w, record.ID, "update", err)
		return
	}

	handler.cache.Invalidate(record.AthleteID)

	updateRespJson, err := json.Marshal(UpdateRecordResponse{
		UpdatedID: record.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.delete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["rid"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	existing, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.writeRecordError(w, id, "get", err)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		handler.writeRecordError(w, id, "delete", err)
		return
	}

	handler.cache.Invalidate(existing.AthleteID)

	deleteRespJson, err := json.Marshal(DeleteRecordResponse{
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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.list")
	defer span.End()

	vars := mux.Vars(r)
	athleteID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, athlete id NaN", http.StatusBadRequest)
		return
	}
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle get records page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle get records page, from <size> param: %s", err)
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

	from, err := pkg.QueryDate(r, "from")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := pkg.QueryDate(r, "to")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if to != nil {
		// the whole <to> day is included
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	records, total, err := handler.repo.List(ctx, ListParams{
		RecordParams: RecordParams{
			AthleteID: athleteID,
			From:      from,
			To:        to,
		},
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list training records error: %s", err)
		http.Error(w, "failed to get training records", http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []Record{}
	}

	listRespJson, err := json.Marshal(ListResponse{
		Records: records,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal training records error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) writeRecordError(w http.ResponseWriter, id int, op string, err error) {
	if errors.Is(err, ErrRecordNotFound) {
		http.Error(w, "training record not found", http.StatusNotFound)
		return
	}
	log.Errorf("failed to %s training record %d: %s", op, id, err)
	http.Error(w, "error, failed to "+op+" training record", http.StatusInternalServerError)
}

package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"route-suggestion-service/internal/adapters/report"
	"route-suggestion-service/internal/api/dto"
	"route-suggestion-service/internal/domain"
	"route-suggestion-service/internal/platform/obs"
	"route-suggestion-service/internal/ports"
	"route-suggestion-service/internal/services"
)

// SuggestionHandler orchestrates route suggestion runs: it validates the
// request, invokes the engine, stores the result under a fresh job id and
// serves later lookups and exports from the store. The handler owns the
// job-identity concern; the engine stays stateless.
type SuggestionHandler struct {
	Repo  ports.CustomerRepository
	Store ports.ResultStore
}

// Create runs the engine for one depot and returns the stored result.
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	depot := strings.TrimSpace(req.Depot)
	if depot == "" {
		writeError(w, r, http.StatusBadRequest, "depot is required")
		return
	}

	cfg, msg := buildConfig(req)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	anchor := time.Now()
	if req.AnchorDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.AnchorDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "anchor_date must be YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	jobID := newJobID()
	ctx := context.WithValue(r.Context(), obs.JobIDKey, jobID)

	res, err := services.SuggestRoutes(ctx, services.SuggestRequest{
		Depot:  depot,
		Config: cfg,
		Anchor: anchor,
	}, h.Repo)
	if err != nil {
		if errors.Is(err, services.ErrEmptyAfterFiltering) {
			writeError(w, r, http.StatusUnprocessableEntity, "no routable customers for this depot")
			return
		}
		log.Printf("suggest routes failed: depot=%s err=%v", depot, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.Store.Put(ctx, jobID, res); err != nil {
		log.Printf("store result failed: job_id=%s err=%v", jobID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toSuggestionResponse(jobID, res))
}

// Get serves a previously stored result by job id.
func (h *SuggestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := strings.TrimSpace(r.URL.Query().Get("job_id"))
	if jobID == "" {
		writeError(w, r, http.StatusBadRequest, "job_id is required")
		return
	}

	res, ok, err := h.Store.Get(r.Context(), jobID)
	if err != nil {
		log.Printf("fetch result failed: job_id=%s err=%v", jobID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown job id")
		return
	}

	writeJSON(w, r, http.StatusOK, toSuggestionResponse(jobID, res))
}

// Handle dispatches by method so /suggestions serves both create and fetch.
func (h *SuggestionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Create(w, r)
	case http.MethodGet:
		h.Get(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Export streams a stored result as a spreadsheet download.
func (h *SuggestionHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	jobID := strings.TrimSpace(r.URL.Query().Get("job_id"))
	if jobID == "" {
		writeError(w, r, http.StatusBadRequest, "job_id is required")
		return
	}

	res, ok, err := h.Store.Get(r.Context(), jobID)
	if err != nil {
		log.Printf("fetch result failed: job_id=%s err=%v", jobID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown job id")
		return
	}

	f, err := report.BuildWorkbook(res)
	if err != nil {
		log.Printf("build report failed: job_id=%s err=%v", jobID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="routes-`+jobID+`.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("stream report failed: job_id=%s err=%v", jobID, err)
	}
}

// buildConfig applies request overrides on top of the engine defaults and
// validates their ranges. Returns a non-empty message on invalid input.
func buildConfig(req dto.SuggestionRequest) (services.Config, string) {
	cfg := services.DefaultConfig()

	if req.MaxCustomersPerRoute != 0 {
		if req.MaxCustomersPerRoute < 1 || req.MaxCustomersPerRoute > 100 {
			return cfg, "max_customers_per_route must be between 1 and 100"
		}
		cfg.MaxCustomersPerRoute = req.MaxCustomersPerRoute
	}
	if req.MaxVolumePerRoute != 0 {
		if req.MaxVolumePerRoute < 1 {
			return cfg, "max_volume_per_route must be positive"
		}
		cfg.MaxVolumePerRoute = req.MaxVolumePerRoute
	}
	if req.MaxRoutes != 0 {
		if req.MaxRoutes < 1 {
			return cfg, "max_routes must be positive"
		}
		cfg.MaxRoutes = req.MaxRoutes
	}
	if req.MinimumVisitCount != 0 {
		if req.MinimumVisitCount < 1 {
			return cfg, "minimum_visit_count must be positive"
		}
		cfg.MinimumVisitCount = req.MinimumVisitCount
	}

	cfg.WeeklyProjection = req.WeeklyProjection
	if req.WeeklyOrdering != "" {
		switch services.Ordering(req.WeeklyOrdering) {
		case services.OrderByVolume, services.OrderByProximity:
			cfg.WeeklyOrdering = services.Ordering(req.WeeklyOrdering)
		default:
			return cfg, "weekly_ordering must be volume or proximity"
		}
	}

	return cfg, ""
}

func newJobID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read on supported platforms does not fail; fall back to a
		// clock-derived id rather than refusing the request.
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000")))[:16]
	}
	return hex.EncodeToString(b[:])
}

func toSuggestionResponse(jobID string, res *domain.PlanResult) dto.SuggestionResponse {
	out := dto.SuggestionResponse{
		JobID:       jobID,
		Depot:       res.Depot,
		GeneratedAt: res.GeneratedAt,
		Centroid: dto.CoordinatesResponse{
			Lat: res.Centroid.Lat,
			Lon: res.Centroid.Lon,
		},
		CentroidFallback: res.CentroidFallback,
		UnassignedIDs:    res.UnassignedIDs,
		Truncated:        res.Truncated,
		Filter: dto.FilterStatsResponse{
			CustomersBefore: res.Filter.CustomersBefore,
			CustomersAfter:  res.Filter.CustomersAfter,
			RowsBefore:      res.Filter.RowsBefore,
			RowsAfter:       res.Filter.RowsAfter,
			VolumeBefore:    res.Filter.VolumeBefore,
			VolumeAfter:     res.Filter.VolumeAfter,
		},
	}

	if res.Weekly != nil {
		out.Weekly = make([]dto.DayPlanResponse, 0, len(res.Weekly.Days))
		for _, day := range res.Weekly.Days {
			out.Weekly = append(out.Weekly, dto.DayPlanResponse{
				Day:    day.Day,
				Routes: toRouteResponses(day.Routes),
			})
		}
		return out
	}

	out.Routes = toRouteResponses(res.Routes)
	return out
}

func toRouteResponses(routes []*domain.Route) []dto.RouteResponse {
	out := make([]dto.RouteResponse, 0, len(routes))
	for _, rt := range routes {
		customers := make([]dto.RouteCustomerResponse, 0, len(rt.Customers))
		for _, c := range rt.Customers {
			customers = append(customers, dto.RouteCustomerResponse{
				CustomerID: c.CustomerID,
				Name:       c.Name,
				Volume:     c.Volume,
				Lat:        *c.Latitude,
				Lon:        *c.Longitude,
				DistanceKm: c.DistanceKm,
				Deliveries: c.Occurrences,
				RouteDist:  c.RouteDistLabel,
			})
		}
		out = append(out, dto.RouteResponse{
			Number:        rt.Number,
			CustomerCount: rt.CustomerCount,
			TotalVolume:   rt.TotalVolume,
			Customers:     customers,
		})
	}
	return out
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"route-suggestion-service/internal/api/dto"
	"route-suggestion-service/internal/ports"
)

// CustomerHandler exposes read-only access to the imported customer rows.
type CustomerHandler struct {
	Repo ports.CustomerRepository
}

// List returns the imported rows for one depot, or the known depot ids
// when no depot is given.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	depot := strings.TrimSpace(r.URL.Query().Get("depot"))
	if depot == "" {
		depots, err := h.Repo.ListDepots(r.Context())
		if err != nil {
			log.Printf("list depots failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ListDepotsResponse{Depots: depots})
		return
	}

	records, err := h.Repo.ListByDepot(r.Context(), depot)
	if err != nil {
		log.Printf("list customers failed: depot=%s err=%v", depot, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCustomersResponse{
		Depot:     depot,
		Customers: make([]dto.CustomerRowResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Customers = append(res.Customers, dto.CustomerRowResponse{
			CustomerID: rec.CustomerID,
			Name:       rec.Name,
			Depot:      rec.DepotID,
			RawVolume:  rec.RawVolume,
			RouteDist:  rec.RouteDistLabel,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

package http

import (
	"net/http"
	"time"

	"edl-backend/internal/domain"
	"edl-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentals  service.RentalService
	agencies service.AgencyService
}

func NewRentalHandler(rentals service.RentalService, agencies service.AgencyService) *RentalHandler {
	return &RentalHandler{rentals: rentals, agencies: agencies}
}

func (h *RentalHandler) HandleListToday(w http.ResponseWriter, r *http.Request) {
	direction := domain.Direction(r.URL.Query().Get("direction"))
	if direction == "" {
		direction = domain.DirectionDeparture
	}
	rentals, err := h.rentals.ListToday(r.Context(), direction)
	if err != nil {
		respondError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalDetails{}
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	details, err := h.rentals.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

func (h *RentalHandler) HandleSearchHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.RentalFilter{
		ClientName:          q.Get("client"),
		VehicleRegistration: q.Get("registration"),
		AgencyID:            q.Get("agency"),
	}
	if from := q.Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid from date"})
			return
		}
		filter.DateFrom = &t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid to date"})
			return
		}
		filter.DateTo = &t
	}

	rentals, err := h.rentals.SearchHistory(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalDetails{}
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) HandleListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.agencies.ListAgencies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if agencies == nil {
		agencies = []domain.Agency{}
	}
	respondJSON(w, http.StatusOK, agencies)
}

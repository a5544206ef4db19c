package http

import (
	"net/http"

	"edl-backend/internal/domain"
	"edl-backend/internal/service"

	"github.com/gorilla/mux"
)

// ReportHandler exposes the condition-report workflow over REST.
type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var input service.ReportInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	report, err := h.reports.Save(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

type completeRequest struct {
	ClientSignatureURL string `json:"client_signature_url"`
	AgentSignatureURL  string `json:"agent_signature_url"`
}

type completeResponse struct {
	Report    *domain.ConditionReport `json:"report"`
	Delivered bool                    `json:"delivered"`
	Skipped   bool                    `json:"skipped,omitempty"`
	Error     string                  `json:"delivery_error,omitempty"`
}

// HandleComplete finalizes a report. A delivery failure still returns 200:
// completion is irreversible and independent of email success, the
// outcome flags tell the UI what to warn about.
func (h *ReportHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]

	var req completeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	report, outcome, err := h.reports.Complete(r.Context(), reportID, req.ClientSignatureURL, req.AgentSignatureURL)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, completeResponse{
		Report:    report,
		Delivered: outcome.Delivered,
		Skipped:   outcome.Skipped,
		Error:     outcome.Error,
	})
}

func (h *ReportHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.reports.Resend(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

func (h *ReportHandler) HandleAddDamage(w http.ResponseWriter, r *http.Request) {
	var input service.DamageInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	damage, err := h.reports.AddDamage(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, damage)
}

func (h *ReportHandler) HandleRemoveDamage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.reports.RemoveDamage(r.Context(), vars["id"], vars["damageId"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ReportHandler) HandleAddPhoto(w http.ResponseWriter, r *http.Request) {
	var input service.PhotoInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	photo, err := h.reports.AddPhoto(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, photo)
}

package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/gorilla/mux"
)

// Handler exposes one shared Dashboard over HTTP. Every mutating call answers
// with the freshly rendered View.
type Handler struct {
	dash *Dashboard
}

func NewHandler(dash *Dashboard) *Handler {
	return &Handler{dash: dash}
}

type filterRequest struct {
	Search string `json:"search"`
}

func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dash.Render(r.Context()))
}

func (h *Handler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}
	h.dash.SetFilter(req.Search)
	respondJSON(w, http.StatusOK, h.dash.Render(r.Context()))
}

func (h *Handler) NextPage(w http.ResponseWriter, r *http.Request) {
	h.dash.NextPage(r.Context())
	respondJSON(w, http.StatusOK, h.dash.Render(r.Context()))
}

func (h *Handler) PreviousPage(w http.ResponseWriter, r *http.Request) {
	h.dash.PreviousPage()
	respondJSON(w, http.StatusOK, h.dash.Render(r.Context()))
}

func (h *Handler) AddPatient(w http.ResponseWriter, r *http.Request) {
	var req patient.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}
	if _, err := h.dash.Add(r.Context(), req); err != nil {
		if errors.Is(err, patient.ErrValidation) {
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, h.dash.Render(r.Context()))
}

func (h *Handler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(mux.Vars(r)["position"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "Row position must be an integer")
		return
	}
	if _, err := h.dash.DeleteRow(r.Context(), pos); err != nil {
		if errors.Is(err, ErrRowOutOfRange) || errors.Is(err, patient.ErrPatientNotFound) {
			respondError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "deletion_failed", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.dash.Render(r.Context()))
}

// Register mounts the dashboard routes on r, wrapping each with wrap (the
// permission it needs is passed along).
func (h *Handler) Register(r *mux.Router, wrap func(permission string, next http.Handler) http.Handler) {
	if wrap == nil {
		wrap = func(_ string, next http.Handler) http.Handler { return next }
	}
	r.Handle("/dashboard", wrap("patient:view", http.HandlerFunc(h.View))).Methods("GET")
	r.Handle("/dashboard/filter", wrap("patient:view", http.HandlerFunc(h.SetFilter))).Methods("PUT")
	r.Handle("/dashboard/next", wrap("patient:view", http.HandlerFunc(h.NextPage))).Methods("POST")
	r.Handle("/dashboard/previous", wrap("patient:view", http.HandlerFunc(h.PreviousPage))).Methods("POST")
	r.Handle("/dashboard/patients", wrap("patient:create", http.HandlerFunc(h.AddPatient))).Methods("POST")
	r.Handle("/dashboard/rows/{position}", wrap("patient:delete", http.HandlerFunc(h.DeleteRow))).Methods("DELETE")
}

func respondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	respondJSON(w, statusCode, map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

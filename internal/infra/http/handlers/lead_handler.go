package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bytewerk/leadboard/internal/entity"
	"github.com/bytewerk/leadboard/internal/infra/http/middleware"
	"github.com/bytewerk/leadboard/internal/usecase"
)

type LeadHandler struct {
	Service *usecase.LeadService
}

func NewLeadHandler(service *usecase.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// List returns every lead, newest first.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Service.ListLeads(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	sort.Slice(leads, func(i, j int) bool { return leads[i].ID > leads[j].ID })

	if leads == nil {
		leads = []entity.Lead{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"allLeads": leads})
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	lead, err := h.Service.GetLead(r.Context(), id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"lead": lead})
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.Service.CreateLead(r.Context(), input)
	if err != nil {
		var validationErr usecase.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	middleware.RecordLeadCaptured("api")
	writeJSON(w, http.StatusCreated, map[string]any{"lead": lead})
}

// Update applies a partial update; any subset of fields, status included.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.Service.UpdateLead(r.Context(), id, input); err != nil {
		var validationErr usecase.ValidationError
		switch {
		case usecase.IsInvalidStatus(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &validationErr):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, entity.ErrLeadNotFound):
			writeError(w, http.StatusNotFound, "Lead not found")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update lead")
		}
		return
	}

	if input.Status != nil {
		if status, ok := entity.ParseStatus(*input.Status); ok {
			middleware.RecordStatusChange(string(status))
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead updated successfully"})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	err := h.Service.DeleteLead(r.Context(), id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete lead")
		return
	}

	middleware.RecordLeadDeleted()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}

type bulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

// BulkDelete deletes each id independently and reports the split outcome.
func (h *LeadHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids is required")
		return
	}

	result := h.Service.BulkDelete(r.Context(), req.IDs)
	for range result.Deleted {
		middleware.RecordLeadDeleted()
	}

	writeJSON(w, http.StatusOK, result)
}

type exportRequest struct {
	IDs []int `json:"ids"`
}

// Export streams the selected leads as an xlsx attachment; with no ids it
// exports everything.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	leads, err := h.Service.ListLeads(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	if len(req.IDs) > 0 {
		selected := make(map[int]bool, len(req.IDs))
		for _, id := range req.IDs {
			selected[id] = true
		}
		filtered := leads[:0]
		for _, lead := range leads {
			if selected[lead.ID] {
				filtered = append(filtered, lead)
			}
		}
		leads = filtered
	}

	file, err := usecase.ExportLeads(leads)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="selected_leads.xlsx"`)
	if err := file.Write(w); err != nil {
		slog.Error("export write failed", "error", err)
	}
}

func leadID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Lead ID is required")
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Lead ID must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

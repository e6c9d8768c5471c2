package http

import (
	"database/sql"
	"errors"
	"net/http"

	"toolstore-backend/internal/service"

	"github.com/gorilla/mux"
)

// ToolHandler serves catalog reads: tools and their rate profiles.
type ToolHandler struct {
	toolSvc service.ToolService
	rateSvc service.RateProfileService
}

func NewToolHandler(toolSvc service.ToolService, rateSvc service.RateProfileService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc, rateSvc: rateSvc}
}

func (h *ToolHandler) HandleListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListTools(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) HandleToolByCode(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.FindByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) HandleToolsByType(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.FindByType(r.Context(), mux.Vars(r)["type"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) HandleToolsByBrand(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.FindByBrand(r.Context(), mux.Vars(r)["brand"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) HandleListRateProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.rateSvc.ListRateProfiles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ToolHandler) HandleRateProfileByType(w http.ResponseWriter, r *http.Request) {
	profile, err := h.rateSvc.GetRateProfile(r.Context(), mux.Vars(r)["type"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "no rate profile for type " + mux.Vars(r)["type"]})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Package api exposes the recruitment dispatch engine over HTTP for the
// venue workflow engine.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openvenue/recruiter/internal/pkg/logger"
	"github.com/openvenue/recruiter/internal/recruit"
)

// Handlers holds the HTTP handlers for the recruitment API.
type Handlers struct {
	engine *recruit.Engine
}

// NewHandlers creates the handler set.
func NewHandlers(engine *recruit.Engine) *Handlers {
	return &Handlers{engine: engine}
}

type dispatchRequest struct {
	InviteeText string                   `json:"invitee_text"`
	Committee   recruit.CommitteeContext `json:"committee"`
}

// HandleDispatch runs one recruitment batch and returns the status report.
func (h *Handlers) HandleDispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := h.engine.DispatchRecruitment(r.Context(), req.InviteeText, req.Committee)
	if err != nil {
		if errors.Is(err, recruit.ErrNoInvitees) {
			writeError(w, http.StatusBadRequest, "no invitees in input")
			return
		}
		logger.Error("dispatch failed", "err", err.Error())
		writeError(w, http.StatusInternalServerError, "dispatch failed")
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

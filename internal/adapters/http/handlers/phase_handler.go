package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// PhaseHandler handles HTTP requests for the phases of a startup.
type PhaseHandler struct {
	svc ports.TrackerService
}

// NewPhaseHandler creates a new PhaseHandler with the given service port.
func NewPhaseHandler(svc ports.TrackerService) *PhaseHandler {
	return &PhaseHandler{svc: svc}
}

// ListPhases handles GET /api/v1/startups/{startupId}/phases.
func (h *PhaseHandler) ListPhases(w http.ResponseWriter, r *http.Request) {
	startupID, err := pathID(r, "startupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPhaseListResponse(h.svc.GetPhases(r.Context(), startupID)))
}

// CreatePhase handles POST /api/v1/startups/{startupId}/phases.
func (h *PhaseHandler) CreatePhase(w http.ResponseWriter, r *http.Request) {
	startupID, err := pathID(r, "startupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreatePhaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.InsertPhase(r.Context(), req.ToInput(startupID))
	writeResult(w, r, http.StatusCreated, res, err)
}

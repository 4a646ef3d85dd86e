// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// expandTree is the ?expand value that requests the nested read model.
const expandTree = "tree"

// StartupHandler handles HTTP requests for startups.
type StartupHandler struct {
	svc ports.TrackerService
}

// NewStartupHandler creates a new StartupHandler with the given service port.
func NewStartupHandler(svc ports.TrackerService) *StartupHandler {
	return &StartupHandler{svc: svc}
}

// ListStartups handles GET /api/v1/startups. With ?expand=tree every
// startup carries its phases and their tasks.
func (h *StartupHandler) ListStartups(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("expand") == expandTree {
		trees, err := h.svc.GetStartupTree(r.Context())
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ToStartupTreeResponse(trees))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStartupListResponse(h.svc.GetStartups(r.Context())))
}

// CreateStartup handles POST /api/v1/startups.
func (h *StartupHandler) CreateStartup(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStartupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.InsertStartup(r.Context(), req.Name)
	writeResult(w, r, http.StatusCreated, res, err)
}

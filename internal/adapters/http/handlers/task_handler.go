package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// TaskHandler handles HTTP requests for the tasks of a phase.
type TaskHandler struct {
	svc ports.TrackerService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TrackerService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/phases/{phaseId}/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	phaseID, err := pathID(r, "phaseId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(h.svc.GetTasks(r.Context(), phaseID)))
}

// CreateTask handles POST /api/v1/phases/{phaseId}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	phaseID, err := pathID(r, "phaseId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.InsertTask(r.Context(), req.ToInput(phaseID))
	writeResult(w, r, http.StatusCreated, res, err)
}

// ToggleTask handles POST /api/v1/tasks/{taskId}/toggle.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.ToggleTaskCompletion(r.Context(), taskID)
	writeResult(w, r, http.StatusOK, res, err)
}

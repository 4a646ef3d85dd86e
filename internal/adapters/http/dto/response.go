// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// ResultResponse is the body of every successful mutation.
type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToResultResponse converts a domain Result.
func ToResultResponse(res domain.Result) ResultResponse {
	return ResultResponse{Success: res.Success, Message: res.Message}
}

// StartupResponse represents a startup. Phases is only set for tree reads.
type StartupResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Phases []PhaseResponse `json:"phases,omitempty"`
}

// StartupListResponse represents a list of startups.
type StartupListResponse struct {
	Startups []StartupResponse `json:"startups"`
	Count    int               `json:"count"`
}

// PhaseResponse represents a phase. Progress and Tasks are only set for
// tree reads.
type PhaseResponse struct {
	ID          string         `json:"id"`
	StartupID   string         `json:"startup_id"`
	SeqNo       int            `json:"seq_no"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	IsComplete  bool           `json:"is_complete"`
	Locked      bool           `json:"locked"`
	Progress    *int           `json:"progress,omitempty"`
	Tasks       []TaskResponse `json:"tasks,omitempty"`
}

// PhaseListResponse represents the phases of one startup.
type PhaseListResponse struct {
	Phases []PhaseResponse `json:"phases"`
	Count  int             `json:"count"`
}

// TaskResponse represents a task.
type TaskResponse struct {
	ID          string `json:"id"`
	PhaseID     string `json:"phase_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

// TaskListResponse represents the tasks of one phase.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToStartupResponse converts a domain Startup.
func ToStartupResponse(s *startup.Startup) StartupResponse {
	return StartupResponse{ID: s.ID, Name: s.Name}
}

// ToStartupListResponse converts a flat list of startups.
func ToStartupListResponse(startups []startup.Startup) StartupListResponse {
	items := make([]StartupResponse, len(startups))
	for i := range startups {
		items[i] = ToStartupResponse(&startups[i])
	}
	return StartupListResponse{Startups: items, Count: len(items)}
}

// ToStartupTreeResponse converts the nested read model. Every phase carries
// its progress and tasks.
func ToStartupTreeResponse(trees []ports.StartupTree) StartupListResponse {
	items := make([]StartupResponse, len(trees))
	for i := range trees {
		resp := ToStartupResponse(&trees[i].Startup)
		resp.Phases = make([]PhaseResponse, len(trees[i].Phases))
		for j, pt := range trees[i].Phases {
			pr := ToPhaseResponse(&pt.Phase)
			progress := pt.Progress
			pr.Progress = &progress
			pr.Tasks = toTaskResponses(pt.Tasks)
			resp.Phases[j] = pr
		}
		items[i] = resp
	}
	return StartupListResponse{Startups: items, Count: len(items)}
}

// ToPhaseResponse converts a domain Phase.
func ToPhaseResponse(p *phase.Phase) PhaseResponse {
	return PhaseResponse{
		ID:          p.ID,
		StartupID:   p.StartupID,
		SeqNo:       p.SeqNo,
		Title:       p.Title,
		Description: p.Description,
		IsComplete:  p.IsComplete,
		Locked:      p.Locked,
	}
}

// ToPhaseListResponse converts a list of phases.
func ToPhaseListResponse(phases []phase.Phase) PhaseListResponse {
	items := make([]PhaseResponse, len(phases))
	for i := range phases {
		items[i] = ToPhaseResponse(&phases[i])
	}
	return PhaseListResponse{Phases: items, Count: len(items)}
}

// ToTaskResponse converts a domain Task.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		PhaseID:     t.PhaseID,
		Title:       t.Title,
		Description: t.Description,
		IsComplete:  t.IsComplete,
	}
}

// ToTaskListResponse converts a list of tasks.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := toTaskResponses(tasks)
	return TaskListResponse{Tasks: items, Count: len(items)}
}

func toTaskResponses(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

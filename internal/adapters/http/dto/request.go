package dto

import (
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
)

// CreateStartupRequest represents the JSON body for creating a startup.
// The name is passed through unchecked.
type CreateStartupRequest struct {
	Name string `json:"name"`
}

// Validate accepts every startup request; startup names are not checked
// for emptiness or uniqueness.
func (r *CreateStartupRequest) Validate() error {
	return nil
}

// CreatePhaseRequest represents the JSON body for adding a phase to a
// startup. The startup comes from the URL.
type CreatePhaseRequest struct {
	SeqNo       *int   `json:"seq_no"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks that seq_no is present. Titles are taken as given, the
// same as startup names.
func (r *CreatePhaseRequest) Validate() error {
	if r.SeqNo == nil {
		return &domain.ValidationError{Fields: map[string]string{"seq_no": domain.MsgRequired}}
	}
	return nil
}

// ToInput maps the request onto a phase.Input for the given startup.
// Call Validate first.
func (r *CreatePhaseRequest) ToInput(startupID string) phase.Input {
	return phase.Input{
		StartupID:   startupID,
		SeqNo:       *r.SeqNo,
		Title:       r.Title,
		Description: r.Description,
	}
}

// CreateTaskRequest represents the JSON body for adding a task to a phase.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate accepts every task request; titles are not checked.
func (r *CreateTaskRequest) Validate() error {
	return nil
}

// ToInput maps the request onto a task.Input for the given phase.
func (r *CreateTaskRequest) ToInput(phaseID string) task.Input {
	return task.Input{
		PhaseID:     phaseID,
		Title:       r.Title,
		Description: r.Description,
	}
}

package fixture

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// Decode reads one seed document. JSON input is accepted as YAML. Unknown
// keys are rejected so that typos such as "seqNo" do not silently zero a
// field. An empty document decodes to an empty payload.
func Decode(r io.Reader) (DataLoadDTO, error) {
	var dto DataLoadDTO

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return DataLoadDTO{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return dto, nil
}

// ToInitialData converts a seed document to domain records, keeping ids
// and flags exactly as written.
func ToInitialData(dto DataLoadDTO) ports.InitialData {
	data := ports.InitialData{
		Startups: make([]startup.Startup, len(dto.Startups)),
		Phases:   make([]phase.Phase, len(dto.Phases)),
		Tasks:    make([]task.Task, len(dto.Tasks)),
	}
	for i, s := range dto.Startups {
		data.Startups[i] = startup.Startup{ID: s.ID, Name: s.Name}
	}
	for i, p := range dto.Phases {
		data.Phases[i] = phase.Phase{
			ID:          p.ID,
			StartupID:   p.StartupID,
			Title:       p.Title,
			Description: p.Description,
			SeqNo:       p.SeqNo,
			IsComplete:  p.IsComplete,
			Locked:      p.Locked,
		}
	}
	for i, t := range dto.Tasks {
		data.Tasks[i] = task.Task{
			ID:          t.ID,
			PhaseID:     t.PhaseID,
			Title:       t.Title,
			Description: t.Description,
			IsComplete:  t.IsComplete,
		}
	}
	return data
}

// FromInitialData is the inverse of ToInitialData.
func FromInitialData(data ports.InitialData) DataLoadDTO {
	dto := DataLoadDTO{
		Startups: make([]StartupDTO, len(data.Startups)),
		Phases:   make([]PhaseDTO, len(data.Phases)),
		Tasks:    make([]TaskDTO, len(data.Tasks)),
	}
	for i, s := range data.Startups {
		dto.Startups[i] = StartupDTO{ID: s.ID, Name: s.Name}
	}
	for i, p := range data.Phases {
		dto.Phases[i] = PhaseDTO{
			ID:          p.ID,
			StartupID:   p.StartupID,
			Title:       p.Title,
			Description: p.Description,
			SeqNo:       p.SeqNo,
			IsComplete:  p.IsComplete,
			Locked:      p.Locked,
		}
	}
	for i, t := range data.Tasks {
		dto.Tasks[i] = TaskDTO{
			ID:          t.ID,
			PhaseID:     t.PhaseID,
			Title:       t.Title,
			Description: t.Description,
			IsComplete:  t.IsComplete,
		}
	}
	return dto
}

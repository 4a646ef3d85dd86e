// Package fixture implements the Anti-Corruption Layer for seed payloads:
// the on-disk and over-the-wire shape of initial tracker data, its
// translation into domain records and a consistency check over the result.
package fixture

// DataLoadDTO is the top-level seed document. The same tags serve YAML and
// JSON sources.
type DataLoadDTO struct {
	Startups []StartupDTO `yaml:"startups" json:"startups"`
	Phases   []PhaseDTO   `yaml:"phases" json:"phases"`
	Tasks    []TaskDTO    `yaml:"tasks" json:"tasks"`
}

// StartupDTO matches a seed startup entry.
type StartupDTO struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// PhaseDTO matches a seed phase entry. Locked and IsComplete are taken as
// given; Check reports entries that disagree with their predecessor.
type PhaseDTO struct {
	ID          string `yaml:"id" json:"id"`
	StartupID   string `yaml:"startup_id" json:"startup_id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	SeqNo       int    `yaml:"seq_no" json:"seq_no"`
	IsComplete  bool   `yaml:"is_complete" json:"is_complete"`
	Locked      bool   `yaml:"locked" json:"locked"`
}

// TaskDTO matches a seed task entry.
type TaskDTO struct {
	ID          string `yaml:"id" json:"id"`
	PhaseID     string `yaml:"phase_id" json:"phase_id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	IsComplete  bool   `yaml:"is_complete" json:"is_complete"`
}

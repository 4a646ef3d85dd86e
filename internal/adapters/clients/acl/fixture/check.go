package fixture

import (
	"fmt"

	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// Issue is one inconsistency found in seed data.
type Issue struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s '%s': %s", i.Entity, i.ID, i.Reason)
}

// Check reports references to missing records, repeated ids, repeated
// seqNo within a startup and phases whose lock flag disagrees with the
// completion of their predecessor. The tracker accepts such data as-is;
// Check exists so operators can catch it before serving.
//
// Issues are ordered startups, phases, tasks, each in input order.
func Check(data ports.InitialData) []Issue {
	var issues []Issue
	add := func(entity, id, format string, args ...any) {
		issues = append(issues, Issue{Entity: entity, ID: id, Reason: fmt.Sprintf(format, args...)})
	}

	startups := make(map[string]bool, len(data.Startups))
	for _, s := range data.Startups {
		switch {
		case s.ID == "":
			add("startup", s.ID, "missing id")
		case startups[s.ID]:
			add("startup", s.ID, "duplicate id")
		}
		startups[s.ID] = true
	}

	phases := make(map[string]bool, len(data.Phases))
	byStartup := make(map[string][]phase.Phase)
	for _, p := range data.Phases {
		switch {
		case p.ID == "":
			add("phase", p.ID, "missing id")
		case phases[p.ID]:
			add("phase", p.ID, "duplicate id")
		}
		phases[p.ID] = true

		if !startups[p.StartupID] {
			add("phase", p.ID, "startup '%s' does not exist", p.StartupID)
		}
		for _, sibling := range byStartup[p.StartupID] {
			if sibling.SeqNo == p.SeqNo {
				add("phase", p.ID, "seq_no %d already used by '%s'", p.SeqNo, sibling.Title)
				break
			}
		}
		byStartup[p.StartupID] = append(byStartup[p.StartupID], p)
	}

	for _, p := range data.Phases {
		want := phase.LockedBehind(byStartup[p.StartupID], p.SeqNo)
		if p.Locked != want {
			add("phase", p.ID, "locked is %t but predecessor completion implies %t", p.Locked, want)
		}
		if p.Locked && p.IsComplete {
			add("phase", p.ID, "complete phase is locked")
		}
	}

	tasks := make(map[string]bool, len(data.Tasks))
	for _, t := range data.Tasks {
		switch {
		case t.ID == "":
			add("task", t.ID, "missing id")
		case tasks[t.ID]:
			add("task", t.ID, "duplicate id")
		}
		tasks[t.ID] = true

		if !phases[t.PhaseID] {
			add("task", t.ID, "phase '%s' does not exist", t.PhaseID)
		}
	}

	return issues
}

package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/startup"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/task"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

func TestToResultResponse_JSON(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(dto.ToResultResponse(domain.Succeeded("Successfully marked task '%s' as complete", "5")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Successfully marked task '5' as complete"}`, string(body))
}

func TestToStartupListResponse_OmitsPhases(t *testing.T) {
	t.Parallel()

	resp := dto.ToStartupListResponse([]startup.Startup{{ID: "0", Name: "xpto"}})
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"startups":[{"id":"0","name":"xpto"}],"count":1}`, string(body))
}

func TestToStartupListResponse_Empty(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(dto.ToStartupListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"startups":[],"count":0}`, string(body))
}

func TestToStartupTreeResponse(t *testing.T) {
	t.Parallel()

	trees := []ports.StartupTree{{
		Startup: startup.Startup{ID: "0", Name: "xpto"},
		Phases: []ports.PhaseTree{
			{
				Phase:    phase.Phase{ID: "0", StartupID: "0", SeqNo: 0, Title: "Foundation", IsComplete: true},
				Progress: 100,
				Tasks:    []task.Task{{ID: "0", PhaseID: "0", Title: "Setup virtual office", IsComplete: true}},
			},
			{
				Phase:    phase.Phase{ID: "2", StartupID: "0", SeqNo: 2, Title: "Delivery", Locked: true},
				Progress: 0,
			},
		},
	}}

	resp := dto.ToStartupTreeResponse(trees)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Startups[0].Phases, 2)

	foundation := resp.Startups[0].Phases[0]
	require.NotNil(t, foundation.Progress)
	assert.Equal(t, 100, *foundation.Progress)
	assert.Len(t, foundation.Tasks, 1)

	delivery := resp.Startups[0].Phases[1]
	require.NotNil(t, delivery.Progress, "zero progress is still reported in tree reads")
	assert.Equal(t, 0, *delivery.Progress)
	assert.True(t, delivery.Locked)
}

func TestToPhaseListResponse(t *testing.T) {
	t.Parallel()

	resp := dto.ToPhaseListResponse([]phase.Phase{{ID: "1", StartupID: "0", SeqNo: 1, Title: "Discovery", Locked: true}})
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phases":[{"id":"1","startup_id":"0","seq_no":1,"title":"Discovery","description":"","is_complete":false,"locked":true}],"count":1}`, string(body))
}

func TestToTaskListResponse(t *testing.T) {
	t.Parallel()

	resp := dto.ToTaskListResponse([]task.Task{
		{ID: "4", PhaseID: "1", Title: "Create roadmap", IsComplete: true},
		{ID: "5", PhaseID: "1", Title: "Competitor analysis"},
	})
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Create roadmap", resp.Tasks[0].Title)
	assert.False(t, resp.Tasks[1].IsComplete)
}

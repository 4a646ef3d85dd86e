package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestCreatePhaseRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CreatePhaseRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  dto.CreatePhaseRequest{SeqNo: intPtr(0), Title: "Foundation"},
		},
		{
			name: "negative seqNo is accepted",
			req:  dto.CreatePhaseRequest{SeqNo: intPtr(-1), Title: "Pre-seed"},
		},
		{
			name:       "missing seq_no",
			req:        dto.CreatePhaseRequest{Title: "Foundation"},
			wantFields: []string{"seq_no"},
		},
		{
			name: "blank title is accepted",
			req:  dto.CreatePhaseRequest{SeqNo: intPtr(1), Title: "   "},
		},
		{
			name:       "empty body",
			req:        dto.CreatePhaseRequest{},
			wantFields: []string{"seq_no"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if verr.Fields[f] != domain.MsgRequired {
					t.Errorf("Fields[%q] = %q, want %q", f, verr.Fields[f], domain.MsgRequired)
				}
			}
		})
	}
}

func TestCreatePhaseRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := dto.CreatePhaseRequest{SeqNo: intPtr(2), Title: "Delivery", Description: "ship it"}
	in := req.ToInput("0")

	if in.StartupID != "0" || in.SeqNo != 2 || in.Title != "Delivery" || in.Description != "ship it" {
		t.Errorf("ToInput() = %+v", in)
	}
}

func TestCreateTaskRequest(t *testing.T) {
	t.Parallel()

	if err := (&dto.CreateTaskRequest{}).Validate(); err != nil {
		t.Errorf("Validate(empty title) = %v, want nil", err)
	}

	req := dto.CreateTaskRequest{Title: "Release MVP", Description: "v1"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	in := req.ToInput("2")
	if in.PhaseID != "2" || in.Title != "Release MVP" || in.Description != "v1" {
		t.Errorf("ToInput() = %+v", in)
	}
}

func TestCreateStartupRequest_Permissive(t *testing.T) {
	t.Parallel()

	if err := (&dto.CreateStartupRequest{}).Validate(); err != nil {
		t.Errorf("Validate(empty name) = %v, want nil", err)
	}
}

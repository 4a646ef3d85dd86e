package task

import "testing"

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{
			name:  "empty slice returns 0",
			tasks: []Task{},
			want:  0,
		},
		{
			name:  "nil slice returns 0",
			tasks: nil,
			want:  0,
		},
		{
			name:  "single open task",
			tasks: []Task{{IsComplete: false}},
			want:  0,
		},
		{
			name:  "single complete task",
			tasks: []Task{{IsComplete: true}},
			want:  100,
		},
		{
			name: "one of three truncates",
			tasks: []Task{
				{IsComplete: true},
				{IsComplete: false},
				{IsComplete: false},
			},
			want: 33,
		},
		{
			name: "two of three truncates",
			tasks: []Task{
				{IsComplete: true},
				{IsComplete: true},
				{IsComplete: false},
			},
			want: 66,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Progress(tt.tasks); got != tt.want {
				t.Errorf("Progress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAllComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tasks []Task
		want  bool
	}{
		{name: "nil is complete", tasks: nil, want: true},
		{name: "all done", tasks: []Task{{IsComplete: true}, {IsComplete: true}}, want: true},
		{name: "one open", tasks: []Task{{IsComplete: true}, {IsComplete: false}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AllComplete(tt.tasks); got != tt.want {
				t.Errorf("AllComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	done := true
	tk := Task{ID: "3", PhaseID: "1", Title: "Buy domains", IsComplete: true}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "zero filter matches everything", filter: Filter{}, want: true},
		{name: "phase match", filter: OfPhase("1"), want: true},
		{name: "phase mismatch", filter: OfPhase("2"), want: false},
		{name: "phase and completion", filter: Filter{PhaseID: ptr("1"), IsComplete: &done}, want: true},
		{name: "title mismatch", filter: Filter{PhaseID: ptr("1"), Title: ptr("Release MVP")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(tk); got != tt.want {
				t.Errorf("Filter.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }

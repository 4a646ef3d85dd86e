package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/phase-tracker/internal/domain"
)

// recordingWrite records Execute/Rollback calls into a shared journal.
type recordingWrite struct {
	desc       string
	executeErr error
	undoErr    error
	executeFn  func(ctx context.Context) error

	mu         sync.Mutex
	executed   bool
	rolledBack bool
	journal    *journal
}

type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(s string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, s)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

func (w *recordingWrite) Execute(ctx context.Context) error {
	if w.executeFn != nil {
		return w.executeFn(ctx)
	}
	if w.executeErr != nil {
		return w.executeErr
	}
	w.mu.Lock()
	w.executed = true
	w.mu.Unlock()
	if w.journal != nil {
		w.journal.add("execute:" + w.desc)
	}
	return nil
}

func (w *recordingWrite) Rollback(_ context.Context) error {
	w.mu.Lock()
	w.rolledBack = true
	w.mu.Unlock()
	if w.journal != nil {
		w.journal.add("rollback:" + w.desc)
	}
	return w.undoErr
}

func (w *recordingWrite) Description() string { return w.desc }

func (w *recordingWrite) wasRolledBack() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rolledBack
}

func assertJournal(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("journal = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("journal[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

// --- GetOrFetch ---

func TestGetOrFetch_Memoizes(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	fetch := func(_ context.Context) ([]string, error) {
		calls++
		return []string{"Create roadmap", "Competitor analysis"}, nil
	}

	for range 3 {
		got, err := GetOrFetch(rc, "tasks:1", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d tasks, want 2", len(got))
		}
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetchErr := errors.New("store unavailable")

	fetch := func(_ context.Context) (int, error) {
		calls++
		return 0, fetchErr
	}

	_, _ = GetOrFetch(rc, "phase:9", fetch)
	_, err := GetOrFetch(rc, "phase:9", fetch)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("got error %v, want %v", err, fetchErr)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "phase:0", func(_ context.Context) (string, error) { return "Foundation", nil })
	_, err := GetOrFetch(rc, "phase:0", func(_ context.Context) (int, error) { return 0, nil })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
}

func TestStage_ReadYourWrites(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "task:5", func(_ context.Context) (bool, error) { return false, nil })
	if err := rc.Stage("task:5", true, &recordingWrite{desc: "complete task 5"}); err != nil {
		t.Fatalf("Stage: %v", err)
	}

	got, err := GetOrFetch(rc, "task:5", func(_ context.Context) (bool, error) {
		t.Fatal("fetchFn must not run for a staged key")
		return false, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("got unstaged value, want staged true")
	}
	if rc.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", rc.Pending())
	}
}

func TestStage_NilAction(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if err := rc.Stage("task:1", nil, nil); !errors.Is(err, ErrNilAction) {
		t.Fatalf("got %v, want ErrNilAction", err)
	}
}

// --- queueing ---

func TestQueue_AfterCommit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	late := &recordingWrite{desc: "late"}
	if err := rc.AddAction(late); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddAction: got %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.AddGroup(late); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddGroup: got %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Stage("k", 1, late); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Stage: got %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Commit(context.Background()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Commit: got %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddGroup_EmptyQueuesNothing(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if err := rc.AddGroup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rc.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", rc.Pending())
	}
}

func TestAddGroup_NilMember(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if err := rc.AddGroup(&recordingWrite{desc: "lock phase 3"}, nil); !errors.Is(err, ErrNilAction) {
		t.Fatalf("got %v, want ErrNilAction", err)
	}
}

// --- Commit ---

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	j := &journal{}

	_ = rc.AddAction(&recordingWrite{desc: "complete task 5", journal: j})
	_ = rc.AddAction(&recordingWrite{desc: "unlock phase 2", journal: j})
	_ = rc.AddAction(&recordingWrite{desc: "complete phase 1", journal: j})

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	assertJournal(t, j.list(), []string{
		"execute:complete task 5",
		"execute:unlock phase 2",
		"execute:complete phase 1",
	})
}

func TestCommit_FailureRollsBackInReverse(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	j := &journal{}
	boom := errors.New("boom")

	_ = rc.AddAction(&recordingWrite{desc: "reopen task 2", journal: j})
	_ = rc.AddAction(&recordingWrite{desc: "reopen phase 1", journal: j})
	_ = rc.AddAction(&recordingWrite{desc: "lock phase 2", executeErr: boom, journal: j})

	err := rc.Commit(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped boom", err)
	}
	if want := "executing lock phase 2: boom"; err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
	assertJournal(t, j.list(), []string{
		"execute:reopen task 2",
		"execute:reopen phase 1",
		"rollback:reopen phase 1",
		"rollback:reopen task 2",
	})
}

func TestCommit_RollbackErrorDoesNotStopRollback(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	first := &recordingWrite{desc: "first"}
	second := &recordingWrite{desc: "second", undoErr: errors.New("undo failed")}

	_ = rc.AddAction(first)
	_ = rc.AddAction(second)
	_ = rc.AddAction(&recordingWrite{desc: "third", executeErr: errors.New("boom")})

	if err := rc.Commit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !first.wasRolledBack() || !second.wasRolledBack() {
		t.Fatal("both completed writes should be rolled back")
	}
}

func TestCommit_GroupRunsConcurrently(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	var count atomic.Int32
	lock := func(desc string) *recordingWrite {
		return &recordingWrite{desc: desc, executeFn: func(_ context.Context) error {
			count.Add(1)
			return nil
		}}
	}

	_ = rc.AddAction(lock("reopen phase 0"))
	_ = rc.AddGroup(lock("lock phase 1"), lock("lock phase 2"), lock("lock phase 3"))

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if count.Load() != 4 {
		t.Fatalf("got %d executions, want 4", count.Load())
	}
}

func TestCommit_GroupFailureRollsBackEverything(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	prior := &recordingWrite{desc: "reopen phase 0"}
	sibling := &recordingWrite{desc: "lock phase 1"}
	failing := &recordingWrite{desc: "lock phase 2", executeErr: errors.New("boom")}

	_ = rc.AddAction(prior)
	_ = rc.AddGroup(sibling, failing)

	if err := rc.Commit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !prior.wasRolledBack() {
		t.Fatal("write before the group should be rolled back")
	}
	sibling.mu.Lock()
	executed, rolledBack := sibling.executed, sibling.rolledBack
	sibling.mu.Unlock()
	if executed && !rolledBack {
		t.Fatal("completed group member should be rolled back")
	}
}

func TestCommit_GroupCancelsSlowMembers(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	canceled := make(chan struct{})
	slow := &recordingWrite{desc: "slow", executeFn: func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			close(canceled)
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	}}
	_ = rc.AddGroup(slow, &recordingWrite{desc: "fail", executeErr: errors.New("boom")})

	_ = rc.Commit(context.Background())

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("slow member was not canceled")
	}
}

func TestGroupDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actions []domain.Action
		want    string
	}{
		{name: "empty", actions: nil, want: "no writes"},
		{name: "single", actions: []domain.Action{&recordingWrite{desc: "lock phase 2"}}, want: "lock phase 2"},
		{
			name:    "multiple",
			actions: []domain.Action{&recordingWrite{desc: "lock phase 2"}, &recordingWrite{desc: "lock phase 3"}},
			want:    "2 writes: lock phase 2, ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := &actionGroup{actions: tt.actions}
			if got := g.description(); got != tt.want {
				t.Fatalf("description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	state := "locked"
	f := Func{
		Desc: "unlock phase 2",
		Do:   func(context.Context) error { state = "unlocked"; return nil },
		Undo: func(context.Context) error { state = "locked"; return nil },
	}

	if err := f.Execute(context.Background()); err != nil || state != "unlocked" {
		t.Fatalf("Execute: state=%q err=%v", state, err)
	}
	if err := f.Rollback(context.Background()); err != nil || state != "locked" {
		t.Fatalf("Rollback: state=%q err=%v", state, err)
	}
	if f.Description() != "unlock phase 2" {
		t.Fatalf("Description() = %q", f.Description())
	}
	if err := (Func{Do: f.Do}).Rollback(context.Background()); err != nil {
		t.Fatalf("nil Undo: %v", err)
	}
}

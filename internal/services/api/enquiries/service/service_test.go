package service

import (
	"context"
	"testing"
	"time"

	"buyside/internal/modkit/repokit"
	"buyside/internal/platform/store"
	"buyside/internal/services/api/enquiries/domain"
	"buyside/internal/services/api/enquiries/repo"
)

// memRepo is an in-memory repo.Repo used only by this file
type memRepo struct {
	rows []domain.Enquiry

	lastAgent string
	lastLimit int
}

func (m *memRepo) Insert(_ context.Context, e domain.Enquiry) error {
	m.rows = append(m.rows, e)
	return nil
}

func (m *memRepo) ListByAgent(_ context.Context, agentID string, limit int) ([]domain.Enquiry, error) {
	m.lastAgent, m.lastLimit = agentID, limit
	var out []domain.Enquiry
	for _, e := range m.rows {
		if e.AgentID == agentID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTx runs the tx body directly against itself; the memRepo ignores the Queryer
type fakeTx struct{}

func (fakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(fakeTx{}) }

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	var zero store.CommandTag
	return zero, nil
}

func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	var zero store.Rows
	return zero, nil
}

func (fakeTx) QueryRow(context.Context, string, ...any) store.Row {
	var zero store.Row
	return zero
}

func newTestService(m *memRepo, cfg Config) *Service {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m })
	svc := New(fakeTx{}, binder, cfg)
	svc.WithClock(func() time.Time { return time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC) })
	return svc
}

func TestSubmitStampsIDAndTime(t *testing.T) {
	t.Parallel()

	m := &memRepo{}
	svc := newTestService(m, Config{})

	e, err := svc.Submit(context.Background(), domain.SubmitInput{
		AgentID: "2f1a9c3e-7b6d-4e21-9f1a-0c3d5e7b9a11",
		Name:    "Priya Raman",
		Email:   "priya@example.com",
		Budget:  "$900k-$1.1M",
		Message: "Looking for a buyer's agent covering the inner west.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("Submit left ID empty")
	}
	want := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	if !e.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v, want %v", e.CreatedAt, want)
	}
	if len(m.rows) != 1 || m.rows[0].ID != e.ID {
		t.Fatalf("stored rows = %+v, want the submitted enquiry", m.rows)
	}
}

func TestListClampsLimit(t *testing.T) {
	t.Parallel()

	m := &memRepo{}
	svc := newTestService(m, Config{HardLimit: 25})

	agent := "2f1a9c3e-7b6d-4e21-9f1a-0c3d5e7b9a11"

	if _, err := svc.List(context.Background(), domain.ListInput{AgentID: agent, Limit: 500}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if m.lastLimit != 25 {
		t.Fatalf("limit = %d, want clamp to 25", m.lastLimit)
	}

	if _, err := svc.List(context.Background(), domain.ListInput{AgentID: agent, Limit: 5}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if m.lastLimit != 5 || m.lastAgent != agent {
		t.Fatalf("limit/agent = %d/%q, want 5/%q", m.lastLimit, m.lastAgent, agent)
	}
}

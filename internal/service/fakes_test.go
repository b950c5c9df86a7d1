package service

import (
	"context"
	"sync"
	"testing"

	"care-companion/internal/model"
	"care-companion/internal/store"
	"care-companion/internal/worker"

	"github.com/google/uuid"
)

func newTestPool(t *testing.T) worker.Pool {
	t.Helper()
	p := worker.NewPool(2)
	t.Cleanup(p.Stop)
	return p
}

// memUsers 以 map 模擬 users 資料表，email 唯一
type memUsers struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
	creates int

	findErr   error
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*model.User{}}
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, u *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, store.ErrDuplicate
	}
	u.ID = uuid.New()
	cp := *u
	m.byEmail[u.Email] = &cp
	return u, nil
}

type fakePlans struct {
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]model.CarePlan, error)
	CreateFn      func(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error)
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*model.CarePlan, error)
	UpdateFn      func(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error)
	DeleteFn      func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (f *fakePlans) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CarePlan, error) {
	return f.ListByOwnerFn(ctx, ownerID)
}

func (f *fakePlans) Create(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error) {
	return f.CreateFn(ctx, p)
}

func (f *fakePlans) FindByID(ctx context.Context, id uuid.UUID) (*model.CarePlan, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakePlans) Update(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error) {
	return f.UpdateFn(ctx, p)
}

func (f *fakePlans) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return f.DeleteFn(ctx, ownerID, id)
}

type fakeFaqs struct {
	ListSavedByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]model.SavedFaq, error)
	ListQuestionsFn    func(ctx context.Context, category, search string) ([]model.FaqQuestion, error)
}

func (f *fakeFaqs) ListSavedByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.SavedFaq, error) {
	return f.ListSavedByOwnerFn(ctx, ownerID)
}

func (f *fakeFaqs) ListQuestions(ctx context.Context, category, search string) ([]model.FaqQuestion, error) {
	return f.ListQuestionsFn(ctx, category, search)
}

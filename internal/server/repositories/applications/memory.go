package applications

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/server/models"
)

// InMemory is a Repository kept entirely in process memory. It mirrors the
// Postgres semantics (not-found sentinels, registration number uniqueness,
// created_at descending list order) so services can be tested against it.
type InMemory struct {
	mu   sync.RWMutex
	byID map[string]*models.Application
	now  func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID: make(map[string]*models.Application),
		now:  time.Now,
	}
}

func (r *InMemory) clone(a *models.Application) *models.Application {
	cp := *a
	return &cp
}

func (r *InMemory) Insert(ctx context.Context, app *models.Application) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.RegistrationNumber == app.RegistrationNumber {
			return nil, common.ErrAlreadyExists
		}
	}

	stored := r.clone(app)
	stored.ID = uuid.New().String()
	stored.CreatedAt = r.now()
	r.byID[stored.ID] = stored

	return r.clone(stored), nil
}

func (r *InMemory) FindByRegistrationNumber(ctx context.Context, regNo string) (*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.RegistrationNumber == regNo {
			return r.clone(a), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemory) FindByAadhaar(ctx context.Context, aadhaar string) (*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.Aadhaar == aadhaar {
			return r.clone(a), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemory) ListAll(ctx context.Context) ([]*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apps := make([]*models.Application, 0, len(r.byID))
	for _, a := range r.byID {
		apps = append(apps, r.clone(a))
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *InMemory) Update(ctx context.Context, id string, upd *models.ApplicationUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	upd.Apply(a)
	return nil
}

func (r *InMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

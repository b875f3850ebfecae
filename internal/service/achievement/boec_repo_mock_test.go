package achievement

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ boecRepo = &boecRepoMock{}

type boecRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Boec, error)
	ListIDsFunc          func(ctx context.Context) ([]uuid.UUID, error)

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListIDs []struct{ Ctx context.Context }
	}
	lockGetByIDForUpdate sync.RWMutex
	lockListIDs          sync.RWMutex
}

func (mock *boecRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Boec, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("boecRepoMock.GetByIDForUpdateFunc: method is nil but boecRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *boecRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *boecRepoMock) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if mock.ListIDsFunc == nil {
		panic("boecRepoMock.ListIDsFunc: method is nil but boecRepo.ListIDs was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListIDs.Lock()
	mock.calls.ListIDs = append(mock.calls.ListIDs, callInfo)
	mock.lockListIDs.Unlock()
	return mock.ListIDsFunc(ctx)
}

func (mock *boecRepoMock) ListIDsCalls() []struct{ Ctx context.Context } {
	mock.lockListIDs.RLock()
	calls := mock.calls.ListIDs
	mock.lockListIDs.RUnlock()
	return calls
}

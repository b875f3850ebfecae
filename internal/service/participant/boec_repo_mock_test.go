package participant

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ boecRepo = &boecRepoMock{}

type boecRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Boec, error)
	LastSeasonBrigadeFunc func(ctx context.Context, boecID uuid.UUID) (*uuid.UUID, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LastSeasonBrigade []struct {
			Ctx    context.Context
			BoecID uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockLastSeasonBrigade sync.RWMutex
}

func (mock *boecRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Boec, error) {
	if mock.GetByIDFunc == nil {
		panic("boecRepoMock.GetByIDFunc: method is nil but boecRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boecRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *boecRepoMock) LastSeasonBrigade(ctx context.Context, boecID uuid.UUID) (*uuid.UUID, error) {
	if mock.LastSeasonBrigadeFunc == nil {
		panic("boecRepoMock.LastSeasonBrigadeFunc: method is nil but boecRepo.LastSeasonBrigade was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BoecID uuid.UUID
	}{Ctx: ctx, BoecID: boecID}
	mock.lockLastSeasonBrigade.Lock()
	mock.calls.LastSeasonBrigade = append(mock.calls.LastSeasonBrigade, callInfo)
	mock.lockLastSeasonBrigade.Unlock()
	return mock.LastSeasonBrigadeFunc(ctx, boecID)
}

func (mock *boecRepoMock) LastSeasonBrigadeCalls() []struct {
	Ctx    context.Context
	BoecID uuid.UUID
} {
	mock.lockLastSeasonBrigade.RLock()
	calls := mock.calls.LastSeasonBrigade
	mock.lockLastSeasonBrigade.RUnlock()
	return calls
}

package brigade

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ brigadeRepo = &brigadeRepoMock{}

type brigadeRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Brigade, error)
	UpdateStateFunc func(ctx context.Context, id uuid.UUID, state domain.BrigadeState) (*domain.Brigade, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateState []struct {
			Ctx   context.Context
			ID    uuid.UUID
			State domain.BrigadeState
		}
	}
	lockGetByID     sync.RWMutex
	lockUpdateState sync.RWMutex
}

func (mock *brigadeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brigade, error) {
	if mock.GetByIDFunc == nil {
		panic("brigadeRepoMock.GetByIDFunc: method is nil but brigadeRepo.GetByID was just called")
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

func (mock *brigadeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *brigadeRepoMock) UpdateState(ctx context.Context, id uuid.UUID, state domain.BrigadeState) (*domain.Brigade, error) {
	if mock.UpdateStateFunc == nil {
		panic("brigadeRepoMock.UpdateStateFunc: method is nil but brigadeRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		State domain.BrigadeState
	}{Ctx: ctx, ID: id, State: state}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, state)
}

func (mock *brigadeRepoMock) UpdateStateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	State domain.BrigadeState
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

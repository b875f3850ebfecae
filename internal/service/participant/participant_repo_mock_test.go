package participant

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ participantRepo = &participantRepoMock{}

type participantRepoMock struct {
	CreateFunc           func(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	SetApprovedFunc      func(ctx context.Context, id uuid.UUID, approved bool) (*domain.Participant, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Participant
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetApproved []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Approved bool
		}
	}
	lockCreate           sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockSetApproved      sync.RWMutex
}

func (mock *participantRepoMock) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	if mock.CreateFunc == nil {
		panic("participantRepoMock.CreateFunc: method is nil but participantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Participant
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *participantRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Participant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *participantRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("participantRepoMock.GetByIDForUpdateFunc: method is nil but participantRepo.GetByIDForUpdate was just called")
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

func (mock *participantRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *participantRepoMock) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*domain.Participant, error) {
	if mock.SetApprovedFunc == nil {
		panic("participantRepoMock.SetApprovedFunc: method is nil but participantRepo.SetApproved was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Approved bool
	}{Ctx: ctx, ID: id, Approved: approved}
	mock.lockSetApproved.Lock()
	mock.calls.SetApproved = append(mock.calls.SetApproved, callInfo)
	mock.lockSetApproved.Unlock()
	return mock.SetApprovedFunc(ctx, id, approved)
}

func (mock *participantRepoMock) SetApprovedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Approved bool
} {
	mock.lockSetApproved.RLock()
	calls := mock.calls.SetApproved
	mock.lockSetApproved.RUnlock()
	return calls
}

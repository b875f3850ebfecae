package event

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ApprovedDefaultCountsFunc func(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error)
	AssignTicketCodesFunc     func(ctx context.Context, eventID uuid.UUID) (int, error)
	CountTicketsFunc          func(ctx context.Context, eventID uuid.UUID) (int, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetByIDForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListQuotasFunc            func(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error)
	RefreshTargetsFunc        func(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	ReplaceQuotasFunc         func(ctx context.Context, eventID uuid.UUID, quotas []domain.EventQuota) error
	UpdateStateFunc           func(ctx context.Context, id uuid.UUID, state domain.EventState) error

	calls struct {
		ApprovedDefaultCounts []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		AssignTicketCodes []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		CountTickets []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListQuotas []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		RefreshTargets []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		ReplaceQuotas []struct {
			Ctx     context.Context
			EventID uuid.UUID
			Quotas  []domain.EventQuota
		}
		UpdateState []struct {
			Ctx   context.Context
			ID    uuid.UUID
			State domain.EventState
		}
	}
	lockApprovedDefaultCounts sync.RWMutex
	lockAssignTicketCodes     sync.RWMutex
	lockCountTickets          sync.RWMutex
	lockGetByID               sync.RWMutex
	lockGetByIDForUpdate      sync.RWMutex
	lockListQuotas            sync.RWMutex
	lockRefreshTargets        sync.RWMutex
	lockReplaceQuotas         sync.RWMutex
	lockUpdateState           sync.RWMutex
}

func (mock *eventRepoMock) ApprovedDefaultCounts(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error) {
	if mock.ApprovedDefaultCountsFunc == nil {
		panic("eventRepoMock.ApprovedDefaultCountsFunc: method is nil but eventRepo.ApprovedDefaultCounts was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockApprovedDefaultCounts.Lock()
	mock.calls.ApprovedDefaultCounts = append(mock.calls.ApprovedDefaultCounts, callInfo)
	mock.lockApprovedDefaultCounts.Unlock()
	return mock.ApprovedDefaultCountsFunc(ctx, eventID)
}

func (mock *eventRepoMock) ApprovedDefaultCountsCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockApprovedDefaultCounts.RLock()
	calls := mock.calls.ApprovedDefaultCounts
	mock.lockApprovedDefaultCounts.RUnlock()
	return calls
}

func (mock *eventRepoMock) AssignTicketCodes(ctx context.Context, eventID uuid.UUID) (int, error) {
	if mock.AssignTicketCodesFunc == nil {
		panic("eventRepoMock.AssignTicketCodesFunc: method is nil but eventRepo.AssignTicketCodes was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockAssignTicketCodes.Lock()
	mock.calls.AssignTicketCodes = append(mock.calls.AssignTicketCodes, callInfo)
	mock.lockAssignTicketCodes.Unlock()
	return mock.AssignTicketCodesFunc(ctx, eventID)
}

func (mock *eventRepoMock) AssignTicketCodesCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockAssignTicketCodes.RLock()
	calls := mock.calls.AssignTicketCodes
	mock.lockAssignTicketCodes.RUnlock()
	return calls
}

func (mock *eventRepoMock) CountTickets(ctx context.Context, eventID uuid.UUID) (int, error) {
	if mock.CountTicketsFunc == nil {
		panic("eventRepoMock.CountTicketsFunc: method is nil but eventRepo.CountTickets was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockCountTickets.Lock()
	mock.calls.CountTickets = append(mock.calls.CountTickets, callInfo)
	mock.lockCountTickets.Unlock()
	return mock.CountTicketsFunc(ctx, eventID)
}

func (mock *eventRepoMock) CountTicketsCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockCountTickets.RLock()
	calls := mock.calls.CountTickets
	mock.lockCountTickets.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("eventRepoMock.GetByIDForUpdateFunc: method is nil but eventRepo.GetByIDForUpdate was just called")
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

func (mock *eventRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) ListQuotas(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error) {
	if mock.ListQuotasFunc == nil {
		panic("eventRepoMock.ListQuotasFunc: method is nil but eventRepo.ListQuotas was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockListQuotas.Lock()
	mock.calls.ListQuotas = append(mock.calls.ListQuotas, callInfo)
	mock.lockListQuotas.Unlock()
	return mock.ListQuotasFunc(ctx, eventID)
}

func (mock *eventRepoMock) ListQuotasCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockListQuotas.RLock()
	calls := mock.calls.ListQuotas
	mock.lockListQuotas.RUnlock()
	return calls
}

func (mock *eventRepoMock) RefreshTargets(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	if mock.RefreshTargetsFunc == nil {
		panic("eventRepoMock.RefreshTargetsFunc: method is nil but eventRepo.RefreshTargets was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockRefreshTargets.Lock()
	mock.calls.RefreshTargets = append(mock.calls.RefreshTargets, callInfo)
	mock.lockRefreshTargets.Unlock()
	return mock.RefreshTargetsFunc(ctx, eventID)
}

func (mock *eventRepoMock) RefreshTargetsCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockRefreshTargets.RLock()
	calls := mock.calls.RefreshTargets
	mock.lockRefreshTargets.RUnlock()
	return calls
}

func (mock *eventRepoMock) ReplaceQuotas(ctx context.Context, eventID uuid.UUID, quotas []domain.EventQuota) error {
	if mock.ReplaceQuotasFunc == nil {
		panic("eventRepoMock.ReplaceQuotasFunc: method is nil but eventRepo.ReplaceQuotas was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		Quotas  []domain.EventQuota
	}{Ctx: ctx, EventID: eventID, Quotas: quotas}
	mock.lockReplaceQuotas.Lock()
	mock.calls.ReplaceQuotas = append(mock.calls.ReplaceQuotas, callInfo)
	mock.lockReplaceQuotas.Unlock()
	return mock.ReplaceQuotasFunc(ctx, eventID, quotas)
}

func (mock *eventRepoMock) ReplaceQuotasCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	Quotas  []domain.EventQuota
} {
	mock.lockReplaceQuotas.RLock()
	calls := mock.calls.ReplaceQuotas
	mock.lockReplaceQuotas.RUnlock()
	return calls
}

func (mock *eventRepoMock) UpdateState(ctx context.Context, id uuid.UUID, state domain.EventState) error {
	if mock.UpdateStateFunc == nil {
		panic("eventRepoMock.UpdateStateFunc: method is nil but eventRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		State domain.EventState
	}{Ctx: ctx, ID: id, State: state}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, state)
}

func (mock *eventRepoMock) UpdateStateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	State domain.EventState
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

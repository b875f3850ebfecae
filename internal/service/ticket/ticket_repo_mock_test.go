package ticket

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ ticketRepo = &ticketRepoMock{}

type ticketRepoMock struct {
	CreateScanFunc       func(ctx context.Context, s *domain.TicketScan) (*domain.TicketScan, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	LastFinalScanFunc    func(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error)
	LastScanFunc         func(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error)
	UnsetFinalFunc       func(ctx context.Context, scanID uuid.UUID) error

	calls struct {
		CreateScan []struct {
			Ctx context.Context
			S   *domain.TicketScan
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LastFinalScan []struct {
			Ctx      context.Context
			TicketID uuid.UUID
		}
		LastScan []struct {
			Ctx      context.Context
			TicketID uuid.UUID
		}
		UnsetFinal []struct {
			Ctx    context.Context
			ScanID uuid.UUID
		}
	}
	lockCreateScan       sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockLastFinalScan    sync.RWMutex
	lockLastScan         sync.RWMutex
	lockUnsetFinal       sync.RWMutex
}

func (mock *ticketRepoMock) CreateScan(ctx context.Context, s *domain.TicketScan) (*domain.TicketScan, error) {
	if mock.CreateScanFunc == nil {
		panic("ticketRepoMock.CreateScanFunc: method is nil but ticketRepo.CreateScan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.TicketScan
	}{Ctx: ctx, S: s}
	mock.lockCreateScan.Lock()
	mock.calls.CreateScan = append(mock.calls.CreateScan, callInfo)
	mock.lockCreateScan.Unlock()
	return mock.CreateScanFunc(ctx, s)
}

func (mock *ticketRepoMock) CreateScanCalls() []struct {
	Ctx context.Context
	S   *domain.TicketScan
} {
	mock.lockCreateScan.RLock()
	calls := mock.calls.CreateScan
	mock.lockCreateScan.RUnlock()
	return calls
}

func (mock *ticketRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("ticketRepoMock.GetByIDForUpdateFunc: method is nil but ticketRepo.GetByIDForUpdate was just called")
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

func (mock *ticketRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *ticketRepoMock) LastFinalScan(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error) {
	if mock.LastFinalScanFunc == nil {
		panic("ticketRepoMock.LastFinalScanFunc: method is nil but ticketRepo.LastFinalScan was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TicketID uuid.UUID
	}{Ctx: ctx, TicketID: ticketID}
	mock.lockLastFinalScan.Lock()
	mock.calls.LastFinalScan = append(mock.calls.LastFinalScan, callInfo)
	mock.lockLastFinalScan.Unlock()
	return mock.LastFinalScanFunc(ctx, ticketID)
}

func (mock *ticketRepoMock) LastFinalScanCalls() []struct {
	Ctx      context.Context
	TicketID uuid.UUID
} {
	mock.lockLastFinalScan.RLock()
	calls := mock.calls.LastFinalScan
	mock.lockLastFinalScan.RUnlock()
	return calls
}

func (mock *ticketRepoMock) LastScan(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error) {
	if mock.LastScanFunc == nil {
		panic("ticketRepoMock.LastScanFunc: method is nil but ticketRepo.LastScan was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TicketID uuid.UUID
	}{Ctx: ctx, TicketID: ticketID}
	mock.lockLastScan.Lock()
	mock.calls.LastScan = append(mock.calls.LastScan, callInfo)
	mock.lockLastScan.Unlock()
	return mock.LastScanFunc(ctx, ticketID)
}

func (mock *ticketRepoMock) LastScanCalls() []struct {
	Ctx      context.Context
	TicketID uuid.UUID
} {
	mock.lockLastScan.RLock()
	calls := mock.calls.LastScan
	mock.lockLastScan.RUnlock()
	return calls
}

func (mock *ticketRepoMock) UnsetFinal(ctx context.Context, scanID uuid.UUID) error {
	if mock.UnsetFinalFunc == nil {
		panic("ticketRepoMock.UnsetFinalFunc: method is nil but ticketRepo.UnsetFinal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}{Ctx: ctx, ScanID: scanID}
	mock.lockUnsetFinal.Lock()
	mock.calls.UnsetFinal = append(mock.calls.UnsetFinal, callInfo)
	mock.lockUnsetFinal.Unlock()
	return mock.UnsetFinalFunc(ctx, scanID)
}

func (mock *ticketRepoMock) UnsetFinalCalls() []struct {
	Ctx    context.Context
	ScanID uuid.UUID
} {
	mock.lockUnsetFinal.RLock()
	calls := mock.calls.UnsetFinal
	mock.lockUnsetFinal.RUnlock()
	return calls
}

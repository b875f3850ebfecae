package activity

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ boecRepo = &boecRepoMock{}

type boecRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Boec, error)
	IncrementUnreadFunc  func(ctx context.Context, id uuid.UUID, delta int) (int, error)
	ResetUnreadFunc      func(ctx context.Context, id uuid.UUID) error
	SetUnreadFunc        func(ctx context.Context, id uuid.UUID, count int) error

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementUnread []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
		ResetUnread []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetUnread []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Count int
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockIncrementUnread  sync.RWMutex
	lockResetUnread      sync.RWMutex
	lockSetUnread        sync.RWMutex
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

func (mock *boecRepoMock) IncrementUnread(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if mock.IncrementUnreadFunc == nil {
		panic("boecRepoMock.IncrementUnreadFunc: method is nil but boecRepo.IncrementUnread was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{Ctx: ctx, ID: id, Delta: delta}
	mock.lockIncrementUnread.Lock()
	mock.calls.IncrementUnread = append(mock.calls.IncrementUnread, callInfo)
	mock.lockIncrementUnread.Unlock()
	return mock.IncrementUnreadFunc(ctx, id, delta)
}

func (mock *boecRepoMock) IncrementUnreadCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	mock.lockIncrementUnread.RLock()
	calls := mock.calls.IncrementUnread
	mock.lockIncrementUnread.RUnlock()
	return calls
}

func (mock *boecRepoMock) ResetUnread(ctx context.Context, id uuid.UUID) error {
	if mock.ResetUnreadFunc == nil {
		panic("boecRepoMock.ResetUnreadFunc: method is nil but boecRepo.ResetUnread was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockResetUnread.Lock()
	mock.calls.ResetUnread = append(mock.calls.ResetUnread, callInfo)
	mock.lockResetUnread.Unlock()
	return mock.ResetUnreadFunc(ctx, id)
}

func (mock *boecRepoMock) ResetUnreadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockResetUnread.RLock()
	calls := mock.calls.ResetUnread
	mock.lockResetUnread.RUnlock()
	return calls
}

func (mock *boecRepoMock) SetUnread(ctx context.Context, id uuid.UUID, count int) error {
	if mock.SetUnreadFunc == nil {
		panic("boecRepoMock.SetUnreadFunc: method is nil but boecRepo.SetUnread was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Count int
	}{Ctx: ctx, ID: id, Count: count}
	mock.lockSetUnread.Lock()
	mock.calls.SetUnread = append(mock.calls.SetUnread, callInfo)
	mock.lockSetUnread.Unlock()
	return mock.SetUnreadFunc(ctx, id, count)
}

func (mock *boecRepoMock) SetUnreadCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Count int
} {
	mock.lockSetUnread.RLock()
	calls := mock.calls.SetUnread
	mock.lockSetUnread.RUnlock()
	return calls
}

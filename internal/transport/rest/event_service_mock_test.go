package rest

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/event"
	"github.com/google/uuid"
)

var _ eventService = &eventServiceMock{}

type eventServiceMock struct {
	DistributeQuotasFunc func(ctx context.Context, input event.DistributeQuotasInput) ([]domain.EventQuota, error)
	ListQuotasFunc       func(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error)
	TransitionFunc       func(ctx context.Context, eventID uuid.UUID, name domain.Transition) (*event.TransitionResult, error)

	calls struct {
		DistributeQuotas []struct {
			Ctx   context.Context
			Input event.DistributeQuotasInput
		}
		ListQuotas []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		Transition []struct {
			Ctx     context.Context
			EventID uuid.UUID
			Name    domain.Transition
		}
	}
	lockDistributeQuotas sync.RWMutex
	lockListQuotas       sync.RWMutex
	lockTransition       sync.RWMutex
}

func (mock *eventServiceMock) DistributeQuotas(ctx context.Context, input event.DistributeQuotasInput) ([]domain.EventQuota, error) {
	if mock.DistributeQuotasFunc == nil {
		panic("eventServiceMock.DistributeQuotasFunc: method is nil but eventService.DistributeQuotas was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.DistributeQuotasInput
	}{Ctx: ctx, Input: input}
	mock.lockDistributeQuotas.Lock()
	mock.calls.DistributeQuotas = append(mock.calls.DistributeQuotas, callInfo)
	mock.lockDistributeQuotas.Unlock()
	return mock.DistributeQuotasFunc(ctx, input)
}

func (mock *eventServiceMock) DistributeQuotasCalls() []struct {
	Ctx   context.Context
	Input event.DistributeQuotasInput
} {
	mock.lockDistributeQuotas.RLock()
	calls := mock.calls.DistributeQuotas
	mock.lockDistributeQuotas.RUnlock()
	return calls
}

func (mock *eventServiceMock) ListQuotas(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error) {
	if mock.ListQuotasFunc == nil {
		panic("eventServiceMock.ListQuotasFunc: method is nil but eventService.ListQuotas was just called")
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

func (mock *eventServiceMock) ListQuotasCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockListQuotas.RLock()
	calls := mock.calls.ListQuotas
	mock.lockListQuotas.RUnlock()
	return calls
}

func (mock *eventServiceMock) Transition(ctx context.Context, eventID uuid.UUID, name domain.Transition) (*event.TransitionResult, error) {
	if mock.TransitionFunc == nil {
		panic("eventServiceMock.TransitionFunc: method is nil but eventService.Transition was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
		Name    domain.Transition
	}{Ctx: ctx, EventID: eventID, Name: name}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, eventID, name)
}

func (mock *eventServiceMock) TransitionCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
	Name    domain.Transition
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

package rest

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/participant"
	"github.com/google/uuid"
)

var _ participantService = &participantServiceMock{}

type participantServiceMock struct {
	ApproveFunc   func(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error)
	RegisterFunc  func(ctx context.Context, input participant.RegisterInput) (*domain.Participant, error)
	UnapproveFunc func(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error)

	calls struct {
		Approve []struct {
			Ctx           context.Context
			ParticipantID uuid.UUID
		}
		Register []struct {
			Ctx   context.Context
			Input participant.RegisterInput
		}
		Unapprove []struct {
			Ctx           context.Context
			ParticipantID uuid.UUID
		}
	}
	lockApprove   sync.RWMutex
	lockRegister  sync.RWMutex
	lockUnapprove sync.RWMutex
}

func (mock *participantServiceMock) Approve(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error) {
	if mock.ApproveFunc == nil {
		panic("participantServiceMock.ApproveFunc: method is nil but participantService.Approve was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ParticipantID uuid.UUID
	}{Ctx: ctx, ParticipantID: participantID}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, participantID)
}

func (mock *participantServiceMock) ApproveCalls() []struct {
	Ctx           context.Context
	ParticipantID uuid.UUID
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *participantServiceMock) Register(ctx context.Context, input participant.RegisterInput) (*domain.Participant, error) {
	if mock.RegisterFunc == nil {
		panic("participantServiceMock.RegisterFunc: method is nil but participantService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input participant.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *participantServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input participant.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *participantServiceMock) Unapprove(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error) {
	if mock.UnapproveFunc == nil {
		panic("participantServiceMock.UnapproveFunc: method is nil but participantService.Unapprove was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ParticipantID uuid.UUID
	}{Ctx: ctx, ParticipantID: participantID}
	mock.lockUnapprove.Lock()
	mock.calls.Unapprove = append(mock.calls.Unapprove, callInfo)
	mock.lockUnapprove.Unlock()
	return mock.UnapproveFunc(ctx, participantID)
}

func (mock *participantServiceMock) UnapproveCalls() []struct {
	Ctx           context.Context
	ParticipantID uuid.UUID
} {
	mock.lockUnapprove.RLock()
	calls := mock.calls.Unapprove
	mock.lockUnapprove.RUnlock()
	return calls
}

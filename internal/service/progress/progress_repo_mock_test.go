package progress

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	ProgressFunc func(ctx context.Context, boecID uuid.UUID) (domain.Progress, error)

	calls struct {
		Progress []struct {
			Ctx    context.Context
			BoecID uuid.UUID
		}
	}
	lockProgress sync.RWMutex
}

func (mock *progressRepoMock) Progress(ctx context.Context, boecID uuid.UUID) (domain.Progress, error) {
	if mock.ProgressFunc == nil {
		panic("progressRepoMock.ProgressFunc: method is nil but progressRepo.Progress was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BoecID uuid.UUID
	}{Ctx: ctx, BoecID: boecID}
	mock.lockProgress.Lock()
	mock.calls.Progress = append(mock.calls.Progress, callInfo)
	mock.lockProgress.Unlock()
	return mock.ProgressFunc(ctx, boecID)
}

func (mock *progressRepoMock) ProgressCalls() []struct {
	Ctx    context.Context
	BoecID uuid.UUID
} {
	mock.lockProgress.RLock()
	calls := mock.calls.Progress
	mock.lockProgress.RUnlock()
	return calls
}

package event

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/service/achievement"
	"github.com/google/uuid"
)

var _ achievementRefresher = &achievementRefresherMock{}

type achievementRefresherMock struct {
	RefreshManyFunc func(ctx context.Context, boecIDs []uuid.UUID) (*achievement.BatchResult, error)

	calls struct {
		RefreshMany []struct {
			Ctx     context.Context
			BoecIDs []uuid.UUID
		}
	}
	lockRefreshMany sync.RWMutex
}

func (mock *achievementRefresherMock) RefreshMany(ctx context.Context, boecIDs []uuid.UUID) (*achievement.BatchResult, error) {
	if mock.RefreshManyFunc == nil {
		panic("achievementRefresherMock.RefreshManyFunc: method is nil but achievementRefresher.RefreshMany was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoecIDs []uuid.UUID
	}{Ctx: ctx, BoecIDs: boecIDs}
	mock.lockRefreshMany.Lock()
	mock.calls.RefreshMany = append(mock.calls.RefreshMany, callInfo)
	mock.lockRefreshMany.Unlock()
	return mock.RefreshManyFunc(ctx, boecIDs)
}

func (mock *achievementRefresherMock) RefreshManyCalls() []struct {
	Ctx     context.Context
	BoecIDs []uuid.UUID
} {
	mock.lockRefreshMany.RLock()
	calls := mock.calls.RefreshMany
	mock.lockRefreshMany.RUnlock()
	return calls
}

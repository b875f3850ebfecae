package achievement

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/google/uuid"
)

var _ achievementRepo = &achievementRepoMock{}

type achievementRepoMock struct {
	GrantFunc       func(ctx context.Context, achievementID uuid.UUID, boecID uuid.UUID) (bool, error)
	GrantedIDsFunc  func(ctx context.Context, boecID uuid.UUID) (map[uuid.UUID]struct{}, error)
	ListCatalogFunc func(ctx context.Context) ([]domain.Achievement, error)
	ListRankedFunc  func(ctx context.Context) ([]domain.Achievement, error)

	calls struct {
		Grant []struct {
			Ctx           context.Context
			AchievementID uuid.UUID
			BoecID        uuid.UUID
		}
		GrantedIDs []struct {
			Ctx    context.Context
			BoecID uuid.UUID
		}
		ListCatalog []struct{ Ctx context.Context }
		ListRanked  []struct{ Ctx context.Context }
	}
	lockGrant       sync.RWMutex
	lockGrantedIDs  sync.RWMutex
	lockListCatalog sync.RWMutex
	lockListRanked  sync.RWMutex
}

func (mock *achievementRepoMock) Grant(ctx context.Context, achievementID uuid.UUID, boecID uuid.UUID) (bool, error) {
	if mock.GrantFunc == nil {
		panic("achievementRepoMock.GrantFunc: method is nil but achievementRepo.Grant was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		AchievementID uuid.UUID
		BoecID        uuid.UUID
	}{Ctx: ctx, AchievementID: achievementID, BoecID: boecID}
	mock.lockGrant.Lock()
	mock.calls.Grant = append(mock.calls.Grant, callInfo)
	mock.lockGrant.Unlock()
	return mock.GrantFunc(ctx, achievementID, boecID)
}

func (mock *achievementRepoMock) GrantCalls() []struct {
	Ctx           context.Context
	AchievementID uuid.UUID
	BoecID        uuid.UUID
} {
	mock.lockGrant.RLock()
	calls := mock.calls.Grant
	mock.lockGrant.RUnlock()
	return calls
}

func (mock *achievementRepoMock) GrantedIDs(ctx context.Context, boecID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	if mock.GrantedIDsFunc == nil {
		panic("achievementRepoMock.GrantedIDsFunc: method is nil but achievementRepo.GrantedIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BoecID uuid.UUID
	}{Ctx: ctx, BoecID: boecID}
	mock.lockGrantedIDs.Lock()
	mock.calls.GrantedIDs = append(mock.calls.GrantedIDs, callInfo)
	mock.lockGrantedIDs.Unlock()
	return mock.GrantedIDsFunc(ctx, boecID)
}

func (mock *achievementRepoMock) GrantedIDsCalls() []struct {
	Ctx    context.Context
	BoecID uuid.UUID
} {
	mock.lockGrantedIDs.RLock()
	calls := mock.calls.GrantedIDs
	mock.lockGrantedIDs.RUnlock()
	return calls
}

func (mock *achievementRepoMock) ListCatalog(ctx context.Context) ([]domain.Achievement, error) {
	if mock.ListCatalogFunc == nil {
		panic("achievementRepoMock.ListCatalogFunc: method is nil but achievementRepo.ListCatalog was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListCatalog.Lock()
	mock.calls.ListCatalog = append(mock.calls.ListCatalog, callInfo)
	mock.lockListCatalog.Unlock()
	return mock.ListCatalogFunc(ctx)
}

func (mock *achievementRepoMock) ListCatalogCalls() []struct{ Ctx context.Context } {
	mock.lockListCatalog.RLock()
	calls := mock.calls.ListCatalog
	mock.lockListCatalog.RUnlock()
	return calls
}

func (mock *achievementRepoMock) ListRanked(ctx context.Context) ([]domain.Achievement, error) {
	if mock.ListRankedFunc == nil {
		panic("achievementRepoMock.ListRankedFunc: method is nil but achievementRepo.ListRanked was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListRanked.Lock()
	mock.calls.ListRanked = append(mock.calls.ListRanked, callInfo)
	mock.lockListRanked.Unlock()
	return mock.ListRankedFunc(ctx)
}

func (mock *achievementRepoMock) ListRankedCalls() []struct{ Ctx context.Context } {
	mock.lockListRanked.RLock()
	calls := mock.calls.ListRanked
	mock.lockListRanked.RUnlock()
	return calls
}

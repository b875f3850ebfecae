package participant

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/activity"
	"github.com/google/uuid"
)

var _ activityRecorder = &activityRecorderMock{}

type activityRecorderMock struct {
	RecordFunc func(ctx context.Context, boecID uuid.UUID, input activity.RecordInput) (*domain.Activity, error)

	calls struct {
		Record []struct {
			Ctx    context.Context
			BoecID uuid.UUID
			Input  activity.RecordInput
		}
	}
	lockRecord sync.RWMutex
}

func (mock *activityRecorderMock) Record(ctx context.Context, boecID uuid.UUID, input activity.RecordInput) (*domain.Activity, error) {
	if mock.RecordFunc == nil {
		panic("activityRecorderMock.RecordFunc: method is nil but activityRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BoecID uuid.UUID
		Input  activity.RecordInput
	}{Ctx: ctx, BoecID: boecID, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, boecID, input)
}

func (mock *activityRecorderMock) RecordCalls() []struct {
	Ctx    context.Context
	BoecID uuid.UUID
	Input  activity.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

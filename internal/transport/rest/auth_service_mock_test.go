package rest

import (
	"context"
	"sync"

	"github.com/VMatyagin/so-rest/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginVKFunc func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		LoginVK []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockLoginVK sync.RWMutex
}

func (mock *authServiceMock) LoginVK(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginVKFunc == nil {
		panic("authServiceMock.LoginVKFunc: method is nil but authService.LoginVK was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLoginVK.Lock()
	mock.calls.LoginVK = append(mock.calls.LoginVK, callInfo)
	mock.lockLoginVK.Unlock()
	return mock.LoginVKFunc(ctx, input)
}

func (mock *authServiceMock) LoginVKCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLoginVK.RLock()
	calls := mock.calls.LoginVK
	mock.lockLoginVK.RUnlock()
	return calls
}

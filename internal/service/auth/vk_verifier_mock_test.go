package auth

import (
	"sync"

	"github.com/VMatyagin/so-rest/internal/auth"
)

var _ vkVerifier = &vkVerifierMock{}

type vkVerifierMock struct {
	VerifyFunc func(launchParams string) (*auth.VKIdentity, error)

	calls struct {
		Verify []struct{ LaunchParams string }
	}
	lockVerify sync.RWMutex
}

func (mock *vkVerifierMock) Verify(launchParams string) (*auth.VKIdentity, error) {
	if mock.VerifyFunc == nil {
		panic("vkVerifierMock.VerifyFunc: method is nil but vkVerifier.Verify was just called")
	}
	callInfo := struct{ LaunchParams string }{LaunchParams: launchParams}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(launchParams)
}

func (mock *vkVerifierMock) VerifyCalls() []struct{ LaunchParams string } {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

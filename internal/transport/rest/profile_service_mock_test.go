package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

// Ensure, that profileServiceMock does implement profileService.
var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	ProfileFunc func(ctx context.Context, identity domain.Identity) (domain.Account, error)

	calls struct {
		Profile []struct {
			Ctx      context.Context
			Identity domain.Identity
		}
	}
	lockProfile sync.RWMutex
}

func (mock *profileServiceMock) Profile(ctx context.Context, identity domain.Identity) (domain.Account, error) {
	if mock.ProfileFunc == nil {
		panic("profileServiceMock.ProfileFunc: method is nil but profileService.Profile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity domain.Identity
	}{
		Ctx:      ctx,
		Identity: identity,
	}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx, identity)
}

func (mock *profileServiceMock) ProfileCalls() []struct {
	Ctx      context.Context
	Identity domain.Identity
} {
	mock.lockProfile.RLock()
	calls := mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}

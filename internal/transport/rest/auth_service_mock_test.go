package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc func(ctx context.Context) error
	MeFunc func(ctx context.Context) (*domain.Voter, error)

	calls struct {
		Register []struct {
			Ctx context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx context.Context
			Input auth.LoginInput
		}
		Refresh []struct {
			Ctx context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Me []struct {
			Ctx context.Context
		}
	}
	lockRegister sync.RWMutex
	lockLogin sync.RWMutex
	lockRefresh sync.RWMutex
	lockLogout sync.RWMutex
	lockMe sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.Voter, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

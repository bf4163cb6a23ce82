package vote

import (
	"sync"

	"github.com/heartmarshall/election-backend/internal/domain"
)

var _ tallyNotifier = &tallyNotifierMock{}

type tallyNotifierMock struct {
	TallyChangedFunc func(election domain.ElectionType)

	calls struct {
		TallyChanged []struct {
			Election domain.ElectionType
		}
	}
	lockTallyChanged sync.RWMutex
}

func (mock *tallyNotifierMock) TallyChanged(election domain.ElectionType) {
	if mock.TallyChangedFunc == nil {
		panic("tallyNotifierMock.TallyChangedFunc: method is nil but tallyNotifier.TallyChanged was just called")
	}
	callInfo := struct {
		Election domain.ElectionType
	}{Election: election}
	mock.lockTallyChanged.Lock()
	mock.calls.TallyChanged = append(mock.calls.TallyChanged, callInfo)
	mock.lockTallyChanged.Unlock()
	mock.TallyChangedFunc(election)
}

func (mock *tallyNotifierMock) TallyChangedCalls() []struct {
	Election domain.ElectionType
} {
	mock.lockTallyChanged.RLock()
	calls := mock.calls.TallyChanged
	mock.lockTallyChanged.RUnlock()
	return calls
}

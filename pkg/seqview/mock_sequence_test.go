package seqview_test

import (
	iter "iter"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockSequence is a hand-written gomock double of iterkit.Sequence.
// It follows the layout mockgen uses, with a type parameter for the element type.
type MockSequence[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceMockRecorder[T]
}

// MockSequenceMockRecorder is the mock recorder for MockSequence.
type MockSequenceMockRecorder[T any] struct {
	mock *MockSequence[T]
}

// NewMockSequence creates a new mock instance.
func NewMockSequence[T any](ctrl *gomock.Controller) *MockSequence[T] {
	mock := &MockSequence[T]{ctrl: ctrl}
	mock.recorder = &MockSequenceMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSequence[T]) EXPECT() *MockSequenceMockRecorder[T] {
	return m.recorder
}

// All mocks base method.
func (m *MockSequence[T]) All() iter.Seq[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "All")
	ret0, _ := ret[0].(iter.Seq[T])
	return ret0
}

// All indicates an expected call of All.
func (mr *MockSequenceMockRecorder[T]) All() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "All", reflect.TypeOf((*MockSequence[T])(nil).All))
}

// At mocks base method.
func (m *MockSequence[T]) At(arg0 int) T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "At", arg0)
	ret0, _ := ret[0].(T)
	return ret0
}

// At indicates an expected call of At.
func (mr *MockSequenceMockRecorder[T]) At(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "At", reflect.TypeOf((*MockSequence[T])(nil).At), arg0)
}

// Len mocks base method.
func (m *MockSequence[T]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockSequenceMockRecorder[T]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockSequence[T])(nil).Len))
}

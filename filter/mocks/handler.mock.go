// Package mocks holds gomock mocks of the filter interfaces.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	filter "ormfilter/filter"
)

// MockHandler is a mock of the filter.Handler interface.
type MockHandler[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerMockRecorder[T]
}

// MockHandlerMockRecorder is the mock recorder for MockHandler.
type MockHandlerMockRecorder[T any] struct {
	mock *MockHandler[T]
}

// NewMockHandler creates a new mock instance.
func NewMockHandler[T any](ctrl *gomock.Controller) *MockHandler[T] {
	mock := &MockHandler[T]{ctrl: ctrl}
	mock.recorder = &MockHandlerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandler[T]) EXPECT() *MockHandlerMockRecorder[T] {
	return m.recorder
}

// Handle mocks base method.
func (m *MockHandler[T]) Handle(v filter.Value, b filter.Builder[T]) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Handle", v, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// Handle indicates an expected call of Handle.
func (mr *MockHandlerMockRecorder[T]) Handle(v, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Handle", reflect.TypeOf((*MockHandler[T])(nil).Handle), v, b)
}

// HandleCollection mocks base method.
func (m *MockHandler[T]) HandleCollection(v filter.Value, b filter.Builder[T]) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleCollection", v, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// HandleCollection indicates an expected call of HandleCollection.
func (mr *MockHandlerMockRecorder[T]) HandleCollection(v, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleCollection", reflect.TypeOf((*MockHandler[T])(nil).HandleCollection), v, b)
}

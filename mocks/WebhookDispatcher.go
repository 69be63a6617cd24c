package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"gridsheet/contracts"
)

type WebhookDispatcher struct {
	mock.Mock
}

func (_m *WebhookDispatcher) SetWebhookUrl(sheetId string, address contracts.Address, webhookUrl string) {
	_m.Called(sheetId, address, webhookUrl)
}

func (_m *WebhookDispatcher) GetWebhookUrl(sheetId string, address contracts.Address) string {
	ret := _m.Called(sheetId, address)

	return ret.String(0)
}

func (_m *WebhookDispatcher) Notify(sheetId string, cells []*contracts.Cell) {
	_m.Called(sheetId, cells)
}

func (_m *WebhookDispatcher) Start() {
	_m.Called()
}

func (_m *WebhookDispatcher) Close() {
	_m.Called()
}

type mockConstructorTestingTNewWebhookDispatcher interface {
	mock.TestingT
	Cleanup(func())
}

func NewWebhookDispatcher(t mockConstructorTestingTNewWebhookDispatcher) *WebhookDispatcher {
	m := &WebhookDispatcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

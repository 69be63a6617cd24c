package mocks

import (
	gin "github.com/gin-gonic/gin"
	mock "github.com/stretchr/testify/mock"
)

type ApiController struct {
	mock.Mock
}

func (_m *ApiController) SetCellAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) GetCellAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) GetSheetAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) SetFormatAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) SubscribeAction(c *gin.Context) {
	_m.Called(c)
}

type mockConstructorTestingTNewApiController interface {
	mock.TestingT
	Cleanup(func())
}

func NewApiController(t mockConstructorTestingTNewApiController) *ApiController {
	m := &ApiController{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

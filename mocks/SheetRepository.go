package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"gridsheet/contracts"
)

type SheetRepository struct {
	mock.Mock
}

func (_m *SheetRepository) SetCell(sheetId string, cellId string, value string) (*contracts.Cell, error) {
	ret := _m.Called(sheetId, cellId, value)

	var r0 *contracts.Cell
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Cell)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) GetCell(sheetId string, cellId string) (*contracts.Cell, error) {
	ret := _m.Called(sheetId, cellId)

	var r0 *contracts.Cell
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Cell)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) GetCellList(sheetId string) (*contracts.CellList, error) {
	ret := _m.Called(sheetId)

	var r0 *contracts.CellList
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.CellList)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) SetCellFormat(sheetId string, cellId string, format contracts.FormatTag) (*contracts.Cell, error) {
	ret := _m.Called(sheetId, cellId, format)

	var r0 *contracts.Cell
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Cell)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) Snapshot(sheetId string) (contracts.SheetSnapshot, error) {
	ret := _m.Called(sheetId)

	var r0 contracts.SheetSnapshot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(contracts.SheetSnapshot)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) Restore(sheetId string, snapshot contracts.SheetSnapshot) (*contracts.CellList, error) {
	ret := _m.Called(sheetId, snapshot)

	var r0 *contracts.CellList
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.CellList)
	}

	return r0, ret.Error(1)
}

type mockConstructorTestingTNewSheetRepository interface {
	mock.TestingT
	Cleanup(func())
}

func NewSheetRepository(t mockConstructorTestingTNewSheetRepository) *SheetRepository {
	m := &SheetRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

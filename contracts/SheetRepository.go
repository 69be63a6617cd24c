package contracts

import "errors"

// SheetSnapshot is the persisted file format: a JSON object mapping
// address strings to raw content strings. Computed values are never
// part of a snapshot.
type SheetSnapshot map[string]string

type SheetRepository interface {
	SetCell(sheetId string, cellId string, value string) (*Cell, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
	GetCellList(sheetId string) (*CellList, error)
	SetCellFormat(sheetId string, cellId string, format FormatTag) (*Cell, error)
	Snapshot(sheetId string) (SheetSnapshot, error)
	Restore(sheetId string, snapshot SheetSnapshot) (*CellList, error)
}

var SheetNotFoundError = errors.New("sheet not found")

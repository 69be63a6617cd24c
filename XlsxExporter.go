package main

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"gridsheet/contracts"
)

const exportResultsSheet = "Results"
const exportRawSheet = "Raw"

// XlsxExporter writes one sheet to a workbook: computed display values
// on a Results sheet, raw content (formulas verbatim) on a Raw sheet.
type XlsxExporter struct {
	repository contracts.SheetRepository
}

func NewXlsxExporter(repository contracts.SheetRepository) *XlsxExporter {
	return &XlsxExporter{repository: repository}
}

func (e *XlsxExporter) Export(sheetId string, path string) error {
	cellList, err := e.repository.GetCellList(sheetId)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err = file.SetSheetName(file.GetSheetName(0), exportResultsSheet); err != nil {
		return err
	}
	if _, err = file.NewSheet(exportRawSheet); err != nil {
		return err
	}

	for address, cell := range *cellList {
		if err = file.SetCellValue(exportResultsSheet, address, exportValue(cell.Result)); err != nil {
			return err
		}
		if err = file.SetCellValue(exportRawSheet, address, cell.Value); err != nil {
			return err
		}
	}

	return file.SaveAs(path)
}

// exportValue keeps numbers numeric in the workbook; formatted and
// sentinel results stay text.
func exportValue(result string) any {
	if number, err := strconv.ParseFloat(result, 64); err == nil {
		return number
	}
	return result
}

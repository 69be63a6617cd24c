package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gridsheet/contracts"
	"gridsheet/mocks"
)

func _newTestRepository(t *testing.T, dispatcher contracts.WebhookDispatcher) (*SheetRepository, func()) {
	t.Helper()

	db, closeDb := _createTmpDb()
	repository := NewSheetRepository(db, NewFormulaEvaluator(), NewCellBinarySerializer(), dispatcher)
	return repository, closeDb
}

func TestSheetRepository_SetCell(t *testing.T) {
	t.Run("literal_value", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		cell, err := repository.SetCell("Sheet1", "a1", "hello")

		assert.NoError(t, err)
		assert.Equal(t, "A1", cell.Address)
		assert.Equal(t, "hello", cell.Value)
		assert.Equal(t, "hello", cell.Result)
	})

	t.Run("formula_is_evaluated_against_stored_cells", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		_, err := repository.SetCell("sheet1", "A1", "5")
		assert.NoError(t, err)

		cell, err := repository.SetCell("sheet1", "B1", "=A1*2+SUM(A1:A1)")
		assert.NoError(t, err)
		assert.Equal(t, "15", cell.Result)
	})

	t.Run("pending_value_is_visible_before_commit", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		_, err := repository.SetCell("sheet1", "A1", "1")
		assert.NoError(t, err)

		// overwriting A1 evaluates with the new value, not the stored one
		cell, err := repository.SetCell("sheet1", "A1", "=2+2")
		assert.NoError(t, err)
		assert.Equal(t, "4", cell.Result)
	})

	t.Run("clearing_edit_is_visible_to_dependants", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		_, err := repository.SetCell("sheet1", "A1", "5")
		assert.NoError(t, err)
		_, err = repository.SetCell("sheet1", "B1", "=A1*2")
		assert.NoError(t, err)

		// the recompute must read the cleared content, not the stored "5"
		cell, err := repository.SetCell("sheet1", "A1", "")
		assert.NoError(t, err)
		assert.Equal(t, "", cell.Result)

		dependant, err := repository.GetCell("sheet1", "B1")
		assert.NoError(t, err)
		assert.Equal(t, "0", dependant.Result)
	})

	t.Run("malformed_address_is_rejected", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		for _, cellId := range []string{"1A", "A0", "A", "A1B2", "AAA1"} {
			_, err := repository.SetCell("sheet1", cellId, "5")
			assert.ErrorIs(t, err, contracts.MalformedAddressError, "cellId %q", cellId)
		}
	})

	t.Run("error_sentinels_are_stored_not_rejected", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		cell, err := repository.SetCell("sheet1", "A1", "=1/0")
		assert.NoError(t, err)
		assert.Equal(t, contracts.MathErrorDisplay, cell.Result)

		stored, err := repository.GetCell("sheet1", "A1")
		assert.NoError(t, err)
		assert.Equal(t, "=1/0", stored.Value)
		assert.Equal(t, contracts.MathErrorDisplay, stored.Result)
	})

	t.Run("circular_reference_sentinel", func(t *testing.T) {
		repository, closeDb := _newTestRepository(t, nil)
		defer closeDb()

		_, err := repository.SetCell("sheet1", "A1", "=B1")
		assert.NoError(t, err)

		cell, err := repository.SetCell("sheet1", "B1", "=A1")
		assert.NoError(t, err)
		assert.Equal(t, contracts.CircularDisplay, cell.Result)

		cell, err = repository.GetCell("sheet1", "A1")
		assert.NoError(t, err)
		assert.Equal(t, contracts.CircularDisplay, cell.Result)
	})

	t.Run("dependants_are_recomputed_and_notified", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		dispatcher.On("Notify", "sheet1", mock.Anything).Return()

		repository, closeDb := _newTestRepository(t, dispatcher)
		defer closeDb()

		_, err := repository.SetCell("sheet1", "B1", "=A1*2")
		assert.NoError(t, err)
		_, err = repository.SetCell("sheet1", "C1", "=B1+1")
		assert.NoError(t, err)

		dispatcher.Calls = nil
		_, err = repository.SetCell("sheet1", "A1", "5")
		assert.NoError(t, err)

		dispatcher.AssertCalled(t, "Notify", "sheet1", mock.MatchedBy(func(cells []*contracts.Cell) bool {
			results := map[string]string{}
			for _, cell := range cells {
				results[cell.Address] = cell.Result
			}
			return len(cells) == 3 && results["A1"] == "5" && results["B1"] == "10" && results["C1"] == "11"
		}))
	})

	t.Run("unchanged_value_skips_write_and_notification", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		dispatcher.On("Notify", "sheet1", mock.Anything).Return()

		repository, closeDb := _newTestRepository(t, dispatcher)
		defer closeDb()

		_, err := repository.SetCell("sheet1", "A1", "5")
		assert.NoError(t, err)

		dispatcher.Calls = nil
		cell, err := repository.SetCell("sheet1", "A1", "5")
		assert.NoError(t, err)
		assert.Equal(t, "5", cell.Result)

		dispatcher.AssertNotCalled(t, "Notify", "sheet1", mock.Anything)
	})
}

func TestSheetRepository_GetCell(t *testing.T) {
	repository, closeDb := _newTestRepository(t, nil)
	defer closeDb()

	_, err := repository.SetCell("sheet1", "A1", "5")
	assert.NoError(t, err)

	t.Run("sheet_not_found", func(t *testing.T) {
		_, err := repository.GetCell("nope", "A1")
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("cell_not_found", func(t *testing.T) {
		_, err := repository.GetCell("sheet1", "Z9")
		assert.ErrorIs(t, err, contracts.CellNotFoundError)
	})

	t.Run("lazy_evaluation_sees_later_edits", func(t *testing.T) {
		_, err := repository.SetCell("sheet1", "B1", "=A1*2")
		assert.NoError(t, err)

		cell, err := repository.GetCell("sheet1", "B1")
		assert.NoError(t, err)
		assert.Equal(t, "10", cell.Result)

		_, err = repository.SetCell("sheet1", "A1", "6")
		assert.NoError(t, err)

		cell, err = repository.GetCell("sheet1", "B1")
		assert.NoError(t, err)
		assert.Equal(t, "12", cell.Result)
	})
}

func TestSheetRepository_GetCellList(t *testing.T) {
	repository, closeDb := _newTestRepository(t, nil)
	defer closeDb()

	t.Run("sheet_not_found", func(t *testing.T) {
		_, err := repository.GetCellList("nope")
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("eager_pass_matches_lazy_reads", func(t *testing.T) {
		_, err := repository.SetCell("sheet1", "A1", "2")
		assert.NoError(t, err)
		_, err = repository.SetCell("sheet1", "A2", "text")
		assert.NoError(t, err)
		_, err = repository.SetCell("sheet1", "A3", "=SUM(A1:A2)")
		assert.NoError(t, err)
		_, err = repository.SetCell("sheet1", "A4", "=A4")
		assert.NoError(t, err)

		cellList, err := repository.GetCellList("sheet1")
		assert.NoError(t, err)
		assert.Len(t, *cellList, 4)

		for address, cell := range *cellList {
			lazy, err := repository.GetCell("sheet1", address)
			assert.NoError(t, err)
			assert.Equal(t, lazy.Result, cell.Result, "address %s", address)
		}

		// one broken cell never prevents siblings from evaluating
		assert.Equal(t, contracts.CircularDisplay, (*cellList)["A4"].Result)
		assert.Equal(t, "2", (*cellList)["A3"].Result)
	})
}

func TestSheetRepository_SetCellFormat(t *testing.T) {
	repository, closeDb := _newTestRepository(t, nil)
	defer closeDb()

	t.Run("format_applies_to_formula_results", func(t *testing.T) {
		_, err := repository.SetCell("sheet1", "A1", "=1/2")
		assert.NoError(t, err)

		cell, err := repository.SetCellFormat("sheet1", "A1", contracts.FormatPercentage)
		assert.NoError(t, err)
		assert.Equal(t, "50%", cell.Result)
		assert.Equal(t, "percentage", cell.Format)

		// the raw content survives the format change
		assert.Equal(t, "=1/2", cell.Value)
	})

	t.Run("formatting_a_blank_cell_creates_it", func(t *testing.T) {
		cell, err := repository.SetCellFormat("sheet1", "B7", contracts.FormatCurrency)
		assert.NoError(t, err)
		assert.Equal(t, "", cell.Value)
		assert.Equal(t, "currency", cell.Format)
	})

	t.Run("format_survives_value_updates", func(t *testing.T) {
		_, err := repository.SetCellFormat("sheet1", "C1", contracts.FormatCurrency)
		assert.NoError(t, err)

		cell, err := repository.SetCell("sheet1", "C1", "=10/4")
		assert.NoError(t, err)
		assert.Equal(t, "$2.50", cell.Result)
	})
}

func TestSheetRepository_SnapshotRestore(t *testing.T) {
	repository, closeDb := _newTestRepository(t, nil)
	defer closeDb()

	t.Run("snapshot_contains_raw_content_only", func(t *testing.T) {
		_, err := repository.SetCell("sheet1", "A1", "5")
		assert.NoError(t, err)
		_, err = repository.SetCell("sheet1", "B1", "=A1*2")
		assert.NoError(t, err)

		snapshot, err := repository.Snapshot("sheet1")
		assert.NoError(t, err)
		assert.Equal(t, contracts.SheetSnapshot{"A1": "5", "B1": "=A1*2"}, snapshot)
	})

	t.Run("snapshot_of_missing_sheet", func(t *testing.T) {
		_, err := repository.Snapshot("nope")
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("restore_replaces_sheet_and_recomputes", func(t *testing.T) {
		cells, err := repository.Restore("sheet2", contracts.SheetSnapshot{
			"a1": "3",
			"b1": "=A1^2",
		})

		assert.NoError(t, err)
		assert.Len(t, *cells, 2)
		assert.Equal(t, "9", (*cells)["B1"].Result)

		// dependency index is rebuilt: edits fan out again
		dispatcherVisible, err := repository.GetCell("sheet2", "B1")
		assert.NoError(t, err)
		assert.Equal(t, "9", dispatcherVisible.Result)
	})

	t.Run("restore_rejects_malformed_addresses", func(t *testing.T) {
		_, err := repository.Restore("sheet3", contracts.SheetSnapshot{"bogus": "1"})
		assert.ErrorIs(t, err, contracts.MalformedAddressError)
	})
}

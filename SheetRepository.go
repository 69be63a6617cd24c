package main

import (
	"errors"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"gridsheet/contracts"
)

// SheetRepository owns everything the engine treats as external: raw
// content and format tags in bbolt, the reverse-dependency index, and
// webhook notifications. Computed values are never written — every read
// recomputes from raw content.
type SheetRepository struct {
	db             *bbolt.DB
	evaluator      contracts.Evaluator
	serializer     contracts.CellSerializer
	dependencyTree contracts.CellDependencyTree
	dispatcher     contracts.WebhookDispatcher
}

func NewSheetRepository(
	db *bbolt.DB, evaluator contracts.Evaluator,
	serializer contracts.CellSerializer, dispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		db:             db,
		evaluator:      evaluator,
		serializer:     serializer,
		dependencyTree: &CellDependencyTree{},
		dispatcher:     dispatcher,
	}
}

func (s *SheetRepository) SetCell(sheetId string, cellId string, value string) (cell *contracts.Cell, err error) {
	sheetId = strings.ToLower(sheetId)
	sheetIdByte := []byte(sheetId)

	address, err := CanonicalAddress(cellId)
	if err != nil {
		return &contracts.Cell{Address: cellId, Value: value}, err
	}

	cell = &contracts.Cell{Address: string(address), Value: value}

	format := contracts.FormatGeneral
	unchanged := false
	var changed []*contracts.Cell

	err = s.db.View(func(tx *bbolt.Tx) error {
		getRaw, getFormat := s.makeGetters(tx, sheetIdByte)

		if bucket := tx.Bucket(sheetIdByte); bucket != nil {
			if stored := bucket.Get([]byte(address)); stored != nil {
				_, previousValue, previousFormat, unmarshalErr := s.serializer.Unmarshal(stored)
				if unmarshalErr == nil {
					format = previousFormat
					unchanged = previousValue == value
				}
			}
		}

		// the edit is visible to the recompute before it is committed
		pendingRaw := NewOverlayContentGetter(address, value, getRaw)

		dependants := s.dependencyTree.GetDependants(tx, sheetIdByte, address)

		targets := append([]contracts.Address{address}, dependants...)
		results := s.evaluator.EvaluateSheet(pendingRaw, getFormat, targets)

		cell.Result = results[address].Display()
		if format != contracts.FormatGeneral {
			cell.Format = format.String()
		}

		changed = make([]*contracts.Cell, 0, len(targets))
		changed = append(changed, cell)
		for _, dependant := range dependants {
			changed = append(changed, &contracts.Cell{
				Address: string(dependant),
				Value:   getRaw(dependant),
				Result:  results[dependant].Display(),
			})
		}

		return nil
	})

	if err != nil || unchanged {
		return
	}

	dependingOnList := s.evaluator.References(value)

	err = s.db.Batch(func(tx *bbolt.Tx) (err error) {
		var bucket *bbolt.Bucket
		bucket, err = tx.CreateBucketIfNotExists(sheetIdByte)
		if err != nil {
			return err
		}

		err = s.dependencyTree.SetDependsOn(tx, sheetIdByte, address, dependingOnList)
		if err != nil {
			return
		}

		return bucket.Put([]byte(address), s.serializer.Marshal(address, value, format))
	})

	if err == nil && s.dispatcher != nil {
		s.dispatcher.Notify(sheetId, changed)
	}

	return
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (cell *contracts.Cell, err error) {
	sheetId = strings.ToLower(sheetId)
	sheetIdByte := []byte(sheetId)

	address, err := CanonicalAddress(cellId)
	if err != nil {
		return nil, err
	}

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetIdByte)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		data := bucket.Get([]byte(address))
		if data == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		_, value, format, unmarshalErr := s.serializer.Unmarshal(data)
		if unmarshalErr != nil {
			return unmarshalErr
		}

		getRaw, getFormat := s.makeGetters(tx, sheetIdByte)
		result := s.evaluator.Evaluate(getRaw, getFormat, address)

		cell = &contracts.Cell{Address: string(address), Value: value, Result: result.Display()}
		if format != contracts.FormatGeneral {
			cell.Format = format.String()
		}

		return nil
	})

	return
}

func (s *SheetRepository) GetCellList(sheetId string) (*contracts.CellList, error) {
	sheetId = strings.ToLower(sheetId)

	contents := contracts.SheetSnapshot{}
	formats := map[contracts.Address]contracts.FormatTag{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetId))
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			address := contracts.Address(k)
			_, value, format, unmarshalErr := s.serializer.Unmarshal(v)
			if unmarshalErr == nil {
				contents[string(address)] = value
				formats[address] = format
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// one eager pass over the snapshot, outside the read transaction
	addresses := make([]contracts.Address, 0, len(contents))
	for address := range contents {
		addresses = append(addresses, contracts.Address(address))
	}

	getRaw := NewSnapshotContentGetter(contents)
	results := s.evaluator.EvaluateSheet(getRaw, func(address contracts.Address) contracts.FormatTag {
		return formats[address]
	}, addresses)

	cellList := contracts.CellList{}
	for address, value := range contents {
		cell := &contracts.Cell{Address: address, Value: value, Result: results[contracts.Address(address)].Display()}
		if formats[contracts.Address(address)] != contracts.FormatGeneral {
			cell.Format = formats[contracts.Address(address)].String()
		}
		cellList[address] = cell
	}

	return &cellList, nil
}

// SetCellFormat stores the number format of a cell, creating an empty
// cell when the address has no content yet.
func (s *SheetRepository) SetCellFormat(sheetId string, cellId string, format contracts.FormatTag) (cell *contracts.Cell, err error) {
	sheetId = strings.ToLower(sheetId)
	sheetIdByte := []byte(sheetId)

	address, err := CanonicalAddress(cellId)
	if err != nil {
		return nil, err
	}

	value := ""

	err = s.db.Batch(func(tx *bbolt.Tx) (err error) {
		var bucket *bbolt.Bucket
		bucket, err = tx.CreateBucketIfNotExists(sheetIdByte)
		if err != nil {
			return err
		}

		if stored := bucket.Get([]byte(address)); stored != nil {
			_, value, _, err = s.serializer.Unmarshal(stored)
			if err != nil {
				return err
			}
		}

		return bucket.Put([]byte(address), s.serializer.Marshal(address, value, format))
	})

	if err != nil {
		return nil, err
	}

	return s.GetCell(sheetId, cellId)
}

// Snapshot extracts the persisted file format of one sheet: address to
// raw content, formulas included verbatim, computed values omitted.
func (s *SheetRepository) Snapshot(sheetId string) (contracts.SheetSnapshot, error) {
	sheetId = strings.ToLower(sheetId)

	snapshot := contracts.SheetSnapshot{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetId))
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			_, value, _, unmarshalErr := s.serializer.Unmarshal(v)
			if unmarshalErr == nil {
				snapshot[string(k)] = value
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Restore replaces a sheet with snapshot contents, rebuilds the
// dependency index and runs one eager recomputation pass. Format tags
// are not part of the snapshot format and reset to general.
func (s *SheetRepository) Restore(sheetId string, snapshot contracts.SheetSnapshot) (*contracts.CellList, error) {
	sheetId = strings.ToLower(sheetId)
	sheetIdByte := []byte(sheetId)

	canonical := make(map[contracts.Address]string, len(snapshot))
	for cellId, value := range snapshot {
		address, err := CanonicalAddress(cellId)
		if err != nil {
			return nil, err
		}
		canonical[address] = value
	}

	err := s.db.Update(func(tx *bbolt.Tx) (err error) {
		for _, staleBucket := range [][]byte{sheetIdByte, append(bucketPrefix[:], sheetIdByte...)} {
			err = tx.DeleteBucket(staleBucket)
			if err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
				return err
			}
		}

		var bucket *bbolt.Bucket
		bucket, err = tx.CreateBucketIfNotExists(sheetIdByte)
		if err != nil {
			return err
		}

		for address, value := range canonical {
			err = bucket.Put([]byte(address), s.serializer.Marshal(address, value, contracts.FormatGeneral))
			if err != nil {
				return err
			}

			if references := s.evaluator.References(value); len(references) > 0 {
				err = s.dependencyTree.SetDependsOn(tx, sheetIdByte, address, references)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetCellList(sheetId)
}

func (s *SheetRepository) makeGetters(tx *bbolt.Tx, sheetId []byte) (contracts.RawContentGetter, contracts.FormatGetter) {
	bucket := tx.Bucket(sheetId)

	getRaw := func(address contracts.Address) string {
		if bucket == nil {
			return ""
		}
		data := bucket.Get([]byte(address))
		if data == nil {
			return ""
		}
		_, value, _, err := s.serializer.Unmarshal(data)
		if err != nil {
			return ""
		}
		return value
	}

	getFormat := func(address contracts.Address) contracts.FormatTag {
		if bucket == nil {
			return contracts.FormatGeneral
		}
		data := bucket.Get([]byte(address))
		if data == nil {
			return contracts.FormatGeneral
		}
		_, _, format, err := s.serializer.Unmarshal(data)
		if err != nil {
			return contracts.FormatGeneral
		}
		return format
	}

	return getRaw, getFormat
}

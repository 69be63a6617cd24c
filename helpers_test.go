package main

import (
	"os"

	"go.etcd.io/bbolt"

	"gridsheet/contracts"
)

func _createTmpDb() (*bbolt.DB, func()) {
	f, err := os.CreateTemp("", "db_*.db")
	if err != nil {
		panic(err)
	}

	db, err := bbolt.Open(f.Name(), 0600, nil)
	if err != nil {
		panic(err)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(f.Name())
	}
}

// _sheetGetter builds a RawContentGetter over an in-memory sheet.
func _sheetGetter(cells map[contracts.Address]string) contracts.RawContentGetter {
	return func(address contracts.Address) string {
		return cells[address]
	}
}

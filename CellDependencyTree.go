package main

import (
	"bytes"

	"go.etcd.io/bbolt"

	"gridsheet/contracts"
)

// CellDependencyTree is the reverse-dependency index of a sheet, kept in
// a dedicated bbolt bucket next to the cell data. Two key shapes share
// the bucket:
//
//	<dependingOn> 0x00 <dependant>  — one empty-valued record per edge,
//	                                  so a dependant fan-out is a single
//	                                  prefix cursor scan;
//	0x00 0x00 <dependant>           — the dependant's current depends-on
//	                                  list, used to diff edges on update.
type CellDependencyTree struct{}

const Delimiter = byte(0x00)

var bucketPrefix = [4]byte{'_', '_', 'd', '_'}

func (t *CellDependencyTree) SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantAddress contracts.Address, dependingOnAddresses []contracts.Address) (err error) {
	dependingListKey := t.makeDependingListKey(dependantAddress)

	bucketId := t.makeBucketId(sheetId)
	var bucket *bbolt.Bucket
	bucket, err = tx.CreateBucketIfNotExists(bucketId)
	if err != nil {
		return err
	}

	previousEdgesToDelete := map[contracts.Address]bool{}
	previous := bucket.Get(dependingListKey)
	if previous != nil {
		for _, oldDependingOn := range bytes.Split(previous, []byte{Delimiter}) {
			previousEdgesToDelete[contracts.Address(oldDependingOn)] = true
		}
	}

	addedRecords := false
	for _, dependingOnAddress := range dependingOnAddresses {
		if previousEdgesToDelete[dependingOnAddress] {
			// edge already stored, keep it
			delete(previousEdgesToDelete, dependingOnAddress)
		} else {
			addedRecords = true
			err = bucket.Put(t.makeDependantKey(dependantAddress, dependingOnAddress), []byte{})
			if err != nil {
				return err
			}
		}
	}

	if addedRecords == false && len(previousEdgesToDelete) == 0 {
		return nil
	}

	// drop edges the new formula no longer references
	for oldDependingOn := range previousEdgesToDelete {
		err = bucket.Delete(t.makeDependantKey(dependantAddress, oldDependingOn))
		if err != nil {
			return err
		}
	}

	if len(dependingOnAddresses) == 0 {
		return bucket.Delete(dependingListKey)
	}

	newDependingOnList := make([][]byte, 0, len(dependingOnAddresses))
	for _, dependingOnAddress := range dependingOnAddresses {
		newDependingOnList = append(newDependingOnList, []byte(dependingOnAddress))
	}
	return bucket.Put(dependingListKey, bytes.Join(newDependingOnList, []byte{Delimiter}))
}

// GetDependants returns every cell whose displayed value can change when
// dependingOnAddress changes, transitively. The visited set keeps the
// walk terminating on cyclic dependency graphs.
func (t *CellDependencyTree) GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnAddress contracts.Address) []contracts.Address {
	bucketId := t.makeBucketId(sheetId)

	bucket := tx.Bucket(bucketId)
	if bucket == nil {
		return []contracts.Address{}
	}

	return t.fetchDependantsRecursive(bucket, dependingOnAddress, map[contracts.Address]bool{
		dependingOnAddress: true,
	})
}

func (t *CellDependencyTree) makeBucketId(sheetId []byte) []byte {
	if len(sheetId) == 0 {
		return nil
	}

	return append(bucketPrefix[:], sheetId...)
}

func (t *CellDependencyTree) fetchDependantsRecursive(bucket *bbolt.Bucket, dependingOnAddress contracts.Address, alreadyFetched map[contracts.Address]bool) []contracts.Address {
	dependants := t.fetchDirectDependants(bucket, dependingOnAddress)

	for _, dependantAddress := range dependants {
		if !alreadyFetched[dependantAddress] {
			alreadyFetched[dependantAddress] = true
			dependants = append(dependants, t.fetchDependantsRecursive(bucket, dependantAddress, alreadyFetched)...)
		}
	}

	return dependants
}

func (t *CellDependencyTree) fetchDirectDependants(bucket *bbolt.Bucket, dependingOnAddress contracts.Address) []contracts.Address {
	dependantAddresses := make([]contracts.Address, 0, 5)
	c := bucket.Cursor()

	prefix := t.makeDependingOnPrefixKey(dependingOnAddress)
	prefixLength := len(prefix)
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		dependantAddresses = append(dependantAddresses, contracts.Address(k[prefixLength:]))
	}

	return dependantAddresses
}

func (t *CellDependencyTree) makeDependingListKey(dependantAddress contracts.Address) []byte {
	return append(
		[]byte{Delimiter, Delimiter},
		[]byte(dependantAddress)...,
	)
}

func (t *CellDependencyTree) makeDependingOnPrefixKey(dependingOnAddress contracts.Address) []byte {
	return append([]byte(dependingOnAddress), Delimiter)
}

func (t *CellDependencyTree) makeDependantKey(dependantAddress contracts.Address, dependingOnAddress contracts.Address) []byte {
	return append(t.makeDependingOnPrefixKey(dependingOnAddress), []byte(dependantAddress)...)
}

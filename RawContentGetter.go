package main

import "gridsheet/contracts"

// NewOverlayContentGetter shadows one address with content that is not
// committed yet; every other address reads through to base. SetCell uses
// it so the recompute of dependants sees the pending edit, including an
// edit that clears the cell.
func NewOverlayContentGetter(address contracts.Address, value string, base contracts.RawContentGetter) contracts.RawContentGetter {
	return func(a contracts.Address) string {
		if a == address {
			return value
		}
		if base == nil {
			return ""
		}
		return base(a)
	}
}

// NewSnapshotContentGetter serves raw content out of a snapshot map.
func NewSnapshotContentGetter(snapshot contracts.SheetSnapshot) contracts.RawContentGetter {
	return func(address contracts.Address) string {
		return snapshot[address]
	}
}

package main

import (
	"gridsheet/contracts"
	"strings"
)

const RangeSeparator = ":"

// ResolveRange expands a range spec ("A1:C3", or a single address as a
// range of one) into the addresses of the closed rectangle between its
// corners, whichever order the corners come in. Iteration order is
// column-outer, row-inner, ascending. Malformed or out-of-bounds corners
// yield no cells rather than an error; a broken range is silently empty.
func ResolveRange(spec string) []contracts.Address {
	first, second, found := strings.Cut(spec, RangeSeparator)
	if !found {
		second = first
	}

	firstColumn, firstRow, err := DecodeAddress(contracts.Address(first))
	if err != nil {
		return nil
	}
	secondColumn, secondRow, err := DecodeAddress(contracts.Address(second))
	if err != nil {
		return nil
	}

	minColumn, maxColumn := ordered(firstColumn, secondColumn)
	minRow, maxRow := ordered(firstRow, secondRow)

	if maxColumn > contracts.MaxColumns || maxRow > contracts.MaxRows {
		return nil
	}

	addresses := make([]contracts.Address, 0, (maxColumn-minColumn+1)*(maxRow-minRow+1))
	for column := minColumn; column <= maxColumn; column++ {
		for row := minRow; row <= maxRow; row++ {
			addresses = append(addresses, EncodeAddress(column, row))
		}
	}

	return addresses
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

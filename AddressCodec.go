package main

import (
	"fmt"
	"gridsheet/contracts"
	"regexp"
	"strconv"
	"strings"
)

var addressPattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// EncodeAddress builds the letter+digit form of a 1-based (column, row)
// pair. Columns are bijective base-26: A=1 .. Z=26, AA=27, with no zero
// digit, emitted most-significant letter first.
func EncodeAddress(column int, row int) contracts.Address {
	letters := make([]byte, 0, 3)
	for column > 0 {
		letters = append(letters, byte('A'+(column-1)%26))
		column = (column - 1) / 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return contracts.Address(string(letters) + strconv.Itoa(row))
}

// DecodeAddress is the inverse of EncodeAddress. Input is canonicalized
// to upper case first; anything that does not match `[A-Z]+[0-9]+` or
// addresses row/column zero fails with MalformedAddressError.
func DecodeAddress(address contracts.Address) (column int, row int, err error) {
	match := addressPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(string(address))))
	if match == nil {
		return 0, 0, fmt.Errorf("%q: %w", address, contracts.MalformedAddressError)
	}

	for _, letter := range match[1] {
		column = column*26 + int(letter-'A') + 1
	}

	row, err = strconv.Atoi(match[2])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("%q: %w", address, contracts.MalformedAddressError)
	}

	return column, row, nil
}

// CanonicalAddress validates cellId against the address grammar and the
// grid bounds and returns its canonical upper-case form.
func CanonicalAddress(cellId string) (contracts.Address, error) {
	column, row, err := DecodeAddress(contracts.Address(cellId))
	if err != nil {
		return "", err
	}

	if column > contracts.MaxColumns || row > contracts.MaxRows {
		return "", fmt.Errorf("%q: outside grid bounds: %w", cellId, contracts.MalformedAddressError)
	}

	return EncodeAddress(column, row), nil
}

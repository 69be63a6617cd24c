package main

import (
	"encoding/binary"
	"errors"
	"fmt"

	"gridsheet/contracts"
)

var SerializerError = errors.New("invalid serialized data")

// CellBinarySerializer packs one stored cell: a little-endian uint16
// address length, the address bytes, one format-tag byte, then the raw
// content. Only raw content and the format tag are stored — computed
// values never are.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(address contracts.Address, value string, format contracts.FormatTag) []byte {
	addressBytes := []byte(address)

	serializedData := make([]byte, 0, 3+len(addressBytes)+len(value))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(addressBytes)))
	serializedData = append(serializedData, addressBytes...)
	serializedData = append(serializedData, byte(format))
	serializedData = append(serializedData, []byte(value)...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (address contracts.Address, value string, format contracts.FormatTag, err error) {
	if len(data) < 3 {
		return "", "", contracts.FormatGeneral, fmt.Errorf("%w: should be at least 3 bytes (data: %v)", SerializerError, string(data))
	}

	addressLength := int(binary.LittleEndian.Uint16(data))
	if len(data) < addressLength+3 {
		return "", "", contracts.FormatGeneral, fmt.Errorf("%w: address size exceeds bytes amount (addressSize: %d; data: %v)", SerializerError, addressLength, string(data))
	}

	address = contracts.Address(data[2 : addressLength+2])
	format = contracts.FormatTag(data[addressLength+2])
	value = string(data[addressLength+3:])
	return
}

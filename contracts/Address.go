package contracts

import "errors"

// Address identifies a cell: one or more column letters followed by a
// 1-based row number ("A1", "AA27"). The canonical form is upper-case;
// equality is structural.
type Address = string

// Grid bounds. The store never holds an address outside these; readers
// treat missing or out-of-bounds addresses as empty content.
const (
	MaxColumns = 702 // "ZZ"
	MaxRows    = 100000
)

var MalformedAddressError = errors.New("malformed cell address")

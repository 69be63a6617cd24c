package contracts

import "go.etcd.io/bbolt"

type CellDependencyTree interface {
	// SetDependsOn
	/**
	 * For `A1 = "=A2+A3"`: A1 depends on A2 and A3,
	 *  SetDependsOn(tx, sheet, "A1", []string{"A2", "A3"})
	 */
	SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantAddress Address, dependingOnAddresses []Address) error

	// GetDependants
	/**
	 * Inverse, transitive lookup: with A1 depending on A2, and B1
	 * depending on A1, GetDependants(tx, sheet, "A2") returns
	 * ["A1", "B1"]. Stored as prefix-composed keys in a bbolt
	 * B+tree, so one dependant fan-out is a single cursor scan.
	 */
	GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnAddress Address) []Address
}

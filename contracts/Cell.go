package contracts

import "errors"

type Cell struct {
	Address string `json:"address"`
	Value   string `json:"value"`
	Result  string `json:"result"`
	Format  string `json:"format,omitempty"`
}

// CellList maps canonical addresses to cells, keyed for JSON responses.
type CellList map[string]*Cell

var CellNotFoundError = errors.New("cell not found")

package contracts

// RawContentGetter resolves an address to its raw content. The empty
// string stands for an unset cell.
type RawContentGetter func(address Address) string

// FormatGetter resolves an address to its number format tag.
type FormatGetter func(address Address) FormatTag

type Evaluator interface {
	// Evaluate computes the display result of one cell from scratch.
	// It is pure: all state lives in the getters and the per-call
	// evaluation path, so callers own any caching policy.
	Evaluate(getRaw RawContentGetter, getFormat FormatGetter, address Address) Result

	// EvaluateSheet runs one eager recalculation pass over addresses,
	// sharing resolved values across cells. Per-cell errors are
	// independent and never abort the pass.
	EvaluateSheet(getRaw RawContentGetter, getFormat FormatGetter, addresses []Address) map[Address]Result

	// References lists every address the raw content depends on, with
	// range arguments expanded to their member cells.
	References(rawContent string) []Address
}

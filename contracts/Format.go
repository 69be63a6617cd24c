package contracts

import "errors"

// FormatTag is the externally-owned number format of a cell. The engine
// only consumes it when rendering a finite formula result; storage and
// mutation belong to the styling surface.
type FormatTag uint8

const (
	FormatGeneral FormatTag = iota
	FormatCurrency
	FormatPercentage
	FormatThousands
)

var UnknownFormatError = errors.New("unknown format tag")

var formatNames = map[FormatTag]string{
	FormatGeneral:    "general",
	FormatCurrency:   "currency",
	FormatPercentage: "percentage",
	FormatThousands:  "thousands",
}

func (f FormatTag) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return formatNames[FormatGeneral]
}

func ParseFormatTag(name string) (FormatTag, error) {
	for tag, tagName := range formatNames {
		if tagName == name {
			return tag, nil
		}
	}
	return FormatGeneral, UnknownFormatError
}

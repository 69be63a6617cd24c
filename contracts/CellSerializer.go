package contracts

type CellSerializer interface {
	Marshal(address Address, value string, format FormatTag) []byte
	Unmarshal(data []byte) (address Address, value string, format FormatTag, err error)
}

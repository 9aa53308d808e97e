package textenc

const (
	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes
	UTF16CodeUnitSize = 2

	// SniffLength is how many leading bytes the UTF-16 heuristic looks at
	SniffLength = 256

	// ByteOrderMark is the BOM code point as it appears in a decoded wide buffer
	ByteOrderMark = 0xFEFF
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF16BEBOM is the byte order mark for UTF-16 big-endian (not supported as input)
	UTF16BEBOM = []byte{0xFE, 0xFF}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)

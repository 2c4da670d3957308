package printer

const (
	esc = 0x1b
	dc2 = 0x12
)

func setUnderline(weight byte) []byte {
	return []byte{esc, '-', weight}
}

func feedLines(n byte) []byte {
	return []byte{esc, 'J', n}
}

// bitmapHeader introduces one chunk of packed bitmap data: DC2 '*' followed
// by the row count and the row width in bytes, each a single byte.
func bitmapHeader(rows, stride byte) []byte {
	return []byte{dc2, '*', rows, stride}
}

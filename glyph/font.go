package glyph

// SegmentCount is the number of bars in a 14-segment figure
const SegmentCount = 14

const (
	asciiOffset    = 32
	supportedChars = 96
)

// Mask selects which of the 14 segments are lit for one glyph.
// Bit assignments follow the usual 14-segment naming:
// 0=A (top), 1=B (upper right), 2=C (lower right), 3=D (bottom),
// 4=E (lower left), 5=F (upper left), 6=G1 (mid left), 7=G2 (mid right),
// 8=H, 10=J, 11=K, 13=M (inner diagonals), 9=I (upper center), 12=L (lower center)
type Mask uint16

// Has reports whether segment i is lit
func (m Mask) Has(i int) bool {
	return m>>uint(i)&1 == 1
}

// Lookup returns the segment mask for c. Codes outside printable ASCII
// render as blank.
func Lookup(c byte) Mask {
	if c < asciiOffset || c >= asciiOffset+supportedChars {
		return 0
	}
	return fontTable[c-asciiOffset]
}

// Bit-packed glyph data for ASCII 32..127, adapted from Dave Madison's
// LED-Segment-ASCII tables (github.com/dmadison/LED-Segment-ASCII)
var fontTable = [supportedChars]Mask{
	0b00000000000000, 0b10000000000110, 0b00001000000010, 0b01001011001110,
	0b01001011101101, 0b11111111100100, 0b10001101011001, 0b00001000000000,
	0b10010000000000, 0b00100100000000, 0b11111111000000, 0b01001011000000,
	0b00100000000000, 0b00000011000000, 0b10000000000000, 0b00110000000000,
	0b00110000111111, 0b00010000000110, 0b00000011011011, 0b00000010001111,
	0b00000011100110, 0b10000001101001, 0b00000011111101, 0b00000000000111,
	0b00000011111111, 0b00000011101111, 0b01001000000000, 0b00101000000000,
	0b10010001000000, 0b00000011001000, 0b00100110000000, 0b11000010000011,
	0b00001010111011, 0b00000011110111, 0b01001010001111, 0b00000000111001,
	0b01001000001111, 0b00000001111001, 0b00000001110001, 0b00000010111101,
	0b00000011110110, 0b01001000001001, 0b00000000011110, 0b10010001110000,
	0b00000000111000, 0b00010100110110, 0b10000100110110, 0b00000000111111,
	0b00000011110011, 0b10000000111111, 0b10000011110011, 0b00000011101101,
	0b01001000000001, 0b00000000111110, 0b00110000110000, 0b10100000110110,
	0b10110100000000, 0b00000011101110, 0b00110000001001, 0b00000000111001,
	0b10000100000000, 0b00000000001111, 0b10100000000000, 0b00000000001000,
	0b00000100000000, 0b01000001011000, 0b10000001111000, 0b00000011011000,
	0b00100010001110, 0b00100001011000, 0b01010011000000, 0b00010010001110,
	0b01000001110000, 0b01000000000000, 0b00101000010000, 0b11011000000000,
	0b00000000110000, 0b01000011010100, 0b01000001010000, 0b00000011011100,
	0b00000101110000, 0b00010010000110, 0b00000001010000, 0b10000010001000,
	0b00000001111000, 0b00000000011100, 0b00100000010000, 0b10100000010100,
	0b10110100000000, 0b00001010001110, 0b00100001001000, 0b00100101001001,
	0b01001000000000, 0b10010010001001, 0b00110011000000, 0b00000000000000,
}

package raster

// Mask is a binary raster. Data is row-major, Data[row*W+col], with
// every value 0 or 1; row 0 is the northernmost row, col 0 the
// westernmost column.
type Mask struct {
	W, H int
	Data []uint8
}

// NewMask allocates an all-zero w×h mask.
func NewMask(w, h int) Mask {
	return Mask{W: w, H: h, Data: make([]uint8, w*h)}
}

// At returns the cell value at (row, col).
func (m Mask) At(row, col int) uint8 {
	return m.Data[row*m.W+col]
}

func (m Mask) set(row, col int, v uint8) {
	m.Data[row*m.W+col] = v
}

// Invert flips every cell in place, swapping inside and outside.
// Applying it twice restores the original mask exactly.
func (m Mask) Invert() {
	for i, v := range m.Data {
		m.Data[i] = 1 - v
	}
}

// Clone returns an independent copy of the mask.
func (m Mask) Clone() Mask {
	c := Mask{W: m.W, H: m.H, Data: make([]uint8, len(m.Data))}
	copy(c.Data, m.Data)
	return c
}

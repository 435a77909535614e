// Package delay provides a fixed-size circular delay line for whole-sample
// taps, as used by comb-style effects.
package delay

// Line is a circular delay line.
type Line struct {
	buffer   []float64
	writePos int
}

// NewLine returns a delay line of fixed size. Sizes below one are raised to
// one so a Line is always usable.
func NewLine(size int) *Line {
	if size < 1 {
		size = 1
	}
	return &Line{buffer: make([]float64, size)}
}

// Len returns the internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write stores one sample and advances the write head.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample delay steps behind the write head. Read(1) is the
// most recently written sample; delays beyond the buffer wrap around.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	readPos := (d.writePos - delay) % size
	if readPos < 0 {
		readPos += size
	}
	return d.buffer[readPos]
}

// Reset clears the buffer and rewinds the write head.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

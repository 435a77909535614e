package sfx

import (
	"math"

	"github.com/cwbudde/algo-sfx/dsp/delay"
)

const phaserBufferSize = 1024

// phaser is a feed-forward comb filter with a time-varying whole-sample
// delay, backed by a fixed circular delay line.
type phaser struct {
	line    *delay.Line
	fphase  float64
	fdphase float64
}

func newPhaser() phaser {
	return phaser{line: delay.NewLine(phaserBufferSize)}
}

// reset derives the delay offset and its ramp from the parameters. The sign
// is taken from each parameter while the magnitude is always the square.
func (p *phaser) reset(offset, ramp float64) {
	p.fphase = offset * offset * 1020
	if offset < 0 {
		p.fphase = -p.fphase
	}

	p.fdphase = ramp * ramp
	if ramp < 0 {
		p.fdphase = -p.fdphase
	}
}

// clear zeroes the delay buffer so a rewound effect starts from silence.
func (p *phaser) clear() {
	p.line.Reset()
}

// advance moves the delay tap once per output frame.
func (p *phaser) advance() {
	p.fphase += p.fdphase
}

// process writes one raw sample and mixes in the delayed tap.
func (p *phaser) process(sample float64) float64 {
	p.line.Write(sample)

	iphase := int(math.Abs(p.fphase))
	if iphase > phaserBufferSize-1 {
		iphase = phaserBufferSize - 1
	}

	// Read(1) is the sample just written, so a zero tap doubles the input.
	return sample + p.line.Read(iphase+1)
}

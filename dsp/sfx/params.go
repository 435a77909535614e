package sfx

import (
	"fmt"
	"math"
)

// WaveType selects the oscillator waveform.
type WaveType int

// Supported oscillator waveforms.
const (
	WaveSquare WaveType = iota
	WaveTriangle
	WaveSine
	WaveNoise
)

// String returns the waveform name.
func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	case WaveSine:
		return "sine"
	case WaveNoise:
		return "noise"
	default:
		return fmt.Sprintf("WaveType(%d)", int(w))
	}
}

// Params defines one sound effect configuration for a Generator.
//
// Every numeric field has a closed valid range, checked once when a
// Generator is constructed. Unit ranges are [0, 1]; signed ranges are
// [-1, 1] as documented per field.
type Params struct {
	// WaveType is the oscillator waveform.
	WaveType WaveType

	// BaseFreq is the oscillator base frequency, in [0, 1].
	BaseFreq float64
	// FreqLimit is the lower frequency cutoff a downward slide stops at,
	// in [0, 1].
	FreqLimit float64
	// FreqRamp is the frequency change over time, in [-1, 1].
	FreqRamp float64
	// FreqDRamp is the change of FreqRamp over time, in [0, 1].
	FreqDRamp float64

	// Duty is the square wave duty cycle, in [0, 1]. Inert for other
	// waveforms.
	Duty float64
	// DutyRamp is the duty cycle change over time, in [-1, 1].
	DutyRamp float64

	// VibStrength is the vibrato strength, in [0, 1].
	VibStrength float64
	// VibSpeed is the vibrato speed, in [0, 1].
	VibSpeed float64
	// VibDelay is the vibrato onset delay, in [0, 1]. Carried for preset
	// compatibility; the synthesis math does not read it.
	VibDelay float64

	// EnvAttack is the attack stage duration, in [0, 1].
	EnvAttack float64
	// EnvSustain is the sustain stage duration, in [0, 1].
	EnvSustain float64
	// EnvDecay is the decay stage duration, in [0, 1].
	EnvDecay float64
	// EnvPunch is the extra volume boost at sustain start, in [-1, 1].
	EnvPunch float64

	// LPFResonance is the low-pass filter resonance, in [0, 1].
	LPFResonance float64
	// LPFFreq is the low-pass filter cutoff, in [0, 1].
	LPFFreq float64
	// LPFRamp is the low-pass cutoff change over time, in [-1, 1].
	LPFRamp float64
	// HPFFreq is the high-pass filter cutoff, in [0, 1].
	HPFFreq float64
	// HPFRamp is the high-pass cutoff change over time, in [-1, 1].
	HPFRamp float64

	// PhaOffset is the phaser delay offset, in [-1, 1].
	PhaOffset float64
	// PhaRamp is the phaser offset change over time, in [-1, 1].
	PhaRamp float64

	// RepeatSpeed controls periodic retriggering of the oscillator and
	// filter state, in [0, 1]. Zero disables repeating.
	RepeatSpeed float64

	// ArpSpeed controls when the one-shot arpeggio frequency step fires,
	// in [0, 1]. A value of exactly 1 disables it.
	ArpSpeed float64
	// ArpMod is the arpeggio frequency step, in [-1, 1].
	ArpMod float64
}

// NewParams returns a Params with the default effect: a plain square tone
// with a 0.4/0.1/0.5 envelope, filters wide open, and phaser, arpeggio and
// repeat disabled.
func NewParams() Params {
	return Params{
		WaveType:   WaveSquare,
		BaseFreq:   0.3,
		EnvAttack:  0.4,
		EnvSustain: 0.1,
		EnvDecay:   0.5,
		LPFFreq:    1.0,
	}
}

// Validate reports the first parameter outside its documented range.
func (p Params) Validate() error {
	if p.WaveType < WaveSquare || p.WaveType > WaveNoise {
		return fmt.Errorf("wave type must be square, triangle, sine or noise: %d", int(p.WaveType))
	}

	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"base freq", p.BaseFreq, 0, 1},
		{"freq limit", p.FreqLimit, 0, 1},
		{"freq ramp", p.FreqRamp, -1, 1},
		{"freq dramp", p.FreqDRamp, 0, 1},
		{"duty", p.Duty, 0, 1},
		{"duty ramp", p.DutyRamp, -1, 1},
		{"vib strength", p.VibStrength, 0, 1},
		{"vib speed", p.VibSpeed, 0, 1},
		{"vib delay", p.VibDelay, 0, 1},
		{"env attack", p.EnvAttack, 0, 1},
		{"env sustain", p.EnvSustain, 0, 1},
		{"env decay", p.EnvDecay, 0, 1},
		{"env punch", p.EnvPunch, -1, 1},
		{"lpf resonance", p.LPFResonance, 0, 1},
		{"lpf freq", p.LPFFreq, 0, 1},
		{"lpf ramp", p.LPFRamp, -1, 1},
		{"hpf freq", p.HPFFreq, 0, 1},
		{"hpf ramp", p.HPFRamp, -1, 1},
		{"pha offset", p.PhaOffset, -1, 1},
		{"pha ramp", p.PhaRamp, -1, 1},
		{"repeat speed", p.RepeatSpeed, 0, 1},
		{"arp speed", p.ArpSpeed, 0, 1},
		{"arp mod", p.ArpMod, -1, 1},
	}

	for _, c := range checks {
		if c.value < c.min || c.value > c.max || math.IsNaN(c.value) {
			return fmt.Errorf("%s must be in [%g, %g]: %f", c.name, c.min, c.max, c.value)
		}
	}

	return nil
}

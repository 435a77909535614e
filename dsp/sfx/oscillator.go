package sfx

import (
	"math"
	"math/rand"
)

const (
	noiseTableSize = 32
	minPeriod      = 8
)

// oscillator produces one raw waveform sample per call to next and owns the
// frequency slide, vibrato, duty sweep and one-shot arpeggio state. The
// period slides once per output frame (advance), while next runs once per
// raw supersample.
type oscillator struct {
	waveType WaveType
	rng      *rand.Rand

	period int
	phase  int
	noise  [noiseTableSize]float64

	squareDuty  float64
	squareSlide float64

	fperiod    float64
	fmaxperiod float64
	fslide     float64
	fdslide    float64

	vibPhase float64
	vibSpeed float64
	vibAmp   float64

	arpTime  int
	arpLimit int
	arpMod   float64
}

func newOscillator(waveType WaveType, rng *rand.Rand) oscillator {
	return oscillator{
		waveType:   waveType,
		rng:        rng,
		period:     minPeriod,
		squareDuty: 0.5,
	}
}

// resetNoise regenerates the full lookup table with fresh uniform values in
// [-1, 1].
func (o *oscillator) resetNoise() {
	for i := range o.noise {
		o.noise[i] = o.rng.Float64()*2 - 1
	}
}

func (o *oscillator) resetPhase() {
	o.phase = 0
}

func (o *oscillator) resetVibrato(speed, strength float64) {
	o.vibPhase = 0
	o.vibSpeed = speed * speed * 0.01
	o.vibAmp = strength * 0.5
}

// reset derives the frequency slide, duty and arpeggio state from p.
// Called on construction, full rewind, and every repeat retrigger.
func (o *oscillator) reset(p Params) {
	o.waveType = p.WaveType
	o.fperiod = 100 / (p.BaseFreq*p.BaseFreq + 0.001)
	o.fmaxperiod = 100 / (p.FreqLimit*p.FreqLimit + 0.001)
	o.fslide = 1 - math.Pow(p.FreqRamp, 3)*0.01
	o.fdslide = -math.Pow(p.FreqDRamp, 3) * 0.000001
	o.squareDuty = 0.5 - p.Duty*0.5
	o.squareSlide = -p.DutyRamp * 0.00005

	// Negative steps swing wider than positive ones on purpose.
	if p.ArpMod >= 0 {
		o.arpMod = 1 - p.ArpMod*p.ArpMod*0.9
	} else {
		o.arpMod = 1 - p.ArpMod*p.ArpMod*10
	}

	o.arpTime = 0
	o.arpLimit = int((1-p.ArpSpeed)*(1-p.ArpSpeed)*20000 + 32)
	if p.ArpSpeed == 1 {
		o.arpLimit = 0
	}
}

// advance steps the slide, vibrato, arpeggio and duty modulators once per
// output frame.
func (o *oscillator) advance() {
	o.arpTime++
	if o.arpLimit != 0 && o.arpTime >= o.arpLimit {
		o.arpLimit = 0
		o.fperiod *= o.arpMod
	}

	o.fslide += o.fdslide
	o.fperiod = math.Min(o.fperiod*o.fslide, o.fmaxperiod)

	o.vibPhase += o.vibSpeed
	vibrato := 1 + math.Sin(o.vibPhase)*o.vibAmp

	o.period = int(vibrato * o.fperiod)
	if o.period < minPeriod {
		o.period = minPeriod
	}

	o.squareDuty += o.squareSlide
	if o.squareDuty < 0 {
		o.squareDuty = 0
	} else if o.squareDuty > 0.5 {
		o.squareDuty = 0.5
	}
}

// next emits one raw waveform sample. On phase wraparound a noise oscillator
// regenerates its lookup table, so every cycle uses fresh noise.
func (o *oscillator) next() float64 {
	o.phase++
	if o.phase >= o.period {
		o.phase %= o.period
		if o.waveType == WaveNoise {
			o.resetNoise()
		}
	}

	fp := float64(o.phase) / float64(o.period)
	switch o.waveType {
	case WaveSquare:
		if fp < o.squareDuty {
			return 0.5
		}
		return -0.5
	case WaveTriangle:
		return 1 - fp*2
	case WaveSine:
		return math.Sin(fp * 2 * math.Pi)
	case WaveNoise:
		return o.noise[int(fp*noiseTableSize)]
	default:
		return 0
	}
}

package sfx

import (
	"math/rand"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// SampleRate is the fixed output rate, in Hz, the effect data is designed
// for. The generator does not resample; callers must play buffers at this
// rate.
const SampleRate = 44100

const (
	supersamples     = 8
	defaultVolume    = 0.2
	defaultNoiseSeed = 1
)

// GeneratorOption configures a Generator at construction.
type GeneratorOption func(*Generator)

// WithNoiseSeed pins the seed of the generator-owned noise source. Two
// generators built from equal Params and the same seed produce bit-identical
// output for identical call sequences.
func WithNoiseSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.noiseSeed = seed
	}
}

// Generator renders one sound effect as a mono float32 stream.
//
// State persists from one Generate call to the next, so an effect can be
// produced in chunks. A Generator is a single mutable unit of state and
// provides no internal locking; callers sharing one across goroutines must
// serialize access themselves.
type Generator struct {
	// Volume is the linear output gain applied before the [-1, 1] clamp.
	Volume float32

	params Params

	osc    oscillator
	env    envelope
	filter bandFilter
	pha    phaser

	repTime  int
	repLimit int

	noiseSeed int64
}

// NewGenerator validates p and returns a Generator rewound to the start of
// the effect. Validation is eager: a Params field outside its documented
// range is a configuration error and fails construction; nothing is checked
// again per frame.
func NewGenerator(p Params, opts ...GeneratorOption) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		Volume:    defaultVolume,
		params:    p,
		pha:       newPhaser(),
		noiseSeed: defaultNoiseSeed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	g.osc = newOscillator(p.WaveType, nil)
	g.Reset()

	return g, nil
}

// Params returns the current effect definition.
func (g *Generator) Params() Params {
	return g.params
}

// SetParams replaces the effect definition. The new parameters take full
// effect on the next Reset; frequency, filter and arpeggio state also pick
// them up on the next repeat retrigger.
func (g *Generator) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.params = p
	return nil
}

// Done reports whether the volume envelope has reached its terminal stage.
// Everything generated afterwards decays to silence.
func (g *Generator) Done() bool {
	return g.env.done()
}

// Generate fills buf with effect data, continuing where the previous call
// left off. Each output frame advances the modulators once, draws eight raw
// oscillator samples through envelope, filter and phaser, and stores their
// clamped average.
func (g *Generator) Generate(buf []float32) {
	for i := range buf {
		g.repTime++
		if g.repLimit != 0 && g.repTime >= g.repLimit {
			g.repTime = 0
			g.restart()
		}

		g.osc.advance()
		g.env.advance()
		g.pha.advance()

		var sum float64
		for s := 0; s < supersamples; s++ {
			sample := g.osc.next()
			sample *= g.env.volume()
			sample = g.filter.process(sample)
			sample = g.pha.process(sample)
			sum += sample
		}

		out := sum / supersamples * float64(g.Volume)
		buf[i] = float32(core.Clamp(out, -1, 1))
	}
}

// Reset rewinds the generator to the start of the effect. The noise source
// is reseeded, so a reset generator reproduces the output of a freshly
// constructed one exactly.
func (g *Generator) Reset() {
	g.osc.rng = rand.New(rand.NewSource(g.noiseSeed))

	g.restart()

	g.env.reset(g.params.EnvAttack, g.params.EnvSustain, g.params.EnvDecay, g.params.EnvPunch)
	g.pha.reset(g.params.PhaOffset, g.params.PhaRamp)
	g.pha.clear()

	g.osc.resetPhase()
	g.osc.resetVibrato(g.params.VibSpeed, g.params.VibStrength)
	g.osc.resetNoise()

	g.repTime = 0
	g.repLimit = int((1 - g.params.RepeatSpeed) * (1 - g.params.RepeatSpeed) * 20000 * 32)
	if g.params.RepeatSpeed == 0 {
		g.repLimit = 0
	}
}

// restart re-derives the oscillator frequency/arpeggio/duty state and the
// filter coefficients only. Envelope progress, vibrato phase, phaser sweep
// and the noise table carry on, which is what keeps periodic repeats free of
// discontinuities in the slower modulators.
func (g *Generator) restart() {
	g.filter.reset(g.params.LPFResonance, g.params.LPFFreq, g.params.LPFRamp,
		g.params.HPFFreq, g.params.HPFRamp)
	g.osc.reset(g.params)
}

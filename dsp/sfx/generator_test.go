package sfx

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/internal/testutil"
)

func mustGenerator(t *testing.T, p Params, opts ...GeneratorOption) *Generator {
	t.Helper()
	g, err := NewGenerator(p, opts...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}

func TestNewGeneratorRejectsInvalidParams(t *testing.T) {
	p := NewParams()
	p.BaseFreq = 1.5

	if _, err := NewGenerator(p); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNewGeneratorDefaultVolume(t *testing.T) {
	g := mustGenerator(t, NewParams())
	if g.Volume != 0.2 {
		t.Fatalf("Volume: got %v want 0.2", g.Volume)
	}
}

func TestGenerateOutputWithinClamp(t *testing.T) {
	presets := []func(int64) Params{Pickup, Laser, Explosion, Powerup, Hit, Jump, Blip}

	for _, preset := range presets {
		for seed := int64(0); seed < 5; seed++ {
			g := mustGenerator(t, preset(seed), WithNoiseSeed(seed+1))
			g.Volume = 1.0 // stress the clamp

			buf := make([]float32, 30000)
			g.Generate(buf)

			testutil.RequireFinite32(t, buf)
			testutil.RequireInRange32(t, buf, -1, 1)
		}
	}
}

func TestGenerateDefaultEnvelopeScenario(t *testing.T) {
	g := mustGenerator(t, NewParams())

	buf := make([]float32, SampleRate)
	g.Generate(buf)

	// Attack begins at zero volume.
	if math.Abs(float64(buf[0])) > 1e-3 {
		t.Fatalf("first sample not silent: %v", buf[0])
	}

	var peak float64
	for _, v := range buf {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}
	if peak < 0.05 {
		t.Fatalf("effect never rose above the noise floor: peak %v", peak)
	}

	// attack + sustain + decay = 16000 + 1000 + 25000 frames; afterwards
	// only residual filter ringing remains and it must stay far below the
	// audible body of the effect.
	total := 16000 + 1000 + 25000
	for i := total + 500; i < len(buf); i++ {
		if math.Abs(float64(buf[i])) > 0.01 {
			t.Fatalf("sample %d after envelope end too loud: %v", i, buf[i])
		}
	}

	if !g.Done() {
		t.Fatal("Done() must report true after the envelope ends")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Explosion(5) // noise wave, phaser, repeat all in play

	g1 := mustGenerator(t, p, WithNoiseSeed(9))
	g2 := mustGenerator(t, p, WithNoiseSeed(9))

	buf1 := make([]float32, 30000)
	buf2 := make([]float32, 30000)

	// Different chunkings must not matter: generation is per-frame.
	g1.Generate(buf1)
	for i := 0; i < len(buf2); i += 1000 {
		g2.Generate(buf2[i : i+1000])
	}

	for i := range buf1 {
		if buf1[i] != buf2[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, buf1[i], buf2[i])
		}
	}
}

func TestGenerateNoiseSeedChangesOutput(t *testing.T) {
	p := NewParams()
	p.WaveType = WaveNoise

	g1 := mustGenerator(t, p, WithNoiseSeed(1))
	g2 := mustGenerator(t, p, WithNoiseSeed(2))

	buf1 := make([]float32, 10000)
	buf2 := make([]float32, 10000)
	g1.Generate(buf1)
	g2.Generate(buf2)

	same := true
	for i := range buf1 {
		if buf1[i] != buf2[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different noise seeds produced identical output")
	}
}

func TestResetRoundTrip(t *testing.T) {
	p := Explosion(7)
	p.PhaOffset = 0.4
	p.PhaRamp = -0.2

	g := mustGenerator(t, p, WithNoiseSeed(3))

	first := make([]float32, 20000)
	g.Generate(first)

	g.Reset()

	second := make([]float32, 20000)
	g.Generate(second)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRepeatDisabledAtZeroSpeed(t *testing.T) {
	g := mustGenerator(t, NewParams())

	if g.repLimit != 0 {
		t.Fatalf("repLimit: got %d want 0", g.repLimit)
	}

	buf := make([]float32, 50000)
	g.Generate(buf)

	if g.repTime != 50000 {
		t.Fatalf("repTime: got %d want 50000 (restart must never fire)", g.repTime)
	}
}

func TestRepeatRetriggers(t *testing.T) {
	p := NewParams()
	p.RepeatSpeed = 0.9
	p.FreqRamp = 0.5 // slide the period so a restart is observable

	g := mustGenerator(t, p)

	if g.repLimit == 0 {
		t.Fatal("repLimit must be armed for a non-zero repeat speed")
	}

	buf := make([]float32, g.repLimit+10)
	g.Generate(buf)

	if g.repTime >= g.repLimit {
		t.Fatalf("repTime %d not reset by restart (limit %d)", g.repTime, g.repLimit)
	}

	// Restart re-derives the slide state from the params.
	wantFslide := 1 - math.Pow(p.FreqRamp, 3)*0.01
	drift := math.Abs(g.osc.fslide - wantFslide)
	if drift > 0.001 {
		t.Fatalf("fslide %v drifted too far from restart value %v", g.osc.fslide, wantFslide)
	}
}

func TestArpeggioDisabledAtFullSpeed(t *testing.T) {
	p := NewParams()
	p.ArpSpeed = 1
	p.ArpMod = 0.8

	g := mustGenerator(t, p)

	if g.osc.arpLimit != 0 {
		t.Fatalf("arpLimit: got %d want 0", g.osc.arpLimit)
	}
}

func TestVolumeScalesOutput(t *testing.T) {
	p := NewParams()

	loud := mustGenerator(t, p)
	quiet := mustGenerator(t, p)
	loud.Volume = 0.2
	quiet.Volume = 0.1

	bufLoud := make([]float32, 20000)
	bufQuiet := make([]float32, 20000)
	loud.Generate(bufLoud)
	quiet.Generate(bufQuiet)

	for i := range bufLoud {
		want := bufLoud[i] / 2
		if math.Abs(float64(bufQuiet[i]-want)) > 1e-6 {
			t.Fatalf("sample %d: quiet=%v want %v", i, bufQuiet[i], want)
		}
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	g := mustGenerator(t, Laser(3))
	g.Volume = 0

	buf := make([]float32, 10000)
	g.Generate(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d not silent: %v", i, v)
		}
	}
}

func TestSetParams(t *testing.T) {
	g := mustGenerator(t, NewParams())

	bad := NewParams()
	bad.ArpMod = 5
	if err := g.SetParams(bad); err == nil {
		t.Fatal("expected validation error")
	}
	if g.Params().ArpMod == 5 {
		t.Fatal("invalid params must not be stored")
	}

	next := Laser(1)
	if err := g.SetParams(next); err != nil {
		t.Fatalf("SetParams() error = %v", err)
	}
	g.Reset()

	if g.Params() != next {
		t.Fatal("Params() does not reflect the replacement effect")
	}
	if g.osc.waveType != next.WaveType {
		t.Fatalf("oscillator wave after reset: got %v want %v", g.osc.waveType, next.WaveType)
	}
}

func TestDoneProgression(t *testing.T) {
	p := NewParams()
	p.EnvAttack = 0.1
	p.EnvSustain = 0.1
	p.EnvDecay = 0.1

	g := mustGenerator(t, p)

	if g.Done() {
		t.Fatal("fresh generator must not be done")
	}

	buf := make([]float32, 4000)
	g.Generate(buf)

	if !g.Done() {
		t.Fatal("generator must be done after all stages elapsed")
	}

	g.Reset()
	if g.Done() {
		t.Fatal("reset must rewind the envelope")
	}
}

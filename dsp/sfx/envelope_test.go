package sfx

import (
	"math"
	"testing"
)

func TestEnvelopeStageLengths(t *testing.T) {
	var e envelope
	e.reset(0.4, 0.1, 0.5, 0)

	if e.attack != 16000 {
		t.Fatalf("attack length: got %d want 16000", e.attack)
	}
	if e.sustain != 1000 {
		t.Fatalf("sustain length: got %d want 1000", e.sustain)
	}
	if e.decay != 25000 {
		t.Fatalf("decay length: got %d want 25000", e.decay)
	}
}

func TestEnvelopeAttackStartsSilent(t *testing.T) {
	var e envelope
	e.reset(0.4, 0.1, 0.5, 0)

	if got := e.volume(); got != 0 {
		t.Fatalf("volume at start of attack: got %v want 0", got)
	}
}

func TestEnvelopeAttackRises(t *testing.T) {
	var e envelope
	e.reset(0.1, 0.1, 0.1, 0)

	prev := e.volume()
	for i := 0; i < e.attack-1; i++ {
		e.advance()
		v := e.volume()
		if v < prev {
			t.Fatalf("attack volume fell from %v to %v at frame %d", prev, v, i)
		}
		prev = v
	}
}

func TestEnvelopeAttackSustainContinuity(t *testing.T) {
	var e envelope
	e.reset(0.1, 0.1, 0.1, 0)

	// Step to the last attack frame.
	for e.stage == stageAttack && e.stageLeft > 1 {
		e.advance()
	}
	before := e.volume()

	e.advance()
	if e.stage != stageSustain {
		t.Fatalf("stage after attack: got %v want sustain", e.stage)
	}
	after := e.volume()

	if math.Abs(before-1) > 0.01 || math.Abs(after-1) > 0.01 {
		t.Fatalf("discontinuity at attack/sustain boundary: %v -> %v", before, after)
	}
}

func TestEnvelopeSustainPunch(t *testing.T) {
	var e envelope
	e.reset(0, 0.5, 0.5, 0.5)

	e.advance()
	if e.stage != stageSustain {
		t.Fatalf("stage: got %v want sustain", e.stage)
	}

	// Punch boosts the start of sustain above unity and settles back to 1.
	first := e.volume()
	if first <= 1 {
		t.Fatalf("punched sustain start: got %v want > 1", first)
	}

	for e.stage == stageSustain {
		e.advance()
	}
	if e.stage != stageDecay {
		t.Fatalf("stage: got %v want decay", e.stage)
	}
}

func TestEnvelopeDecayMonotonicToZero(t *testing.T) {
	var e envelope
	e.reset(0, 0, 0.3, 0)

	for e.stage != stageDecay {
		e.advance()
	}

	prev := e.volume()
	for e.stage == stageDecay {
		e.advance()
		v := e.volume()
		if e.stage == stageDecay && v > prev {
			t.Fatalf("decay volume rose from %v to %v", prev, v)
		}
		prev = v
	}

	if e.stage != stageEnd {
		t.Fatalf("stage: got %v want end", e.stage)
	}
	if got := e.volume(); got != 0 {
		t.Fatalf("volume at end: got %v want 0", got)
	}
}

func TestEnvelopeEndIsTerminal(t *testing.T) {
	var e envelope
	e.reset(0, 0, 0, 0)

	for i := 0; i < 100; i++ {
		e.advance()
	}

	if !e.done() {
		t.Fatal("envelope with zero-length stages must reach End")
	}
	if got := e.volume(); got != 0 {
		t.Fatalf("volume in End: got %v want 0", got)
	}
}

func TestEnvelopeZeroLengthStageVolumeIsFinite(t *testing.T) {
	var e envelope
	e.reset(0.1, 0, 0.1, 1)

	for i := 0; i < 30000; i++ {
		e.advance()
		v := e.volume()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite volume %v at frame %d (stage %v)", v, i, e.stage)
		}
	}
}

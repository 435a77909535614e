package sfx

type envelopeStage int

const (
	stageAttack envelopeStage = iota
	stageSustain
	stageDecay
	stageEnd
)

// envelope is the three-stage volume state machine. Stage durations are
// frame counts derived as param² · 100000; the terminal End stage holds a
// zero multiplier forever.
type envelope struct {
	stage     envelopeStage
	stageLeft int

	attack  int
	sustain int
	decay   int
	punch   float64
}

func (e *envelope) reset(attack, sustain, decay, punch float64) {
	e.attack = int(attack * attack * 100000)
	e.sustain = int(sustain * sustain * 100000)
	e.decay = int(decay * decay * 100000)
	e.punch = punch
	e.stage = stageAttack
	e.stageLeft = e.stageLength()
}

// advance counts the current stage down by one frame, transitioning at zero.
func (e *envelope) advance() {
	if e.stageLeft > 1 {
		e.stageLeft--
		return
	}

	if e.stage < stageEnd {
		e.stage++
	}
	e.stageLeft = e.stageLength()
}

func (e *envelope) stageLength() int {
	switch e.stage {
	case stageAttack:
		return e.attack
	case stageSustain:
		return e.sustain
	case stageDecay:
		return e.decay
	default:
		return 0
	}
}

// volume returns the current multiplier. Attack ramps 0→1, sustain starts
// boosted by punch and settles to 1, decay ramps 1→0, End is silent.
func (e *envelope) volume() float64 {
	length := e.stageLength()

	var dt float64
	if length > 0 {
		dt = float64(e.stageLeft) / float64(length)
	}

	switch e.stage {
	case stageAttack:
		return 1 - dt
	case stageSustain:
		return 1 + dt*2*e.punch
	case stageDecay:
		return dt
	default:
		return 0
	}
}

func (e *envelope) done() bool {
	return e.stage == stageEnd
}

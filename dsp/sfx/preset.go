package sfx

import "math/rand"

// Preset constructors build randomized Params in the classic sfxr
// categories. Each takes an explicit seed so results are reproducible; the
// same seed always yields the same effect. They only populate parameter
// fields and contain no synthesis logic.

// Pickup returns a randomized "coin" or "item pickup" effect.
func Pickup(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	p.BaseFreq = randRange(rng, 0.4, 0.9)
	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.0, 0.1)
	p.EnvDecay = randRange(rng, 0.1, 0.5)
	p.EnvPunch = randRange(rng, 0.3, 0.6)

	if randBool(rng, 1, 1) {
		p.ArpSpeed = randRange(rng, 0.5, 0.7)
		p.ArpMod = randRange(rng, 0.2, 0.6)
	}

	return p
}

// Laser returns a randomized "shoot" or "laser" effect.
func Laser(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	waves := []WaveType{WaveSquare, WaveSquare, WaveSine, WaveSine, WaveTriangle}
	p.WaveType = waves[rng.Intn(len(waves))]

	if randBool(rng, 1, 2) {
		p.BaseFreq = randRange(rng, 0.3, 0.9)
		p.FreqLimit = randRange(rng, 0.0, 0.1)
		p.FreqRamp = randRange(rng, -0.35, -0.65)
	} else {
		p.BaseFreq = randRange(rng, 0.5, 1.0)
		p.FreqLimit = p.BaseFreq - randRange(rng, 0.2, 0.8)
		if p.FreqLimit < 0.2 {
			p.FreqLimit = 0.2
		}
		p.FreqRamp = randRange(rng, -0.15, -0.35)
	}

	if randBool(rng, 1, 1) {
		p.Duty = randRange(rng, 0.0, 0.5)
		p.DutyRamp = randRange(rng, 0.0, 0.2)
	} else {
		p.Duty = randRange(rng, 0.4, 0.9)
		p.DutyRamp = randRange(rng, 0.0, -0.7)
	}

	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.1, 0.3)
	p.EnvDecay = randRange(rng, 0.0, 0.4)

	if randBool(rng, 1, 1) {
		p.EnvPunch = randRange(rng, 0.0, 0.3)
	}

	if randBool(rng, 1, 2) {
		p.PhaOffset = randRange(rng, 0.0, 0.2)
		p.PhaRamp = -randRange(rng, 0.0, 0.2)
	}

	if randBool(rng, 1, 1) {
		p.HPFFreq = randRange(rng, 0.0, 0.3)
	}

	return p
}

// Explosion returns a randomized "explosion" effect.
func Explosion(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	p.WaveType = WaveNoise

	if randBool(rng, 1, 1) {
		p.BaseFreq = randRange(rng, 0.1, 0.5)
		p.FreqRamp = randRange(rng, -0.1, 0.3)
	} else {
		p.BaseFreq = randRange(rng, 0.2, 0.9)
		p.FreqRamp = randRange(rng, -0.2, -0.4)
	}

	p.BaseFreq *= p.BaseFreq

	if randBool(rng, 1, 4) {
		p.FreqRamp = 0
	}

	if randBool(rng, 1, 2) {
		p.RepeatSpeed = randRange(rng, 0.3, 0.8)
	}

	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.1, 0.4)
	p.EnvDecay = randRange(rng, 0.0, 0.5)

	if randBool(rng, 1, 1) {
		p.PhaOffset = randRange(rng, -0.3, 0.6)
		p.PhaRamp = randRange(rng, -0.3, 0.0)
	}

	p.EnvPunch = randRange(rng, 0.2, 0.8)

	if randBool(rng, 1, 1) {
		p.VibStrength = randRange(rng, 0.0, 0.7)
		p.VibSpeed = randRange(rng, 0.0, 0.6)
	}

	if randBool(rng, 1, 2) {
		p.ArpSpeed = randRange(rng, 0.6, 0.9)
		p.ArpMod = randRange(rng, -0.8, 0.8)
	}

	return p
}

// Powerup returns a randomized rising "powerup" effect.
func Powerup(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	if randBool(rng, 1, 1) {
		p.WaveType = WaveSine
	} else {
		p.Duty = randRange(rng, 0.0, 0.6)
	}

	p.BaseFreq = randRange(rng, 0.2, 0.5)

	if randBool(rng, 1, 1) {
		p.FreqRamp = randRange(rng, 0.1, 0.5)
		p.RepeatSpeed = randRange(rng, 0.4, 0.8)
	} else {
		p.FreqRamp = randRange(rng, 0.05, 0.25)

		if randBool(rng, 1, 1) {
			p.VibStrength = randRange(rng, 0.0, 0.7)
			p.VibSpeed = randRange(rng, 0.0, 0.6)
		}
	}

	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.0, 0.4)
	p.EnvDecay = randRange(rng, 0.1, 0.5)

	return p
}

// Hit returns a randomized "hit" or "damage" effect.
func Hit(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	waves := []WaveType{WaveSquare, WaveSine, WaveNoise}
	p.WaveType = waves[rng.Intn(len(waves))]

	if p.WaveType == WaveSquare {
		p.Duty = randRange(rng, 0.0, 0.6)
	}

	p.BaseFreq = randRange(rng, 0.2, 0.8)
	p.FreqRamp = randRange(rng, -0.3, -0.7)
	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.0, 0.1)
	p.EnvDecay = randRange(rng, 0.1, 0.3)

	if randBool(rng, 1, 1) {
		p.HPFFreq = randRange(rng, 0.0, 0.3)
	}

	return p
}

// Jump returns a randomized "jump" effect.
func Jump(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	p.WaveType = WaveSquare
	p.Duty = randRange(rng, 0.0, 0.6)
	p.BaseFreq = randRange(rng, 0.3, 0.6)
	p.FreqRamp = randRange(rng, 0.1, 0.3)
	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.1, 0.4)
	p.EnvDecay = randRange(rng, 0.1, 0.3)

	if randBool(rng, 1, 1) {
		p.HPFFreq = randRange(rng, 0.0, 0.3)
	}

	if randBool(rng, 1, 1) {
		p.LPFFreq = randRange(rng, 0.4, 1.0)
	}

	return p
}

// Blip returns a randomized "blip" or menu-navigation effect.
func Blip(seed int64) Params {
	rng := rand.New(rand.NewSource(seed))
	p := NewParams()

	waves := []WaveType{WaveSquare, WaveSine}
	p.WaveType = waves[rng.Intn(len(waves))]

	if p.WaveType == WaveSquare {
		p.Duty = randRange(rng, 0.0, 0.6)
	}

	p.BaseFreq = randRange(rng, 0.2, 0.6)
	p.EnvAttack = 0
	p.EnvSustain = randRange(rng, 0.1, 0.2)
	p.EnvDecay = randRange(rng, 0.0, 0.2)
	p.HPFFreq = 0.1

	return p
}

// Mutate nudges most fields by up to ±0.05, each with 50% probability,
// clamping every result to its valid range. Useful for generating
// variations of a known good effect.
func (p *Params) Mutate(seed int64) {
	rng := rand.New(rand.NewSource(seed))

	mutate := func(v *float64, min, max float64) {
		if !randBool(rng, 1, 1) {
			return
		}
		*v += randRange(rng, -0.05, 0.05)
		if *v < min {
			*v = min
		} else if *v > max {
			*v = max
		}
	}

	mutate(&p.BaseFreq, 0, 1)
	mutate(&p.FreqRamp, -1, 1)
	mutate(&p.FreqDRamp, 0, 1)
	mutate(&p.Duty, 0, 1)
	mutate(&p.DutyRamp, -1, 1)
	mutate(&p.VibStrength, 0, 1)
	mutate(&p.VibSpeed, 0, 1)
	mutate(&p.VibDelay, 0, 1)
	mutate(&p.EnvAttack, 0, 1)
	mutate(&p.EnvSustain, 0, 1)
	mutate(&p.EnvDecay, 0, 1)
	mutate(&p.EnvPunch, -1, 1)
	mutate(&p.LPFResonance, 0, 1)
	mutate(&p.LPFFreq, 0, 1)
	mutate(&p.LPFRamp, -1, 1)
	mutate(&p.HPFFreq, 0, 1)
	mutate(&p.HPFRamp, -1, 1)
	mutate(&p.PhaOffset, -1, 1)
	mutate(&p.PhaRamp, 0, 1)
	mutate(&p.RepeatSpeed, 0, 1)
	mutate(&p.ArpSpeed, 0, 1)
	mutate(&p.ArpMod, -1, 1)
}

// randRange returns a value in [from, until); until may be below from for a
// downward range.
func randRange(rng *rand.Rand, from, until float64) float64 {
	return from + (until-from)*rng.Float64()
}

// randBool is true with chanceTrue : chanceFalse odds.
func randBool(rng *rand.Rand, chanceTrue, chanceFalse int) bool {
	return rng.Intn(chanceTrue+chanceFalse) < chanceTrue
}

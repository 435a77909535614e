package sfx

import "github.com/cwbudde/algo-sfx/dsp/core"

// bandFilter is the cascaded resonant low-pass and leaky high-pass stage.
// Corner values are not Hz; they follow sfxr's cubic/squared parameter
// curves and ramp multiplicatively per raw sample.
type bandFilter struct {
	fltp   float64 // low-pass output
	fltdp  float64 // low-pass output velocity
	fltw   float64 // low-pass corner
	fltwD  float64 // low-pass corner ramp per sample
	fltdmp float64 // damping; higher resonance lowers it

	fltphp float64 // high-pass output
	flthp  float64 // high-pass corner
	flthpD float64 // high-pass corner ramp per sample
}

func (f *bandFilter) reset(resonance, lpFreq, lpRamp, hpFreq, hpRamp float64) {
	f.fltp = 0
	f.fltdp = 0
	f.fltw = lpFreq * lpFreq * lpFreq * 0.1
	f.fltwD = 1 + lpRamp*0.0001

	f.fltdmp = 5 / (1 + resonance*resonance*20) * (0.01 + f.fltw)
	if f.fltdmp > 0.8 {
		f.fltdmp = 0.8
	}

	f.fltphp = 0
	f.flthp = hpFreq * hpFreq * 0.1
	f.flthpD = 1 + hpRamp*0.0003
}

// process runs one raw sample through both stages. A zero low-pass corner
// bypasses the spring stage entirely by snapping to the input.
func (f *bandFilter) process(sample float64) float64 {
	pp := f.fltp

	if f.fltw > 0 {
		f.fltw = core.Clamp(f.fltw*f.fltwD, 0, 0.1)
		f.fltdp += (sample - f.fltp) * f.fltw
		f.fltdp -= f.fltdp * f.fltdmp
	} else {
		f.fltp = sample
		f.fltdp = 0
	}

	f.fltp += f.fltdp

	// The 0.00001 floor keeps the leaky integrator from ever freezing.
	f.flthp = core.Clamp(f.flthp*f.flthpD, 0.00001, 0.1)
	f.fltphp += f.fltp - pp
	f.fltphp -= f.fltphp * f.flthp

	return f.fltphp
}

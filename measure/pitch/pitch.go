// Package pitch estimates the dominant frequency of a mono signal.
//
// The estimator truncates the signal to a power-of-two length, takes a
// forward FFT and refines the strongest bin with parabolic interpolation.
// It is meant for verifying synthesized tones, not for polyphonic material.
package pitch

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const minSignalLen = 16

// Estimate returns the dominant frequency of signal in Hz.
func Estimate(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) < minSignalLen {
		return 0, fmt.Errorf("pitch signal must have at least %d samples: %d", minSignalLen, len(signal))
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("pitch sample rate must be > 0 and finite: %f", sampleRate)
	}

	fftSize := 1
	for fftSize*2 <= len(signal) {
		fftSize *= 2
	}

	in := make([]complex128, fftSize)
	for i := 0; i < fftSize; i++ {
		in[i] = complex(signal[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("pitch fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("pitch fft: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	// Skip DC and Nyquist; a dominant tone always has an interior peak.
	peak := 1
	for i := 2; i < binCount-1; i++ {
		if power[i] > power[peak] {
			peak = i
		}
	}

	binHz := sampleRate / float64(fftSize)
	return (float64(peak) + peakOffset(power, peak)) * binHz, nil
}

// Estimate32 is Estimate for float32 buffers, such as generator output.
func Estimate32(signal []float32, sampleRate float64) (float64, error) {
	converted := make([]float64, len(signal))
	for i, v := range signal {
		converted[i] = float64(v)
	}
	return Estimate(converted, sampleRate)
}

// peakOffset refines the peak bin by fitting a parabola through it and its
// neighbors. The result is in (-0.5, 0.5) bins.
func peakOffset(power []float64, peak int) float64 {
	if peak <= 0 || peak >= len(power)-1 {
		return 0
	}

	left := power[peak-1]
	center := power[peak]
	right := power[peak+1]

	denom := left - 2*center + right
	if denom == 0 {
		return 0
	}

	offset := 0.5 * (left - right) / denom
	if offset < -0.5 {
		offset = -0.5
	} else if offset > 0.5 {
		offset = 0.5
	}
	return offset
}

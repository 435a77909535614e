// Package sfx synthesizes short procedural sound effects from a compact
// parameter set, in the style of DrPetter's classic "sfxr" generator.
//
// A sound effect is described by a Params value: oscillator waveform and
// frequency slides, a three-stage volume envelope, a resonant low/high-pass
// filter pair, a comb-filter phaser, and optional arpeggio and repeat
// triggers. A Generator consumes a Params value and renders mono float32
// samples into caller-provided buffers; state carries over between calls so
// an effect can be streamed in chunks.
//
// Output is 32-bit float in [-1, 1] at a fixed assumed rate of 44.1 kHz
// (see SampleRate). The generator never opens audio devices; playback is the
// caller's concern.
//
// The parameter curves are deliberately nonlinear (cubic and squared
// mappings, asymmetric sign handling) and reproduce sfxr's arithmetic
// exactly. They are load-bearing for audible parity and must not be
// linearized.
package sfx

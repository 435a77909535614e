// Command sfxgen renders procedural sound effects to WAV files or plays
// them directly.
//
// Usage:
//
//	sfxgen [flags]
//
// Examples:
//
//	sfxgen -preset laser -seed 3 -o laser.wav
//	sfxgen -preset explosion -seed 7 -play
//	sfxgen -preset pickup -mutate 2 -info
//	sfxgen -list
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/cwbudde/algo-sfx/dsp/sfx"
	"github.com/cwbudde/algo-sfx/measure/pitch"
)

type presetEntry struct {
	name string
	fn   func(seed int64) sfx.Params
}

var presets = []presetEntry{
	{"default", func(int64) sfx.Params { return sfx.NewParams() }},
	{"pickup", sfx.Pickup},
	{"laser", sfx.Laser},
	{"explosion", sfx.Explosion},
	{"powerup", sfx.Powerup},
	{"hit", sfx.Hit},
	{"jump", sfx.Jump},
	{"blip", sfx.Blip},
}

func main() {
	var (
		presetName = flag.String("preset", "default", "effect preset to render")
		seed       = flag.Int64("seed", 0, "random seed for preset construction")
		mutations  = flag.Int("mutate", 0, "number of small random mutations to apply")
		outPath    = flag.String("o", "", "write the effect as 16-bit mono WAV to this path")
		play       = flag.Bool("play", false, "play the effect through the default audio device")
		info       = flag.Bool("info", false, "print duration, peak amplitude and dominant frequency")
		volume     = flag.Float64("volume", 0.2, "linear output gain")
		maxSeconds = flag.Float64("max", 10, "hard cap on rendered duration in seconds")
		list       = flag.Bool("list", false, "list available presets")
	)
	flag.Parse()

	if *list {
		for _, p := range presets {
			fmt.Println(p.name)
		}
		return
	}

	if *outPath == "" && !*play && !*info {
		fmt.Fprintln(os.Stderr, "nothing to do: pass at least one of -o, -play or -info")
		flag.Usage()
		os.Exit(2)
	}

	params, err := buildParams(*presetName, *seed, *mutations)
	if err != nil {
		fatal(err)
	}

	data, err := render(params, *volume, *maxSeconds)
	if err != nil {
		fatal(err)
	}

	if *info {
		printInfo(params, data)
	}

	if *outPath != "" {
		if err := writeWAV(*outPath, data); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d samples)\n", *outPath, len(data))
	}

	if *play {
		if err := playBuffer(data); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "sfxgen:", err)
	os.Exit(1)
}

func buildParams(name string, seed int64, mutations int) (sfx.Params, error) {
	for _, p := range presets {
		if p.name != name {
			continue
		}
		params := p.fn(seed)
		for i := 0; i < mutations; i++ {
			params.Mutate(seed + int64(i) + 1)
		}
		return params, nil
	}
	return sfx.Params{}, fmt.Errorf("unknown preset %q (try -list)", name)
}

// render generates the effect until its envelope ends, plus a short tail for
// the filters to ring out, capped at maxSeconds.
func render(params sfx.Params, volume, maxSeconds float64) ([]float32, error) {
	g, err := sfx.NewGenerator(params)
	if err != nil {
		return nil, err
	}
	g.Volume = float32(volume)

	const chunk = 4096
	maxFrames := int(maxSeconds * sfx.SampleRate)

	var data []float32
	for len(data) < maxFrames && !g.Done() {
		buf := make([]float32, chunk)
		g.Generate(buf)
		data = append(data, buf...)
	}

	// Tail so delayed phaser taps and filter state fade out.
	if len(data) < maxFrames {
		tail := make([]float32, chunk)
		g.Generate(tail)
		data = append(data, tail...)
	}

	if len(data) > maxFrames {
		data = data[:maxFrames]
	}
	return data, nil
}

func printInfo(params sfx.Params, data []float32) {
	var peak float32
	for _, v := range data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	fmt.Printf("wave:     %s\n", params.WaveType)
	fmt.Printf("duration: %.3f s (%d samples)\n", float64(len(data))/sfx.SampleRate, len(data))
	fmt.Printf("peak:     %.4f\n", peak)

	window := data
	if len(window) > 65536 {
		window = window[:65536]
	}
	if freq, err := pitch.Estimate32(window, sfx.SampleRate); err == nil {
		fmt.Printf("dominant: %.1f Hz\n", freq)
	}
}

// writeWAV stores data as canonical 44-byte-header PCM: mono, 16-bit,
// 44.1 kHz.
func writeWAV(path string, data []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sfx.SampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := len(data) * blockAlign

	var header = []interface{}{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + dataSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1), // PCM
		uint16(channels),
		uint32(sfx.SampleRate),
		uint32(byteRate),
		uint16(blockAlign),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(dataSize),
	}
	for _, v := range header {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	pcm := make([]int16, len(data))
	for i, v := range data {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		pcm[i] = int16(v * 32767)
	}
	return binary.Write(f, binary.LittleEndian, pcm)
}

// bufferStreamer adapts a rendered mono buffer to a beep stereo stream.
type bufferStreamer struct {
	buf []float32
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := float64(s.buf[s.pos])
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

func playBuffer(data []float32) error {
	rate := beep.SampleRate(sfx.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(&bufferStreamer{buf: data}, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}

package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"quizfx/internal/quiz"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundSelect SoundKind = iota
	SoundCorrect
	SoundWrong
	SoundFanfare
	SoundEncourage
)

// maxVoices caps overlapping effects.
const maxVoices = 4

// Audio plays procedurally generated sound effects. A nil *Audio is silent.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
	cache  map[SoundKind][]byte
}

// NewAudio opens the output device. volume is clamped to [0,1].
func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready, cache: make(map[SoundKind][]byte)}
	a.SetVolume(volume)
	for _, k := range []SoundKind{SoundSelect, SoundCorrect, SoundWrong, SoundFanfare, SoundEncourage} {
		a.cache[k] = generateSound(k)
	}
	return a, nil
}

func (a *Audio) SetVolume(vol float64) {
	if a == nil {
		return
	}
	a.volume = clampF(vol, 0, 1)
}

// Play starts kind on its own goroutine. It never blocks the frame loop.
func (a *Audio) Play(kind SoundKind) {
	if a == nil || a.volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.cache[kind]
	if len(samples) == 0 {
		return
	}
	if atomic.AddInt32(&a.voices, 1) > maxVoices {
		atomic.AddInt32(&a.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&a.voices, -1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Bind plays feedback sounds for quiz transitions.
func (a *Audio) Bind(bus *quiz.EventBus) {
	if a == nil {
		return
	}
	bus.Subscribe(quiz.EventQuizStarted, func(quiz.Event) { a.Play(SoundSelect) })
	bus.Subscribe(quiz.EventRetry, func(quiz.Event) { a.Play(SoundSelect) })
	bus.Subscribe(quiz.EventAnswered, func(ev quiz.Event) {
		if ev.Correct {
			a.Play(SoundCorrect)
		} else {
			a.Play(SoundWrong)
		}
	})
	bus.Subscribe(quiz.EventResultsEntered, func(ev quiz.Event) {
		if ev.Tier.Celebrates() {
			a.Play(SoundFanfare)
		} else {
			a.Play(SoundEncourage)
		}
	})
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// mixToBuf saturates a mono mix into a stereo buffer.
func mixToBuf(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundSelect:
		return genSelect()
	case SoundCorrect:
		return genCorrect()
	case SoundWrong:
		return genWrong()
	case SoundFanfare:
		return genFanfare()
	case SoundEncourage:
		return genEncourage()
	}
	return nil
}

// genSelect: crisp click + brief high tone.
func genSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCorrect: two rising bell notes.
func genCorrect() []byte {
	return bellSequence([]float64{659.25, 987.77}, 0.08, 0.22)
}

// genWrong: low descending buzz.
func genWrong() []byte {
	n := int(0.28 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 320 - 180*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.5
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFanfare: ascending major arpeggio that rings out.
func genFanfare() []byte {
	return bellSequence([]float64{523.25, 659.25, 783.99, 1046.5, 1318.51}, 0.09, 0.35)
}

// genEncourage: soft rising minor-to-major pair.
func genEncourage() []byte {
	dur := 0.7
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{220.00, 0.00}, // A3
		{261.63, 0.12}, // C4
		{329.63, 0.24}, // E4
		{277.18, 0.36}, // C#4
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.02, 0.3, 0.3, 0.45)
			mix[i] += fm(t, note.freq, 2.0, 1.2*env) * env * 0.22
		}
	}
	return mixToBuf(mix)
}

// bellSequence overlaps FM bell notes spaced step seconds apart with a
// shared tail.
func bellSequence(freqs []float64, step, tail float64) []byte {
	noteStep := int(step * SampleRate)
	total := len(freqs)*noteStep + int(tail*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return mixToBuf(mix)
}

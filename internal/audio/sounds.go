package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Sound timings.
const (
	jumpDuration  = 90 * time.Millisecond
	jumpAttack    = 5 * time.Millisecond
	jumpRelease   = 40 * time.Millisecond
	scoreNote1    = 70 * time.Millisecond
	scoreNote2    = 160 * time.Millisecond
	scoreAttack   = 3 * time.Millisecond
	scoreRelease1 = 20 * time.Millisecond
	scoreRelease2 = 120 * time.Millisecond
	crashDuration = 220 * time.Millisecond
	crashAttack   = 2 * time.Millisecond
	crashRelease  = 180 * time.Millisecond
	fallDuration  = 450 * time.Millisecond
	fallAttack    = 10 * time.Millisecond
	fallRelease   = 150 * time.Millisecond
	musicNote     = 300 * time.Millisecond
	musicAttack   = 40 * time.Millisecond
	musicRelease  = 200 * time.Millisecond
)

// musicPhrase is the background arpeggio in A minor, one note per musicNote.
var musicPhrase = []float64{
	220.00, 261.63, 329.63, 392.00, // A3 C4 E4 G4
	329.63, 261.63, 246.94, 196.00, // E4 C4 B3 G3
}

// MusicPeriod is the length of one pass of the background loop.
var MusicPeriod = time.Duration(len(musicPhrase)) * musicNote

// Per-effect mix levels, scaled by the master volume.
var effectVolumes = map[flappy.Event]float64{
	flappy.EventJump:  0.5,
	flappy.EventScore: 0.6,
	flappy.EventCrash: 0.8,
	flappy.EventFall:  0.7,
}

// JumpSound is a short rising square chirp.
func JumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(440, 880, jumpDuration, WaveSquare, rate)
	return NewEnvelope(osc, jumpDuration, jumpAttack, jumpRelease, rate)
}

// ScoreSound is a two-note chime (B5 then E6).
func ScoreSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, scoreNote1, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, scoreNote1, scoreAttack, scoreRelease1, rate)

	n2 := NewOscillator(1318.51, scoreNote2, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, scoreNote2, scoreAttack, scoreRelease2, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// CrashSound is a harsh noise burst.
func CrashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, crashDuration, WaveNoise, rate)
	return NewEnvelope(noise, crashDuration, crashAttack, crashRelease, rate)
}

// FallSound is a falling saw sweep.
func FallSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(600, 90, fallDuration, WaveSaw, rate)
	return NewEnvelope(osc, fallDuration, fallAttack, fallRelease, rate)
}

// MusicLoop is a soft sine arpeggio that repeats forever. The phrase is
// rendered once into a buffer so it can be looped by seeking.
func MusicLoop(rate beep.SampleRate) beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	for _, freq := range musicPhrase {
		osc := NewOscillator(freq, musicNote, WaveSine, rate)
		buf.Append(NewEnvelope(osc, musicNote, musicAttack, musicRelease, rate))
	}
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// Music returns the background loop at volume, or nil when volume is zero.
func Music(rate beep.SampleRate, volume float64) beep.Streamer {
	if volume <= 0 {
		return nil
	}
	return newVolume(MusicLoop(rate), volume)
}

// Effect returns the volume-scaled streamer for an event, or nil if the
// event has no sound.
func Effect(e flappy.Event, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case flappy.EventJump:
		s = JumpSound(rate)
	case flappy.EventScore:
		s = ScoreSound(rate)
	case flappy.EventCrash:
		s = CrashSound(rate)
	case flappy.EventFall:
		s = FallSound(rate)
	default:
		return nil
	}
	return newVolume(s, effectVolumes[e]*master)
}

// Package audio plays the game's sound cues. Every call is fire-and-forget.
package audio

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Cue names a sound.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueScore
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle-hit"
	case CueScore:
		return "score"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// ClipFile is the file a cue is loaded from inside the assets directory.
func (c Cue) ClipFile() string {
	return c.String() + ".wav"
}

var cues = []Cue{CuePaddleHit, CueScore, CueVictory}

// Player plays cues without blocking the caller.
type Player interface {
	Play(Cue)
}

// Silent drops every cue. Used when no audio device is available.
type Silent struct{}

func (Silent) Play(Cue) {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	clips map[Cue]*beep.Buffer
	log   *logrus.Entry
}

// NewSpeaker initializes the audio device and loads clips from assetsDir.
// Cues without a clip fall back to synthesized tones.
func NewSpeaker(assetsDir string, log *logrus.Entry) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}

	s := &Speaker{log: log}
	clips, err := loadClips(assetsDir)
	if err != nil {
		log.WithError(err).Warn("using synthesized sounds")
	}
	s.clips = clips
	return s, nil
}

// Close shuts down the audio system
func (s *Speaker) Close() {
	speaker.Close()
}

func (s *Speaker) Play(c Cue) {
	if buf, ok := s.clips[c]; ok {
		speaker.Play(buf.Streamer(0, buf.Len()))
		return
	}
	speaker.Play(synth(c))
}

// loadClips decodes every cue's WAV file found in dir. Missing files are
// skipped; a file that fails to decode is an error.
func loadClips(dir string) (map[Cue]*beep.Buffer, error) {
	clips := make(map[Cue]*beep.Buffer)
	if dir == "" {
		return clips, nil
	}

	for _, c := range cues {
		path := filepath.Join(dir, c.ClipFile())
		buf, err := loadClip(path)
		if os.IsNotExist(errors.Cause(err)) {
			continue
		}
		if err != nil {
			return clips, err
		}
		clips[c] = buf
	}
	return clips, nil
}

func loadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open clip")
	}

	streamer, clipFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if clipFormat.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, clipFormat.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return buf, nil
}

// synth builds the fallback tone for a cue.
func synth(c Cue) beep.Streamer {
	switch c {
	case CueScore:
		// descending
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	case CueVictory:
		return beep.Seq(
			squareWave(523, 120*time.Millisecond),
			squareWave(659, 120*time.Millisecond),
			squareWave(784, 120*time.Millisecond),
			squareWave(1047, 300*time.Millisecond),
		)
	}
	return squareWave(880, 50*time.Millisecond)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// Recorder remembers cues instead of playing them.
type Recorder struct {
	Cues []Cue
}

func (r *Recorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

// internal/audio/generator.go
package audio

import "math"

// Формы волны для синтезатора.
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// toneStreamer — процедурный beep.Streamer: одна нота заданной формы,
// частоты и длительности с линейной attack/release-огибающей.
type toneStreamer struct {
	wave   int
	freq   float64
	volume float64

	sampleRate float64
	pos        int
	total      int
	attack     int
	release    int
	phase      float64
}

func newTone(wave int, freq, durationSec, volume float64) *toneStreamer {
	sr := float64(sampleRateHz)
	total := int(durationSec * sr)
	attack := int(0.005 * sr)
	release := int(0.03 * sr)
	if release > total/2 {
		release = total / 2
	}
	return &toneStreamer{
		wave:       wave,
		freq:       freq,
		volume:     volume,
		sampleRate: sampleRateHz,
		total:      total,
		attack:     attack,
		release:    release,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case waveSaw:
			v = 2.0 * (t.phase - 0.5)
		}

		v *= t.envelope() * t.volume
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / t.sampleRate
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.pos++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}

// envelope возвращает громкость текущего сэмпла по attack/release-огибающей.
func (t *toneStreamer) envelope() float64 {
	if t.pos < t.attack && t.attack > 0 {
		return float64(t.pos) / float64(t.attack)
	}
	if rest := t.total - t.pos; rest < t.release && t.release > 0 {
		return float64(rest) / float64(t.release)
	}
	return 1.0
}

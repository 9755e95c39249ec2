package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine burst with an exponential decay envelope.
func tone(sr beep.SampleRate, freq float64, d time.Duration, amp float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-6 * float64(pos) / float64(total))
			v := amp * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// tickSound is the short click played when a slice passes the marker.
func tickSound(sr beep.SampleRate) beep.Streamer {
	return tone(sr, 1800, 25*time.Millisecond, 0.35)
}

// winSound is a rising two-note chime.
func winSound(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 660, 140*time.Millisecond, 0.4),
		tone(sr, 880, 260*time.Millisecond, 0.4),
	)
}

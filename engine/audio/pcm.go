package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// MaxClip bounds how much of a streamer PCM16 will render.
const MaxClip = 3 * time.Second

// gain converts a linear volume to the exponent effects.Volume expects with base 2.
func gain(v float64) float64 {
	return math.Log2(v)
}

// PCM16 drains s into interleaved little-endian signed 16-bit stereo.
func PCM16(s beep.Streamer, rate beep.SampleRate) []byte {
	limit := rate.N(MaxClip)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*rate.N(500*time.Millisecond))
	for total := 0; total < limit; {
		want := len(buf)
		if limit-total < want {
			want = limit - total
		}
		n, ok := s.Stream(buf[:want])
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[1])))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

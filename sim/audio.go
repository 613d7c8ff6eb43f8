package sim

import (
	"fmt"

	"github.com/cwbudde/algo-am/dsp/signal"
)

const (
	// AudioMinFreq and AudioMaxFreq bound, exclusively, the message
	// frequencies for which Audio is available.
	AudioMinFreq = 20.0
	AudioMaxFreq = 20e3
)

// AudioSource selects the buffer handed to a playback device.
type AudioSource int

const (
	AudioMessage AudioSource = iota + 1
	AudioDemodulated
)

func (s AudioSource) String() string {
	switch s {
	case AudioMessage:
		return "message"
	case AudioDemodulated:
		return "demodulated"
	default:
		return fmt.Sprintf("AudioSource(%d)", int(s))
	}
}

// AudioBuffer is a mono buffer normalized to unit peak.
type AudioBuffer struct {
	Samples    []float32
	SampleRate int
}

// AudioAvailable reports whether fm lies strictly inside the audible range.
func AudioAvailable(fm float64) bool {
	return fm > AudioMinFreq && fm < AudioMaxFreq
}

// Audio returns the selected buffer for playback. It fails with
// ErrAudioUnavailable when the message frequency is not audible.
func (r *Result) Audio(src AudioSource) (AudioBuffer, error) {
	if !AudioAvailable(r.Params.MessageFreq) {
		return AudioBuffer{}, fmt.Errorf("%w: message frequency %.1f Hz outside (%.0f, %.0f) Hz",
			ErrAudioUnavailable, r.Params.MessageFreq, AudioMinFreq, AudioMaxFreq)
	}

	var data []float64
	switch src {
	case AudioMessage:
		data = r.Buffers.Message
	case AudioDemodulated:
		data = r.Buffers.Demodulated
	default:
		return AudioBuffer{}, fmt.Errorf("%w: unknown source %v", ErrAudioUnavailable, src)
	}
	if len(data) == 0 {
		return AudioBuffer{}, fmt.Errorf("%w: empty %v buffer", ErrAudioUnavailable, src)
	}

	norm, err := signal.Normalize(data, 1)
	if err != nil {
		return AudioBuffer{}, err
	}

	out := make([]float32, len(norm))
	for i, v := range norm {
		out[i] = float32(v)
	}
	return AudioBuffer{Samples: out, SampleRate: int(r.SampleRate)}, nil
}

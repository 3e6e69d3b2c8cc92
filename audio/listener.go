package audio

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
)

// Listener delimits utterances in a Stream using an energy threshold that
// follows the ambient noise level.
type Listener struct {
	// EnergyThreshold is the RMS level above which a chunk counts as speech.
	EnergyThreshold float64
	// DynamicEnergyThreshold keeps adjusting the threshold while waiting for speech.
	DynamicEnergyThreshold bool
	// DynamicEnergyAdjustmentDamping is the fraction of the old threshold kept per second.
	DynamicEnergyAdjustmentDamping float64
	// DynamicEnergyRatio scales ambient energy into the speech threshold.
	DynamicEnergyRatio float64
	// PauseThreshold is the silence that ends an utterance.
	PauseThreshold time.Duration
	// PhraseThreshold is the minimum speech kept as an utterance; shorter bursts are dropped.
	PhraseThreshold time.Duration
	// NonSpeakingDuration is the silence kept on both sides of an utterance.
	NonSpeakingDuration time.Duration
	// ChunkSize is the number of samples read per step.
	ChunkSize int
}

// NewListener returns a Listener with the capture tool's tuning.
func NewListener() *Listener {
	return &Listener{
		EnergyThreshold:                3000,
		DynamicEnergyThreshold:         true,
		DynamicEnergyAdjustmentDamping: 0.15,
		DynamicEnergyRatio:             1.5,
		PauseThreshold:                 1200 * time.Millisecond,
		PhraseThreshold:                300 * time.Millisecond,
		NonSpeakingDuration:            500 * time.Millisecond,
		ChunkSize:                      1024,
	}
}

// Energy is the root mean square of samples.
func Energy(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func (l *Listener) secondsPerBuffer(s Stream) float64 {
	return float64(l.ChunkSize) / float64(s.SampleRate())
}

func (l *Listener) adjust(energy, secondsPerBuffer float64) {
	damping := math.Pow(l.DynamicEnergyAdjustmentDamping, secondsPerBuffer)
	target := energy * l.DynamicEnergyRatio
	l.EnergyThreshold = l.EnergyThreshold*damping + target*(1-damping)
}

func (l *Listener) read(ctx context.Context, s Stream) ([]int16, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	chunk := make([]int16, l.ChunkSize)
	n, err := s.Read(chunk)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return chunk[:n], err
	}
	return chunk, nil
}

// AdjustForAmbientNoise reads d worth of audio and moves the energy threshold
// towards the measured background level.
func (l *Listener) AdjustForAmbientNoise(ctx context.Context, s Stream, d time.Duration) error {
	spb := l.secondsPerBuffer(s)
	elapsed := 0.0
	for {
		elapsed += spb
		if elapsed > d.Seconds() {
			return nil
		}
		chunk, err := l.read(ctx, s)
		if err != nil {
			return errors.Wrap(err, "calibrating ambient noise")
		}
		l.adjust(Energy(chunk), spb)
	}
}

// Listen blocks until one utterance has been captured. There is no timeout:
// it returns early only when ctx is cancelled or the stream fails. If the
// stream ends during an utterance, the audio so far is returned.
func (l *Listener) Listen(ctx context.Context, s Stream) (*Capture, error) {
	spb := l.secondsPerBuffer(s)
	pauseBufferCount := int(math.Ceil(l.PauseThreshold.Seconds() / spb))
	phraseBufferCount := int(math.Ceil(l.PhraseThreshold.Seconds() / spb))
	nonSpeakingBufferCount := int(math.Ceil(l.NonSpeakingDuration.Seconds() / spb))

	var frames [][]int16
	var pauseCount int
	for {
		frames = frames[:0]

		for {
			chunk, err := l.read(ctx, s)
			if err != nil {
				return nil, errors.Wrap(err, "waiting for speech")
			}
			frames = append(frames, chunk)
			if len(frames) > nonSpeakingBufferCount {
				frames = frames[1:]
			}

			energy := Energy(chunk)
			if energy > l.EnergyThreshold {
				break
			}
			if l.DynamicEnergyThreshold {
				l.adjust(energy, spb)
			}
		}

		pauseCount = 0
		phraseCount := 0
		ended := false
		for {
			chunk, err := l.read(ctx, s)
			if len(chunk) > 0 {
				frames = append(frames, chunk)
			}
			if err != nil {
				if errors.Is(err, io.EOF) && ctx.Err() == nil {
					ended = true
					break
				}
				return nil, errors.Wrap(err, "recording phrase")
			}

			phraseCount++
			if Energy(chunk) > l.EnergyThreshold {
				pauseCount = 0
			} else {
				pauseCount++
			}
			if pauseCount > pauseBufferCount {
				break
			}
		}

		phraseCount -= pauseCount
		if phraseCount >= phraseBufferCount || ended {
			break
		}
	}

	for i := 0; i < pauseCount-nonSpeakingBufferCount && len(frames) > 0; i++ {
		frames = frames[:len(frames)-1]
	}

	capture := &Capture{SampleRate: s.SampleRate()}
	for _, f := range frames {
		capture.Samples = append(capture.Samples, f...)
	}
	return capture, nil
}

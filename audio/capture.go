// Package audio captures microphone input as 16-bit mono PCM and delimits
// utterances with an energy threshold.
package audio

import (
	"encoding/binary"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const (
	// SampleRate is the capture rate every recognizer accepts.
	SampleRate = 16000
	// BitDepth of captured samples.
	BitDepth = 16
)

// Capture holds the samples of one utterance.
type Capture struct {
	Samples    []int16
	SampleRate int
}

// Duration of the captured audio.
func (c *Capture) Duration() time.Duration {
	if c == nil || c.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Empty reports whether the capture carries no samples.
func (c *Capture) Empty() bool {
	return c == nil || len(c.Samples) == 0
}

// PCM returns the samples as little-endian signed 16-bit bytes.
func (c *Capture) PCM() []byte {
	b := make([]byte, 2*len(c.Samples))
	for i, s := range c.Samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}

// WriteWAV stores the capture as a mono 16-bit WAV file at path.
func (c *Capture) WriteWAV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(f, c.SampleRate, BitDepth, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "encoding wav")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "finalizing wav")
	}
	return nil
}

// ReadWAV loads a mono 16-bit WAV file written by WriteWAV.
func ReadWAV(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.Errorf("%s is not a valid wav file", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "decoding wav")
	}

	c := &Capture{SampleRate: int(dec.SampleRate), Samples: make([]int16, len(buf.Data))}
	for i, s := range buf.Data {
		c.Samples[i] = int16(s)
	}
	return c, nil
}

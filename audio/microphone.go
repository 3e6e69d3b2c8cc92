package audio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=../mocks/mock_microphone.go -package=mocks github.com/mrsingh-rishi/speechkit/audio Microphone,Stream

// Stream is an open microphone delivering 16-bit mono samples.
type Stream interface {
	// Read fills samples and returns how many were read. A short count is
	// only returned together with an error.
	Read(samples []int16) (int, error)
	SampleRate() int
	Close() error
}

// Microphone hands out exclusive access to the default input device.
type Microphone interface {
	Open(ctx context.Context) (Stream, error)
}

// DefaultRecorder returns the recorder command for goos that writes raw
// 16 kHz mono s16le PCM to stdout, or nil when the platform has none.
func DefaultRecorder(goos string) []string {
	switch goos {
	case "linux":
		return []string{"arecord", "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "raw"}
	case "darwin":
		return []string{"sox", "-q", "-d", "-t", "raw", "-b", "16", "-e", "signed-integer", "-c", "1", "-r", "16000", "-"}
	default:
		return nil
	}
}

// CommandMicrophone records through an external recorder process. The process
// runs only while a Stream is open.
type CommandMicrophone struct {
	command []string
}

// NewCommandMicrophone creates a microphone backed by command. command must
// write raw 16 kHz mono s16le PCM to stdout.
func NewCommandMicrophone(command []string) *CommandMicrophone {
	return &CommandMicrophone{command: command}
}

func (m *CommandMicrophone) Open(ctx context.Context) (Stream, error) {
	if len(m.command) == 0 {
		return nil, errors.New("no microphone recorder configured, set STT_RECORDER")
	}
	path, err := exec.LookPath(m.command[0])
	if err != nil {
		return nil, errors.Wrapf(err, "no microphone recorder available (%s)", m.command[0])
	}

	cmd := exec.CommandContext(ctx, path, m.command[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "attaching to recorder output")
	}
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "starting recorder %s", m.command[0])
	}

	return &commandStream{cmd: cmd, r: bufio.NewReaderSize(stdout, 8192), stderr: stderr}, nil
}

type commandStream struct {
	cmd    *exec.Cmd
	r      *bufio.Reader
	stderr *bytes.Buffer
	buf    []byte
	waited bool
}

func (s *commandStream) SampleRate() int { return SampleRate }

func (s *commandStream) Read(samples []int16) (int, error) {
	if cap(s.buf) < 2*len(samples) {
		s.buf = make([]byte, 2*len(samples))
	}
	b := s.buf[:2*len(samples)]

	n, err := io.ReadFull(s.r, b)
	for i := 0; i < n/2; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	if err != nil {
		s.wait()
		if msg := strings.TrimSpace(s.stderr.String()); msg != "" {
			return n / 2, errors.Wrapf(err, "recorder stopped: %s", msg)
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return n / 2, err
	}
	return n / 2, nil
}

// wait reaps the recorder; stderr may only be read afterwards.
func (s *commandStream) wait() {
	if s.waited {
		return
	}
	s.waited = true
	_ = s.cmd.Wait()
}

// Close stops the recorder process and releases the device.
func (s *commandStream) Close() error {
	if !s.waited && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	s.wait()
	return nil
}

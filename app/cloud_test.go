package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/mrsingh-rishi/speechkit/mocks"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type cloudFixture struct {
	session *CloudSession
	synth   *mocks.MockSynthesizer
	player  *mocks.MockPlayer
	dir     string
	out     *bytes.Buffer
}

func newCloudFixture(t *testing.T, input string) *cloudFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &cloudFixture{
		synth:  mocks.NewMockSynthesizer(ctrl),
		player: mocks.NewMockPlayer(ctrl),
		dir:    t.TempDir(),
		out:    &bytes.Buffer{},
	}
	f.synth.EXPECT().Name().Return("fake").AnyTimes()

	p := console.New(strings.NewReader(input), f.out)
	f.session = NewCloudSession(p, f.synth, f.player, f.dir, zap.NewNop().Sugar()).
		WithClock(func() time.Time { return now }).
		WithGrace(0)
	return f
}

func writeAudio(data string) func(context.Context, string, bool, io.Writer) error {
	return func(_ context.Context, _ string, _ bool, w io.Writer) error {
		_, err := io.WriteString(w, data)
		return err
	}
}

func TestCloudSessionConvertAndPlay(t *testing.T) {
	f := newCloudFixture(t, "Selamat pagi\n3\n2\nn\n")
	want := filepath.Join(f.dir, "speech_20261019_093000.mp3")

	gomock.InOrder(
		f.synth.EXPECT().Synthesize(gomock.Any(), "Selamat pagi", true, gomock.Any()).DoAndReturn(writeAudio("ID3mp3")),
		f.player.EXPECT().Play(gomock.Any(), want).Return(nil),
	)

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(want)
	if err != nil || string(data) != "ID3mp3" {
		t.Errorf("audio file = %q, %v", data, err)
	}
	out := f.out.String()
	for _, s := range []string{"please enter 1, 2", "Audio saved as: " + want, "Thank you for using Text-to-Speech Converter!"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestCloudSessionConversionFailureRemovesFile(t *testing.T) {
	f := newCloudFixture(t, "halo\n1\nn\n")

	f.synth.EXPECT().Synthesize(gomock.Any(), "halo", false, gomock.Any()).DoAndReturn(
		func(ctx context.Context, text string, slow bool, w io.Writer) error {
			io.WriteString(w, "partial")
			return errors.New("bad status: 503")
		})
	f.player.EXPECT().Play(gomock.Any(), gomock.Any()).Times(0)

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, _ := os.ReadDir(f.dir)
	if len(entries) != 0 {
		t.Errorf("partial file left behind: %v", entries)
	}
	if !strings.Contains(f.out.String(), "Error during conversion: bad status: 503") {
		t.Errorf("failure not reported:\n%s", f.out)
	}
}

func TestCloudSessionPlaybackFailureContinues(t *testing.T) {
	f := newCloudFixture(t, "halo\n1\ny\n")

	f.synth.EXPECT().Synthesize(gomock.Any(), "halo", false, gomock.Any()).DoAndReturn(writeAudio("mp3"))
	f.player.EXPECT().Play(gomock.Any(), gomock.Any()).Return(errors.New("xdg-open not found"))

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "Error playing audio: xdg-open not found") {
		t.Errorf("playback failure not reported:\n%s", out)
	}
	if got := strings.Count(out, "Enter your text"); got != 2 {
		t.Errorf("expected a second iteration, prompts = %d", got)
	}
}

func TestCloudSessionInterruptDuringPlayback(t *testing.T) {
	f := newCloudFixture(t, "halo\n1\n")
	f.session.WithGrace(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(writeAudio("mp3"))
	f.player.EXPECT().Play(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
		cancel()
		return nil
	})

	if err := f.session.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

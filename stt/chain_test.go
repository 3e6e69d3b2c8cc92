package stt_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/mrsingh-rishi/speechkit/mocks"
	"github.com/mrsingh-rishi/speechkit/stt"
	"github.com/pkg/errors"
)

func newRecognizers(t *testing.T) (*mocks.MockRecognizer, *mocks.MockRecognizer) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockRecognizer(ctrl)
	fallback := mocks.NewMockRecognizer(ctrl)
	primary.EXPECT().Name().Return("cloud").AnyTimes()
	fallback.EXPECT().Name().Return("offline").AnyTimes()
	return primary, fallback
}

func TestChainPrimarySucceeds(t *testing.T) {
	primary, fallback := newRecognizers(t)
	capture := &audio.Capture{Samples: []int16{1, 2, 3}, SampleRate: audio.SampleRate}

	primary.EXPECT().Transcribe(gomock.Any(), capture, "id-ID").Return("halo dunia", nil)

	out := stt.NewChain(primary, fallback, "id-ID", nil).Recognize(context.Background(), capture)
	if out.Kind != stt.Recognized || out.Text != "halo dunia" || out.Engine != "cloud" {
		t.Fatalf("got %+v", out)
	}
	if out.Display() != "Halo dunia." {
		t.Errorf("Display() = %q", out.Display())
	}
}

func TestChainFallbackTextPassesThrough(t *testing.T) {
	primary, fallback := newRecognizers(t)
	capture := &audio.Capture{Samples: []int16{1}, SampleRate: audio.SampleRate}

	gomock.InOrder(
		primary.EXPECT().Transcribe(gomock.Any(), capture, "id-ID").Return("", errors.Wrap(stt.ErrUnrecognized, "empty transcript")),
		fallback.EXPECT().Transcribe(gomock.Any(), capture, "").Return("offline words", nil),
	)

	out := stt.NewChain(primary, fallback, "id-ID", nil).Recognize(context.Background(), capture)
	if out.Kind != stt.Recognized {
		t.Fatalf("Kind = %v, want recognized", out.Kind)
	}
	if out.Text != "offline words" {
		t.Errorf("Text = %q, want the fallback output unchanged", out.Text)
	}
	if out.Engine != "offline" {
		t.Errorf("Engine = %q", out.Engine)
	}
}

func TestChainBothFailYieldsSentinel(t *testing.T) {
	primary, fallback := newRecognizers(t)

	primary.EXPECT().Transcribe(gomock.Any(), gomock.Any(), "en-US").Return("", stt.ErrUnrecognized)
	fallback.EXPECT().Transcribe(gomock.Any(), gomock.Any(), "").Return("", errors.New("model missing"))

	out := stt.NewChain(primary, fallback, "en-US", nil).Recognize(context.Background(), &audio.Capture{Samples: []int16{1}})
	if out.Kind != stt.Unrecognized {
		t.Fatalf("Kind = %v, want unrecognized", out.Kind)
	}
	if out.Display() != "Unable to recognize speech" {
		t.Errorf("Display() = %q", out.Display())
	}
	if !out.Persistable() {
		t.Error("sentinel outcome should be persisted")
	}
}

func TestChainOtherPrimaryFailureIsDeviceError(t *testing.T) {
	primary, fallback := newRecognizers(t)

	primary.EXPECT().Transcribe(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))
	fallback.EXPECT().Transcribe(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	out := stt.NewChain(primary, fallback, "id-ID", nil).Recognize(context.Background(), &audio.Capture{Samples: []int16{1}})
	if out.Kind != stt.DeviceError {
		t.Fatalf("Kind = %v, want device error", out.Kind)
	}
	if got, want := out.Display(), "Error in recording: cloud recognition: connection refused"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestChainWithoutFallback(t *testing.T) {
	primary, _ := newRecognizers(t)
	primary.EXPECT().Transcribe(gomock.Any(), gomock.Any(), gomock.Any()).Return("", stt.ErrUnrecognized)

	out := stt.NewChain(primary, nil, "id-ID", nil).Recognize(context.Background(), &audio.Capture{Samples: []int16{1}})
	if out.Kind != stt.Unrecognized {
		t.Fatalf("Kind = %v, want unrecognized", out.Kind)
	}
}

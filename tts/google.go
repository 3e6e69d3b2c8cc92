package tts

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GoogleMaxChars is the longest text the translate endpoint speaks per request.
const GoogleMaxChars = 100

// GoogleSynthesizer uses the Google Translate speech endpoint.
type GoogleSynthesizer struct {
	Endpoint   string
	Language   string
	HTTPClient *http.Client
	Log        *zap.SugaredLogger
}

func NewGoogleSynthesizer(endpoint, language string, log *zap.SugaredLogger) *GoogleSynthesizer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &GoogleSynthesizer{
		Endpoint:   endpoint,
		Language:   language,
		HTTPClient: http.DefaultClient,
		Log:        log,
	}
}

func (g *GoogleSynthesizer) Name() string { return "google" }

// Synthesize requests every chunk in order and concatenates the MP3 frames.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string, slow bool, w io.Writer) error {
	text, err := checkText(text)
	if err != nil {
		return err
	}

	chunks := Chunks(text, GoogleMaxChars)
	for idx, chunk := range chunks {
		if err := g.fetch(ctx, chunk, idx, len(chunks), slow, w); err != nil {
			return errors.Wrapf(err, "google tts chunk %d/%d", idx+1, len(chunks))
		}
	}
	return nil
}

func (g *GoogleSynthesizer) fetch(ctx context.Context, chunk string, idx, total int, slow bool, w io.Writer) error {
	base, err := url.Parse(g.Endpoint)
	if err != nil {
		return errors.Wrap(err, "parsing endpoint")
	}

	speed := "1"
	if slow {
		speed = "0.3"
	}
	q := base.Query()
	q.Set("ie", "UTF-8")
	q.Set("q", chunk)
	q.Set("tl", g.Language)
	q.Set("client", "tw-ob")
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))
	q.Set("ttsspeed", speed)
	base.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	g.Log.Debugf("google tts request %d/%d (%d chars)", idx+1, total, len(chunk))
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "http request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("bad status: %s", resp.Status)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrap(err, "reading audio")
	}
	return nil
}

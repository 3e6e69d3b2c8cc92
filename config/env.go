package config

import (
	"log"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// TranscribeEnv configures the capture-and-transcribe tool.
type TranscribeEnv struct {
	BaseDir        string   `env:"STT_BASE_DIR" envDefault:"."`
	Engine         string   `env:"STT_ENGINE" envDefault:"deepgram"`
	DeepgramAPIKey string   `env:"DEEPGRAM_API_KEY"`
	DeepgramURL    string   `env:"DEEPGRAM_URL" envDefault:"wss://api.deepgram.com/v1/listen"`
	DeepgramModel  string   `env:"DEEPGRAM_MODEL" envDefault:"nova-2"`
	OpenAIAPIKey   string   `env:"OPENAI_API_KEY"`
	OpenAIModel    string   `env:"OPENAI_STT_MODEL" envDefault:"whisper-1"`
	WhisperBin     string   `env:"WHISPER_CPP_BIN" envDefault:"whisper-cli"`
	WhisperModel   string   `env:"WHISPER_CPP_MODEL" envDefault:"models/ggml-base.bin"`
	Recorder       []string `env:"STT_RECORDER" envSeparator:" "`
	Debug          bool     `env:"DEBUG"`
}

// CloudTTSEnv configures the cloud-voice synthesis tool.
type CloudTTSEnv struct {
	Provider          string `env:"TTS_PROVIDER" envDefault:"google"`
	Language          string `env:"TTS_LANGUAGE" envDefault:"id"`
	OutputDir         string `env:"TTS_OUTPUT_DIR" envDefault:"saved_audio"`
	GoogleTTSURL      string `env:"GOOGLE_TTS_URL" envDefault:"https://translate.google.com/translate_tts"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenAIModel       string `env:"OPENAI_TTS_MODEL" envDefault:"tts-1"`
	OpenAIVoice       string `env:"OPENAI_TTS_VOICE" envDefault:"alloy"`
	ElevenLabsAPIKey  string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `env:"ELEVENLABS_VOICE_ID" envDefault:"EXAVITQu4vr4xnSDxMaL"`
	ElevenLabsModelID string `env:"ELEVENLABS_MODEL_ID" envDefault:"eleven_multilingual_v2"`
	Debug             bool   `env:"DEBUG"`
}

// LocalTTSEnv configures the local-voice synthesis tool.
type LocalTTSEnv struct {
	OutputDir string `env:"TTS_OUTPUT_DIR" envDefault:"saved_audio"`
	Engine    string `env:"LOCAL_TTS_ENGINE"`
	Debug     bool   `env:"DEBUG"`
}

// Parse loads .env when present and fills cfg from the process environment.
func Parse(cfg any) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to environment variables")
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Wrap(err, "parsing env config")
	}
	return nil
}

// Validate checks that the selected recognition engine has its credentials.
func (e TranscribeEnv) Validate() error {
	switch e.Engine {
	case "deepgram":
		if e.DeepgramAPIKey == "" {
			return errors.New("DEEPGRAM_API_KEY must be set for the deepgram engine")
		}
	case "openai":
		if e.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY must be set for the openai engine")
		}
	default:
		return errors.Errorf("unknown STT_ENGINE %q (supported: deepgram, openai)", e.Engine)
	}
	return nil
}

// Validate checks that the selected provider has its credentials.
func (e CloudTTSEnv) Validate() error {
	switch e.Provider {
	case "google":
	case "openai":
		if e.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY must be set for the openai provider")
		}
	case "elevenlabs":
		if e.ElevenLabsAPIKey == "" {
			return errors.New("ELEVENLABS_API_KEY must be set for the elevenlabs provider")
		}
	default:
		return errors.Errorf("unknown TTS_PROVIDER %q (supported: google, openai, elevenlabs)", e.Provider)
	}
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/wakeaug/augment"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDatasetURL is the Speech Commands archive used for background
// noise and negative speech.
const DefaultDatasetURL = "http://download.tensorflow.org/data/speech_commands_v0.02.tar.gz"

// Config is the complete configuration of one invocation.
type Config struct {
	Assistant AssistantConfig `yaml:"assistant"`
	APIKeys   APIKeys         `yaml:"-"`
	Data      DataConfig      `yaml:"data"`
	Augment   AugmentConfig   `yaml:"augment"`
	Logging   LoggingConfig   `yaml:"logging"`

	// EnvFile is the .env file that was read, empty when none was found.
	EnvFile string `yaml:"-"`
}

// AssistantConfig holds the voice assistant settings the trained model is
// deployed with.
type AssistantConfig struct {
	WakeWord          string        `yaml:"wake_word"`
	TTSVoice          string        `yaml:"tts_voice"`
	STTModel          string        `yaml:"stt_model"`
	SampleRate        int           `yaml:"sample_rate"`
	ChunkSamples      int           `yaml:"chunk_samples"`
	SilenceTimeout    time.Duration `yaml:"silence_timeout"`
	WakeWordModelPath string        `yaml:"wake_word_model_path"`
	VoskModelPath     string        `yaml:"vosk_model_path"`
}

// APIKeys are secrets for external services.
type APIKeys struct {
	OpenAI     string
	Porcupine  string
	ElevenLabs string
}

// DataConfig locates the dataset tree and its sources.
type DataConfig struct {
	Dir             string        `yaml:"dir"`
	DatasetURL      string        `yaml:"dataset_url"`
	DownloadTimeout time.Duration `yaml:"download_timeout"`
}

// AugmentConfig tunes the augmentation run.
type AugmentConfig struct {
	Prefix        string  `yaml:"prefix"`
	SNRdB         float64 `yaml:"snr_db"`
	NoiseVariants int     `yaml:"noise_variants"`
	Workers       int     `yaml:"workers"`
	Seed          uint64  `yaml:"seed"` // 0 picks a time based seed
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Assistant: AssistantConfig{
			WakeWord:          "computer",
			TTSVoice:          "de-DE-KatjaNeural",
			STTModel:          "de",
			SampleRate:        16000,
			ChunkSamples:      1280,
			SilenceTimeout:    2 * time.Second,
			WakeWordModelPath: "models/computer.ppn",
			VoskModelPath:     "models/vosk-model-de",
		},
		Data: DataConfig{
			Dir:             "data",
			DatasetURL:      DefaultDatasetURL,
			DownloadTimeout: 10 * time.Minute,
		},
		Augment: AugmentConfig{
			Prefix:        "aug",
			SNRdB:         15,
			NoiseVariants: 3,
			Workers:       1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds a Config from the YAML file at path and the .env file at
// envFile, either of which may be empty. A missing .env file is skipped;
// a missing YAML file is an error. Variables already set in the process
// environment take precedence over the .env file.
func Load(path, envFile string) (*Config, error) {
	return LoadWith(path, envFile, os.LookupEnv)
}

// LoadWith is Load with a custom environment lookup.
func LoadWith(path, envFile string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if envFile != "" {
		dotenv, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		default:
			cfg.EnvFile = envFile
			lookup = layered(lookup, dotenv)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// layered consults primary first and falls back to values.
func layered(primary LookupFunc, values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}
}

// env reads typed overrides, collecting every malformed value.
type env struct {
	lookup LookupFunc
	errs   []error
}

func (e *env) setString(key string, dst *string) {
	if v, ok := e.lookup(key); ok && v != "" {
		*dst = v
	}
}

func (e *env) setInt(key string, dst *int) {
	if v, ok := e.lookup(key); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}
}

func (e *env) setUint(key string, dst *uint64) {
	if v, ok := e.lookup(key); ok && v != "" {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}
}

func (e *env) setFloat(key string, dst *float64) {
	if v, ok := e.lookup(key); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = f
	}
}

// setSeconds accepts either a Go duration ("2s") or a plain number of
// seconds ("2.0").
func (e *env) setSeconds(key string, dst *time.Duration) {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return
	}
	v = strings.TrimSpace(v)

	if f, err := strconv.ParseFloat(v, 64); err == nil {
		*dst = time.Duration(f * float64(time.Second))
		return
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	e := &env{lookup: lookup}

	e.setString("OPENAI_API_KEY", &c.APIKeys.OpenAI)
	e.setString("PORCUPINE_ACCESS_KEY", &c.APIKeys.Porcupine)
	e.setString("ELEVENLABS_API_KEY", &c.APIKeys.ElevenLabs)

	e.setString("WAKE_WORD", &c.Assistant.WakeWord)
	e.setString("TTS_VOICE", &c.Assistant.TTSVoice)
	e.setString("STT_MODEL", &c.Assistant.STTModel)
	e.setInt("SAMPLE_RATE", &c.Assistant.SampleRate)
	e.setInt("CHUNK_SAMPLES", &c.Assistant.ChunkSamples)
	e.setSeconds("SILENCE_TIMEOUT", &c.Assistant.SilenceTimeout)
	e.setString("WAKE_WORD_MODEL_PATH", &c.Assistant.WakeWordModelPath)
	e.setString("VOSK_MODEL_PATH", &c.Assistant.VoskModelPath)

	e.setString("DATA_DIR", &c.Data.Dir)
	e.setString("DATASET_URL", &c.Data.DatasetURL)
	e.setSeconds("DOWNLOAD_TIMEOUT", &c.Data.DownloadTimeout)

	e.setString("AUGMENT_PREFIX", &c.Augment.Prefix)
	e.setFloat("AUGMENT_SNR_DB", &c.Augment.SNRdB)
	e.setInt("AUGMENT_NOISE_VARIANTS", &c.Augment.NoiseVariants)
	e.setInt("AUGMENT_WORKERS", &c.Augment.Workers)
	e.setUint("AUGMENT_SEED", &c.Augment.Seed)

	e.setString("LOG_LEVEL", &c.Logging.Level)
	e.setString("LOG_FORMAT", &c.Logging.Format)

	if len(e.errs) > 0 {
		return fmt.Errorf("invalid environment: %w", errors.Join(e.errs...))
	}

	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error

	if c.Assistant.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.Assistant.SampleRate))
	}
	if c.Assistant.ChunkSamples <= 0 {
		errs = append(errs, fmt.Errorf("chunk_samples must be positive, got %d", c.Assistant.ChunkSamples))
	}
	if c.Assistant.SilenceTimeout < 0 {
		errs = append(errs, fmt.Errorf("silence_timeout cannot be negative, got %s", c.Assistant.SilenceTimeout))
	}

	if c.Data.Dir == "" {
		errs = append(errs, errors.New("data dir cannot be empty"))
	}
	if c.Data.DownloadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("download_timeout must be positive, got %s", c.Data.DownloadTimeout))
	}

	if c.Augment.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Augment.Workers))
	}
	if err := c.Policy().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("augment: %w", err))
	}

	if !slices.Contains([]string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"},
		strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	if format := strings.ToLower(c.Logging.Format); format != "text" && format != "json" {
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// Policy returns the augmentation policy described by the config.
func (c *Config) Policy() augment.Policy {
	p := augment.DefaultPolicy()
	p.Prefix = c.Augment.Prefix
	p.SNRdB = c.Augment.SNRdB
	p.NoiseVariants = c.Augment.NoiseVariants

	return p
}

// PositiveDir and friends locate the dataset tree.
func (c *Config) PositiveDir() string   { return filepath.Join(c.Data.Dir, "positive") }
func (c *Config) NegativeDir() string   { return filepath.Join(c.Data.Dir, "negative") }
func (c *Config) BackgroundDir() string { return filepath.Join(c.Data.Dir, "background") }
func (c *Config) AugmentedDir() string  { return filepath.Join(c.Data.Dir, "augmented") }

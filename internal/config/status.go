// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMissing is returned by Required for settings that are not set.
var ErrMissing = errors.New("required configuration not set")

// Get returns the setting named by its environment variable, formatted as
// text. Unknown keys report false.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToUpper(key) {
	case "OPENAI_API_KEY":
		return c.APIKeys.OpenAI, true
	case "PORCUPINE_ACCESS_KEY":
		return c.APIKeys.Porcupine, true
	case "ELEVENLABS_API_KEY":
		return c.APIKeys.ElevenLabs, true
	case "WAKE_WORD":
		return c.Assistant.WakeWord, true
	case "TTS_VOICE":
		return c.Assistant.TTSVoice, true
	case "STT_MODEL":
		return c.Assistant.STTModel, true
	case "SAMPLE_RATE":
		return strconv.Itoa(c.Assistant.SampleRate), true
	case "CHUNK_SAMPLES":
		return strconv.Itoa(c.Assistant.ChunkSamples), true
	case "SILENCE_TIMEOUT":
		return c.Assistant.SilenceTimeout.String(), true
	case "WAKE_WORD_MODEL_PATH":
		return c.Assistant.WakeWordModelPath, true
	case "VOSK_MODEL_PATH":
		return c.Assistant.VoskModelPath, true
	case "DATA_DIR":
		return c.Data.Dir, true
	case "DATASET_URL":
		return c.Data.DatasetURL, true
	case "DOWNLOAD_TIMEOUT":
		return c.Data.DownloadTimeout.String(), true
	case "AUGMENT_PREFIX":
		return c.Augment.Prefix, true
	case "AUGMENT_SNR_DB":
		return strconv.FormatFloat(c.Augment.SNRdB, 'g', -1, 64), true
	case "AUGMENT_NOISE_VARIANTS":
		return strconv.Itoa(c.Augment.NoiseVariants), true
	case "AUGMENT_WORKERS":
		return strconv.Itoa(c.Augment.Workers), true
	case "AUGMENT_SEED":
		return strconv.FormatUint(c.Augment.Seed, 10), true
	case "LOG_LEVEL":
		return c.Logging.Level, true
	case "LOG_FORMAT":
		return c.Logging.Format, true
	}

	return "", false
}

// Required returns the setting named key, failing with ErrMissing when it
// is unknown or empty.
func (c *Config) Required(key string) (string, error) {
	v, ok := c.Get(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s, set it in the .env file or the environment", ErrMissing, key)
	}

	return v, nil
}

// APIKey is the state of one service credential.
type APIKey struct {
	Service string
	Env     string
	Set     bool
}

var apiKeyEnv = []struct{ service, env string }{
	{"OpenAI", "OPENAI_API_KEY"},
	{"Porcupine", "PORCUPINE_ACCESS_KEY"},
	{"ElevenLabs", "ELEVENLABS_API_KEY"},
}

// APIKeyStatus reports which service keys are configured, in display order.
func (c *Config) APIKeyStatus() []APIKey {
	keys := make([]APIKey, 0, len(apiKeyEnv))
	for _, k := range apiKeyEnv {
		v, _ := c.Get(k.env)
		keys = append(keys, APIKey{Service: k.service, Env: k.env, Set: v != ""})
	}
	return keys
}

// Mask hides all but the first four characters of a secret. Secrets of
// eight characters or fewer are masked completely.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}

	return secret[:4] + strings.Repeat("*", len(secret)-4)
}

// WriteStatus prints a human readable summary. Secrets are masked.
func (c *Config) WriteStatus(w io.Writer) error {
	var b strings.Builder

	line := strings.Repeat("=", 50)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "CONFIGURATION STATUS")
	fmt.Fprintln(&b, line)

	if c.EnvFile != "" {
		fmt.Fprintf(&b, "env file: %s loaded\n", c.EnvFile)
	} else {
		fmt.Fprintln(&b, "env file: none (using environment variables)")
	}

	fmt.Fprintln(&b, "\nAPI keys:")
	for _, k := range c.APIKeyStatus() {
		v, err := c.Required(k.Env)
		if err != nil {
			fmt.Fprintf(&b, "  %s: missing\n", k.Service)
			continue
		}
		fmt.Fprintf(&b, "  %s: available (%s)\n", k.Service, Mask(v))
	}

	fmt.Fprintln(&b, "\nVoice assistant:")
	fmt.Fprintf(&b, "  Wake word: %s\n", c.Assistant.WakeWord)
	fmt.Fprintf(&b, "  TTS voice: %s\n", c.Assistant.TTSVoice)
	fmt.Fprintf(&b, "  STT model: %s\n", c.Assistant.STTModel)

	fmt.Fprintln(&b, "\nAudio:")
	fmt.Fprintf(&b, "  Sample rate: %d Hz\n", c.Assistant.SampleRate)
	fmt.Fprintf(&b, "  Chunk size: %d samples\n", c.Assistant.ChunkSamples)
	fmt.Fprintf(&b, "  Silence timeout: %s\n", c.Assistant.SilenceTimeout)

	fmt.Fprintln(&b, "\nData:")
	fmt.Fprintf(&b, "  Directory: %s\n", c.Data.Dir)
	fmt.Fprintf(&b, "  Dataset: %s\n", c.Data.DatasetURL)
	fmt.Fprintf(&b, "  Augmentation: prefix %q, %d noise variants at %g dB, %d workers\n",
		c.Augment.Prefix, c.Augment.NoiseVariants, c.Augment.SNRdB, c.Augment.Workers)

	fmt.Fprintln(&b, line)

	_, err := io.WriteString(w, b.String())
	return err
}

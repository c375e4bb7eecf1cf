package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundBump: 0.6,
			SoundStep: 0.2,
			SoundWin:  1.0,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("LABYRINTH_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("LABYRINTH_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as JSON: {"bump":0.5,"step":0,"win":1}
	if effectVols := os.Getenv("LABYRINTH_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["bump"]; ok {
				cfg.EffectVolumes[SoundBump] = clamp01(v)
			}
			if v, ok := volumes["step"]; ok {
				cfg.EffectVolumes[SoundStep] = clamp01(v)
			}
			if v, ok := volumes["win"]; ok {
				cfg.EffectVolumes[SoundWin] = clamp01(v)
			}
		}
	}

	if sampleRate := os.Getenv("LABYRINTH_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const DefaultLogPrefix string = "Vertex 🔺 "

/** @brief The [log] section of the configuration file. */
type LogConfig struct {
	/** @brief One of debug, info, warn, error, fatal. */
	Level string `toml:"level"`
	/** @brief Prefix printed in front of every log line. */
	Prefix string `toml:"prefix"`
}

/**
 * @brief The [capabilities] section of the configuration file. Describes what the
 * graphics context supports when no device can be queried (headless runs, tests).
 * A max_vertex_attributes of 0 means the context sets no limit.
 */
type CapabilitiesConfig struct {
	Float64Attributes     bool   `toml:"float64_attributes"`
	Int64Attributes       bool   `toml:"int64_attributes"`
	HalfFloatAttributes   bool   `toml:"half_float_attributes"`
	PackedAttributes      bool   `toml:"packed_attributes"`
	PackedFloatAttributes bool   `toml:"packed_float_attributes"`
	TransformFeedback     bool   `toml:"transform_feedback"`
	MaxVertexAttributes   uint32 `toml:"max_vertex_attributes"`
}

type Config struct {
	Log          LogConfig          `toml:"log"`
	Capabilities CapabilitiesConfig `toml:"capabilities"`
}

// DefaultConfig returns the configuration used when a key is missing from the file.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Prefix: DefaultLogPrefix,
		},
		Capabilities: CapabilitiesConfig{
			HalfFloatAttributes: true,
			PackedAttributes:    true,
			MaxVertexAttributes: 16,
		},
	}
}

// ParseConfig decodes a TOML document on top of DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("func ParseConfig: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("func LoadConfig: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	LogDebug("loaded configuration from '%s'", path)
	return cfg, nil
}

// Marshal encodes the configuration back to TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

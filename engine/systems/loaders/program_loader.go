package loaders

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

/**
 * @brief Loads a program configuration file.
 *
 * @param path The path of the TOML file.
 * @return The parsed configuration or an error.
 */
func LoadProgramConfig(path string) (*metadata.ProgramConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		core.LogError("unable to read program file '%s': %s", path, err.Error())
		return nil, err
	}
	config, err := ParseProgramConfig(data)
	if err != nil {
		return nil, fmt.Errorf("program file '%s': %w", path, err)
	}
	return config, nil
}

func ParseProgramConfig(data []byte) (*metadata.ProgramConfig, error) {
	config := &metadata.ProgramConfig{}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.Name == "" {
		return nil, fmt.Errorf("program configuration has no name")
	}
	return config, nil
}

/**
 * @brief Resolves a configuration into a program with a fresh identity.
 * Attribute locations are assigned in declaration order, one per matrix column.
 */
func ProgramFromConfig(config *metadata.ProgramConfig) (*metadata.Program, error) {
	program := metadata.NewProgram(config.Name)

	location := uint32(0)
	for _, a := range config.Attributes {
		t, err := metadata.AttributeTypeFromString(a.Type)
		if err != nil {
			return nil, fmt.Errorf("program '%s' attribute '%s': %w", config.Name, a.Name, err)
		}
		program.Attributes = append(program.Attributes, metadata.ShaderAttribute{
			Name:     a.Name,
			Type:     t,
			Location: location,
		})
		location += uint32(t.Locations())
	}

	switch config.TransformFeedbackMode {
	case "", "interleaved":
		program.TransformFeedbackMode = metadata.TransformFeedbackModeInterleaved
	case "separate":
		program.TransformFeedbackMode = metadata.TransformFeedbackModeSeparate
	default:
		return nil, fmt.Errorf("program '%s': unknown transform feedback mode '%s'", config.Name, config.TransformFeedbackMode)
	}

	for i, b := range config.TransformFeedbackBuffers {
		buffer := metadata.TransformFeedbackBuffer{
			Index:  uint32(i),
			Stride: uintptr(b.Stride),
		}
		for _, v := range b.Varyings {
			t, err := metadata.AttributeTypeFromString(v.Type)
			if err != nil {
				return nil, fmt.Errorf("program '%s' varying '%s': %w", config.Name, v.Name, err)
			}
			buffer.Elements = append(buffer.Elements, metadata.TransformFeedbackVarying{
				Name:   v.Name,
				Offset: uintptr(v.Offset),
				Type:   t,
			})
		}
		program.TransformFeedbackBuffers = append(program.TransformFeedbackBuffers, buffer)
	}
	return program, nil
}

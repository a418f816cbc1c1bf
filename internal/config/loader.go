package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atlanticdynamic/agenttheme/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
)

// NewFromFile loads an agent from a TOML file, expanding ${VAR:default} references against
// the process environment.
func NewFromFile(filePath string) (*Agent, error) {
	return NewFromFileWithLookup(filePath, os.LookupEnv)
}

// NewFromFileWithLookup loads an agent from a TOML file, resolving references with lookup.
func NewFromFileWithLookup(filePath string, lookup interpolation.LookupFunc) (*Agent, error) {
	data, err := readAgentFile(filePath)
	if err != nil {
		return nil, err
	}
	return LoadTOML(data, lookup)
}

// DecodeFileWithLookup loads an agent from a TOML file like NewFromFileWithLookup but leaves
// unset fields empty, so the result reflects only what the file provides.
func DecodeFileWithLookup(filePath string, lookup interpolation.LookupFunc) (*Agent, error) {
	data, err := readAgentFile(filePath)
	if err != nil {
		return nil, err
	}
	return DecodeTOML(data, lookup)
}

func readAgentFile(filePath string) ([]byte, error) {
	if ext := filepath.Ext(filePath); ext != ".toml" {
		return nil, fmt.Errorf("%w: %s, only .toml is supported", ErrUnsupportedExtension, ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return data, nil
}

// NewFromReader loads an agent from TOML data read from r.
func NewFromReader(r io.Reader, lookup interpolation.LookupFunc) (*Agent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return LoadTOML(data, lookup)
}

// LoadTOML decodes an agent file with DecodeTOML, then gives unset fields the same defaults as
// FromSource.
func LoadTOML(data []byte, lookup interpolation.LookupFunc) (*Agent, error) {
	agent, err := DecodeTOML(data, lookup)
	if err != nil {
		return nil, err
	}
	agent.applyDefaults()
	return agent, nil
}

// DecodeTOML decodes an agent file without applying defaults. Unknown keys are rejected and
// tagged string values are expanded with lookup.
func DecodeTOML(data []byte, lookup interpolation.LookupFunc) (*Agent, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrFailedToLoadConfig)
	}

	agent := &Agent{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(agent); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w: %s", ErrParseToml, strictErr.String())
		}
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	if err := interpolation.InterpolateStruct(agent, lookup); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterpolation, err)
	}
	return agent, nil
}

func (a *Agent) applyDefaults() {
	def := NewDefault()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}

	fill(&a.Name, def.Name)
	fill(&a.DisplayName, displayNameFor(a.Name))
	fill(&a.Description, def.Description)
	fill(&a.ShortDescription, a.Description)

	fill(&a.Theme.ThemeName, def.Theme.ThemeName)
	fill(&a.Theme.PrimaryColor, def.Theme.PrimaryColor)
	fill(&a.Theme.SecondaryColor, def.Theme.SecondaryColor)

	fill(&a.Assets.Logo, def.Assets.Logo)
	fill(&a.Assets.BannerLogo, def.Assets.BannerLogo)
	fill(&a.Assets.Favicon, def.Assets.Favicon)
	fill(&a.Assets.OGImage, def.Assets.OGImage)

	fill(&a.Content.WelcomeMessage, def.Content.WelcomeMessage)
	fill(&a.API.ServerURL, def.API.ServerURL)
}

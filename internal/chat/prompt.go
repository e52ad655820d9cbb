package chat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed prompt.yaml
var defaultPrompt []byte

var ErrInvalidPrompt = errors.New("invalid chat prompt")

type Prompt struct {
	Model           string `yaml:"model"`
	MaxOutputTokens int32  `yaml:"max_output_tokens"`
	SystemPrompt    string `yaml:"system_prompt"`
}

// LoadPrompt reads the prompt file at path, or the built in prompt when path is empty.
func LoadPrompt(path string) (*Prompt, error) {
	raw := defaultPrompt
	if path != "" {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read prompt file: %w", err)
		}
	}
	return parsePrompt(raw)
}

func parsePrompt(raw []byte) (*Prompt, error) {
	var p Prompt
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrompt, err)
	}
	if p.Model == "" || p.SystemPrompt == "" {
		return nil, fmt.Errorf("%w: model and system_prompt are required", ErrInvalidPrompt)
	}
	if p.MaxOutputTokens <= 0 {
		p.MaxOutputTokens = 600
	}
	return &p, nil
}

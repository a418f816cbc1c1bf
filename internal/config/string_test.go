package config

import (
	"testing"

	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/stretchr/testify/assert"
)

func TestAgentString(t *testing.T) {
	agent := FromSource(envsource.Source{
		KeyAgentID:        "123e4567-e89b-12d3-a456-426614174000",
		KeyAgentName:      "eliza",
		KeyPrimaryColor:   "#3366ff",
		KeyExamplePrompts: "What is the meaning of life, the universe and everything else we know about?|Hi",
		KeyAPIKey:         "super-secret-key",
	})

	out := agent.String()

	for _, want := range []string{
		"Agent Eliza (123e4567-e89b-12d3-a456-426614174000)",
		"Identity",
		"Theme",
		"#3366ff",
		"Example prompts",
		"(2)",
		"...",
		"Features",
		"API key",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "super-secret-key")
}

func TestAgentStringUnsetID(t *testing.T) {
	assert.Contains(t, NewDefault().String(), "(unset)")
}

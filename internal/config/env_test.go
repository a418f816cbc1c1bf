package config

import (
	"testing"

	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSourceDefaults(t *testing.T) {
	agent := FromSource(envsource.Source{})

	assert.Equal(t, NewDefault(), agent)
	assert.Equal(t, DefaultThemeName, agent.Theme.ThemeName)
	assert.Equal(t, DefaultPrimaryColor, agent.Theme.Accent(), "accent falls back to primary")
	assert.Nil(t, agent.Content.ExamplePrompts)
	assert.Equal(t, Features{}, agent.Features)
}

func TestFromSource(t *testing.T) {
	src := envsource.Source{
		KeyAgentID:            "123e4567-e89b-12d3-a456-426614174000",
		KeyAgentName:          "eliza the agent",
		KeyAgentDescription:   "A helpful agent",
		KeyAgentTheme:         "light",
		KeyPrimaryColor:       "#3366ff",
		KeyAccentColor:        "rgb(1,2,3)",
		KeyExamplePrompts:     "Hello, who are you? | What can you do?||",
		KeyAgentKeywords:      "ai, agents ,,chat",
		KeyEnableDeepResearch: "TRUE",
		KeyEnableFileUpload:   "false",
		KeyEnableVoting:       "yes",
		KeyServerURL:          "https://agents.example.com",
		KeyWorldID:            "00000000-0000-0000-0000-000000000000",
		KeyAPIKey:             "secret",
	}

	agent := FromSource(src)

	assert.Equal(t, "eliza the agent", agent.Name)
	assert.Equal(t, "Eliza The Agent", agent.DisplayName)
	assert.Equal(t, "A helpful agent", agent.ShortDescription, "short description falls back to description")
	assert.Equal(t, "light", agent.Theme.ThemeName)
	assert.Equal(t, DefaultSecondaryColor, agent.Theme.SecondaryColor)
	assert.Equal(t, "rgb(1,2,3)", agent.Theme.Accent())
	assert.Equal(t, []string{"Hello, who are you?", "What can you do?"}, agent.Content.ExamplePrompts)
	assert.Equal(t, []string{"ai", "agents", "chat"}, agent.Content.Keywords)
	assert.True(t, agent.Features.DeepResearch)
	assert.False(t, agent.Features.FileUpload)
	assert.False(t, agent.Features.Voting, "malformed flags are off")
	assert.Equal(t, "https://agents.example.com", agent.API.ServerURL)
	assert.Equal(t, "secret", agent.API.APIKey)
}

func TestFromSourceExplicitDisplayName(t *testing.T) {
	agent := FromSource(envsource.Source{
		KeyAgentName:        "eliza",
		KeyAgentDisplayName: "ELIZA v2",
	})
	assert.Equal(t, "ELIZA v2", agent.DisplayName)
}

func TestToSource(t *testing.T) {
	src := envsource.Source{
		KeyAgentID:        "123e4567-e89b-12d3-a456-426614174000",
		KeyAgentName:      "Eliza",
		KeyPrimaryColor:   "#3366ff",
		KeyExamplePrompts: "one|two",
		KeyEnableVoting:   "true",
		KeyWorldID:        "00000000-0000-0000-0000-000000000000",
	}

	flat := FromSource(src).ToSource()

	for key, value := range src {
		assert.Equal(t, value, flat.Get(key), key)
	}
	assert.Equal(t, "false", flat.Get(KeyEnableFileUpload))
	_, ok := flat.Lookup(KeyAccentColor)
	assert.False(t, ok, "empty fields are omitted")

	again := FromSource(flat)
	require.Equal(t, FromSource(src), again)
}

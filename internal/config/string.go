package config

import (
	"fmt"
	"strconv"

	"github.com/atlanticdynamic/agenttheme/internal/fancy"
)

const maxPromptWidth = 60

// String returns a pretty-printed tree representation of the agent
func (a *Agent) String() string {
	return AgentTree(a)
}

// AgentTree converts an Agent into a rendered tree string. The API key is never printed.
func AgentTree(a *Agent) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Agent %s (%s)", a.DisplayName, orUnset(a.ID))))

	identity := fancy.Section("Identity")
	t.Child(identity)
	identity.Child(fancy.KeyValue("Name", a.Name))
	identity.Child(fancy.KeyValue("Description", a.Description))
	if a.Domain != "" {
		identity.Child(fancy.KeyValue("Domain", a.Domain))
	}

	theme := fancy.Section("Theme")
	t.Child(theme)
	theme.Child(fancy.KeyValue("Name", a.Theme.ThemeName))
	theme.Child(fancy.KeyValue("Primary", a.Theme.PrimaryColor))
	theme.Child(fancy.KeyValue("Secondary", a.Theme.SecondaryColor))
	theme.Child(fancy.KeyValue("Accent", a.Theme.Accent()))

	assets := fancy.Section("Assets")
	t.Child(assets)
	assets.Child(fancy.KeyValue("Logo", a.Assets.Logo))
	assets.Child(fancy.KeyValue("Banner", a.Assets.BannerLogo))
	assets.Child(fancy.KeyValue("Favicon", a.Assets.Favicon))
	assets.Child(fancy.KeyValue("OG image", a.Assets.OGImage))

	prompts := fancy.BranchNode("Example prompts", fmt.Sprintf("(%d)", len(a.Content.ExamplePrompts)))
	for _, p := range a.Content.ExamplePrompts {
		prompts.Child(fancy.TruncateString(p, maxPromptWidth))
	}
	t.Child(prompts)

	features := fancy.Section("Features")
	t.Child(features)
	features.Child(fancy.KeyValue("Deep research", strconv.FormatBool(a.Features.DeepResearch)))
	features.Child(fancy.KeyValue("File upload", strconv.FormatBool(a.Features.FileUpload)))
	features.Child(fancy.KeyValue("Text to speech", strconv.FormatBool(a.Features.TextToSpeech)))
	features.Child(fancy.KeyValue("Voice input", strconv.FormatBool(a.Features.VoiceInput)))
	features.Child(fancy.KeyValue("Voting", strconv.FormatBool(a.Features.Voting)))

	api := fancy.Section("API")
	t.Child(api)
	api.Child(fancy.KeyValue("Server", a.API.ServerURL))
	api.Child(fancy.KeyValue("World", orUnset(a.API.WorldID)))
	if a.API.APIKey != "" {
		api.Child(fancy.KeyValue("API key", "(set)"))
	}

	return t.String()
}

func orUnset(v string) string {
	if v == "" {
		return "unset"
	}
	return v
}

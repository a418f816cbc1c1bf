package config

import (
	"strconv"
	"strings"

	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	promptSeparator  = "|"
	keywordSeparator = ","
)

// FromSource builds an agent from a flat environment source. Unset or empty keys fall back to
// the defaults of NewDefault. Values are taken as-is; format checking is left to the
// environment validator so a malformed value never prevents building the record.
func FromSource(src envsource.Source) *Agent {
	agent := NewDefault()

	agent.ID = src.Get(KeyAgentID)
	agent.Name = valueOr(src, KeyAgentName, agent.Name)
	agent.DisplayName = valueOr(src, KeyAgentDisplayName, displayNameFor(agent.Name))
	agent.Description = valueOr(src, KeyAgentDescription, agent.Description)
	agent.ShortDescription = valueOr(src, KeyAgentShortDescription, agent.Description)
	agent.Domain = src.Get(KeyAgentDomain)

	agent.Theme.ThemeName = valueOr(src, KeyAgentTheme, agent.Theme.ThemeName)
	agent.Theme.PrimaryColor = valueOr(src, KeyPrimaryColor, agent.Theme.PrimaryColor)
	agent.Theme.SecondaryColor = valueOr(src, KeySecondaryColor, agent.Theme.SecondaryColor)
	agent.Theme.AccentColor = src.Get(KeyAccentColor)

	agent.Assets.Logo = valueOr(src, KeyAgentLogo, agent.Assets.Logo)
	agent.Assets.BannerLogo = valueOr(src, KeyAgentBannerLogo, agent.Assets.BannerLogo)
	agent.Assets.LoginImage = src.Get(KeyAgentLoginImage)
	agent.Assets.Favicon = valueOr(src, KeyAgentFavicon, agent.Assets.Favicon)
	agent.Assets.OGImage = valueOr(src, KeyAgentOGImage, agent.Assets.OGImage)

	agent.Content.WelcomeMessage = valueOr(src, KeyWelcomeMessage, agent.Content.WelcomeMessage)
	agent.Content.Tagline = src.Get(KeyAgentTagline)
	agent.Content.ExamplePrompts = splitList(src.Get(KeyExamplePrompts), promptSeparator)
	agent.Content.Keywords = splitList(src.Get(KeyAgentKeywords), keywordSeparator)
	agent.Content.AboutContent = src.Get(KeyAboutContent)

	agent.Social = Social{
		X:       src.Get(KeyAgentXUsername),
		Discord: src.Get(KeyAgentDiscordServer),
		Website: src.Get(KeyAgentWebsiteURL),
		GitHub:  src.Get(KeyAgentGitHubURL),
	}

	agent.Features = Features{
		DeepResearch: flag(src, KeyEnableDeepResearch),
		FileUpload:   flag(src, KeyEnableFileUpload),
		TextToSpeech: flag(src, KeyEnableTextToSpeech),
		VoiceInput:   flag(src, KeyEnableVoiceInput),
		Voting:       flag(src, KeyEnableVoting),
	}

	agent.API.ServerURL = valueOr(src, KeyServerURL, agent.API.ServerURL)
	agent.API.APIKey = src.Get(KeyAPIKey)
	agent.API.WorldID = src.Get(KeyWorldID)

	return agent
}

// ToSource flattens the agent back into environment keys. Empty fields are omitted so the
// result can be checked by the environment validator exactly like a real environment.
func (a *Agent) ToSource() envsource.Source {
	src := envsource.Source{}
	set := func(key, value string) {
		if value != "" {
			src[key] = value
		}
	}

	set(KeyAgentID, a.ID)
	set(KeyAgentName, a.Name)
	set(KeyAgentDisplayName, a.DisplayName)
	set(KeyAgentDescription, a.Description)
	set(KeyAgentShortDescription, a.ShortDescription)
	set(KeyAgentDomain, a.Domain)

	set(KeyAgentTheme, a.Theme.ThemeName)
	set(KeyPrimaryColor, a.Theme.PrimaryColor)
	set(KeySecondaryColor, a.Theme.SecondaryColor)
	set(KeyAccentColor, a.Theme.AccentColor)

	set(KeyAgentLogo, a.Assets.Logo)
	set(KeyAgentBannerLogo, a.Assets.BannerLogo)
	set(KeyAgentLoginImage, a.Assets.LoginImage)
	set(KeyAgentFavicon, a.Assets.Favicon)
	set(KeyAgentOGImage, a.Assets.OGImage)

	set(KeyWelcomeMessage, a.Content.WelcomeMessage)
	set(KeyAgentTagline, a.Content.Tagline)
	set(KeyExamplePrompts, strings.Join(a.Content.ExamplePrompts, promptSeparator))
	set(KeyAgentKeywords, strings.Join(a.Content.Keywords, keywordSeparator))
	set(KeyAboutContent, a.Content.AboutContent)

	set(KeyAgentXUsername, a.Social.X)
	set(KeyAgentDiscordServer, a.Social.Discord)
	set(KeyAgentWebsiteURL, a.Social.Website)
	set(KeyAgentGitHubURL, a.Social.GitHub)

	set(KeyEnableDeepResearch, strconv.FormatBool(a.Features.DeepResearch))
	set(KeyEnableFileUpload, strconv.FormatBool(a.Features.FileUpload))
	set(KeyEnableTextToSpeech, strconv.FormatBool(a.Features.TextToSpeech))
	set(KeyEnableVoiceInput, strconv.FormatBool(a.Features.VoiceInput))
	set(KeyEnableVoting, strconv.FormatBool(a.Features.Voting))

	set(KeyServerURL, a.API.ServerURL)
	set(KeyAPIKey, a.API.APIKey)
	set(KeyWorldID, a.API.WorldID)

	return src
}

func valueOr(src envsource.Source, key, fallback string) string {
	if v := src.Get(key); v != "" {
		return v
	}
	return fallback
}

// flag is true only for a case-insensitive "true"; anything else, malformed included, is off.
func flag(src envsource.Source, key string) bool {
	return strings.EqualFold(strings.TrimSpace(src.Get(key)), "true")
}

func splitList(raw, sep string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func displayNameFor(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

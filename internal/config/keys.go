package config

// Environment keys read by the agent front-end.
const (
	KeyAgentID               = "NEXT_PUBLIC_AGENT_ID"
	KeyAgentName             = "NEXT_PUBLIC_AGENT_NAME"
	KeyAgentDisplayName      = "NEXT_PUBLIC_AGENT_DISPLAY_NAME"
	KeyAgentDescription      = "NEXT_PUBLIC_AGENT_DESCRIPTION"
	KeyAgentShortDescription = "NEXT_PUBLIC_AGENT_SHORT_DESCRIPTION"
	KeyAgentDomain           = "NEXT_PUBLIC_AGENT_DOMAIN"

	KeyAgentTheme     = "NEXT_PUBLIC_AGENT_THEME"
	KeyPrimaryColor   = "NEXT_PUBLIC_PRIMARY_COLOR"
	KeySecondaryColor = "NEXT_PUBLIC_SECONDARY_COLOR"
	KeyAccentColor    = "NEXT_PUBLIC_ACCENT_COLOR"

	KeyAgentLogo       = "NEXT_PUBLIC_AGENT_LOGO"
	KeyAgentBannerLogo = "NEXT_PUBLIC_AGENT_BANNER_LOGO"
	KeyAgentLoginImage = "NEXT_PUBLIC_AGENT_LOGIN_IMAGE"
	KeyAgentFavicon    = "NEXT_PUBLIC_AGENT_FAVICON"
	KeyAgentOGImage    = "NEXT_PUBLIC_AGENT_OG_IMAGE"

	KeyWelcomeMessage = "NEXT_PUBLIC_WELCOME_MESSAGE"
	KeyAgentTagline   = "NEXT_PUBLIC_AGENT_TAGLINE"
	KeyExamplePrompts = "NEXT_PUBLIC_EXAMPLE_PROMPTS"
	KeyAgentKeywords  = "NEXT_PUBLIC_AGENT_KEYWORDS"
	KeyAboutContent   = "NEXT_PUBLIC_ABOUT_CONTENT"

	KeyAgentXUsername     = "NEXT_PUBLIC_AGENT_X_USERNAME"
	KeyAgentDiscordServer = "NEXT_PUBLIC_AGENT_DISCORD_SERVER"
	KeyAgentWebsiteURL    = "NEXT_PUBLIC_AGENT_WEBSITE_URL"
	KeyAgentGitHubURL     = "NEXT_PUBLIC_AGENT_GITHUB_URL"

	KeyEnableDeepResearch = "NEXT_PUBLIC_ENABLE_DEEP_RESEARCH"
	KeyEnableFileUpload   = "NEXT_PUBLIC_ENABLE_FILE_UPLOAD"
	KeyEnableTextToSpeech = "NEXT_PUBLIC_ENABLE_TEXT_TO_SPEECH"
	KeyEnableVoiceInput   = "NEXT_PUBLIC_ENABLE_VOICE_INPUT"
	KeyEnableVoting       = "NEXT_PUBLIC_ENABLE_VOTING"

	KeyServerURL = "NEXT_PUBLIC_SERVER_URL"
	KeyAPIKey    = "NEXT_PUBLIC_API_KEY"
	KeyWorldID   = "NEXT_PUBLIC_WORLD_ID"

	KeyAppURL  = "NEXT_PUBLIC_APP_URL"
	KeyNodeEnv = "NODE_ENV"
)

// FeatureKeys lists the feature toggle keys in display order.
var FeatureKeys = []string{
	KeyEnableDeepResearch,
	KeyEnableFileUpload,
	KeyEnableTextToSpeech,
	KeyEnableVoiceInput,
	KeyEnableVoting,
}

// Package config holds the agent configuration record and the ways to build it: from a flat
// environment source or from a TOML agent file.
package config

// Agent is the complete configuration record of one branded agent front-end. It is built once
// at startup and treated as immutable afterwards.
type Agent struct {
	ID               string `toml:"id"                env_interpolation:"yes"`
	Name             string `toml:"name"              env_interpolation:"yes"`
	DisplayName      string `toml:"display_name"      env_interpolation:"yes"`
	Description      string `toml:"description"       env_interpolation:"yes"`
	ShortDescription string `toml:"short_description" env_interpolation:"yes"`
	Domain           string `toml:"domain"            env_interpolation:"yes"`

	Theme    Theme    `toml:"theme"`
	Assets   Assets   `toml:"assets"`
	Content  Content  `toml:"content"`
	Social   Social   `toml:"social"`
	Features Features `toml:"features"`
	API      API      `toml:"api"`
}

// Theme carries the brand colors and the name of the active theme class.
type Theme struct {
	PrimaryColor   string `toml:"primary_color"   env_interpolation:"yes"`
	SecondaryColor string `toml:"secondary_color" env_interpolation:"yes"`
	AccentColor    string `toml:"accent_color"    env_interpolation:"yes"`
	ThemeName      string `toml:"theme_name"      env_interpolation:"yes"`
}

// Accent returns the accent color, falling back to the primary color when none is set.
func (t Theme) Accent() string {
	if t.AccentColor != "" {
		return t.AccentColor
	}
	return t.PrimaryColor
}

// Assets are site-relative paths or absolute URLs of branding images.
type Assets struct {
	Logo       string `toml:"logo"        env_interpolation:"yes"`
	BannerLogo string `toml:"banner_logo" env_interpolation:"yes"`
	LoginImage string `toml:"login_image" env_interpolation:"yes"`
	Favicon    string `toml:"favicon"     env_interpolation:"yes"`
	OGImage    string `toml:"og_image"    env_interpolation:"yes"`
}

// Content is the copy shown on the landing and chat screens.
type Content struct {
	WelcomeMessage string   `toml:"welcome_message" env_interpolation:"yes"`
	Tagline        string   `toml:"tagline"         env_interpolation:"yes"`
	ExamplePrompts []string `toml:"example_prompts" env_interpolation:"yes"`
	Keywords       []string `toml:"keywords"        env_interpolation:"yes"`
	AboutContent   string   `toml:"about_content"   env_interpolation:"yes"`
}

// Social holds external links. X is a username, the rest are URLs.
type Social struct {
	X       string `toml:"x"       env_interpolation:"yes"`
	Discord string `toml:"discord" env_interpolation:"yes"`
	Website string `toml:"website" env_interpolation:"yes"`
	GitHub  string `toml:"github"  env_interpolation:"yes"`
}

// Features toggles optional front-end capabilities.
type Features struct {
	DeepResearch bool `toml:"deep_research"`
	FileUpload   bool `toml:"file_upload"`
	TextToSpeech bool `toml:"text_to_speech"`
	VoiceInput   bool `toml:"voice_input"`
	Voting       bool `toml:"voting"`
}

// API points the front-end at the agent server.
type API struct {
	ServerURL string `toml:"server_url" env_interpolation:"yes"`
	APIKey    string `toml:"api_key"    env_interpolation:"yes"`
	WorldID   string `toml:"world_id"   env_interpolation:"yes"`
}

// Default values used when the source leaves a field unset.
const (
	DefaultName           = "Agent"
	DefaultDescription    = "An AI agent"
	DefaultThemeName      = "dark"
	DefaultPrimaryColor   = "#3b82f6"
	DefaultSecondaryColor = "#64748b"
	DefaultLogo           = "/logo.svg"
	DefaultBannerLogo     = "/banner.svg"
	DefaultFavicon        = "/favicon.ico"
	DefaultOGImage        = "/og-image.png"
	DefaultWelcomeMessage = "How can I help you today?"
	DefaultServerURL      = "http://localhost:3000"
	DefaultAppURL         = "http://localhost:4000"
)

// NewDefault returns an agent with every defaulted field populated.
func NewDefault() *Agent {
	return &Agent{
		Name:             DefaultName,
		DisplayName:      displayNameFor(DefaultName),
		Description:      DefaultDescription,
		ShortDescription: DefaultDescription,
		Theme: Theme{
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
			ThemeName:      DefaultThemeName,
		},
		Assets: Assets{
			Logo:       DefaultLogo,
			BannerLogo: DefaultBannerLogo,
			Favicon:    DefaultFavicon,
			OGImage:    DefaultOGImage,
		},
		Content: Content{
			WelcomeMessage: DefaultWelcomeMessage,
		},
		API: API{
			ServerURL: DefaultServerURL,
		},
	}
}

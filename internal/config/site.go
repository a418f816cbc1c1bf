package config

import "github.com/atlanticdynamic/agenttheme/internal/envsource"

// Icon is one <link rel="icon"> style entry of the site head.
type Icon struct {
	Rel   string `json:"rel"`
	Type  string `json:"type,omitempty"`
	Sizes string `json:"sizes,omitempty"`
	URL   string `json:"url"`
}

// Site is the document metadata derived from the agent configuration.
type Site struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	OGImage     string   `json:"ogImage"`
	Creator     string   `json:"creator"`
	Keywords    []string `json:"keywords"`
	Icons       []Icon   `json:"icons"`
}

// SiteFor derives the site metadata for an agent. The public URL comes from NEXT_PUBLIC_APP_URL
// in src, defaulting to DefaultAppURL.
func SiteFor(agent *Agent, src envsource.Source) Site {
	return Site{
		Name:        agent.DisplayName,
		URL:         valueOr(src, KeyAppURL, DefaultAppURL),
		Description: agent.Description,
		OGImage:     agent.Assets.OGImage,
		Creator:     agent.Name + " Team",
		Keywords:    agent.Content.Keywords,
		Icons: []Icon{
			{Rel: "icon", Type: "image/x-icon", URL: "/favicon.ico"},
			{Rel: "icon", Type: "image/png", URL: agent.Assets.Favicon},
			{Rel: "apple-touch-icon", URL: "/apple-touch-icon.png"},
			{Rel: "apple-touch-icon", Sizes: "180x180", URL: "/apple-touch-icon.png"},
		},
	}
}

package config

import (
	"testing"

	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteFor(t *testing.T) {
	agent := FromSource(envsource.Source{
		KeyAgentName:     "eliza",
		KeyAgentFavicon:  "/eliza.png",
		KeyAgentKeywords: "ai,chat",
	})

	t.Run("defaults", func(t *testing.T) {
		site := SiteFor(agent, envsource.Source{})

		assert.Equal(t, "Eliza", site.Name)
		assert.Equal(t, DefaultAppURL, site.URL)
		assert.Equal(t, "eliza Team", site.Creator)
		assert.Equal(t, []string{"ai", "chat"}, site.Keywords)
		assert.Equal(t, DefaultOGImage, site.OGImage)
		require.Len(t, site.Icons, 4)
		assert.Equal(t, "/eliza.png", site.Icons[1].URL)
		assert.Equal(t, "180x180", site.Icons[3].Sizes)
	})

	t.Run("app url", func(t *testing.T) {
		site := SiteFor(agent, envsource.Source{KeyAppURL: "https://eliza.example.com"})
		assert.Equal(t, "https://eliza.example.com", site.URL)
	})
}

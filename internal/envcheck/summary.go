package envcheck

import (
	"fmt"
	"time"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/atlanticdynamic/agenttheme/internal/fancy"
)

// SummaryPrefixes select the keys captured by Summary.
var SummaryPrefixes = []string{
	"NEXT_PUBLIC_AGENT_",
	"NEXT_PUBLIC_PRIMARY_",
	"NEXT_PUBLIC_SECONDARY_",
	"NEXT_PUBLIC_ACCENT_",
	"NEXT_PUBLIC_ENABLE_",
}

// Summary is a timestamped snapshot of the agent-related part of an environment.
type Summary struct {
	NodeEnv            string            `json:"nodeEnv"`
	AgentConfiguration envsource.Source `json:"agentConfiguration"`
	Timestamp          time.Time         `json:"timestamp"`
}

// Summary captures every key of src matching SummaryPrefixes along with NODE_ENV.
func (v *Validator) Summary(src envsource.Source) Summary {
	return Summary{
		NodeEnv:            src.Get(config.KeyNodeEnv),
		AgentConfiguration: src.WithPrefixes(SummaryPrefixes...),
		Timestamp:          v.now().UTC(),
	}
}

// String renders the summary as a tree with keys in sorted order.
func (s Summary) String() string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Environment Summary"))
	t.Child(fancy.KeyValue("NODE_ENV", orUnset(s.NodeEnv)))
	t.Child(fancy.KeyValue("Captured", s.Timestamp.Format(time.RFC3339)))

	vars := fancy.BranchNode("Agent configuration", fmt.Sprintf("(%d)", len(s.AgentConfiguration)))
	for _, key := range s.AgentConfiguration.Keys() {
		vars.Child(fancy.KeyValue(key, s.AgentConfiguration.Get(key)))
	}
	t.Child(vars)

	return t.String()
}

func orUnset(v string) string {
	if v == "" {
		return "unset"
	}
	return v
}

package envcheck

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/atlanticdynamic/agenttheme/internal/config"
	"github.com/atlanticdynamic/agenttheme/internal/envsource"
	"github.com/robbyt/go-loglater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	v := New()

	t.Run("errors and warnings", func(t *testing.T) {
		var buf bytes.Buffer
		result := Result{
			Errors:   []string{"Missing required environment variable: NEXT_PUBLIC_AGENT_ID"},
			Warnings: []string{"Recommended environment variable missing: NEXT_PUBLIC_AGENT_NAME"},
		}

		require.NoError(t, v.Report(&buf, result))
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

		require.Len(t, lines, 4)
		assert.Equal(t, "[Environment Validation] Errors found:", lines[0])
		assert.Contains(t, lines[1], errorMarker)
		assert.Contains(t, lines[1], "NEXT_PUBLIC_AGENT_ID")
		assert.Equal(t, "[Environment Validation] Warnings:", lines[2])
		assert.Contains(t, lines[3], warningMarker)
		assert.NotContains(t, lines[3], errorMarker)
		assert.NotContains(t, buf.String(), "All environment variables are valid")
	})

	t.Run("warnings only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, v.Report(&buf, Result{Warnings: []string{"w"}}))

		assert.NotContains(t, buf.String(), "Errors found")
		assert.NotContains(t, buf.String(), "All environment variables are valid")
	})

	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, v.Report(&buf, Result{}))

		assert.Contains(t, buf.String(), "[Environment Validation]")
		assert.Contains(t, buf.String(), "All environment variables are valid")
	})
}

func TestLog(t *testing.T) {
	collector := loglater.NewLogCollector(nil)
	v := New(WithLogHandler(collector))

	result := v.Validate(envsource.Source{
		config.KeyAgentID:   testAgentID,
		config.KeyServerURL: "http://localhost:3000",
		config.KeyWorldID:   testWorldID,
		config.KeyAgentLogo: "logo.svg",
	})
	v.Log(t.Context(), result)

	logs := collector.GetLogs()
	require.Len(t, logs, len(result.Warnings)+1)

	for _, record := range logs[:len(logs)-1] {
		assert.Equal(t, slog.LevelWarn, record.Level)
	}
	last := logs[len(logs)-1]
	assert.Equal(t, slog.LevelInfo, last.Level)
	assert.Equal(t, "Environment validation finished", last.Message)
}

func TestLogErrors(t *testing.T) {
	collector := loglater.NewLogCollector(nil)
	v := New(WithLogHandler(collector))

	v.Log(t.Context(), v.Validate(envsource.Source{}))

	var errorCount int
	for _, record := range collector.GetLogs() {
		if record.Level == slog.LevelError {
			errorCount++
			assert.True(t, strings.HasPrefix(record.Message, "Missing required environment variable"))
		}
	}
	assert.Equal(t, len(RequiredKeys), errorCount)
}

func TestSummary(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	v := New(WithClock(func() time.Time { return fixed }))

	src := completeSource()
	src[config.KeyNodeEnv] = "production"
	src["HOME"] = "/root"
	src[config.KeyAPIKey] = "secret"

	summary := v.Summary(src)

	assert.Equal(t, "production", summary.NodeEnv)
	assert.Equal(t, fixed, summary.Timestamp)
	assert.Equal(t, "Eliza", summary.AgentConfiguration.Get(config.KeyAgentName))
	assert.Equal(t, "#3366ff", summary.AgentConfiguration.Get(config.KeyPrimaryColor))
	assert.Equal(t, "true", summary.AgentConfiguration.Get(config.KeyEnableVoting))

	for _, key := range []string{"HOME", config.KeyAPIKey, config.KeyServerURL, config.KeyWorldID, config.KeyNodeEnv} {
		_, ok := summary.AgentConfiguration.Lookup(key)
		assert.False(t, ok, key)
	}

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(summary)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "production", decoded["nodeEnv"])
		assert.Equal(t, "2026-10-17T12:00:00Z", decoded["timestamp"])
		assert.Contains(t, decoded["agentConfiguration"], config.KeyAgentID)
	})

	t.Run("tree", func(t *testing.T) {
		out := summary.String()
		assert.Contains(t, out, "Environment Summary")
		assert.Contains(t, out, "production")
		assert.Contains(t, out, config.KeyAgentLogo)
	})
}

package agent_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexaid/backend/internal/agent"
)

func TestLookup(t *testing.T) {
	t.Run("Empty name falls back to the default persona", func(t *testing.T) {
		a, err := agent.Lookup("")
		require.NoError(t, err)
		assert.Equal(t, agent.DefaultName, a.Name)
		assert.NotEmpty(t, a.SystemPrompt)
		assert.Empty(t, a.Tools)
	})

	t.Run("Named persona", func(t *testing.T) {
		a, err := agent.Lookup("weather")
		require.NoError(t, err)
		assert.Equal(t, "weather", a.Name)
		assert.Len(t, a.Tools, 1)
	})

	t.Run("Unknown persona", func(t *testing.T) {
		_, err := agent.Lookup("astrologer")
		assert.ErrorContains(t, err, "unknown agent")
	})
}

func TestAgent_ToolSchemas(t *testing.T) {
	t.Run("No tools exports nil", func(t *testing.T) {
		a, err := agent.Lookup(agent.DefaultName)
		require.NoError(t, err)

		schemas, err := a.ToolSchemas()
		require.NoError(t, err)
		assert.Nil(t, schemas)
	})

	t.Run("Exports function-calling envelopes", func(t *testing.T) {
		a, err := agent.Lookup("weather")
		require.NoError(t, err)

		schemas, err := a.ToolSchemas()
		require.NoError(t, err)
		require.Len(t, schemas, 1)

		var envelope struct {
			Type     string `json:"type"`
			Function struct {
				Name        string          `json:"name"`
				Description string          `json:"description"`
				Parameters  json.RawMessage `json:"parameters"`
			} `json:"function"`
		}
		require.NoError(t, json.Unmarshal(schemas[0], &envelope))
		assert.Equal(t, "function", envelope.Type)
		assert.Equal(t, "get_weather", envelope.Function.Name)

		// The parameter schema is derived from the Params struct tags.
		var params struct {
			Properties map[string]struct {
				Description string `json:"description"`
			} `json:"properties"`
			Required []string `json:"required"`
		}
		require.NoError(t, json.Unmarshal(envelope.Function.Parameters, &params))
		require.Contains(t, params.Properties, "location")
		assert.NotEmpty(t, params.Properties["location"].Description)
		assert.Contains(t, params.Required, "location")
	})
}

func TestAgent_FindTool(t *testing.T) {
	a, err := agent.Lookup("weather")
	require.NoError(t, err)

	tool, ok := a.FindTool("get_weather")
	require.True(t, ok)
	assert.Equal(t, "get_weather", tool.Name())

	_, ok = a.FindTool("get_horoscope")
	assert.False(t, ok)
}

func TestWeatherTool_Call(t *testing.T) {
	t.Run("Success - splits model response from client data", func(t *testing.T) {
		out, err := agent.WeatherTool{}.Call(context.Background(), json.RawMessage(`{"location": "Austin"}`))
		require.NoError(t, err)

		assert.Contains(t, out.Response, "Austin")
		assert.Equal(t, "Austin", out.Data["location"])
		assert.NotNil(t, out.Data["temp_f"])
	})

	t.Run("Failure - malformed arguments", func(t *testing.T) {
		_, err := agent.WeatherTool{}.Call(context.Background(), json.RawMessage(`{broken`))
		assert.ErrorContains(t, err, "invalid arguments")
	})
}

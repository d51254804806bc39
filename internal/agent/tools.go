package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ToolOutput is the result of a tool execution. Response is fed back to the
// model; Data is structured payload streamed to the client only and never
// sent to the model.
type ToolOutput struct {
	Response string
	Data     map[string]any
}

// Tool is one function the model may call during a turn.
type Tool interface {
	Name() string
	Description() string
	// Params returns a zero value of the parameters struct; its fields and
	// jsonschema tags define the function-calling schema.
	Params() any
	Call(ctx context.Context, args json.RawMessage) (ToolOutput, error)
}

// functionSchema is the function-calling envelope shared by the supported
// backends.
type functionSchema struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	} `json:"function"`
}

// Schema exports a tool's function-calling schema, deriving the parameter
// schema from the Params struct.
func Schema(t Tool) (json.RawMessage, error) {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	params, err := json.Marshal(reflector.Reflect(t.Params()))
	if err != nil {
		return nil, fmt.Errorf("could not reflect schema for tool %s: %w", t.Name(), err)
	}

	var fs functionSchema
	fs.Type = "function"
	fs.Function.Name = t.Name()
	fs.Function.Description = t.Description()
	fs.Function.Parameters = params
	return json.Marshal(fs)
}

// WeatherParams are the arguments for the demo weather tool.
type WeatherParams struct {
	Location string `json:"location" jsonschema:"description=City name or location to get weather for"`
}

// WeatherTool returns mock conditions for a location. It exists to exercise
// the tool-calling path end to end.
type WeatherTool struct{}

func (WeatherTool) Name() string { return "get_weather" }

func (WeatherTool) Description() string { return "Get the current weather for a location." }

func (WeatherTool) Params() any { return &WeatherParams{} }

func (WeatherTool) Call(_ context.Context, args json.RawMessage) (ToolOutput, error) {
	var params WeatherParams
	if err := json.Unmarshal(args, &params); err != nil {
		return ToolOutput{}, fmt.Errorf("invalid arguments: %w", err)
	}

	tempF := 72
	condition := "sunny"
	return ToolOutput{
		// What the model sees.
		Response: fmt.Sprintf("Location: %s, Temp: %d F, Condition: %s.", params.Location, tempF, condition),
		// Structured payload for the client.
		Data: map[string]any{
			"location":  params.Location,
			"temp_f":    tempF,
			"condition": condition,
		},
	}, nil
}

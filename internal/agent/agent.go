package agent

import (
	"encoding/json"
	"fmt"
)

const litigantSystemPrompt = `You are a helpful legal assistant for self-represented litigants in a web application. Provide clear, accurate information about legal procedures, court processes, and document preparation. Always recommend consulting with a licensed attorney for specific legal advice. Be empathetic and use plain language.

IMPORTANT: This application has a document upload feature. Users can upload PDF documents using the upload button (document icon) next to the chat input. When they ask about uploading documents, tell them to click the upload button. Do NOT say you cannot receive files - the app handles PDF uploads and extracts the text for you automatically.

When the user uploads a legal document, you'll receive context in a [Document Context] block. Use this information to:
- Reference specific deadlines and urge timely action when applicable
- Explain what the document means for the user in plain language
- Suggest concrete next steps based on the case type and deadlines
- Ask clarifying questions to better assist them

Format responses using markdown: **bold** for emphasis, bullet lists for steps, and clear paragraph breaks. Keep responses concise and well-structured.`

const weatherSystemPrompt = `You are a helpful assistant. If the user asks about the weather, use the get_weather tool to get current conditions. Be concise.`

// Agent is a chat persona: a system prompt plus the tools it may call.
// Definitions are static; selection happens per request.
type Agent struct {
	Name         string
	SystemPrompt string
	Tools        []Tool
	// MaxSteps bounds the tool-call loop within a single turn.
	MaxSteps  int
	MaxTokens int
}

// DefaultName is the persona used when a request names none.
const DefaultName = "litigant"

var registry = map[string]*Agent{
	"litigant": {
		Name:         "litigant",
		SystemPrompt: litigantSystemPrompt,
		MaxSteps:     30,
	},
	"weather": {
		Name:         "weather",
		SystemPrompt: weatherSystemPrompt,
		Tools:        []Tool{WeatherTool{}},
		MaxSteps:     10,
		MaxTokens:    1024,
	},
}

// Lookup returns the named agent, or the default when name is empty.
func Lookup(name string) (*Agent, error) {
	if name == "" {
		name = DefaultName
	}
	a, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", name)
	}
	return a, nil
}

// Register adds a persona to the registry. Intended for startup wiring.
func Register(a *Agent) {
	registry[a.Name] = a
}

// ToolSchemas exports the function-calling schemas for the agent's tools,
// or nil when it has none.
func (a *Agent) ToolSchemas() ([]json.RawMessage, error) {
	if len(a.Tools) == 0 {
		return nil, nil
	}
	schemas := make([]json.RawMessage, 0, len(a.Tools))
	for _, t := range a.Tools {
		s, err := Schema(t)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// FindTool returns the agent's tool with the given name.
func (a *Agent) FindTool(name string) (Tool, bool) {
	for _, t := range a.Tools {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

package runtime

import (
    "context"
    "errors"
    "net/http"
    "sync"
)

// Message is a single inbound free-text payload.
type Message struct {
    Text     string
    UserID   string
    RoomID   string
    Source   string
    Metadata map[string]any
}

// Content is what an action delivers through the response sink.
type Content struct {
    Text   string
    Action string
    Source string
}

// ErrSinkUsed is returned when a sink receives a second Send.
var ErrSinkUsed = errors.New("runtime: response sink already used")

// Sink is the single-use output channel for one invocation.
// Send delivers at most once; further calls return ErrSinkUsed.
type Sink struct {
    mu   sync.Mutex
    used bool
    fn   func(Content) error
}

func NewSink(fn func(Content) error) *Sink {
    return &Sink{fn: fn}
}

func (s *Sink) Send(c Content) error {
    s.mu.Lock()
    if s.used {
        s.mu.Unlock()
        return ErrSinkUsed
    }
    s.used = true
    s.mu.Unlock()
    if s.fn == nil { return nil }
    return s.fn(c)
}

// Used reports whether the sink has already delivered.
func (s *Sink) Used() bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.used
}

// Result is the structured outcome an action hands back to the runtime.
type Result struct {
    Success bool           `json:"success"`
    Text    string         `json:"text,omitempty"`
    Values  map[string]any `json:"values,omitempty"`
    Data    map[string]any `json:"data,omitempty"`
    Error   string         `json:"error,omitempty"`
}

// Example is one turn of an illustrative transcript attached to an action.
// These are data used by the host for selection, not logic.
type Example struct {
    Name    string
    Text    string
    Actions []string
}

// Action is a request/response capability contributed by a plugin.
// Validate gates whether Handle should run for a message; Handle must
// invoke the sink exactly once and return a structured result.
type Action interface {
    Name() string
    Description() string
    Similes() []string
    Examples() [][]Example
    Validate(ctx context.Context, msg *Message) (bool, error)
    Handle(ctx context.Context, msg *Message, sink *Sink) (*Result, error)
}

// ProviderResult carries a provider's contribution to the agent state.
type ProviderResult struct {
    Text   string
    Values map[string]any
    Data   map[string]any
}

// Provider supplies contextual data ahead of action handling.
type Provider interface {
    Name() string
    Description() string
    Get(ctx context.Context, msg *Message) (*ProviderResult, error)
}

// Service is a background component with start/stop lifecycle hooks.
type Service interface {
    Name() string
    Start(ctx context.Context) error
    Stop(ctx context.Context) error
}

// ModelParams are the inputs for a model invocation.
type ModelParams struct {
    Prompt      string
    Temperature float64
    MaxTokens   int
}

// ModelFunc generates text for a prompt.
type ModelFunc func(ctx context.Context, p ModelParams) (string, error)

// Model slot names recognized by the runtime.
const (
    ModelTextSmall = "TEXT_SMALL"
    ModelTextLarge = "TEXT_LARGE"
)

// EventType names a runtime lifecycle event.
type EventType string

const (
    EventMessageReceived      EventType = "MESSAGE_RECEIVED"
    EventVoiceMessageReceived EventType = "VOICE_MESSAGE_RECEIVED"
    EventWorldConnected       EventType = "WORLD_CONNECTED"
    EventWorldJoined          EventType = "WORLD_JOINED"
)

// Event is a lifecycle notification fanned out to registered handlers.
type Event struct {
    Type    EventType
    Payload map[string]any
}

// EventHandler consumes one event. Handler errors are logged, not fatal.
type EventHandler func(ctx context.Context, ev Event) error

// Route is an HTTP endpoint a plugin exposes through the host.
type Route struct {
    Method  string
    Path    string
    Handler http.HandlerFunc
}

// Config is the flat key/value settings bag passed to plugin Init.
type Config map[string]string

// Plugin bundles the capabilities one module contributes to the runtime.
type Plugin struct {
    Name        string
    Description string
    Init        func(ctx context.Context, cfg Config) error
    Actions     []Action
    Providers   []Provider
    Services    []Service
    Models      map[string]ModelFunc
    Routes      []Route
    Events      map[EventType][]EventHandler
}

package plugin

import (
    "context"

    "cryptoagent/internal/runtime"
)

const (
    HelloActionName = "HELLO_WORLD"

    helloText = "Hello there! Ask me about crypto prices any time."
)

// HelloAction is a zero-logic greeting: it always validates and emits a
// fixed string.
type HelloAction struct{}

func (HelloAction) Name() string        { return HelloActionName }
func (HelloAction) Description() string { return "Responds with a friendly greeting" }
func (HelloAction) Similes() []string   { return []string{"GREET", "SAY_HELLO"} }

func (HelloAction) Examples() [][]runtime.Example {
    return [][]runtime.Example{
        {
            {Name: "user", Text: "hi"},
            {Name: "agent", Text: helloText, Actions: []string{HelloActionName}},
        },
    }
}

func (HelloAction) Validate(context.Context, *runtime.Message) (bool, error) {
    return true, nil
}

func (HelloAction) Handle(_ context.Context, _ *runtime.Message, sink *runtime.Sink) (*runtime.Result, error) {
    if err := sink.Send(runtime.Content{Text: helloText, Action: HelloActionName}); err != nil {
        return nil, err
    }
    return &runtime.Result{Success: true, Text: helloText}, nil
}

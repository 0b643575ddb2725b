// Package character defines the agent persona: metadata, style guidance
// and the plugin list assembled from explicit options.
package character

import (
    "fmt"
    "os"
    "strings"

    "gopkg.in/yaml.v3"
)

// Style groups the reply-style guidance by channel.
type Style struct {
    All  []string `yaml:"all"`
    Chat []string `yaml:"chat"`
    Post []string `yaml:"post"`
}

// MessageExample is one illustrative exchange shipped with the character.
type MessageExample struct {
    Name string `yaml:"name"`
    Text string `yaml:"text"`
}

// Character is the full agent definition.
type Character struct {
    Name            string             `yaml:"name"`
    Username        string             `yaml:"username"`
    System          string             `yaml:"system"`
    Bio             []string           `yaml:"bio"`
    Topics          []string           `yaml:"topics"`
    Adjectives      []string           `yaml:"adjectives"`
    Style           Style              `yaml:"style"`
    MessageExamples [][]MessageExample `yaml:"message_examples"`
    Plugins         []string           `yaml:"plugins"`
}

// Options enumerates every recognized assembly switch. This replaces
// scattered environment presence checks: each field is applied in one
// place, in a fixed order, by ApplyOptions.
type Options struct {
    // LLMProvider selects the model plugin: "openai", "anthropic" or
    // "local". Empty means local.
    LLMProvider string
    // WithVoice appends the voice plugin.
    WithVoice bool
    // WithBootstrap appends the bootstrap plugin (message handling
    // defaults). On unless explicitly disabled.
    WithBootstrap bool
}

// pluginCrypto is always present; the rest are appended per Options.
const (
    pluginCrypto    = "crypto-companion"
    pluginSQL       = "plugin-sql"
    pluginOpenAI    = "plugin-openai"
    pluginAnthropic = "plugin-anthropic"
    pluginLocalAI   = "plugin-local-ai"
    pluginVoice     = "plugin-voice"
    pluginBootstrap = "plugin-bootstrap"
)

// ApplyOptions computes the plugin list from the options. The order is
// fixed: storage, model provider, voice, bootstrap, then this plugin.
func (c *Character) ApplyOptions(o Options) {
    plugins := []string{pluginSQL}
    switch strings.ToLower(o.LLMProvider) {
    case "openai":
        plugins = append(plugins, pluginOpenAI)
    case "anthropic":
        plugins = append(plugins, pluginAnthropic)
    default:
        plugins = append(plugins, pluginLocalAI)
    }
    if o.WithVoice {
        plugins = append(plugins, pluginVoice)
    }
    if o.WithBootstrap {
        plugins = append(plugins, pluginBootstrap)
    }
    plugins = append(plugins, pluginCrypto)
    c.Plugins = plugins
}

// Default returns the built-in crypto companion persona.
func Default() *Character {
    return &Character{
        Name:     "Nova",
        Username: "nova",
        System:   "You are Nova, a friendly crypto market companion. Answer price questions precisely and keep small talk short.",
        Bio: []string{
            "Keeps an eye on cryptocurrency markets around the clock.",
            "Reports prices in USD with their 24 hour movement.",
            "Never gives financial advice, only numbers.",
        },
        Topics:     []string{"cryptocurrency", "market prices", "bitcoin", "ethereum"},
        Adjectives: []string{"precise", "friendly", "level-headed"},
        Style: Style{
            All:  []string{"Be concise", "Use plain language"},
            Chat: []string{"Answer the question first, then add context"},
            Post: []string{"Lead with the number"},
        },
        MessageExamples: [][]MessageExample{
            {
                {Name: "user", Text: "what's btc at?"},
                {Name: "Nova", Text: "Current crypto prices:\nBITCOIN: $45230 USD (+5.2% 24h)"},
            },
        },
    }
}

// Load reads a character definition from a YAML file. An empty path
// returns the default character.
func Load(path string) (*Character, error) {
    if path == "" {
        return Default(), nil
    }
    b, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read character: %w", err)
    }
    var c Character
    if err := yaml.Unmarshal(b, &c); err != nil {
        return nil, fmt.Errorf("parse character: %w", err)
    }
    return &c, nil
}

// Validate checks the definition and aggregates every failed field into
// one error instead of stopping at the first.
func (c *Character) Validate() error {
    var bad []string
    if strings.TrimSpace(c.Name) == "" {
        bad = append(bad, "name is required")
    }
    if strings.TrimSpace(c.System) == "" {
        bad = append(bad, "system prompt is required")
    }
    if len(c.Bio) == 0 {
        bad = append(bad, "bio must have at least one line")
    }
    for i, ex := range c.MessageExamples {
        if len(ex) < 2 {
            bad = append(bad, fmt.Sprintf("message_examples[%d] needs both turns", i))
        }
    }
    if len(bad) > 0 {
        return fmt.Errorf("character invalid: %s", strings.Join(bad, "; "))
    }
    return nil
}

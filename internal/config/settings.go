package config

import "time"

// Action kinds accepted in settings files.
const (
	KindTranslation    = "translation"
	KindTransformation = "transformation"
	KindLLMPrompt      = "llmPrompt"
)

// ActionSetting declares one shortcut-triggered action.
type ActionSetting struct {
	// ID uniquely identifies the action.
	ID string `json:"id" yaml:"id" toml:"id"`

	// DisplayName is shown in conflict messages and notifications.
	DisplayName string `json:"displayName" yaml:"displayName" toml:"displayName"`

	// Shortcut is the raw shortcut string, normalized at validation.
	Shortcut string `json:"shortcut" yaml:"shortcut" toml:"shortcut"`

	// Kind selects the action family: translation, transformation or
	// llmPrompt.
	Kind string `json:"kind" yaml:"kind" toml:"kind"`

	// Transformer names the registered transformer; empty uses the
	// kind's default.
	Transformer string `json:"transformer,omitempty" yaml:"transformer,omitempty" toml:"transformer,omitempty"`

	// Args are kind-specific arguments passed through to the
	// transformer (language pair, style name, prompt, ...).
	Args map[string]string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
}

// AISettings configure the LLM rewriting provider.
type AISettings struct {
	Provider       string  `json:"provider" yaml:"provider" toml:"provider"`
	Model          string  `json:"model" yaml:"model" toml:"model"`
	APIKey         string  `json:"apiKey" yaml:"apiKey" toml:"apiKey"`
	MaxTokens      int     `json:"maxTokens" yaml:"maxTokens" toml:"maxTokens"`
	Temperature    float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
	TimeoutSeconds int     `json:"timeoutSeconds" yaml:"timeoutSeconds" toml:"timeoutSeconds"`
}

// Timeout returns the request timeout as a duration.
func (a AISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// LoggingSettings configure the application logger.
type LoggingSettings struct {
	// Level is debug, info, warn or error.
	Level string `json:"level" yaml:"level" toml:"level"`

	// File enables rolling file output when non-empty.
	File string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`

	MaxSizeMB  int `json:"maxSizeMb,omitempty" yaml:"maxSizeMb,omitempty" toml:"maxSizeMb,omitempty"`
	MaxBackups int `json:"maxBackups,omitempty" yaml:"maxBackups,omitempty" toml:"maxBackups,omitempty"`
}

// MutationSettings tune the mutation pipeline.
type MutationSettings struct {
	// SettleDelayMS is the rich-surface reconciliation delay.
	SettleDelayMS int `json:"settleDelayMs" yaml:"settleDelayMs" toml:"settleDelayMs"`
}

// SettleDelay returns the settle delay as a duration.
func (m MutationSettings) SettleDelay() time.Duration {
	return time.Duration(m.SettleDelayMS) * time.Millisecond
}

// CacheSettings tune the transform result cache.
type CacheSettings struct {
	TTLSeconds int `json:"ttlSeconds" yaml:"ttlSeconds" toml:"ttlSeconds"`
}

// TTL returns the cache TTL as a duration.
func (c CacheSettings) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Settings is the full configuration document.
type Settings struct {
	// SelectionModifier is the modifier that, held with Left/Right,
	// drives word selection: ctrl, alt, shift or meta.
	SelectionModifier string `json:"selectionModifier" yaml:"selectionModifier" toml:"selectionModifier"`

	Actions  []ActionSetting  `json:"actions" yaml:"actions" toml:"actions"`
	AI       AISettings       `json:"ai" yaml:"ai" toml:"ai"`
	Logging  LoggingSettings  `json:"logging" yaml:"logging" toml:"logging"`
	Mutation MutationSettings `json:"mutation" yaml:"mutation" toml:"mutation"`
	Cache    CacheSettings    `json:"cache" yaml:"cache" toml:"cache"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		SelectionModifier: "alt",
		Actions: []ActionSetting{
			{
				ID:          "translate.es",
				DisplayName: "Translate to Spanish",
				Shortcut:    "Ctrl+Shift+T",
				Kind:        KindTranslation,
				Args:        map[string]string{"from": "en", "to": "es"},
			},
			{
				ID:          "style.bold",
				DisplayName: "Bold letterforms",
				Shortcut:    "Ctrl+Shift+B",
				Kind:        KindTransformation,
				Args:        map[string]string{"style": "bold"},
			},
		},
		AI: AISettings{
			Provider:       "anthropic",
			MaxTokens:      1024,
			TimeoutSeconds: 30,
		},
		Logging:  LoggingSettings{Level: "info"},
		Mutation: MutationSettings{SettleDelayMS: 50},
		Cache:    CacheSettings{TTLSeconds: 600},
	}
}

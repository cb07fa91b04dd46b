package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// AgentEnv maps go-agents config fields to environment variable names.
type AgentEnv struct {
	ProviderName string
	BaseURL      string
	Token        string
	Deployment   string
	APIVersion   string
	AuthType     string
	ModelName    string
}

var chatAgentEnv = &AgentEnv{
	ProviderName: "CHASER_CHAT_AGENT_PROVIDER_NAME",
	BaseURL:      "CHASER_CHAT_AGENT_BASE_URL",
	Token:        "CHASER_CHAT_AGENT_TOKEN",
	Deployment:   "CHASER_CHAT_AGENT_DEPLOYMENT",
	APIVersion:   "CHASER_CHAT_AGENT_API_VERSION",
	AuthType:     "CHASER_CHAT_AGENT_AUTH_TYPE",
	ModelName:    "CHASER_CHAT_AGENT_MODEL_NAME",
}

var visionAgentEnv = &AgentEnv{
	ProviderName: "CHASER_VISION_AGENT_PROVIDER_NAME",
	BaseURL:      "CHASER_VISION_AGENT_BASE_URL",
	Token:        "CHASER_VISION_AGENT_TOKEN",
	Deployment:   "CHASER_VISION_AGENT_DEPLOYMENT",
	APIVersion:   "CHASER_VISION_AGENT_API_VERSION",
	AuthType:     "CHASER_VISION_AGENT_AUTH_TYPE",
	ModelName:    "CHASER_VISION_AGENT_MODEL_NAME",
}

// AgentsConfig holds the language model agents the service drives: a chat
// agent for sentiment, drafting, and insight, and a vision agent for
// document confidence extraction.
type AgentsConfig struct {
	Chat   gaconfig.AgentConfig `toml:"chat"`
	Vision gaconfig.AgentConfig `toml:"vision"`
}

// Finalize applies the three-phase finalize pattern to both agents: defaults
// from go-agents DefaultAgentConfig, environment variable overrides, and
// validation.
func (c *AgentsConfig) Finalize() error {
	if c.Chat.Name == "" {
		c.Chat.Name = "chaser-chat"
	}
	if c.Vision.Name == "" {
		c.Vision.Name = "chaser-vision"
	}

	if err := FinalizeAgent(&c.Chat, chatAgentEnv); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	if err := FinalizeAgent(&c.Vision, visionAgentEnv); err != nil {
		return fmt.Errorf("vision: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay for both agents.
func (c *AgentsConfig) Merge(overlay *AgentsConfig) {
	c.Chat.Merge(&overlay.Chat)
	c.Vision.Merge(&overlay.Vision)
}

// FinalizeAgent applies defaults, environment variable overrides, and
// validation to a go-agents AgentConfig.
func FinalizeAgent(c *gaconfig.AgentConfig, env *AgentEnv) error {
	loadAgentDefaults(c)
	loadAgentEnv(c, env)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig, env *AgentEnv) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(env.ProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(env.BaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(env.ModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(env.Token, "token")
	setOption(env.Deployment, "deployment")
	setOption(env.APIVersion, "api_version")
	setOption(env.AuthType, "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}

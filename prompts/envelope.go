package prompts

import (
	"fmt"

	"github.com/c360studio/accountgen/account"
)

// DefaultPostCount is used when a caller does not request a positive number of posts.
const DefaultPostCount = 75

// Envelope bundles an account with its prompt, ready to hand to a generator.
type Envelope struct {
	AccountProfile account.Account `json:"account_profile" yaml:"account_profile"`
	SystemPrompt   string          `json:"system_prompt" yaml:"system_prompt"`
	Instructions   string          `json:"instructions" yaml:"instructions"`
	Metadata       Metadata        `json:"metadata" yaml:"metadata"`
}

// Metadata summarizes an envelope.
type Metadata struct {
	TotalModifiers  int    `json:"total_modifiers" yaml:"total_modifiers"`
	PersonaCategory string `json:"persona_category" yaml:"persona_category"`
	GenerationReady bool   `json:"generation_ready" yaml:"generation_ready"`
}

// PostsEnvelope builds the generation envelope for a.
// A postCount of zero or less means DefaultPostCount.
func PostsEnvelope(a account.Account, postCount int) Envelope {
	if postCount <= 0 {
		postCount = DefaultPostCount
	}
	profile := a.Clone()
	return Envelope{
		AccountProfile: profile,
		SystemPrompt:   SystemPrompt(profile),
		Instructions:   Instructions(postCount),
		Metadata: Metadata{
			TotalModifiers:  profile.Modifiers.Len(),
			PersonaCategory: profile.Type,
			GenerationReady: true,
		},
	}
}

// Instructions returns the hand-off note for a generator asked for postCount posts.
func Instructions(postCount int) string {
	return fmt.Sprintf("Send this system prompt to an LLM to generate %d realistic posts for this account.", postCount)
}

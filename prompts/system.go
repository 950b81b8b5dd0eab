// Package prompts renders sampled accounts into instructions for an external
// text generator. Rendering is pure and never fails: any account, including
// one whose type or persona is unknown to the taxonomy, produces a prompt.
package prompts

import (
	"fmt"
	"strings"

	"github.com/c360studio/accountgen/account"
	"github.com/c360studio/accountgen/taxonomy"
)

// NoCharacteristics replaces the modifier block when an account has no modifiers.
const NoCharacteristics = "No specific characteristics defined."

// DefaultHeading titles the modifier block for account types without their own heading.
const DefaultHeading = "CHARACTERISTICS"

var sectionHeadings = map[string]string{
	taxonomy.Individual:             "PERSONALITY & STYLE",
	taxonomy.BrandBusiness:          "BRAND CHARACTERISTICS",
	taxonomy.InfluencerPublicFigure: "INFLUENCER PROFILE",
	taxonomy.MediaNews:              "MEDIA PROFILE",
	taxonomy.Bot:                    "BOT CHARACTERISTICS",
	taxonomy.SpamScam:               "SCAM CHARACTERISTICS",
	taxonomy.CreativeMeme:           "MEME CHARACTERISTICS",
}

// SectionHeading returns the modifier block heading for an account type.
func SectionHeading(accountType string) string {
	if h, ok := sectionHeadings[accountType]; ok {
		return h
	}
	return DefaultHeading
}

// SystemPrompt returns the roleplay prompt for a.
func SystemPrompt(a account.Account) string {
	return fmt.Sprintf(`You are roleplaying as a social media account with the following characteristics:

ACCOUNT TYPE: %s
PERSONA: %s

%s

Generate 50-100 realistic social media posts that this account would make. Each post should:

1. Reflect the persona's personality and characteristics from the modifiers above
2. Use language, tone, and topics appropriate for this specific account type and persona
3. Include realistic social media elements (hashtags, mentions, emojis) when appropriate for the persona
4. Vary in length and style to show authentic posting patterns
5. Show authentic human flaws, typos, or quirks when realistic for the persona (especially for individual accounts)
6. For business/brand accounts: focus on appropriate business content and goals
7. For bot accounts: show automated or systematic posting patterns
8. For spam/scam accounts: use manipulative language and questionable offers typical of scams

Format each post as:
POST [number]:
[post content]

Be creative and authentic - make these posts feel like they come from this specific type of account.`,
		Humanize(a.Type), Humanize(a.Persona), modifierBlock(a))
}

func modifierBlock(a account.Account) string {
	if a.Modifiers.Len() == 0 {
		return NoCharacteristics
	}

	var sb strings.Builder
	sb.WriteString(SectionHeading(a.Type))
	sb.WriteString(":")
	for _, m := range a.Modifiers {
		fmt.Fprintf(&sb, "\n- %s: %s", Humanize(m.Category), Humanize(m.Value))
	}
	return sb.String()
}

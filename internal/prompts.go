package internal

import (
	"fmt"
	"strings"
)

// BuildOutlinePrompt asks for a table of contents as a bare JSON array of
// section titles. The minimum size is a hint to the model, not a contract.
func BuildOutlinePrompt(topic string) string {
	return fmt.Sprintf(`Create a table of contents for a comprehensive report on the topic '%s'. `+
		`Respond with only a JSON array of section title strings, nothing else. `+
		`Example: ["Introduction", "History", "Core Concepts", "Conclusion"]. `+
		`Produce at least 4 section titles.`, topic)
}

// BuildContentPrompt builds the prose request for one section. Each length
// tier uses a materially different strategy: a terse summary, a standard
// encyclopedic treatment, or a maximally expansive multi-perspective essay.
func BuildContentPrompt(topic, sectionTitle string, opts GenerationOptions) string {
	var lengthPrompt string
	switch opts.Length {
	case LengthShort:
		lengthPrompt = "write a short, clear, summary-style text. Focus only on the most essential and decisive points."
	case LengthLong:
		lengthPrompt = buildLongFormDirectives()
	default:
		lengthPrompt = "write an extremely detailed, in-depth and encyclopedic text. It must be clear enough to explain the subject even to someone who has never encountered it."
	}

	prompt := fmt.Sprintf(`For the '%s' section of a report prepared on the main topic '%s', %s `+
		`The text must be written in flowing paragraphs with a professional tone. `+
		`Do not use Markdown or HTML tags; produce plain text only.`, sectionTitle, topic, lengthPrompt)

	if opts.IncludeContributors {
		prompt += "\n\nAdditionally, under a dedicated 'Key Contributors' subsection, describe in detail the key figures, scientists or thinkers relevant to this section, their main contributions to the subject and how they arrived at them."
	}

	return prompt
}

// buildLongFormDirectives is the maximal tier: a layered set of directives
// pushing the model towards reference-work depth rather than a longer summary.
func buildLongFormDirectives() string {
	var sb strings.Builder
	sb.WriteString("produce a profoundly deep, comprehensive and illuminating text for this section, part reference work, part manifesto, part academic thesis. Apply the following directives with the utmost rigor:\n\n")
	sb.WriteString("1. Progressive, pedagogical explanation: open at a level a bright newcomer can follow, then deepen layer by layer to a level a graduate student could cite. Define every technical term on first use and anchor difficult concepts with at least two concrete, memorable analogies.\n")
	sb.WriteString("2. Historical and socio-cultural context: explain not just what the subject is but why and how it came to be. Trace its origins, the climate it was born into, its main characters including overlooked pioneers, and the turning points that changed its trajectory.\n")
	sb.WriteString("3. Dialectical, critical analysis: represent the mainstream, alternative and radical positions fairly, let them answer one another, and compare their strengths, blind spots and potential objectively, summarizing the current scholarly debate.\n")
	sb.WriteString("4. Applied case studies: ground the theory with at least three detailed real-world case studies from different fields, walking through what happened in practice, the unexpected consequences and the difficulties encountered.\n")
	sb.WriteString("5. Interdisciplinary bridges: connect the subject to seemingly unrelated fields such as philosophy, sociology, art, economics or psychology, so the reader sees the whole picture.\n")
	sb.WriteString("6. Future projection: close with short-term (1-5 years), medium-term (5-15 years) and long-term (15+ years) scenarios, covering both optimistic and pessimistic possibilities and the factors that could trigger each.\n")
	sb.WriteString("7. Ethical and philosophical depth: where relevant, analyze the dilemmas the subject raises through different ethical frameworks, asking who benefits, who is harmed and what it changes about being human.\n")
	sb.WriteString("8. Narrative flow: the text must not be a dry pile of facts. Give it a compelling opening, a satisfying development and a thought-provoking conclusion, written in rich, fluent prose organized into structured paragraphs.")
	return sb.String()
}

// BuildImagePrompt builds the illustration request for one section
func BuildImagePrompt(topic, sectionTitle string) string {
	return fmt.Sprintf("A striking illustration for a professional report: '%s, %s'. Photorealistic, cinematic, without text or people.", topic, sectionTitle)
}

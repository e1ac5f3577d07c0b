package llm

import (
	"fmt"
	"strings"
)

// nextQuestionContextLimit caps how many recent pairs the question prompt
// carries; the interview grows without bound but the prompt must not.
const nextQuestionContextLimit = 10

// NoAnswersPlaceholder is returned instead of generated text when no answered
// pairs exist yet. No provider is called in that case.
const NoAnswersPlaceholder = "No answered questions yet. Answer a few interview questions first, then generate the biography."

// NextQuestionPrompt builds the prompt for the next biographical question.
// History is ordered newest first; at most the 10 most recent pairs are
// included. topicHint, when non-empty, steers the question toward that topic.
func NextQuestionPrompt(history []QA, topicHint string) string {
	var b strings.Builder
	b.WriteString("You are an expert biographer tasked with creating an exhaustive, authoritative autobiography.\n\n")

	if len(history) > 0 {
		b.WriteString("Previous questions and answers:\n")
		limit := len(history)
		if limit > nextQuestionContextLimit {
			limit = nextQuestionContextLimit
		}
		writeQABlocks(&b, history[:limit], false)
		b.WriteString("\n")
	}

	b.WriteString("Based on the previous questions and answers (if any), generate ONE thoughtful, specific biographical question that would help build a comprehensive life story.\n\n")
	b.WriteString("The question should:\n")
	b.WriteString("- Be open-ended and encourage detailed responses\n")
	b.WriteString("- Explore different aspects of life (childhood, education, relationships, career, beliefs, experiences, etc.)\n")
	b.WriteString("- Build naturally on previous answers when possible\n")
	b.WriteString("- Avoid redundancy with already-asked questions\n")
	b.WriteString("- Be personally meaningful and likely to reveal important details\n\n")

	if strings.TrimSpace(topicHint) != "" {
		fmt.Fprintf(&b, "Focus the question on the following topic: %s\n\n", strings.TrimSpace(topicHint))
	}

	b.WriteString("Return only the question, without any additional text or formatting.")
	return b.String()
}

// OutlinePrompt builds the chaptered-outline prompt from every answered pair.
// ok is false when no answered pairs exist.
func OutlinePrompt(history []QA) (prompt string, ok bool) {
	answered := answeredOnly(history)
	if len(answered) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("You are an expert biographer. Below are questions and answers from an in-depth interview about the subject's life.\n\n")
	writeQABlocks(&b, answered, true)
	b.WriteString("\nCreate a detailed chaptered outline for the subject's autobiography based on these answers. The outline should:\n")
	b.WriteString("- Organize the material into chapters covering the major phases of the subject's life\n")
	b.WriteString("- Surface recurring themes and turning points\n")
	b.WriteString("- Follow a natural narrative flow from earliest memories to the present\n")
	b.WriteString("- Give each chapter a title and a short description of what it covers\n\n")
	b.WriteString("Return only the outline.")
	return b.String(), true
}

// FullTextPrompt builds the full-narrative prompt from the stored outline and
// every answered pair. ok is false when no answered pairs exist.
func FullTextPrompt(history []QA, outline string) (prompt string, ok bool) {
	answered := answeredOnly(history)
	if len(answered) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("You are an expert biographer writing an autobiography in the subject's own voice.\n\n")
	b.WriteString("Outline to follow:\n")
	b.WriteString(outline)
	b.WriteString("\n\nInterview material:\n")
	writeQABlocks(&b, answered, true)
	b.WriteString("\nWrite the autobiography as a first-person narrative of at least 2000 words that follows the outline, weaving the interview material into flowing prose. ")
	b.WriteString("Return only the narrative text.")
	return b.String(), true
}

// answeredOnly filters history down to pairs with a non-empty answer.
func answeredOnly(history []QA) []QA {
	out := make([]QA, 0, len(history))
	for _, qa := range history {
		if strings.TrimSpace(qa.Answer) != "" {
			out = append(out, qa)
		}
	}
	return out
}

// writeQABlocks formats pairs as "Q: ..." / "A: ..." blocks. When answeredOnly
// slices are passed every pair has an answer; for question context an
// unanswered pair contributes just its Q line.
func writeQABlocks(b *strings.Builder, pairs []QA, answersGuaranteed bool) {
	for _, qa := range pairs {
		fmt.Fprintf(b, "Q: %s\n", qa.Question)
		if answersGuaranteed || strings.TrimSpace(qa.Answer) != "" {
			fmt.Fprintf(b, "A: %s\n\n", qa.Answer)
		} else {
			b.WriteString("\n")
		}
	}
}

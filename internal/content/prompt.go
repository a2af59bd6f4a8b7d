package content

import (
	"fmt"
	"strings"
)

const examinerPrompt = `You are a strict UK Driving Theory Test examiner.

Rules:
- Generate multiple-choice questions based ONLY on the official UK Highway Code text provided.
- Create questions that directly test the rules found in the provided text.
- Provide exactly 4 options for each question.
- Ensure only one option is correct.
- Distractors should reflect plausible misreadings of the rules, not random values.
- The explanation must quote or refer to the specific rule or section from the provided text.`

const instructorPrompt = `You are an expert UK driving instructor creating study material.

Rules:
- Use ONLY the official UK Highway Code text provided as the source of truth.
- Write clearly and concisely for a learner driver preparing for the theory test.
- Key rules must restate the rules faithfully; do not invent requirements.`

// buildQuestionMessage constructs the user message for a question batch.
func buildQuestionMessage(category Category, difficulty Difficulty, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple-choice questions.\n", count)
	fmt.Fprintf(&b, "Topic: %s\n", category)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)

	b.WriteString("\nContext:\n")
	b.WriteString(ReferenceText(category))

	return b.String()
}

// buildStudyGuideMessage constructs the user message for a study guide.
func buildStudyGuideMessage(category Category) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a study guide for the UK Highway Code topic: %q.\n", string(category))

	b.WriteString("\nStructure:\n")
	b.WriteString("1. Introduction: Brief overview of this section.\n")
	b.WriteString("2. Key Rules: Extract 5-7 most important rules/concepts from the text.\n")
	b.WriteString("3. Common Signs/Markings: Describe 4-6 relevant signs or markings mentioned or related to this text.\n")

	b.WriteString("\nContext:\n")
	b.WriteString(ReferenceText(category))

	return b.String()
}

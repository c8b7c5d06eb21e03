package agent

import (
	"fmt"
	"strings"
)

const specialistPromptTemplate = `Answer the following question about %s using only the provided context.

Context:
%s

Question: %s

Provide a clear, concise answer based on the context. If the context lists multiple options or alternatives, present ALL of them so the user can choose — do not pick one on their behalf. If the context doesn't contain the information, say so.`

const generalPromptTemplate = `Answer the following question about a family trip to the French/Italian Alps.

Available information:
%s

Question: %s

Provide a helpful answer based on the available information. If the question is unclear or you need more details, ask for clarification.`

// classifierPrompt enumerates every catalog topic with its description and
// asks the model for a category plus a confidence score, as JSON.
func classifierPrompt(question string) string {
	var categories strings.Builder
	for _, entry := range Catalog {
		fmt.Fprintf(&categories, "- %s: %s\n", entry.Topic, entry.Description)
	}

	return fmt.Sprintf(`Classify the following question about a family trip to the French/Italian Alps.

Available categories:
%s
Question: %s

Respond with a JSON object containing "category" (one of the identifiers above) and "confidence" (a number between 0.0 and 1.0). If the question is unclear, choose "general" with a low confidence.`, categories.String(), question)
}

func specialistPrompt(label, context, question string) string {
	return fmt.Sprintf(specialistPromptTemplate, label, context, question)
}

func generalPrompt(context, question string) string {
	return fmt.Sprintf(generalPromptTemplate, context, question)
}

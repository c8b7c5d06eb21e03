package agent

import (
	"fmt"
	"strings"
)

// ResolveContext returns the document text the answering stage is allowed
// to use for a topic. Pure and deterministic: no model call, stable output
// for identical inputs.
//
// For general, every document is concatenated with a delimiter naming its
// source, in store order. For any other topic, the topic's document is
// returned verbatim; a catalog key missing from the store yields an empty
// context rather than an error.
func ResolveContext(topic Topic, store *DocumentStore) string {
	entry, ok := LookupTopic(topic)
	if !ok {
		entry = catalogByTopic[TopicGeneral]
	}

	if entry.DocumentKey == "" {
		var blocks []string
		for _, key := range store.Keys() {
			content, _ := store.Get(key)
			blocks = append(blocks, fmt.Sprintf("=== %s ===\n%s", key, content))
		}
		return strings.Join(blocks, "\n\n")
	}

	content, _ := store.Get(entry.DocumentKey)
	return content
}

package agent

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTestStore() *DocumentStore {
	keys := []string{"annecy_geneva", "aosta_valley", "car_rental", "chamonix", "flight", "routes_to_aosta"}
	docs := make(map[string]string, len(keys))
	for _, key := range keys {
		docs[key] = fmt.Sprintf("Contents of the %s document.", key)
	}
	return NewDocumentStore(keys, docs)
}

func TestResolveContext_DedicatedTopics(t *testing.T) {
	store := fullTestStore()

	for _, entry := range Catalog {
		if entry.Topic == TopicGeneral {
			continue
		}

		expected, ok := store.Get(entry.DocumentKey)
		require.True(t, ok)

		assert.Equal(t, expected, ResolveContext(entry.Topic, store),
			"topic %s must resolve its document byte-for-byte", entry.Topic)
	}
}

func TestResolveContext_General(t *testing.T) {
	store := fullTestStore()

	context := ResolveContext(TopicGeneral, store)

	for _, key := range store.Keys() {
		content, _ := store.Get(key)
		assert.Contains(t, context, "=== "+key+" ===")
		assert.Contains(t, context, content)
	}

	// Delimiters appear in store order
	lastIndex := -1
	for _, key := range store.Keys() {
		idx := strings.Index(context, "=== "+key+" ===")
		assert.Greater(t, idx, lastIndex)
		lastIndex = idx
	}
}

func TestResolveContext_Deterministic(t *testing.T) {
	store := fullTestStore()

	assert.Equal(t, ResolveContext(TopicGeneral, store), ResolveContext(TopicGeneral, store))
}

func TestResolveContext_MissingDocumentFailsClosed(t *testing.T) {
	store := NewDocumentStore([]string{"flight"}, map[string]string{"flight": "f"})

	assert.Empty(t, ResolveContext(TopicChamonix, store),
		"catalog key absent from store must yield empty context, not an error")
}

func TestResolveContext_UnknownTopicUsesAllDocuments(t *testing.T) {
	store := fullTestStore()

	assert.Equal(t, ResolveContext(TopicGeneral, store), ResolveContext(Topic("weather"), store))
}

func TestSourceLabel(t *testing.T) {
	tests := []struct {
		topic Topic
		want  *string
	}{
		{TopicFlight, strPtr("flight.txt")},
		{TopicCarRental, strPtr("car_rental.txt")},
		{TopicRoutes, strPtr("routes_to_aosta.txt")},
		{TopicAosta, strPtr("aosta_valley.txt")},
		{TopicChamonix, strPtr("chamonix.txt")},
		{TopicAnnecyGeneva, strPtr("annecy_geneva.txt")},
		{TopicGeneral, nil},
		{Topic("bogus"), nil},
	}

	for _, tt := range tests {
		got := SourceLabel(tt.topic)
		if tt.want == nil {
			assert.Nil(t, got, "topic %s", tt.topic)
		} else {
			require.NotNil(t, got, "topic %s", tt.topic)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func strPtr(s string) *string { return &s }

package agent

// Topic is one of the fixed categories a question can be classified into.
type Topic string

const (
	TopicFlight       Topic = "flight"
	TopicCarRental    Topic = "car_rental"
	TopicRoutes       Topic = "routes"
	TopicAosta        Topic = "aosta"
	TopicChamonix     Topic = "chamonix"
	TopicAnnecyGeneva Topic = "annecy_geneva"
	TopicGeneral      Topic = "general"
)

// CatalogEntry binds a topic to its natural-language label, the description
// shown to the classifier, and the backing document key. DocumentKey is empty
// only for the general topic, which answers from all documents at once.
type CatalogEntry struct {
	Topic       Topic
	Label       string
	Description string
	DocumentKey string
}

// Catalog is the closed set of topics, in classification-prompt order.
// It is constructed once and never mutated.
var Catalog = []CatalogEntry{
	{TopicFlight, "flight", "Questions about flight details (times, airline, etc.)", "flight"},
	{TopicCarRental, "car rental", "Questions about car rental pickup, location, details", "car_rental"},
	{TopicRoutes, "driving routes", "Questions about driving routes to destinations", "routes_to_aosta"},
	{TopicAosta, "Aosta Valley", "Questions about Aosta Valley itinerary (July 8-11)", "aosta_valley"},
	{TopicChamonix, "Chamonix", "Questions about Chamonix itinerary (July 12-16)", "chamonix"},
	{TopicAnnecyGeneva, "Annecy/Geneva", "Questions about Annecy/Geneva itinerary (July 16-20)", "annecy_geneva"},
	{TopicGeneral, "the trip in general", "Unclear questions or general trip questions", ""},
}

var catalogByTopic = func() map[Topic]CatalogEntry {
	m := make(map[Topic]CatalogEntry, len(Catalog))
	for _, entry := range Catalog {
		m[entry.Topic] = entry
	}
	return m
}()

// LookupTopic returns the catalog entry for a topic, reporting whether the
// topic is a catalog member.
func LookupTopic(topic Topic) (CatalogEntry, bool) {
	entry, ok := catalogByTopic[topic]
	return entry, ok
}

// SourceLabel returns the source document filename for a topic ("flight.txt"),
// or nil for topics without a dedicated document.
func SourceLabel(topic Topic) *string {
	entry, ok := catalogByTopic[topic]
	if !ok || entry.DocumentKey == "" {
		return nil
	}
	label := entry.DocumentKey + ".txt"
	return &label
}

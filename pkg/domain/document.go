package domain

// Document represents the feed document produced by the ingest pipeline
type Document struct {
	Source       string    `json:"source,omitempty"`
	GeneratedUTC string    `json:"generated_utc"`
	Count        int       `json:"count,omitempty"`
	Articles     []Article `json:"articles"`
}

// EmptyDocument returns fallback document used when the feed can't be loaded
func EmptyDocument() Document {
	return Document{GeneratedUTC: "", Articles: []Article{}}
}

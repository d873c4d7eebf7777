package registry

// IndexDocument is the registry index as served by the remote endpoint.
// It is decoded fresh for every call that needs it and never mutated.
type IndexDocument struct {
	// Count is the total number of files the registry declares.
	Count int `json:"count"`

	// Categories is the declared category set, in registry order.
	Categories []string `json:"categories"`

	// Entries lists one record per registry file.
	Entries []Entry `json:"entries"`
}

// Entry describes one registry file without its content.
type Entry struct {
	// Slug uniquely identifies the file within an index snapshot.
	Slug string `json:"slug"`

	// Title is the human-readable name.
	Title string `json:"title"`

	// Category should be one of IndexDocument.Categories. The registry
	// owns that invariant; this client does not enforce it.
	Category string `json:"category"`

	// Tags are optional free-form labels.
	Tags []string `json:"tags,omitempty"`

	// QualityScore is an optional 0-100 rating. Nil means unrated.
	QualityScore *float64 `json:"quality_score,omitempty"`

	// Featured marks curated entries (registry convention: score >= 90).
	Featured bool `json:"featured,omitempty"`

	// URL points at the file on the registry site.
	URL string `json:"url"`
}

// Quality returns the entry's quality score, treating unrated as 0.
func (e Entry) Quality() float64 {
	if e.QualityScore == nil {
		return 0
	}
	return *e.QualityScore
}

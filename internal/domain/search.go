package domain

// SearchHit is a single id/name pair returned by a name search.
type SearchHit struct {
	ID   int64
	Name string
}

// SearchResult is the outcome of a free-text name search over venues or
// artists: the number of matches and one hit per matching record.
type SearchResult struct {
	Count int
	Data  []SearchHit
}

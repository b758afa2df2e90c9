package metrics

// LookupResult labels the outcome of a ring lookup.
type LookupResult string

const (
	LookupResultHit   LookupResult = "hit"
	LookupResultEmpty LookupResult = "empty"
)

var LookupResults = []LookupResult{
	LookupResultHit,
	LookupResultEmpty,
}

package domain

// OutcomeKind classifies a normalization result.
type OutcomeKind int

const (
	// OutcomeEmpty means the search yielded no matches. The caller decides
	// whether that is a soft notice or a hard error.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeSingle means exactly one match was normalized into a batch.
	OutcomeSingle
	// OutcomeAmbiguous means more than one match; never auto-selected.
	OutcomeAmbiguous
)

// Outcome is the result of normalizing a set of raw matches.
type Outcome struct {
	Kind OutcomeKind

	// Batch holds the playables for OutcomeSingle. A lone track or video
	// yields a one-element batch; a collection yields one element per member.
	Batch Batch

	// Candidates holds the raw matches for OutcomeAmbiguous.
	Candidates []Match
}

package domain

// Tally counts attempted vs successfully processed articles.
type Tally struct {
	// Processed is the number of articles that made it all the way to the output file
	Processed int
	// Attempted is the number of articles the pipeline tried to process
	Attempted int
}

// Add merges another tally into this one.
func (t *Tally) Add(other Tally) {
	t.Processed += other.Processed
	t.Attempted += other.Attempted
}

// SourceTally is the tally for one configured source.
type SourceTally struct {
	// Source is the source name
	Source string
	// Tally holds the counts for the source
	Tally
}

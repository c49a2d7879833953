package chapters

// Entry is a single normalized chapter marker parsed from a timestamp line.
// Time is the canonical clock rendering ("M:SS" or "H:MM:SS"), Seconds its
// exact decomposition, and Label the cleaned, sentence-cased description.
// Entries are immutable once produced by the parser.
type Entry struct {
	Time    string `json:"time"`
	Seconds int    `json:"seconds"`
	Label   string `json:"label"`
}

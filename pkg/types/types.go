// Package types holds the shared data model for the text engines:
// field keys, match specifications, diff operations, and the
// structured results each engine returns.
package types

// FieldKey specifies which delimiter-separated field(s) of a line to
// extract. All indices are 1-based.
type FieldKey struct {
	// Delimiter is a single literal character. Empty means fields are
	// maximal runs of non-whitespace.
	Delimiter string

	// Selector is a comma-separated list of indices and inclusive
	// ranges, e.g. "1", "2-4", "1,3-5". Empty or "0" selects the
	// entire line.
	Selector string
}

// WholeLine reports whether the key selects the entire line.
func (k FieldKey) WholeLine() bool {
	return k.Selector == "" || k.Selector == "0"
}

// MatchSpec describes a pattern search request. The pattern is a
// regular expression; WholeWord wraps it in word-boundary assertions
// before compilation, and Invert flips the per-line match result after
// all other adjustments.
type MatchSpec struct {
	Pattern    string
	IgnoreCase bool
	WholeWord  bool
	Invert     bool
}

// DiffOpKind tags a single edit-script operation.
type DiffOpKind int

const (
	DiffEqual DiffOpKind = iota
	DiffInsert
	DiffDelete
)

func (k DiffOpKind) String() string {
	switch k {
	case DiffEqual:
		return "equal"
	case DiffInsert:
		return "insert"
	case DiffDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// DiffOp is one step of an edit script. LineA and LineB are 1-based
// positions in the respective input; the side an op does not belong to
// carries 0 (LineA for inserts, LineB for deletes).
type DiffOp struct {
	Kind  DiffOpKind
	Text  string
	LineA int
	LineB int
}

// GrepMode selects the shape of a search result.
type GrepMode int

const (
	// GrepMatches lists every matching line.
	GrepMatches GrepMode = iota
	// GrepCounts maps each searched file to its match count.
	GrepCounts
	// GrepFiles lists files containing at least one match.
	GrepFiles
)

// Match is a single matching line. File is populated whenever more
// than one file was searched; LineNumber is 1-based and 0 when the
// caller opted out of line numbering.
type Match struct {
	File       string
	LineNumber int
	Line       string
}

// GrepResult is a tagged union over the three search output modes.
// Exactly one of Matches, Counts, Files is populated, per Mode.
type GrepResult struct {
	Mode    GrepMode
	Matches []Match
	Counts  map[string]int
	Files   []string
}

// CmpResult reports the first difference between two byte sequences.
// ByteOffset and LineNumber are 1-based and only populated when the
// inputs differ and the comparison was not silent.
type CmpResult struct {
	Identical  bool
	ByteOffset int64
	LineNumber int
	Message    string
}

// CommResult is the three-way set partition of two line collections.
// Each slice holds distinct lines in deterministic (sorted) order.
type CommResult struct {
	OnlyInFirst  []string
	OnlyInSecond []string
	InBoth       []string
}

// Counts holds the line/word/char/byte tallies for one input.
type Counts struct {
	File  string
	Lines int64
	Words int64
	Chars int64
	Bytes int64
}

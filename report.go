package fastbench

import (
	"fmt"
	"io"
)

// Record is one immutable measurement result in the cross-language
// comparison format. Construct it with NewRecord; the derived fields
// are computed once and never revised.
type Record struct {
	Language   string
	Compiler   string
	Method     string
	TreeSize   int
	NumQueries int
	TotalSec   float64
	MQS        float64 // millions of queries per second
	NsPerQuery float64 // mean latency in nanoseconds
}

// NewRecord derives throughput and mean latency from the elapsed time.
// numQueries must be positive; configuration validation upstream
// guarantees it, so the division here is unguarded on purpose.
func NewRecord(language, compiler, method string, treeSize, numQueries int, elapsedSec float64) Record {
	return Record{
		Language:   language,
		Compiler:   compiler,
		Method:     method,
		TreeSize:   treeSize,
		NumQueries: numQueries,
		TotalSec:   elapsedSec,
		MQS:        float64(numQueries) / elapsedSec / 1e6,
		NsPerQuery: elapsedSec * 1e9 / float64(numQueries),
	}
}

// JSONLine renders the record as a single self-contained JSON object.
// Precision is fixed (4/2/1 decimal places) so outputs from every
// language port diff cleanly.
func (r Record) JSONLine() string {
	return fmt.Sprintf(`{"language":%q,"compiler":%q,"method":%q,`+
		`"tree_size":%d,"num_queries":%d,`+
		`"total_sec":%.4f,"mqs":%.2f,"ns_per_query":%.1f}`,
		r.Language, r.Compiler, r.Method,
		r.TreeSize, r.NumQueries,
		r.TotalSec, r.MQS, r.NsPerQuery)
}

// Emit writes the record line to w.
func (r Record) Emit(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.JSONLine())
	return err
}

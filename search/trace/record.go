package trace

import (
	"encoding/json"
	"fmt"
	"io"
)

// repeatKinds lists the event kinds that are counted (or histogrammed)
// every time they occur, as opposed to Terminate/Timeout which occur at
// most once and are recorded as an iteration timestamp instead.
var repeatKinds = []Kind{Expand, Backtrack, Prune, PruneBacktrack, Strengthen, ShortCircuit}

// fieldName is the JSON field a repeat counter/histogram for k is reported
// under in a trace record's summary.
func fieldName(k Kind) string {
	switch k {
	case Expand:
		return "expand"
	case Backtrack:
		return "backtrack"
	case Prune:
		return "prune"
	case PruneBacktrack:
		return "pruneBacktrack"
	case Strengthen:
		return "strengthen"
	case ShortCircuit:
		return "shortCircuit"
	default:
		illegalEvent(k)
		return ""
	}
}

// writeRecord marshals rec as a single line of JSON to w, matching the
// teacher's LogEmitter JSONL convention. Write failures are not
// propagated: a logger's job is to observe the search, not to make it fail
// because a trace sink is temporarily unavailable.
func writeRecord(w io.Writer, rec map[string]any) {
	data, err := json.Marshal(rec)
	if err != nil {
		fmt.Fprintf(w, "{\"error\":\"failed to marshal trace record: %s\"}\n", err)
		return
	}
	w.Write(data)
	w.Write([]byte("\n"))
}

package store

import "time"

// Patch collects the (column, value) pairs of a partial update. Only columns
// explicitly added end up in the SET clause; values are always bound as
// statement parameters, never rendered into SQL text.
type Patch struct {
	cols []string
	vals []any
}

func (p *Patch) Set(col string, v any) {
	p.cols = append(p.cols, col)
	p.vals = append(p.vals, v)
}

// SetIf adds the column only when the request carried the key.
func SetIf[T any](p *Patch, col string, v *T) {
	if v != nil {
		p.Set(col, *v)
	}
}

func (p *Patch) Empty() bool { return len(p.cols) == 0 }

// changes renders the pairs for execution, stamping last_modified
// unconditionally.
func (p *Patch) changes(now time.Time) map[string]any {
	m := make(map[string]any, len(p.cols)+1)
	for i, c := range p.cols {
		m[c] = p.vals[i]
	}
	m["last_modified"] = now
	return m
}

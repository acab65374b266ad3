package aggregator

// ClassCount is one status-class cell of a table row.
type ClassCount struct {
	Class string `json:"class" yaml:"class"`
	Count int    `json:"count" yaml:"count"`
}

// PathCounts is one table row: a request path and its counts in class order.
type PathCounts struct {
	Path   string       `json:"path" yaml:"path"`
	Counts []ClassCount `json:"counts" yaml:"counts"`
}

// Total returns the sum of the row's counts.
func (p PathCounts) Total() int {
	total := 0
	for _, c := range p.Counts {
		total += c.Count
	}
	return total
}

// Table maps request paths to per-class counts.
// Rows are kept in first-seen order.
type Table struct {
	classes []string
	index   map[string]int // path -> row
	rows    []PathCounts
}

func newTable(classes []string) *Table {
	return &Table{
		classes: classes,
		index:   make(map[string]int),
	}
}

func (t *Table) increment(path, class string) {
	row, ok := t.index[path]
	if !ok {
		counts := make([]ClassCount, len(t.classes))
		for i, c := range t.classes {
			counts[i] = ClassCount{Class: c}
		}
		row = len(t.rows)
		t.index[path] = row
		t.rows = append(t.rows, PathCounts{Path: path, Counts: counts})
	}

	for i := range t.rows[row].Counts {
		if t.rows[row].Counts[i].Class == class {
			t.rows[row].Counts[i].Count++
			return
		}
	}
}

// Classes returns the sorted status classes shared by every row.
func (t *Table) Classes() []string {
	out := make([]string, len(t.classes))
	copy(out, t.classes)
	return out
}

// Paths returns the request paths in first-seen order.
func (t *Table) Paths() []string {
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Path
	}
	return out
}

// Len returns the number of distinct paths.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table rows in order.
func (t *Table) Rows() []PathCounts {
	out := make([]PathCounts, len(t.rows))
	for i, r := range t.rows {
		counts := make([]ClassCount, len(r.Counts))
		copy(counts, r.Counts)
		out[i] = PathCounts{Path: r.Path, Counts: counts}
	}
	return out
}

// Counts returns the class counts for path, or nil if the path is unknown.
func (t *Table) Counts(path string) map[string]int {
	row, ok := t.index[path]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(t.classes))
	for _, c := range t.rows[row].Counts {
		out[c.Class] = c.Count
	}
	return out
}

// Count returns the count for one path and class; zero when either is unknown.
func (t *Table) Count(path, class string) int {
	return t.Counts(path)[class]
}

package florafauna

// Journal is the append-only message log shown under the field.
// Entries keep their insertion order and are never removed.
type Journal struct {
	lines []string
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append adds messages in order.
func (j *Journal) Append(lines ...string) {
	j.lines = append(j.lines, lines...)
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.lines)
}

// Lines returns a copy of all entries.
func (j *Journal) Lines() []string {
	out := make([]string, len(j.lines))
	copy(out, j.lines)
	return out
}

// Tail returns a copy of the last n entries.
func (j *Journal) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(len(j.lines)-n, 0)
	out := make([]string, len(j.lines)-start)
	copy(out, j.lines[start:])
	return out
}

package game

// JournalCapacity is how many entries the journal retains.
const JournalCapacity = 5

const greeting = "Вы начинаете свой путь в тайных знаниях..."

// Journal is the event log: insertion ordered, oldest entry evicted first
// once capacity is exceeded.
type Journal struct {
	entries []string
}

func newJournal() Journal {
	return Journal{entries: []string{greeting}}
}

func (j *Journal) Append(msg string) {
	j.entries = append(j.entries, msg)
	if over := len(j.entries) - JournalCapacity; over > 0 {
		j.entries = append(j.entries[:0:0], j.entries[over:]...)
	}
}

// Entries returns a copy of the retained entries, oldest first.
func (j *Journal) Entries() []string {
	return append([]string(nil), j.entries...)
}

// Latest returns the most recent entry.
func (j *Journal) Latest() string {
	if len(j.entries) == 0 {
		return ""
	}
	return j.entries[len(j.entries)-1]
}

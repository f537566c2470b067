// Package highscore keeps the sorted highscore table and its flat-file
// persistence. Each line of the file is "score name level accuracy".
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// MaxNameLen is the longest name the game-over screen accepts.
const MaxNameLen = 10

// Entry is one line of the table.
type Entry struct {
	Name     string
	Score    int
	Level    int
	Accuracy int
}

// List is the table, highest score first. Entries with equal scores keep
// insertion order.
type List struct {
	path    string
	entries []Entry
}

// Defaults is the table used when no file exists yet.
func Defaults() []Entry {
	return []Entry{
		{Name: "WICKED", Score: 5000, Level: 15, Accuracy: 100},
		{Name: "ME", Score: 1000, Level: 10, Accuracy: 75},
		{Name: "TWO", Score: 900, Level: 5, Accuracy: 50},
	}
}

// New returns the default table backed by path. An empty path keeps the
// table in memory only.
func New(path string) *List {
	l := &List{path: path}
	for _, e := range Defaults() {
		l.insert(e)
	}
	return l
}

// Load reads the table at path. A missing file yields the defaults;
// the file is created on the first AddEntry.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(path), nil
		}
		return nil, fmt.Errorf("highscore: cannot open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", path, err)
	}
	l := &List{path: path}
	for _, e := range entries {
		l.insert(e)
	}
	return l, nil
}

// Parse decodes table lines. Lines with only a score and a name load with
// level and accuracy 0. Blank lines are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected score and name", line)
		}
		var e Entry
		var err error
		if e.Score, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("line %d: bad score: %w", line, err)
		}
		e.Name = decodeName(fields[1])
		if len(fields) >= 4 {
			if e.Level, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("line %d: bad level: %w", line, err)
			}
			if e.Accuracy, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("line %d: bad accuracy: %w", line, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

// Names may contain spaces; the file is whitespace separated.
func encodeName(name string) string {
	if name == "" {
		return "_"
	}
	return strings.ReplaceAll(name, " ", "_")
}

func decodeName(field string) string {
	return strings.TrimSpace(strings.ReplaceAll(field, "_", " "))
}

func (l *List) insert(e Entry) {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Score < e.Score
	})
	l.entries = append(l.entries, Entry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = e
}

// AddEntry inserts a result and saves the table.
func (l *List) AddEntry(name string, score, level, accuracy int) error {
	l.insert(Entry{Name: strings.TrimSpace(name), Score: score, Level: level, Accuracy: accuracy})
	return l.Save()
}

// Entries returns the table, highest score first.
func (l *List) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Top returns at most n entries.
func (l *List) Top(n int) []Entry {
	n = min(n, len(l.entries))
	return append([]Entry(nil), l.entries[:n]...)
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Path returns the backing file.
func (l *List) Path() string { return l.path }

// Save writes the whole table. In-memory tables have nothing to write.
func (l *List) Save() error {
	if l.path == "" {
		return nil
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("highscore: cannot save %s: %w", l.path, err)
	}
	w := bufio.NewWriter(f)
	for _, e := range l.entries {
		fmt.Fprintf(w, "%d %s %d %d\n", e.Score, encodeName(e.Name), e.Level, e.Accuracy)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("highscore: cannot save %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("highscore: cannot save %s: %w", l.path, err)
	}
	return nil
}

// Format renders an entry the way the highscores screen lists it.
func Format(e Entry) string {
	return fmt.Sprintf("%07d %10s Level: %3d, Acc: %3d%%", e.Score, e.Name, e.Level, e.Accuracy)
}

package highscore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "hs.txt"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got := l.Entries()
	want := Defaults()
	if len(got) != len(want) {
		t.Fatalf("Entries() len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Entry
		wantErr bool
	}{
		{
			name:  "full lines",
			input: "500 ACE 3 40\n200 BOB 2 10\n",
			want:  []Entry{{"ACE", 500, 3, 40}, {"BOB", 200, 2, 10}},
		},
		{
			name:  "two fields",
			input: "700 OLD\n",
			want:  []Entry{{"OLD", 700, 0, 0}},
		},
		{
			name:  "encoded space",
			input: "10 MR_X 1 5\n\n",
			want:  []Entry{{"MR X", 10, 1, 5}},
		},
		{
			name:    "bad score",
			input:   "abc NAME 1 1\n",
			wantErr: true,
		},
		{
			name:    "missing name",
			input:   "100\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() = %+v, expected %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse()[%d] = %+v, expected %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAddEntryKeepsOrderAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "hs.txt")
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if err := l.AddEntry("NEW", 1000, 4, 60); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	if err := l.AddEntry("TOP GUN", 9000, 20, 90); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}

	names := []string{}
	for _, e := range l.Entries() {
		names = append(names, e.Name)
	}
	want := "TOP GUN,WICKED,ME,NEW,TWO"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("Entries() order = %s, expected %s", got, want)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after save failed: %v", err)
	}
	if reloaded.Len() != 5 {
		t.Fatalf("reloaded Len() = %d, expected 5", reloaded.Len())
	}
	if top := reloaded.Top(1)[0]; top.Name != "TOP GUN" || top.Score != 9000 {
		t.Errorf("Top(1) = %+v, expected TOP GUN 9000", top)
	}
}

func TestAddEntrySaveFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes Create fail.
	path := filepath.Join(dir, "hs.txt")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	l := &List{path: path}
	if err := l.AddEntry("X", 1, 1, 1); err == nil {
		t.Error("AddEntry() expected error when the file cannot be written")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 after failed save", l.Len())
	}
}

func TestTopClamps(t *testing.T) {
	l, _ := Load(filepath.Join(t.TempDir(), "hs.txt"))
	if got := len(l.Top(10)); got != 3 {
		t.Errorf("Top(10) len = %d, expected 3", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(Entry{Name: "ME", Score: 1000, Level: 10, Accuracy: 75})
	want := "0001000         ME Level:  10, Acc:  75%"
	if got != want {
		t.Errorf("Format() = %q, expected %q", got, want)
	}
}

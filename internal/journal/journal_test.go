package journal

import (
	"path/filepath"
	"testing"

	"github.com/jask/dragboard/drag"
)

func testJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpenAppliesMigrations(t *testing.T) {
	j := testJournal(t)
	var n int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM gestures").Scan(&n); err != nil {
		t.Fatalf("gestures table missing: %v", err)
	}
	if n != 0 {
		t.Fatalf("fresh journal has %d rows", n)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	j.Close()
	j, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	j.Close()
}

func TestRecordAndRecent(t *testing.T) {
	j := testJournal(t)

	err := j.Record(drag.SameContainer{Container: "todo", From: 1, To: 3}, "write tests")
	if err != nil {
		t.Fatalf("Record reorder: %v", err)
	}
	err = j.Record(drag.CrossContainer{FromContainer: "todo", FromIndex: 0, ToContainer: "done", ToIndex: 2}, "ship it")
	if err != nil {
		t.Fatalf("Record transfer: %v", err)
	}

	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Kind != "transfer" || got[0].ToContainer != "done" || got[0].ToIndex != 2 {
		t.Fatalf("newest entry = %+v", got[0])
	}
	if got[1].Kind != "reorder" || got[1].FromContainer != "todo" || got[1].FromIndex != 1 || got[1].ToIndex != 3 {
		t.Fatalf("oldest entry = %+v", got[1])
	}
	if got[0].At.IsZero() {
		t.Fatal("timestamp not recorded")
	}
	if got[1].CardTitle != "write tests" {
		t.Fatalf("card title = %q", got[1].CardTitle)
	}
}

func TestRecordNilDecision(t *testing.T) {
	j := testJournal(t)
	if err := j.Record(nil, ""); err != nil {
		t.Fatalf("nil decision: %v", err)
	}
	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("nil decision recorded: %+v", got)
	}
}

func TestNilJournalIsNoOp(t *testing.T) {
	var j *Journal
	if err := j.Record(drag.SameContainer{Container: "a", From: 0, To: 1}, ""); err != nil {
		t.Fatalf("nil journal Record: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("nil journal Close: %v", err)
	}
	if entries, err := j.Recent(5); err != nil || entries != nil {
		t.Fatalf("nil journal Recent: %v %v", entries, err)
	}
}

func TestRecentLimit(t *testing.T) {
	j := testJournal(t)
	for i := 0; i < 5; i++ {
		if err := j.Record(drag.SameContainer{Container: "todo", From: 0, To: 1}, ""); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	got, err := j.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("limit not applied: %d", len(got))
	}
}

package board

import (
	"testing"

	"github.com/jask/dragboard/drag"
)

func testBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New(
		&Column{ID: "todo", Title: "Todo", AcceptFrom: []string{"doing"}, Cards: []Card{
			{ID: "c1", Title: "one"},
			{ID: "c2", Title: "two"},
			{ID: "c3", Title: "three"},
		}},
		&Column{ID: "doing", Title: "Doing", Cards: []Card{
			{ID: "c4", Title: "four"},
		}},
		&Column{ID: "done", Title: "Done", AcceptFrom: []string{"todo", "doing"}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func titles(c *Column) []string {
	out := make([]string, len(c.Cards))
	for i, card := range c.Cards {
		out[i] = card.Title
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(&Column{ID: "a"}, &Column{ID: "a"})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New(&Column{Title: "anon"})
	if err == nil {
		t.Fatal("expected missing id error")
	}
}

func TestNewCardAssignsUniqueIDs(t *testing.T) {
	a, b := NewCard("a"), NewCard("b")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("card ids not unique: %q %q", a.ID, b.ID)
	}
}

func TestBoardImplementsPolicy(t *testing.T) {
	var _ drag.Policy = testBoard(t)
}

func TestAcceptsFollowsColumnConfig(t *testing.T) {
	b := testBoard(t)
	if !b.Accepts("todo", "todo") {
		t.Fatal("same column always accepted")
	}
	if !b.Accepts("done", "todo") || !b.Accepts("done", "doing") {
		t.Fatal("done accepts from todo and doing")
	}
	if b.Accepts("doing", "todo") {
		t.Fatal("doing has no allow-list")
	}
	if b.Accepts("missing", "todo") {
		t.Fatal("unknown columns accept nothing")
	}
}

func TestApplySameContainer(t *testing.T) {
	b := testBoard(t)
	if !b.Apply(drag.SameContainer{Container: "todo", From: 0, To: 2}) {
		t.Fatal("apply reported no change")
	}
	if got := titles(b.Column("todo")); !equal(got, []string{"two", "three", "one"}) {
		t.Fatalf("todo = %v", got)
	}
}

func TestApplySameContainerStaleIndices(t *testing.T) {
	b := testBoard(t)
	for _, d := range []drag.SameContainer{
		{Container: "todo", From: 9, To: 0},
		{Container: "todo", From: 0, To: -1},
		{Container: "missing", From: 0, To: 1},
		{Container: "todo", From: 1, To: 1},
	} {
		if b.Apply(d) {
			t.Fatalf("stale decision %#v applied", d)
		}
	}
	if got := titles(b.Column("todo")); !equal(got, []string{"one", "two", "three"}) {
		t.Fatalf("board mutated by stale decisions: %v", got)
	}
}

func TestApplyCrossContainer(t *testing.T) {
	b := testBoard(t)
	ok := b.Apply(drag.CrossContainer{FromContainer: "todo", FromIndex: 1, ToContainer: "done", ToIndex: 0})
	if !ok {
		t.Fatal("apply reported no change")
	}
	if got := titles(b.Column("todo")); !equal(got, []string{"one", "three"}) {
		t.Fatalf("todo = %v", got)
	}
	if got := titles(b.Column("done")); !equal(got, []string{"two"}) {
		t.Fatalf("done = %v", got)
	}
}

func TestApplyCrossContainerClampsInsertIndex(t *testing.T) {
	b := testBoard(t)
	ok := b.Apply(drag.CrossContainer{FromContainer: "todo", FromIndex: 0, ToContainer: "doing", ToIndex: 99})
	if !ok {
		t.Fatal("apply reported no change")
	}
	if got := titles(b.Column("doing")); !equal(got, []string{"four", "one"}) {
		t.Fatalf("doing = %v", got)
	}
}

func TestApplyCrossContainerStaleSource(t *testing.T) {
	b := testBoard(t)
	if b.Apply(drag.CrossContainer{FromContainer: "todo", FromIndex: 9, ToContainer: "done", ToIndex: 0}) {
		t.Fatal("stale source index applied")
	}
	if b.Apply(drag.CrossContainer{FromContainer: "ghost", FromIndex: 0, ToContainer: "done", ToIndex: 0}) {
		t.Fatal("unknown source column applied")
	}
}

func TestApplyNilDecision(t *testing.T) {
	b := testBoard(t)
	if b.Apply(nil) {
		t.Fatal("nil decision applied")
	}
}

func TestFindAndCardAt(t *testing.T) {
	b := testBoard(t)
	ci, cj := b.Find("c4")
	if ci != 1 || cj != 0 {
		t.Fatalf("Find(c4) = %d,%d", ci, cj)
	}
	if ci, cj = b.Find("ghost"); ci != -1 || cj != -1 {
		t.Fatalf("Find(ghost) = %d,%d", ci, cj)
	}
	card, ok := b.CardAt(drag.Location{Container: "todo", Index: 2})
	if !ok || card.ID != "c3" {
		t.Fatalf("CardAt = %#v %v", card, ok)
	}
	if _, ok := b.CardAt(drag.Location{Container: "todo", Index: 5}); ok {
		t.Fatal("CardAt out of range should miss")
	}
}

func TestGestureAgainstBoardPolicy(t *testing.T) {
	// Full loop: the board is both the policy and the mutation target.
	b := testBoard(t)
	s, d := drag.Update(drag.Session{}, drag.Start{Modality: drag.Pointer, Container: "todo", Index: 0}, b)
	s, d = drag.Update(s, drag.Enter{Modality: drag.Pointer, Container: "done", Index: 0}, b)
	s, d = drag.Update(s, drag.Drop{Modality: drag.Pointer, Container: "done", Index: 0}, b)
	if s.State != drag.Idle {
		t.Fatalf("session not reset: %#v", s)
	}
	if !b.Apply(d) {
		t.Fatalf("decision %#v did not apply", d)
	}
	if got := titles(b.Column("done")); !equal(got, []string{"one"}) {
		t.Fatalf("done = %v", got)
	}
}

// Package board holds the collections the drag core steers by proxy:
// columns of cards. The drag package only ever sees column ids and
// indices; every actual mutation happens here, by applying the
// decisions the reducer hands back.
package board

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/dragboard/drag"
)

// Card is one draggable item. Ids are opaque and unique within the
// board; position is implicit in the owning column's order.
type Card struct {
	ID    string
	Title string
	Note  string
}

// NewCard returns a card with a fresh id.
func NewCard(title string) Card {
	return Card{ID: uuid.NewString(), Title: title}
}

// Column is an identified, ordered run of cards plus the allow-list of
// columns it accepts transfers from. An empty AcceptFrom means the
// column only accepts its own reorders.
type Column struct {
	ID         string
	Title      string
	AcceptFrom []string
	Cards      []Card
}

// Board is the full set of columns. It implements drag.Policy so the
// column configuration is the single source of acceptance truth.
type Board struct {
	Columns []*Column
}

// New builds a board, rejecting duplicate column ids.
func New(cols ...*Column) (*Board, error) {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if c.ID == "" {
			return nil, fmt.Errorf("column %q has no id", c.Title)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate column id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return &Board{Columns: cols}, nil
}

// Column returns the column with the given id, or nil.
func (b *Board) Column(id string) *Column {
	for _, c := range b.Columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ColumnIndex returns the position of a column id, or -1.
func (b *Board) ColumnIndex(id string) int {
	for i, c := range b.Columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Accepts implements drag.Policy from the destination column's
// allow-list. Unknown columns accept nothing.
func (b *Board) Accepts(dst, src string) bool {
	if dst == src {
		return true
	}
	col := b.Column(dst)
	if col == nil {
		return false
	}
	for _, id := range col.AcceptFrom {
		if id == src {
			return true
		}
	}
	return false
}

// CardAt returns the card at a drag location.
func (b *Board) CardAt(loc drag.Location) (Card, bool) {
	col := b.Column(loc.Container)
	if col == nil || loc.Index < 0 || loc.Index >= len(col.Cards) {
		return Card{}, false
	}
	return col.Cards[loc.Index], true
}

// Find locates a card id, returning column and card indices, or
// (-1, -1).
func (b *Board) Find(cardID string) (colIdx, cardIdx int) {
	for i, c := range b.Columns {
		for j, card := range c.Cards {
			if card.ID == cardID {
				return i, j
			}
		}
	}
	return -1, -1
}

// Apply mutates the board according to a decision and reports whether
// anything changed. Stale decisions (unknown columns, indices that
// have outlived the collection) are benign no-ops, matching the drag
// package's own tolerance for gestures that outlive their data.
func (b *Board) Apply(d drag.Decision) bool {
	switch d := d.(type) {
	case drag.SameContainer:
		col := b.Column(d.Container)
		if col == nil || d.From == d.To {
			return false
		}
		if d.From < 0 || d.From >= len(col.Cards) || d.To < 0 || d.To >= len(col.Cards) {
			return false
		}
		col.Cards = drag.Reorder(col.Cards, d.From, d.To)
		return true
	case drag.CrossContainer:
		from := b.Column(d.FromContainer)
		to := b.Column(d.ToContainer)
		if from == nil || to == nil || from == to {
			return false
		}
		if d.FromIndex < 0 || d.FromIndex >= len(from.Cards) {
			return false
		}
		card := from.Cards[d.FromIndex]
		from.Cards = append(from.Cards[:d.FromIndex], from.Cards[d.FromIndex+1:]...)
		// Insertion past the end lands at the end.
		at := d.ToIndex
		if at < 0 {
			at = 0
		}
		if at > len(to.Cards) {
			at = len(to.Cards)
		}
		to.Cards = append(to.Cards, Card{})
		copy(to.Cards[at+1:], to.Cards[at:])
		to.Cards[at] = card
		return true
	default:
		return false
	}
}

// Starter is the built-in board used when no board file is configured.
func Starter() *Board {
	b, _ := New(
		&Column{ID: "todo", Title: "Todo", AcceptFrom: []string{"doing"}, Cards: []Card{
			NewCard("Sketch the column layout"),
			NewCard("Wire up the mouse adapter"),
			NewCard("Write the journal schema"),
		}},
		&Column{ID: "doing", Title: "Doing", AcceptFrom: []string{"todo"}, Cards: []Card{
			NewCard("Collapse the per-modality sessions"),
		}},
		&Column{ID: "done", Title: "Done", AcceptFrom: []string{"todo", "doing"}, Cards: []Card{
			NewCard("Pick a palette"),
		}},
	)
	return b
}

package main

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/dragboard/board"
)

// ---------------------------------------------------------------------------
// Jump picker: fuzzy find-a-card overlay
// ---------------------------------------------------------------------------

const jumpMaxVisible = 5

type jumpMatch struct {
	title string
	col   int
	row   int
	score int
}

type jumpPicker struct {
	all     []jumpMatch
	matches []jumpMatch
	query   string
	cursor  int
}

func newJumpPicker(b *board.Board) *jumpPicker {
	p := &jumpPicker{}
	for i, c := range b.Columns {
		for j, card := range c.Cards {
			p.all = append(p.all, jumpMatch{title: card.Title, col: i, row: j})
		}
	}
	p.refilter()
	return p
}

func (p *jumpPicker) setQuery(q string) {
	p.query = q
	p.refilter()
}

// refilter ranks every card against the query: substring hits first,
// then by levenshtein distance of the query against the title prefix
// of equal length, so short queries aren't drowned by long titles.
func (p *jumpPicker) refilter() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	p.matches = p.matches[:0]
	for _, m := range p.all {
		m.score = jumpScore(q, strings.ToLower(m.title))
		p.matches = append(p.matches, m)
	}
	sort.SliceStable(p.matches, func(i, j int) bool {
		return p.matches[i].score < p.matches[j].score
	})
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
}

func jumpScore(query, title string) int {
	if query == "" {
		return 0
	}
	if strings.Contains(title, query) {
		if strings.HasPrefix(title, query) {
			return 0
		}
		return 1
	}
	prefix := title
	if len(prefix) > len(query) {
		prefix = prefix[:len(query)]
	}
	return 2 + levenshtein.ComputeDistance(query, prefix)
}

func (p *jumpPicker) moveCursor(delta int) {
	if len(p.matches) == 0 {
		p.cursor = 0
		return
	}
	p.cursor = (p.cursor + delta + len(p.matches)) % len(p.matches)
}

func (p *jumpPicker) selected() (jumpMatch, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return jumpMatch{}, false
	}
	return p.matches[p.cursor], true
}

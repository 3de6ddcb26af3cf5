// Package structdiff compares two segmented document structures clause by
// clause. Clauses are addressed by a composite key of article identifier and
// clause number, so a change in one clause never bleeds into its neighbours
// and reordering articles does not manufacture spurious edits.
package structdiff

import (
	"fmt"
	"strings"

	"github.com/vanbantools/legistruct/internal/segment"
)

// ChangeType classifies one detected difference.
type ChangeType string

const (
	Added    ChangeType = "added"
	Modified ChangeType = "modified"
	Deleted  ChangeType = "deleted"
)

// Change is one clause-level difference between two structures. From is empty
// for additions and To is empty for deletions.
type Change struct {
	Level  string     `json:"level"`
	ID     string     `json:"id"`
	Change ChangeType `json:"change"`
	From   string     `json:"from,omitempty"`
	To     string     `json:"to,omitempty"`
}

// Diff returns the clause-level changes that turn base into revised. Added and
// modified changes come out in revised's document order, deletions in base's,
// so output is deterministic for a given input pair.
func Diff(base, revised segment.Structure) []Change {
	b := indexClauses(base)
	r := indexClauses(revised)

	changes := []Change{}
	for _, key := range r.order {
		to := r.text[key]
		from, ok := b.text[key]
		if !ok {
			changes = append(changes, Change{
				Level:  "clause",
				ID:     key.String(),
				Change: Added,
				To:     to,
			})
			continue
		}
		if from != to {
			changes = append(changes, Change{
				Level:  "clause",
				ID:     key.String(),
				Change: Modified,
				From:   from,
				To:     to,
			})
		}
	}
	for _, key := range b.order {
		if _, ok := r.text[key]; !ok {
			changes = append(changes, Change{
				Level:  "clause",
				ID:     key.String(),
				Change: Deleted,
				From:   b.text[key],
			})
		}
	}
	return changes
}

// ArticleID derives the stable identifier used to address an article's
// clauses across document versions.
func ArticleID(a segment.Article) string {
	label := strings.TrimSpace(a.Label)
	if label == "" {
		return "Unknown"
	}
	switch a.Kind {
	case segment.KindArticle:
		if ch := strings.TrimSpace(a.Chapter); ch != "" {
			return ch + " - " + label
		}
		return label
	case segment.KindSection:
		if strings.HasPrefix(label, "Section") {
			return label
		}
		return "Section " + label
	default:
		return label
	}
}

type clauseKey struct {
	Article string
	Clause  string
}

func (k clauseKey) String() string {
	return k.Article + "." + k.Clause
}

// clauseIndex maps composite keys to normalized clause text while preserving
// document order. Duplicate keys keep the first occurrence; later ones are
// unreachable for diffing anyway.
type clauseIndex struct {
	order []clauseKey
	text  map[clauseKey]string
}

func indexClauses(st segment.Structure) clauseIndex {
	idx := clauseIndex{text: map[clauseKey]string{}}
	for _, a := range st.Articles {
		id := ArticleID(a)
		missing := 0
		for _, c := range a.Clauses {
			no := strings.TrimSpace(c.No)
			if no == "" {
				missing++
				no = fmt.Sprintf("%d", missing)
			}
			key := clauseKey{Article: id, Clause: no}
			if _, seen := idx.text[key]; seen {
				continue
			}
			idx.order = append(idx.order, key)
			idx.text[key] = normText(c.Text)
		}
	}
	return idx
}

// normText flattens whitespace at index time, so reflowing a clause's lines
// does not register as a modification and persisted records never carry
// embedded line breaks.
func normText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

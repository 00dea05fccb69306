package ledger

import (
	"github.com/budget-calendar/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Engine memoizes merged timelines. Identical collections evaluated for
// the same day share one computation.
type Engine struct {
	timelines *Memo[[]Transaction]
}

// NewEngine returns an Engine that keeps up to size timelines.
func NewEngine(size int) *Engine {
	return &Engine{timelines: NewMemo[[]Transaction](size)}
}

// Timeline returns the merged timeline of c for today.
//
// The returned slice is shared with other callers and must not be modified.
func (e *Engine) Timeline(c Collections, today types.Date) []Transaction {
	key, err := Fingerprint(struct {
		Collections Collections `json:"collections"`
		Today       types.Date  `json:"today"`
	}{c, today})
	if err != nil {
		log.Warn().Err(err).Msg("could not fingerprint collections, computing timeline without cache")
		return Merge(c.Transactions, c.Rules, today)
	}

	return e.timelines.Get(key, func() []Transaction {
		return Merge(c.Transactions, c.Rules, today)
	})
}

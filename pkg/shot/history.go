package shot

import (
	"sync"

	"github.com/samber/lo"
)

func NewHistory() *History {
	return &History{max: 3}
}

// History keeps the most recent results, oldest first.
type History struct {
	l     sync.Mutex
	max   int
	items []*Result
}

func (h *History) Add(r *Result) {
	h.l.Lock()
	defer h.l.Unlock()

	h.items = append(h.items, r)
	if len(h.items) > h.max {
		h.items = h.items[len(h.items)-h.max:]
	}
}

func (h *History) Logs() []*Result {
	h.l.Lock()
	defer h.l.Unlock()
	return append([]*Result(nil), h.items...)
}

func (h *History) Curr() *Result {
	h.l.Lock()
	defer h.l.Unlock()
	r, _ := lo.Last(h.items)
	return r
}

func (h *History) Prev() *Result {
	h.l.Lock()
	defer h.l.Unlock()
	r, _ := lo.Nth(h.items, -2)
	return r
}

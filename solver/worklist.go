package solver

import "github.com/katalvlaran/nonolath/grid"

// lineKey identifies one row or column line.
type lineKey struct {
	o     grid.Orientation
	index int
}

// worklist is a FIFO queue of lineKeys with O(1) membership testing, so a
// dirty line is never queued twice (spec §4.5: "the worklist holds each
// dirty line at most once").
type worklist struct {
	queue  []lineKey
	queued map[lineKey]bool
}

func newWorklist() *worklist {
	return &worklist{queued: make(map[lineKey]bool)}
}

// push enqueues k if it is not already pending.
func (w *worklist) push(k lineKey) {
	if w.queued[k] {
		return
	}
	w.queued[k] = true
	w.queue = append(w.queue, k)
}

// pop removes and returns the front of the queue, skipping any entries
// that were subsequently removed via remove (lazy deletion).
func (w *worklist) pop() (lineKey, bool) {
	for len(w.queue) > 0 {
		k := w.queue[0]
		w.queue = w.queue[1:]
		if w.queued[k] {
			delete(w.queued, k)

			return k, true
		}
	}

	return lineKey{}, false
}

// remove drops k from the pending set if present, so a stale queue entry
// (left over from before k was re-routed to the other queue) is skipped
// by pop without a linear scan.
func (w *worklist) remove(k lineKey) { delete(w.queued, k) }

func (w *worklist) empty() bool {
	for _, k := range w.queue {
		if w.queued[k] {
			return false
		}
	}

	return true
}

// Package state holds the client-side resource collection stores. Each
// collection tracks its items in arrival order together with a loading flag
// and the last request error, and guards settlements with a monotonic
// request generation: a settled request applies its result only when no
// newer request against the same collection was issued in the meantime
// (stale-response suppression).
package state

import "sync"

// Entity is any backend record with a server-assigned identifier.
type Entity interface {
	EntityID() string
}

// Collection is the store for one resource kind. The zero value is ready to
// use. Concurrent requests against the same collection are not deduplicated
// or queued; both proceed, and the generation guard decides whose settlement
// counts.
type Collection[E Entity] struct {
	mu       sync.Mutex
	items    []E
	err      error
	inflight int
	latest   uint64
}

// Begin registers a new request: loading becomes true and the previous error
// is cleared. The returned generation must be passed back on settlement.
func (c *Collection[E]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
	c.latest++
	c.err = nil
	return c.latest
}

// settle finishes the request issued at gen. apply runs only when the
// request is still the latest issued; a stale result is discarded entirely,
// including its error.
func (c *Collection[E]) settle(gen uint64, failure error, apply func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight > 0 {
		c.inflight--
	}
	if gen != c.latest {
		return
	}
	if failure != nil {
		c.err = failure
		return
	}
	c.err = nil
	apply()
}

// SettleReplace settles a fetch-all: on success items are replaced wholesale.
func (c *Collection[E]) SettleReplace(gen uint64, items []E, failure error) {
	c.settle(gen, failure, func() {
		c.items = append([]E(nil), items...)
	})
}

// SettleAppend settles a create: on success the backend-assigned entity is
// appended to the end.
func (c *Collection[E]) SettleAppend(gen uint64, item E, failure error) {
	c.settle(gen, failure, func() {
		c.items = append(c.items, item)
	})
}

// SettleUpdate settles an update: on success the matching item is replaced
// in place, preserving its position.
func (c *Collection[E]) SettleUpdate(gen uint64, item E, failure error) {
	c.settle(gen, failure, func() {
		for i := range c.items {
			if c.items[i].EntityID() == item.EntityID() {
				c.items[i] = item
				return
			}
		}
	})
}

// SettleRemove settles a delete: on success the matching item is removed.
func (c *Collection[E]) SettleRemove(gen uint64, id string, failure error) {
	c.settle(gen, failure, func() {
		for i := range c.items {
			if c.items[i].EntityID() == id {
				c.items = append(c.items[:i], c.items[i+1:]...)
				return
			}
		}
	})
}

// Items returns a copy of the current items in arrival order.
func (c *Collection[E]) Items() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]E(nil), c.items...)
}

// Loading reports whether at least one request is outstanding.
func (c *Collection[E]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Err returns the failure recorded by the most recent settled request, or
// nil.
func (c *Collection[E]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Reset drops all items and any recorded error. Outstanding requests become
// stale: the generation advances so their settlements are discarded.
func (c *Collection[E]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.err = nil
	c.latest++
}

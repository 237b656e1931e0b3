// Package catalog keeps an in-memory ordered list of experiences fresh from
// three sources: a caller-supplied seed, a fixed-interval full re-fetch, and
// row-level change events pushed from the experience store.
package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/costeratours/experience-service/internal/models"
)

// ListFunc fetches the full experience list for a poll cycle.
type ListFunc func(ctx context.Context) ([]models.Experience, error)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// ChangeEvent is one row-level change from the experience store. New carries
// the row after the change, Old the row before it (set on DELETE).
type ChangeEvent struct {
	Type EventType          `json:"event_type"`
	New  *models.Experience `json:"new,omitempty"`
	Old  *models.Experience `json:"old,omitempty"`
}

// Catalog holds the current ordered experience list. Seed and poll replace the
// list wholesale; push events patch individual rows in place. No version token
// orders the sources: a poll that raced a push may briefly overwrite a
// push-delivered row until the next poll or push corrects it.
type Catalog struct {
	fetch    ListFunc
	interval time.Duration

	mu      sync.Mutex
	items   []models.Experience
	live    bool
	started bool
	stopped bool
	// gen invalidates in-flight polls: a fetch commits only if the generation
	// it started under is still current. Seed and Stop bump it; Apply does not.
	gen uint64

	refresh chan struct{}
	quit    chan struct{}
	done    chan struct{}
}

// New builds a catalog holding the normalized seed list. The catalog is in its
// initializing state until the first poll or push event lands.
func New(seed []models.Experience, fetch ListFunc, interval time.Duration) *Catalog {
	return &Catalog{
		fetch:    fetch,
		interval: interval,
		items:    normalizeAll(seed),
		refresh:  make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the poll loop. Each cycle's fetch runs in its own goroutine
// so a hung fetch blocks only its own cycle, never the ticker; commit's
// generation check keeps out-of-order completions safe.
func (c *Catalog) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.quit:
				return
			case <-ticker.C:
				go c.pollOnce(ctx)
			case <-c.refresh:
				go c.pollOnce(ctx)
			}
		}
	}()
}

// Refresh requests an immediate out-of-band poll (e.g. a UI surface regaining
// focus). Non-blocking; coalesces with a pending request.
func (c *Catalog) Refresh() {
	select {
	case c.refresh <- struct{}{}:
	default:
	}
}

func (c *Catalog) pollOnce(ctx context.Context) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	gen := c.gen
	c.mu.Unlock()

	list, err := c.fetch(ctx)
	if err != nil {
		log.Printf("[Catalog] poll failed: %v", err)
		return
	}
	c.commit(gen, list)
}

// commit applies a poll result as a wholesale replacement, unless the catalog
// was re-seeded or stopped while the fetch was in flight.
func (c *Catalog) commit(gen uint64, list []models.Experience) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || gen != c.gen {
		return
	}
	c.items = normalizeAll(list)
	c.live = true
}

// Seed replaces the held list with a fresh caller-supplied snapshot and
// discards any in-flight poll result.
func (c *Catalog) Seed(list []models.Experience) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.gen++
	c.items = normalizeAll(list)
}

// Apply patches the list with one push event: INSERT prepends, UPDATE replaces
// the matching row by id keeping its position, DELETE removes by id. Unknown
// ids on UPDATE/DELETE are ignored.
func (c *Catalog) Apply(ev ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	switch ev.Type {
	case EventInsert:
		if ev.New == nil {
			return
		}
		c.items = append([]models.Experience{Normalize(*ev.New)}, c.items...)
	case EventUpdate:
		if ev.New == nil {
			return
		}
		for i := range c.items {
			if c.items[i].ID == ev.New.ID {
				c.items[i] = Normalize(*ev.New)
				break
			}
		}
	case EventDelete:
		id := ""
		if ev.Old != nil {
			id = ev.Old.ID
		} else if ev.New != nil {
			id = ev.New.ID
		}
		if id == "" {
			return
		}
		kept := c.items[:0]
		for _, it := range c.items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		c.items = kept
	default:
		return
	}
	c.live = true
}

// Snapshot returns a copy of the current list.
func (c *Catalog) Snapshot() []models.Experience {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Experience, len(c.items))
	copy(out, c.items)
	return out
}

// Live reports whether at least one fresh fetch or push event has landed since
// construction.
func (c *Catalog) Live() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// Stop tears the poll loop down and discards any in-flight fetch. Idempotent.
func (c *Catalog) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.gen++
	started := c.started
	c.mu.Unlock()
	close(c.quit)
	if started {
		<-c.done
	}
}

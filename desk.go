package frontdesk

import (
	"context"
	"iter"
	"sync"

	"github.com/pkg/errors"
)

// Desk is a single front-desk session. It owns the tier queues, the
// scheduler cursor and the attendance history, and serialises every
// operation so that a session is never observed mid-update.
type Desk struct {
	mu sync.Mutex

	queues    *TierQueues
	scheduler *Scheduler
	history   *History

	archive Archive
	metrics MetricsHook
	loaded  bool
}

// New creates a new [Desk] with the given options.
func New(opts ...Option) *Desk {
	o := newOptions(opts)

	return &Desk{
		queues:    NewTierQueues(),
		scheduler: newScheduler(o),
		history:   NewHistory(),
		archive:   o.Archive,
		metrics:   o.Metrics,
	}
}

// Admit validates p and appends it to the tail of the tier derived from its
// age. It returns the tier and the 1-based position the person now holds.
func (d *Desk) Admit(p Person) (Tier, int, error) {
	if err := p.Validate(); err != nil {
		return Tiers.Unknown, 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	t := TierOf(p.Age)
	if err := d.queues.Enqueue(t, p); err != nil {
		return Tiers.Unknown, 0, err
	}
	position := d.queues.Len(t)

	if d.metrics != nil {
		d.metrics.OnAdmit(p, t, position)
	}
	return t, position, nil
}

// Locate returns the 1-based position of the first person with the given id
// in the tier derived from age. The age is trusted as supplied: a person
// admitted with a different age is searched for in the wrong tier and is
// reported as [ErrNotFound].
func (d *Desk) Locate(id, age int32) (Tier, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.locate(id, age)
}

func (d *Desk) locate(id, age int32) (Tier, int, error) {
	t := TierOf(age)
	position, err := d.queues.FindPosition(t, id)
	if err != nil {
		return t, 0, err
	}
	return t, position, nil
}

// Remove takes the first person with the given id out of the tier derived
// from age and returns them. See [Desk.Locate] for how age is used.
func (d *Desk) Remove(id, age int32) (Person, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, position, err := d.locate(id, age)
	if err != nil {
		return Person{}, err
	}

	p, err := d.queues.RemoveAt(t, position)
	if err != nil {
		return Person{}, err
	}

	if d.metrics != nil {
		d.metrics.OnRemove(p, t)
	}
	return p, nil
}

// ServeNext attends the next person chosen by the scheduler and records them
// in the history. It returns false when nobody is waiting; that is a normal
// outcome, not an error.
func (d *Desk) ServeNext() (Person, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.scheduler.Next(d.queues, d.history)
}

// Cursor returns the scheduler's current cursor.
func (d *Desk) Cursor() Cursor {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.scheduler.Cursor()
}

// Waiting returns a copy of the people waiting in the given tier, head first.
func (d *Desk) Waiting(t Tier) []Person {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.queues.Waiting(t)
}

// History returns a snapshot iterator over the attended people, most recent
// first.
func (d *Desk) History() iter.Seq[Person] {
	d.mu.Lock()
	snapshot := d.history.Slice()
	d.mu.Unlock()

	return func(yield func(Person) bool) {
		for _, p := range snapshot {
			if !yield(p) {
				return
			}
		}
	}
}

// HistoryLen returns the number of attended people, including those restored
// from the archive.
func (d *Desk) HistoryLen() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.history.Len()
}

// Unsaved returns the number of attended people not yet written to the
// archive.
func (d *Desk) Unsaved() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.history.Unsaved()
}

// Load restores the attendance history from the configured archive. The
// archive is read at most once per desk: calls after a successful load are
// no-ops, as is any call when the desk has no archive.
func (d *Desk) Load(ctx context.Context) error {
	if d.archive == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded {
		return nil
	}
	if err := d.history.Restore(ctx, d.archive); err != nil {
		return err
	}
	d.loaded = true
	return nil
}

// Save appends the people attended since the last load or save to the
// configured archive. On failure the in-memory history is kept and Save may
// be called again.
func (d *Desk) Save(ctx context.Context) error {
	if d.archive == nil {
		return errors.Wrap(ErrStorageUnavailable, "no archive configured")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.history.Persist(ctx, d.archive)
}

package frontdesk

// MetricsHook defines hooks for monitoring admission, service, removal and
// tier advance events.
type MetricsHook interface {
	OnAdmit(p Person, t Tier, position int)
	OnServe(p Person, t Tier, c Cursor)
	OnRemove(p Person, t Tier)
	OnAdvance(from, to Tier)
}

// Cursor is the scheduler's position: the active tier and how many people
// have been served consecutively from it in the current run.
type Cursor struct {
	Tier   Tier
	Served int
}

// Scheduler is a weighted round-robin over the three tiers:
//
//   - The active tier is served until its run limit is reached or it drains
//   - Advancing always moves to the next tier in cyclic order, High, Mid, Low
//   - People arriving in a higher tier do not pre-empt a run in progress
//
// The cursor starts at (High, 0) and lives only as long as the Scheduler.
// Scheduler is not safe for concurrent use; [Desk] serialises access to it.
type Scheduler struct {
	cursor  Cursor
	limits  [numTiers]int
	metrics MetricsHook
}

// NewScheduler creates a new [Scheduler] with the given options. Only the run
// limits and metrics hook are used.
func NewScheduler(opts ...Option) *Scheduler {
	o := newOptions(opts)
	return newScheduler(o)
}

func newScheduler(o *Options) *Scheduler {
	s := &Scheduler{
		cursor:  Cursor{Tier: Tiers.High},
		metrics: o.Metrics,
	}
	s.limits[Tiers.High.index()] = o.RunLimits.High
	s.limits[Tiers.Mid.index()] = o.RunLimits.Mid
	s.limits[Tiers.Low.index()] = o.RunLimits.Low
	return s
}

// Cursor returns the current cursor.
func (s *Scheduler) Cursor() Cursor {
	return s.cursor
}

// RunLimit returns the maximum consecutive serves for the given tier, or zero
// for an unknown tier.
func (s *Scheduler) RunLimit(t Tier) int {
	if !t.IsValid() {
		return 0
	}
	return s.limits[t.index()]
}

// Next selects the next person to attend, removes them from their tier and
// pushes them onto the history. It returns false, leaving the cursor
// untouched, when every tier is empty.
func (s *Scheduler) Next(q *TierQueues, h *History) (Person, bool) {
	if q.Empty() {
		return Person{}, false
	}

	// With at least one tier occupied a person is always found within
	// numTiers attempts, each of which advances the cursor at least once.
	for range numTiers {
		if s.cursor.Served >= s.RunLimit(s.cursor.Tier) || q.IsEmpty(s.cursor.Tier) {
			s.advance()
		}

		if p, err := q.Dequeue(s.cursor.Tier); err == nil {
			h.Push(p)
			s.cursor.Served++

			if s.metrics != nil {
				s.metrics.OnServe(p, s.cursor.Tier, s.cursor)
			}
			return p, true
		}

		s.advance()
	}

	return Person{}, false
}

// advance moves the cursor to the next tier and starts a new run.
func (s *Scheduler) advance() {
	from := s.cursor.Tier
	s.cursor = Cursor{Tier: from.Next()}

	if s.metrics != nil {
		s.metrics.OnAdvance(from, s.cursor.Tier)
	}
}

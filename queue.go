package frontdesk

import (
	"slices"

	"github.com/pkg/errors"
)

// TierQueues holds one FIFO queue per [Tier]. People are kept in arrival
// order within each tier. TierQueues is not safe for concurrent use; [Desk]
// serialises access to it.
type TierQueues struct {
	queues [numTiers][]Person
}

// NewTierQueues creates an empty set of tier queues.
func NewTierQueues() *TierQueues {
	q := &TierQueues{}
	for i := range q.queues {
		q.queues[i] = make([]Person, 0)
	}
	return q
}

func (q *TierQueues) queue(t Tier) (*[]Person, error) {
	if !t.IsValid() {
		return nil, errors.Wrapf(ErrUnknownTier, "tier %d", t.Number())
	}
	return &q.queues[t.index()], nil
}

// Enqueue appends p to the tail of the given tier. No uniqueness check is
// performed on the person's id.
func (q *TierQueues) Enqueue(t Tier, p Person) error {
	queue, err := q.queue(t)
	if err != nil {
		return err
	}
	*queue = append(*queue, p)
	return nil
}

// Dequeue removes and returns the person at the head of the given tier. It
// returns [ErrEmptyQueue] if nobody is waiting in that tier.
func (q *TierQueues) Dequeue(t Tier) (Person, error) {
	queue, err := q.queue(t)
	if err != nil {
		return Person{}, err
	}
	if len(*queue) == 0 {
		return Person{}, errors.Wrapf(ErrEmptyQueue, "dequeue from %s tier", t)
	}

	p := (*queue)[0]
	(*queue)[0] = Person{}
	*queue = (*queue)[1:]
	return p, nil
}

// FindPosition returns the 1-based position of the first person in the tier
// whose id matches. It returns [ErrNotFound] when there is no match.
func (q *TierQueues) FindPosition(t Tier, id int32) (int, error) {
	queue, err := q.queue(t)
	if err != nil {
		return 0, err
	}

	i := slices.IndexFunc(*queue, func(p Person) bool {
		return p.ID == id
	})
	if i < 0 {
		return 0, errors.Wrapf(ErrNotFound, "id %d in %s tier", id, t)
	}
	return i + 1, nil
}

// RemoveAt removes and returns the person at the 1-based position in the
// tier. Positions are expected to come from [TierQueues.FindPosition] on the
// same tier.
func (q *TierQueues) RemoveAt(t Tier, position int) (Person, error) {
	queue, err := q.queue(t)
	if err != nil {
		return Person{}, err
	}
	if position < 1 || position > len(*queue) {
		return Person{}, errors.Wrapf(ErrPositionOutOfRange, "position %d in %s tier of length %d", position, t, len(*queue))
	}

	p := (*queue)[position-1]
	*queue = slices.Delete(*queue, position-1, position)
	return p, nil
}

// IsEmpty reports whether nobody is waiting in the given tier. Unknown tiers
// are always empty.
func (q *TierQueues) IsEmpty(t Tier) bool {
	return q.Len(t) == 0
}

// Len returns the number of people waiting in the given tier.
func (q *TierQueues) Len(t Tier) int {
	queue, err := q.queue(t)
	if err != nil {
		return 0
	}
	return len(*queue)
}

// Empty reports whether every tier is empty.
func (q *TierQueues) Empty() bool {
	for _, queue := range q.queues {
		if len(queue) > 0 {
			return false
		}
	}
	return true
}

// Waiting returns a copy of the people waiting in the given tier, head first.
func (q *TierQueues) Waiting(t Tier) []Person {
	queue, err := q.queue(t)
	if err != nil {
		return nil
	}
	return slices.Clone(*queue)
}

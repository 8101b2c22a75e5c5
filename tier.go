package frontdesk

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Age thresholds used to derive a [Tier]. Ages strictly above HighAge are
// High; ages strictly above MidAge are Mid; everything else is Low.
const (
	HighAge = 55
	MidAge  = 40
)

// Tier represents one of the three fixed priority classes a [Person] is
// admitted into.
type Tier struct {
	tier
}

// TierOf returns the tier for the given age.
func TierOf(age int32) Tier {
	switch {
	case age > HighAge:
		return Tiers.High
	case age > MidAge:
		return Tiers.Mid
	default:
		return Tiers.Low
	}
}

// ParseTier returns the tier named by s. Names are matched without regard
// to case or surrounding space, and the ordinals 1, 2 and 3 are accepted for
// High, Mid and Low.
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := typeTierMap[s]; ok && t.IsValid() {
		return Tier{t}, nil
	}
	if n, err := strconv.Atoi(s); err == nil && tier(n).IsValid() {
		return Tier{tier(n)}, nil
	}
	return Tiers.Unknown, errors.Wrapf(ErrUnknownTier, "parse tier %q", s)
}

// Number returns the tier's ordinal: 1 for High, 2 for Mid, 3 for Low and 0
// for an unknown tier.
func (t Tier) Number() int {
	return int(t.tier)
}

// Next returns the tier that follows t in cyclic order: High, Mid, Low, High.
// The successor of an unknown tier is High.
func (t Tier) Next() Tier {
	if !t.IsValid() {
		return Tiers.High
	}
	return Tier{t.tier%numTiers + 1}
}

// MarshalJSON encodes the tier by name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier name. Unknown names are rejected.
func (t *Tier) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return errors.Wrap(err, "decode tier")
	}

	parsed, err := ParseTier(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Tiers may be used to reference a [Tier] value by name.
var Tiers = tierContainer{
	Unknown: Tier{tierUnknown},
	High:    Tier{tierHigh},
	Mid:     Tier{tierMid},
	Low:     Tier{tierLow},
}

// All returns the three valid tiers in cyclic order.
func (c tierContainer) All() []Tier {
	return []Tier{c.High, c.Mid, c.Low}
}

type tier int

const numTiers = 3

const (
	tierUnknown tier = 0
	tierHigh    tier = 1
	tierMid     tier = 2
	tierLow     tier = 3
)

var (
	strTierMap = map[tier]string{
		tierUnknown: "unknown",
		tierHigh:    "high",
		tierMid:     "mid",
		tierLow:     "low",
	}

	typeTierMap = map[string]tier{
		"unknown": tierUnknown,
		"high":    tierHigh,
		"mid":     tierMid,
		"low":     tierLow,
	}
)

func (t tier) String() string {
	return strTierMap[t]
}

// IsValid reports whether the tier is one of High, Mid or Low.
func (t tier) IsValid() bool {
	return t >= tierHigh && t <= tierLow
}

// index maps a valid tier onto 0..numTiers-1.
func (t tier) index() int {
	return int(t) - 1
}

type tierContainer struct {
	Unknown Tier
	High    Tier
	Mid     Tier
	Low     Tier
}

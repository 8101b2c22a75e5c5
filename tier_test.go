package frontdesk_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/tomasbasham/frontdesk"
)

func TestTierOf(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ages []int32
		want frontdesk.Tier
	}{
		"forty and under is low": {
			ages: []int32{-1, 0, 1, 18, 39, 40},
			want: frontdesk.Tiers.Low,
		},
		"forty one to fifty five is mid": {
			ages: []int32{41, 45, 54, 55},
			want: frontdesk.Tiers.Mid,
		},
		"over fifty five is high": {
			ages: []int32{56, 60, 99, 120},
			want: frontdesk.Tiers.High,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, age := range tt.ages {
				if got := frontdesk.TierOf(age); got != tt.want {
					t.Errorf("age %d mismatch:\n  got:  %q\n  want: %q", age, got, tt.want)
				}
			}
		})
	}
}

func TestTier_Next(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tier frontdesk.Tier
		want frontdesk.Tier
	}{
		"high is followed by mid": {
			tier: frontdesk.Tiers.High,
			want: frontdesk.Tiers.Mid,
		},
		"mid is followed by low": {
			tier: frontdesk.Tiers.Mid,
			want: frontdesk.Tiers.Low,
		},
		"low wraps around to high": {
			tier: frontdesk.Tiers.Low,
			want: frontdesk.Tiers.High,
		},
		"unknown starts at high": {
			tier: frontdesk.Tiers.Unknown,
			want: frontdesk.Tiers.High,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tier.Next(); got != tt.want {
				t.Errorf("mismatch:\n  got:  %q\n  want: %q", got, tt.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    frontdesk.Tier
		wantErr error
	}{
		"high by name": {
			input: "high",
			want:  frontdesk.Tiers.High,
		},
		"mid by name ignoring case and space": {
			input: "  Mid ",
			want:  frontdesk.Tiers.Mid,
		},
		"low by ordinal": {
			input: "3",
			want:  frontdesk.Tiers.Low,
		},
		"unknown name": {
			input:   "urgent",
			want:    frontdesk.Tiers.Unknown,
			wantErr: frontdesk.ErrUnknownTier,
		},
		"unknown is not a tier": {
			input:   "unknown",
			want:    frontdesk.Tiers.Unknown,
			wantErr: frontdesk.ErrUnknownTier,
		},
		"ordinal out of range": {
			input:   "4",
			want:    frontdesk.Tiers.Unknown,
			wantErr: frontdesk.ErrUnknownTier,
		},
		"empty": {
			input:   "",
			want:    frontdesk.Tiers.Unknown,
			wantErr: frontdesk.ErrUnknownTier,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := frontdesk.ParseTier(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("mismatch:\n  got:  %q\n  want: %q", got, tt.want)
			}
		})
	}
}

func TestTierJSON(t *testing.T) {
	t.Parallel()

	type entry struct {
		Tier frontdesk.Tier `json:"tier"`
	}

	for _, tier := range frontdesk.Tiers.All() {
		b, err := json.Marshal(entry{tier})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got entry
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unexpected error decoding %s: %v", b, err)
		}
		if got.Tier != tier {
			t.Errorf("mismatch:\n  got:  %q\n  want: %q", got.Tier, tier)
		}
	}

	b, _ := json.Marshal(entry{frontdesk.Tiers.Mid})
	if got, want := string(b), `{"tier":"mid"}`; got != want {
		t.Errorf("mismatch:\n  got:  %q\n  want: %q", got, want)
	}
}

func TestTierJSON_RejectsUnknown(t *testing.T) {
	t.Parallel()

	var tier frontdesk.Tier
	if err := json.Unmarshal([]byte(`"urgent"`), &tier); !errors.Is(err, frontdesk.ErrUnknownTier) {
		t.Errorf("expected error: %v, got: %v", frontdesk.ErrUnknownTier, err)
	}
	if err := json.Unmarshal([]byte(`2`), &tier); err == nil {
		t.Error("expected an error decoding a number")
	}
}

func TestTierContainer(t *testing.T) {
	t.Parallel()

	got := make([]int, 0, 3)
	for _, tier := range frontdesk.Tiers.All() {
		got = append(got, tier.Number())
	}

	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("mismatch:\n  got:  %#v\n  want: %#v", got, want)
	}
}

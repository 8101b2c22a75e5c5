package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/frontdesk"
	"github.com/tomasbasham/frontdesk/internal/config"
)

// History prints the archived attendance history without starting a
// session.
type History struct {
	ConfigPath *string
}

func (cmd History) Command(ctx context.Context) *cobra.Command {
	var (
		asJSON bool
		tier   string
	)

	c := &cobra.Command{
		Use:   "history",
		Short: "list archived attendance, most recent first",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.main(ctx, c.OutOrStdout(), tier, asJSON)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the history as JSON")
	c.Flags().StringVar(&tier, "tier", "", "only list people admitted into this tier (high, mid or low)")
	return c
}

func (cmd History) main(ctx context.Context, out io.Writer, tier string, asJSON bool) error {
	keep := func(frontdesk.Person) bool { return true }
	if tier != "" {
		t, err := frontdesk.ParseTier(tier)
		if err != nil {
			return errors.Wrap(err, "history : invalid --tier")
		}
		keep = func(p frontdesk.Person) bool { return p.Tier() == t }
	}

	cfg, err := config.Load(*cmd.ConfigPath)
	if err != nil {
		return err
	}

	store, closeStore, err := openArchive(cfg)
	if err != nil {
		return errors.Wrap(err, "history : failed to open archive")
	}
	defer closeStore()

	h := frontdesk.NewHistory()
	if err := h.Restore(ctx, store); err != nil {
		return err
	}

	var people []frontdesk.Person
	for p := range h.All() {
		if keep(p) {
			people = append(people, p)
		}
	}
	return printHistory(out, people, asJSON)
}

// attendance is a history entry as printed by --json.
type attendance struct {
	frontdesk.Person
	Tier frontdesk.Tier `json:"tier"`
}

func printHistory(out io.Writer, people []frontdesk.Person, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		entries := make([]attendance, 0, len(people))
		for _, p := range people {
			entries = append(entries, attendance{Person: p, Tier: p.Tier()})
		}
		return enc.Encode(entries)
	}

	if len(people) == 0 {
		_, err := fmt.Fprintln(out, "There are no people in attendance")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tTIER\tPHONE\tSERVICE DATE")
	for _, p := range people {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n", p.ID, p.FullName(), p.Age, p.Tier(), p.Phone, p.ServiceDate)
	}
	return w.Flush()
}


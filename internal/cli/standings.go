package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helset/gamenight/internal/report"
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the current split's standings",
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func runStandings(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newService(cmd)
	if err != nil {
		return err
	}

	entries, err := svc.Standings(cmd.Context())
	if err != nil {
		return fmt.Errorf("load standings: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No scores recorded for the current split yet.")
		return nil
	}

	report.PrintStandingsHeader(os.Stdout, svc.CurrentSplit(), len(entries))
	report.PrintStandings(os.Stdout, entries, cfg.PlayerAliases)
	return nil
}

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helset/gamenight/internal/report"
)

var hallOfFameCmd = &cobra.Command{
	Use:   "halloffame",
	Short: "Print the hall of fame across all splits",
	Args:  cobra.NoArgs,
	RunE:  runHallOfFame,
}

func runHallOfFame(cmd *cobra.Command, args []string) error {
	svc, cfg, err := newService(cmd)
	if err != nil {
		return err
	}

	summaries := svc.HallOfFame(cmd.Context())
	report.PrintHallOfFame(os.Stdout, summaries, cfg.PlayerAliases)
	return nil
}

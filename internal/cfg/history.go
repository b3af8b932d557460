package cfg

import (
	"fmt"
	"strings"

	"archivarr/internal/domain/consts"
	"archivarr/internal/domain/keys"
	"archivarr/internal/repo"
	"archivarr/internal/utils/logging"

	"github.com/spf13/cobra"
)

// initHistoryCmd returns the subcommand listing recent archive runs.
func initHistoryCmd(rs *repo.RunStore) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent archive runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rs == nil {
				return fmt.Errorf("run history database is unavailable")
			}

			limit, err := cmd.Flags().GetInt(keys.HistoryLimit)
			if err != nil {
				return err
			}

			runs, err := rs.RecentRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				logging.I("No runs recorded yet")
				return nil
			}

			for _, r := range runs {
				finished := "-"
				if !r.FinishedAt.IsZero() {
					finished = r.FinishedAt.Format("2006-01-02 15:04:05")
				}

				logging.P("%s#%d%s %s [%s] started %s, finished %s (exit %d)%s",
					consts.ColorBlue, r.ID, consts.ColorReset,
					r.URL,
					r.Outcome,
					r.StartedAt.Format("2006-01-02 15:04:05"),
					finished,
					r.ExitCode,
					argsSuffix(r.ExtraArgs),
				)
			}
			return nil
		},
	}

	historyCmd.Flags().Int(keys.HistoryLimit, 25, "Number of runs to display")
	return historyCmd
}

func argsSuffix(extraArgs string) string {
	if strings.TrimSpace(extraArgs) == "" {
		return ""
	}
	return " args: " + extraArgs
}

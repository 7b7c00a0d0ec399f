package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// freeAgentsCmd represents the free-agents command
var freeAgentsCmd = &cobra.Command{
	Use:   "free-agents <position>",
	Short: "List free agents for the logged-in league",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position := args[0]

		cli, err := getClient()
		if err != nil {
			return err
		}

		log.Info().Msgf("Fetching free agents for position %q...", position)
		players, correlationID, err := cli.FreeAgents(cmd.Context(), position)
		if err != nil {
			log.Error().Msgf("%s failed to fetch free agents (correlation ID: %s)", redCross, correlationID)
			log.Error().Msgf("error: %v", err)
			return BeQuietError{}
		}

		log.Info().Msgf("Retrieved %d free agents", len(players))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Position", "Team"})

		for _, p := range players {
			team := p.Team
			if team == "" {
				team = "-"
			}
			t.AppendRow(table.Row{
				p.ID,
				truncate(p.Name, 35),
				p.Position,
				team,
			})
		}

		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(freeAgentsCmd)
}

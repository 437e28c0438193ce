package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raidscope/raidscope/internal/engine"
	"github.com/raidscope/raidscope/internal/jobs"
)

var (
	detailFile      string
	detailEncounter int
	detailJSON      bool
	detailMaxEvents int
)

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Re-scan one pre-scanned encounter's line range for full detail",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		lines, err := readLines(detailFile)
		if err != nil {
			return err
		}

		encs, err := engine.PreScan(lines, opts)
		if err != nil {
			return err
		}
		if detailEncounter < 1 || detailEncounter > len(encs) {
			return fmt.Errorf("encounter %d out of range (log has %d)", detailEncounter, len(encs))
		}

		er := engine.BuildEncounterDetail(lines, encs[detailEncounter-1], jobs.DefaultTable(), opts)

		if detailJSON {
			out := engine.EncounterRecords{
				Encounter: er.Encounter.Record(),
				Roster:    er.Roster.Record(),
				Events:    er.EventRecords(),
				Metrics:   er.Metrics,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		printEncounterReport(&er)
		fmt.Fprintln(os.Stdout)
		printEvents(&er, detailMaxEvents)
		return nil
	},
}

func init() {
	detailCmd.Flags().StringVarP(&detailFile, "file", "f", "", "path to combat log")
	detailCmd.Flags().IntVarP(&detailEncounter, "encounter", "e", 1, "1-based encounter index from the pre-scan")
	detailCmd.Flags().BoolVar(&detailJSON, "json", false, "emit storage-shaped JSON records")
	detailCmd.Flags().IntVar(&detailMaxEvents, "max-events", 50, "cap printed events (0 = all)")
	_ = detailCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(detailCmd)
}

package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/raidscope/raidscope/internal/engine"
	"github.com/raidscope/raidscope/internal/model"
)

var (
	prescanFile string
	prescanJSON bool
)

var prescanCmd = &cobra.Command{
	Use:   "prescan",
	Short: "Cheap idle-gap pre-scan: encounter boundaries only",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		lines, err := readLines(prescanFile)
		if err != nil {
			return err
		}

		encs, err := engine.PreScan(lines, opts)
		if err != nil {
			return err
		}

		if prescanJSON {
			recs := make([]model.EncounterRecord, 0, len(encs))
			for i := range encs {
				recs = append(recs, encs[i].Record())
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		}
		printBoundaries(encs)
		return nil
	},
}

func init() {
	prescanCmd.Flags().StringVarP(&prescanFile, "file", "f", "", "path to combat log")
	prescanCmd.Flags().BoolVar(&prescanJSON, "json", false, "emit JSON boundary records")
	_ = prescanCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(prescanCmd)
}

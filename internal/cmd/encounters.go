package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/raidscope/raidscope/internal/engine"
	"github.com/raidscope/raidscope/internal/jobs"
)

var (
	encountersFile string
	encountersJSON bool
)

var encountersCmd = &cobra.Command{
	Use:   "encounters",
	Short: "Segment a log into encounters and classify every actor",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		lines, err := readLines(encountersFile)
		if err != nil {
			return err
		}

		rep, err := engine.BuildReport(lines, jobs.DefaultTable(), opts)
		if err != nil {
			return err
		}

		if encountersJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep.Records())
		}
		printReport(rep)
		return nil
	},
}

func init() {
	encountersCmd.Flags().StringVarP(&encountersFile, "file", "f", "", "path to combat log")
	encountersCmd.Flags().BoolVar(&encountersJSON, "json", false, "emit storage-shaped JSON records")
	_ = encountersCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(encountersCmd)
}

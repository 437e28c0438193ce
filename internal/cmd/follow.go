package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/raidscope/raidscope/internal/engine"
	"github.com/raidscope/raidscope/internal/hub"
	"github.com/raidscope/raidscope/internal/jobs"
	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
	"github.com/raidscope/raidscope/internal/tail"
)

var (
	followFile     string
	followListen   string
	followStartEnd bool
)

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Tail a live log, re-segment on a ticker, broadcast snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		flw, err := tail.NewFollower(followFile, tail.Options{StartAtEnd: followStartEnd})
		if err != nil {
			return err
		}
		defer flw.Stop()

		var h *hub.Hub
		if followListen != "" {
			h = hub.New()
			defer h.Close()

			mux := http.NewServeMux()
			mux.HandleFunc("/ws", h.ServeWS)
			srv := &http.Server{Addr: followListen, Handler: mux}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("hub server failed", "err", err)
				}
			}()
			go func() {
				<-ctx.Done()
				shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutCtx)
			}()
			slog.Info("hub listening", "addr", followListen)
		}

		lineCh := make(chan string, 1024)
		errCh := make(chan error, 1)
		go func() {
			errCh <- flw.Run(ctx, func(line string) {
				select {
				case lineCh <- line:
				default:
				}
			})
		}()

		table := jobs.DefaultTable()
		tf := engine.NewTimeFilterLastHours(lastHours, time.Now())
		var lines []model.Line
		dirty := false

		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("tail: %w", err)
				}
				return nil
			case raw := <-lineCh:
				ln, ok := parse.Tokenize(raw)
				if !ok || !tf.Allow(ln) {
					continue
				}
				lines = append(lines, ln)
				dirty = true
			case <-ticker.C:
				if !dirty {
					continue
				}
				dirty = false

				rep, err := engine.BuildReport(lines, table, opts)
				if err != nil {
					if errors.Is(err, engine.ErrNoRoster) {
						// Roster lines have not arrived yet; keep tailing.
						slog.Debug("no roster yet", "lines", len(lines))
						continue
					}
					return err
				}
				if len(rep.Encounters) == 0 {
					continue
				}

				latest := &rep.Encounters[len(rep.Encounters)-1]
				printEncounterReport(latest)
				fmt.Fprintln(os.Stdout)
				if h != nil {
					h.Broadcast(rep.Records())
				}
			}
		}
	},
}

func init() {
	followCmd.Flags().StringVarP(&followFile, "file", "f", "", "path to combat log")
	followCmd.Flags().StringVar(&followListen, "listen", "", "serve live snapshots on this address (e.g. :8087)")
	followCmd.Flags().BoolVar(&followStartEnd, "start-at-end", false, "skip existing content and only process new lines")
	_ = followCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(followCmd)
}

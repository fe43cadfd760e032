package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"IssueCreator/internal/app"
	"IssueCreator/internal/config"
	"IssueCreator/internal/domain"
	"IssueCreator/internal/logging"
)

func newRunCmd() *cobra.Command {
	var (
		eventPath string
		assemble  bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one invocation and print the result as JSON",
		Long: `Runs a single issue invocation. The event is read from --event (a file,
or - for stdin). With --assemble the event is built from the upstream
sources instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if eventPath == "" && !assemble {
				return errors.New("either --event or --assemble is required")
			}
			if eventPath != "" && assemble {
				return errors.New("--event and --assemble are mutually exclusive")
			}

			ctx := cmd.Context()
			cfg := config.Load()
			logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			var result domain.Result
			if assemble {
				result, err = application.RunAssembled(ctx, dryRun)
			} else {
				var event domain.Event
				event, err = readEvent(cmd.InOrStdin(), eventPath)
				if err != nil {
					return err
				}
				if dryRun {
					event.Config.DryRun = true
				}
				result, err = application.RunEvent(ctx, event)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&eventPath, "event", "", "event JSON file, - reads stdin")
	cmd.Flags().BoolVar(&assemble, "assemble", false, "build the event from upstream sources")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render only, do not create the email")
	return cmd
}

func readEvent(stdin io.Reader, path string) (domain.Event, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("read event: %w", err)
	}

	var event domain.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return domain.Event{}, fmt.Errorf("decode event: %w", err)
	}
	return event, nil
}

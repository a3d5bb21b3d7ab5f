package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dcshock/enumreg/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE...",
		Short: "Reload and dump the files each time one of them changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			w, err := watcher.New(watcher.Config{
				Files:    args,
				Debounce: opts.Watch.Debounce.Duration(),
				Logger:   a.log,
			})
			if err != nil {
				return err
			}
			defer func() { _ = w.Stop() }()

			onChange, err := w.Start()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			a.reload(cmd, out, args)
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-onChange:
					a.reload(cmd, out, args)
				}
			}
		},
	}
}

// reload builds a new registry from files and dumps it. Errors are logged
// and the previous output stands.
func (a *app) reload(cmd *cobra.Command, out io.Writer, files []string) {
	l, err := a.load(cmd.Context(), files...)
	if err != nil {
		a.log.Warn("reload failed", zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "reload failed: %v\n", err)
		return
	}
	defer l.Close()

	fmt.Fprintln(out, "# reloaded")
	if err := dump(out, l); err != nil {
		a.log.Warn("dump failed", zap.Error(err))
	}
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dcshock/enumreg/config"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print every loaded enum as config lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd.Context(), args...)
			if err != nil {
				return err
			}
			defer l.Close()
			return dump(cmd.OutOrStdout(), l)
		},
	}
}

func dump(w io.Writer, l *config.Loader) error {
	for _, line := range l.Save() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newLookupCmd(a *app) *cobra.Command {
	var fold, asLabel bool
	cmd := &cobra.Command{
		Use:   "lookup FILE KEY QUERY",
		Short: "Resolve a value to its label, or a label to its value",
		Long: `lookup loads FILE and searches the list addressed by KEY ("major:minor" or a name).
An integer QUERY is resolved to its label; anything else (or any QUERY with --label) is
resolved to its value.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer l.Close()

			list, err := listFor(l.Enums, args[1])
			if err != nil {
				return err
			}
			query := args[2]
			if v, err := strconv.Atoi(query); err == nil && !asLabel {
				label, ok := list.FindLabel(v)
				if !ok {
					return fmt.Errorf("%s: no label for %d", args[1], v)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), label)
				return err
			}
			find := list.FindValue
			if fold {
				find = list.FindValueFold
			}
			v, ok := find(query)
			if !ok {
				return fmt.Errorf("%s: no value for %q", args[1], query)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
	cmd.Flags().BoolVar(&fold, "fold", false, "match labels case-insensitively")
	cmd.Flags().BoolVar(&asLabel, "label", false, "treat QUERY as a label even if it is numeric")
	return cmd
}

func newFreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "free FILE KEY",
		Short: "Print the next free value of a list, or \"empty\"",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer l.Close()

			list, err := listFor(l.Enums, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if v, ok := list.FreeValue(); ok {
				_, err = fmt.Fprintln(out, v)
			} else {
				_, err = fmt.Fprintln(out, "empty")
			}
			return err
		},
	}
}

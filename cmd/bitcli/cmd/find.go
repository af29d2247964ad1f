package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNotFound = errors.New("needle not found")

func newFindCmd(a *app) *cobra.Command {
	var all, reverse bool

	cmd := &cobra.Command{
		Use:   "find HAYSTACK NEEDLE",
		Short: "Print the bit positions where NEEDLE occurs in HAYSTACK",
		Long: `Print the position of the first occurrence of NEEDLE, the last one with
--reverse, or every one with --all. With --aligned only positions that are a
multiple of 8 are considered.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && reverse {
				return errors.New("--all and --reverse are mutually exclusive")
			}
			bufs, err := a.values(args)
			if err != nil {
				return err
			}
			haystack, needle := bufs[0], bufs[1]
			aligned := a.cfg.Aligned

			var found []uint64
			switch {
			case all:
				found = haystack.FindAll(needle, aligned).All()
			case reverse:
				if pos, ok := haystack.RFind(needle, aligned); ok {
					found = append(found, pos)
				}
			default:
				if pos, ok := haystack.Find(needle, aligned); ok {
					found = append(found, pos)
				}
			}
			a.logger.Debug("search done", zap.Int("matches", len(found)), zap.Bool("aligned", aligned))

			if len(found) == 0 {
				return errNotFound
			}
			for _, pos := range found {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), pos); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print every occurrence")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Print the last occurrence")
	return cmd
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuf"
)

func newLogicCmd(a *app, name, op string, fn func(bitbuf.Buffer, bitbuf.Buffer) (bitbuf.Buffer, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " VALUE VALUE",
		Short: fmt.Sprintf("Print the bitwise %s of two values of equal length", op),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs, err := a.values(args)
			if err != nil {
				return err
			}
			out, err := fn(bufs[0], bufs[1])
			if err != nil {
				return err
			}
			return a.print(cmd, out)
		},
	}
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse VALUE",
		Short: "Print a value with its bit order reversed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseValue(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, b.Reverse())
		},
	}
}

func newInvertCmd(a *app) *cobra.Command {
	var bits []uint

	cmd := &cobra.Command{
		Use:   "invert VALUE",
		Short: "Print a value with every bit, or only the bits given with --bit, flipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseValue(args[0])
			if err != nil {
				return err
			}
			if len(bits) == 0 {
				return a.print(cmd, b.Invert())
			}

			e := b.Exclusive()
			for _, i := range bits {
				if err := e.Invert(uint64(i)); err != nil {
					return err
				}
			}
			return a.print(cmd, e.Freeze())
		},
	}

	cmd.Flags().UintSliceVar(&bits, "bit", nil, "Bit positions to flip")
	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set VALUE BIT=0|1...",
		Short:   "Print a value with the given bits set or cleared",
		Example: "  bitcli set 0x00 0=1 7=1",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseValue(args[0])
			if err != nil {
				return err
			}

			e := b.Exclusive()
			for _, arg := range args[1:] {
				i, v, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				if err := e.Set(i, v); err != nil {
					return err
				}
			}
			return a.print(cmd, e.Freeze())
		},
	}
	return cmd
}

func parseAssignment(s string) (uint64, bool, error) {
	pos, val, ok := strings.Cut(s, "=")
	if !ok {
		return 0, false, fmt.Errorf("assignment %q: expected BIT=0|1", s)
	}
	i, err := strconv.ParseUint(pos, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("assignment %q: %w", s, err)
	}
	switch val {
	case "0":
		return i, false, nil
	case "1":
		return i, true, nil
	default:
		return 0, false, fmt.Errorf("assignment %q: value must be 0 or 1", s)
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuf"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE",
		Short: "Print a value in another radix",
		Long: `Print a value in the radix selected with --format.
Hex output needs a length that is a multiple of 4, octal a multiple of 3.`,
		Example: "  bitcli convert 0o17 --format bin",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseValue(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, b)
		},
	}
}

func newSliceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slice VALUE START END",
		Short: "Print the bits in [START, END) of a value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseValue(args[0])
			if err != nil {
				return err
			}
			start, end, err := parseRange(args[1]+":"+args[2]+"]", b.Len())
			if err != nil {
				return err
			}
			s, err := b.Slice(start, end)
			if err != nil {
				return err
			}
			return a.print(cmd, s)
		},
	}
}

func newJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join VALUE...",
		Short: "Concatenate values",
		Example: `  bitcli join 0b101 0x0f
  bitcli join 0xdeadbeef[4:12] 0b1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs, err := a.values(args)
			if err != nil {
				return err
			}
			return a.print(cmd, bitbuf.Join(bufs...))
		},
	}
}

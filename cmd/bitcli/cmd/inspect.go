package cmd

import (
	"fmt"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VALUE...",
		Short: "Print length, storage and population of values",
		Long: `Print a table with one row per value: its length in bits, the bit offset
into its stored bytes, the size of the store, the number of set and unset bits
and a preview of at most --max-display-bits bits.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs, err := a.values(args)
			if err != nil {
				return err
			}

			data := make([][]string, 0, len(bufs))
			for i, b := range bufs {
				p, err := preview(b, a.cfg.Format, a.cfg.MaxDisplayBits)
				if err != nil {
					return err
				}
				data = append(data, []string{
					args[i],
					strconv.FormatUint(b.Len(), 10),
					strconv.FormatUint(b.Offset(), 10),
					bytefmt.ByteSize(uint64(len(b.Data()))),
					strconv.FormatUint(b.CountOnes(), 10),
					strconv.FormatUint(b.CountZeros(), 10),
					strconv.FormatBool(b.All()),
					strconv.FormatBool(b.Any()),
					p,
				})
			}

			header := []string{"value", "bits", "offset", "store", "ones", "zeros", "all", "any", "preview"}
			report(cmd, header, data)
			return nil
		},
	}
}

func report(cmd *cobra.Command, header []string, data [][]string) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(data)
	table.Render()
}

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index VALUE BIT",
		Short: "Print the bit at a position (0 is the most significant)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseValue(args[0])
			if err != nil {
				return err
			}
			i, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			bit, err := b.Index(i)
			if err != nil {
				return err
			}
			v := 0
			if bit {
				v = 1
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

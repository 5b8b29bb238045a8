package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"qrscan/internal/imaging"

	"github.com/spf13/cobra"
)

// newFormatsCmd 创建 formats 子命令。
// 命令用于展示当前支持的图片格式以及对应文件后缀。
func newFormatsCmd(registry *imaging.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "展示支持的图片格式及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "FORMAT\tEXTENSIONS"); err != nil {
				return err
			}

			for _, item := range registry.Formats() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", item.Name, strings.Join(item.Extensions, ", ")); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}

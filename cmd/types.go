package cmd

import (
	"fmt"
	"io"

	"macclip/pkg/typetable"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the format tag to content type table",
	Long: `Print the table mapping clipboard format tags to content types, in order.

When several tags share a content type, the one declared last is the
canonical tag returned for that content type; it is marked with *.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeTypeTable(cmd.OutOrStdout(), typetable.Default(), outputFormat)
	},
}

type typeRow struct {
	Tag         string `json:"tag" yaml:"tag"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Canonical   bool   `json:"canonical" yaml:"canonical"`
}

func writeTypeTable(w io.Writer, table *typetable.Table, format string) error {
	entries := table.Entries()
	rows := make([]typeRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, typeRow{
			Tag:         e.Tag,
			ContentType: e.ContentType,
			Canonical:   table.IsCanonical(e.Tag),
		})
	}

	ow := NewOutputWriter(format, w)
	if ow.IsStructured() {
		return ow.Write(rows)
	}

	green := color.New(color.FgGreen)
	printHeader(w, "  %-16s %s\n", "TAG", "CONTENT TYPE")
	for _, r := range rows {
		marker := " "
		if r.Canonical {
			marker = green.Sprint("*")
		}
		fmt.Fprintf(w, "%s %-16q %s\n", marker, r.Tag, r.ContentType)
	}
	fmt.Fprintf(w, "\nUnknown tags resolve to %s; unknown content types to %q.\n",
		typetable.GenericBinaryType, typetable.GenericBinaryTag)
	return nil
}

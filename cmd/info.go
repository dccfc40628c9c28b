package cmd

import (
	"fmt"
	"io"

	"macclip/pkg/content"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "List the formats currently on the clipboard",
	Long:  `Show each format the clipboard offers, its size, and the content type it maps to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := newReader(loadedConfig)
		if err != nil {
			return err
		}

		ctx, cancel := GetContext(cmd.Context())
		defer cancel()

		formats, err := reader.Info(ctx)
		if err != nil {
			return err
		}
		return writeFormats(cmd.OutOrStdout(), formats, outputFormat)
	},
}

func writeFormats(w io.Writer, formats []content.Format, format string) error {
	ow := NewOutputWriter(format, w)
	if ow.IsStructured() {
		if formats == nil {
			formats = []content.Format{}
		}
		return ow.Write(formats)
	}

	if len(formats) == 0 {
		fmt.Fprintln(w, "Clipboard is empty.")
		return nil
	}

	printHeader(w, "%-16s %-26s %s\n", "FORMAT", "CONTENT TYPE", "SIZE")
	for _, f := range formats {
		fmt.Fprintf(w, "%-16q %-26s %s\n", f.Tag, f.ContentType, FormatSize(f.Size))
	}
	return nil
}

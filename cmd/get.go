package cmd

import (
	"fmt"
	"io"
	"os"

	"macclip/pkg/content"
	"macclip/pkg/errors"
	"macclip/pkg/progress"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	getOutFile string
	getQuiet   bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current clipboard contents",
	Long: `Read the clipboard once and print it.

Text is written as is. Images and binary data are written raw when stdout is
not a terminal, or saved with --out. With --format json|yaml a description is
printed instead, with binary data base64-encoded.`,
	Example: `  macclip get
  macclip get --out shot.png
  macclip get --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := newReader(loadedConfig)
		if err != nil {
			return err
		}

		ctx, cancel := GetContext(cmd.Context())
		defer cancel()

		spinner := progress.NewSpinner("Reading clipboard...")
		if getQuiet {
			spinner.Disable()
		}
		spinner.Start()
		c, err := reader.Read(ctx)
		spinner.Stop()
		if err != nil {
			return err
		}

		if getOutFile != "" {
			if err := os.WriteFile(getOutFile, c.Bytes(), 0644); err != nil {
				return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write clipboard contents", err)
			}
			if !getQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s (%s) to %s\n", c.MediaType(), FormatSize(int64(len(c.Bytes()))), getOutFile)
			}
			return nil
		}

		out := cmd.OutOrStdout()
		return writeContent(out, c, outputFormat, !isTerminal(out))
	},
}

// writeContent renders c on w. Non-text content is written raw only when
// raw is true; otherwise a one-line summary is printed.
func writeContent(w io.Writer, c content.Content, format string, raw bool) error {
	ow := NewOutputWriter(format, w)
	if ow.IsStructured() {
		return ow.Write(newContentView(c))
	}

	if t, ok := c.(content.Text); ok {
		_, err := io.WriteString(w, t.Text)
		return err
	}
	if raw {
		_, err := w.Write(c.Bytes())
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s, %s (use --out FILE or redirect stdout to save)\n",
		c.Kind(), c.MediaType(), FormatSize(int64(len(c.Bytes()))))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	getCmd.Flags().StringVarP(&getOutFile, "out", "o", "", "Write the raw contents to this file")
	getCmd.Flags().BoolVarP(&getQuiet, "quiet", "q", false, "No spinner or status messages")
}

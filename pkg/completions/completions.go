package completions

import (
	"fmt"
	"strings"

	"macclip/pkg/query"
	"macclip/pkg/typetable"

	"github.com/spf13/cobra"
)

type Completer struct {
	table *typetable.Table
}

func NewCompleter(table *typetable.Table) *Completer {
	if table == nil {
		table = typetable.Default()
	}
	return &Completer{table: table}
}

func (c *Completer) CompleteOutputFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []string{
		"table\tHuman-readable output",
		"json\tIndented JSON",
		"yaml\tYAML document",
	}
	return c.filterPrefix(formats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteLogLevel(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	levels := []string{"debug", "info", "warn", "error", "off"}
	return c.filterPrefix(levels, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// CompleteFormatTags completes the comma-separated --prefer list. Tags already
// typed are kept as a prefix so the shell replaces the whole word.
func (c *Completer) CompleteFormatTags(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done, current := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, current = toComplete[:i+1], toComplete[i+1:]
	}

	tags := []string{fmt.Sprintf("%s\tPlain text", query.TextFormat)}
	seen := map[string]bool{query.TextFormat: true}
	for _, e := range c.table.Entries() {
		if seen[e.Tag] || len([]rune(e.Tag)) != 4 {
			continue
		}
		seen[e.Tag] = true
		tags = append(tags, fmt.Sprintf("%s\t%s", e.Tag, e.ContentType))
	}

	results := c.filterPrefix(tags, current)
	for i, r := range results {
		results[i] = done + r
	}
	return results, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func (c *Completer) filterPrefix(items []string, prefix string) []string {
	var result []string
	for _, item := range items {
		itemName := strings.Split(item, "\t")[0]
		if strings.HasPrefix(strings.ToLower(itemName), strings.ToLower(prefix)) {
			result = append(result, item)
		}
	}
	return result
}

func RegisterCompletions(rootCmd *cobra.Command) {
	completer := NewCompleter(nil)

	rootCmd.RegisterFlagCompletionFunc("format", completer.CompleteOutputFormat)
	rootCmd.RegisterFlagCompletionFunc("log-level", completer.CompleteLogLevel)
	rootCmd.RegisterFlagCompletionFunc("prefer", completer.CompleteFormatTags)
}

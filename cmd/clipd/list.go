package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/clipd/internal/clip"
)

const contentPreviewLen = 48

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored clips, newest first",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	clips := st.List(cmd.Context())
	if len(clips) == 0 {
		fmt.Println("no clips stored")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tAPP\tURL\tCAPTURED\tCONTENT")
	for _, c := range clips {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			c.ContentType,
			orDash(c.SourceApp),
			orDash(c.SourceURL),
			c.Timestamp.Format("2006-01-02 15:04:05"),
			preview(c),
		)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// preview renders a one-line content summary; image payloads show their
// dimensions instead of base64 noise.
func preview(c clip.Clip) string {
	if c.ContentType == clip.ContentTypeImage {
		if c.Metadata != nil {
			return fmt.Sprintf("<image %dx%d>", c.Metadata.ImageWidth, c.Metadata.ImageHeight)
		}
		return "<image>"
	}
	line := strings.ReplaceAll(c.Content, "\n", " ")
	if utf8.RuneCountInString(line) > contentPreviewLen {
		return string([]rune(line)[:contentPreviewLen]) + "…"
	}
	return line
}

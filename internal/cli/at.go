package cli

import (
	"fmt"
	"strings"

	"github.com/mgpai22/substyle/internal/ass"
	"github.com/spf13/cobra"
)

var atCmd = &cobra.Command{
	Use:   "at [subtitle_file]",
	Short: "Show dialogues active at a timestamp with their resolved styles",
	Long: `Query which dialogues are on screen at a playback timestamp and print
the final style descriptor each one resolves to, after merging its named
style with its inline override tags.

Examples:
  substyle at episode.ass --time 0:01:23.45
  substyle at episode.ass -t 0:20:01.88`,
	Args: cobra.ExactArgs(1),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)

	atCmd.Flags().
		StringP("time", "t", "0:00:00.00", "Playback timestamp (H:MM:SS.CC)")
}

func runAt(cmd *cobra.Command, args []string) error {
	timeStr, _ := cmd.Flags().GetString("time")
	ms := ass.ParseTimestamp(strings.TrimSpace(timeStr))

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	active := doc.DialoguesAt(ms)
	logger.Infow("Queried active dialogues",
		"time", ass.FormatTimestamp(ms),
		"count", len(active),
	)

	if len(active) == 0 {
		fmt.Println("No active dialogues.")
		return nil
	}

	for _, ev := range active {
		rs := doc.ResolveStyle(ev)
		fmt.Printf("[%s - %s] %s\n",
			ass.FormatTimestamp(ev.StartMS),
			ass.FormatTimestamp(ev.EndMS),
			ev.Text)
		fmt.Printf("  style=%s font=%s size=%g color=%s align=%s%s\n",
			ev.Style,
			rs.Text.FontFamily,
			rs.Text.FontSize,
			rs.Text.Color,
			rs.Text.Align,
			describeDecoration(rs.Text))
		fmt.Printf("  position: %s\n", describePosition(rs.Position))
	}

	return nil
}

func describeDecoration(ts ass.TextStyle) string {
	var parts []string
	if ts.Bold {
		parts = append(parts, "bold")
	}
	if ts.Italic {
		parts = append(parts, "italic")
	}
	if ts.Underline {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "+")
}

func describePosition(p ass.Position) string {
	if p.Absolute != nil {
		return fmt.Sprintf("absolute (%d,%d)", p.Absolute.X, p.Absolute.Y)
	}

	var sb strings.Builder
	switch p.V {
	case ass.VTop:
		fmt.Fprintf(&sb, "top+%g", p.MarginY)
	case ass.VMiddle:
		fmt.Fprintf(&sb, "middle%+g", p.OffsetY)
	default:
		fmt.Fprintf(&sb, "bottom+%g", p.MarginY)
	}
	switch p.H {
	case ass.HLeft:
		fmt.Fprintf(&sb, ", left+%g", p.MarginX)
	case ass.HRight:
		fmt.Fprintf(&sb, ", right+%g", p.MarginX)
	default:
		sb.WriteString(", center")
	}
	return sb.String()
}

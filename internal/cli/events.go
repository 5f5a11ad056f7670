package cli

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/bannersmith/internal/events"
)

var eventsFile string

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List available event schemes",
	Long: `List the event codes, display names and colours defined in the
event scheme table. The create command accepts any of these codes via
--event.`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsFile, "events-file", "events.json", "path to the event scheme table")
}

// runEvents executes the events command.
func runEvents(cmd *cobra.Command, args []string) error {
	table, err := events.LoadTable(eventsFile)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	out := NewTable([]string{"CODE", "NAME", "SPACER", "CAPTION"})
	out.SetColumnMaxWidth(1, 40)
	for _, scheme := range table.All() {
		out.AddRow([]string{
			scheme.Code,
			scheme.FullName,
			colourHex(scheme.SpacerColor),
			colourHex(scheme.CaptionColor),
		})
	}

	fmt.Print(out.Render())
	return nil
}

// colourHex formats a colour as #rrggbb, with the alpha suffix only
// when not fully opaque.
func colourHex(c color.NRGBA) string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

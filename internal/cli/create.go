package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/bannersmith/internal/banner"
)

var (
	// Create command flags
	createBackground string
	createCaption    string
	createEvent      string
	createOutput     string
	createColumns    int
	createQR         string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <item-number>...",
	Short: "Compose a banner from product photographs",
	Long: `Compose a promotional banner from the given product item numbers.

Each item number resolves to {image-dir}/{item}.tif. Items whose source
file is missing or fails conversion are skipped with a warning; the
banner is still produced from the remaining items.

Examples:
  # Four products on the default auto-sized grid
  bannersmith create -b background.png -c "Spring Sale" -e MOMD 107343 107344 107345 107346

  # Force two columns and write into a staging directory
  bannersmith create -b background.png -c "Holiday Gifts" -e XMAS -o staging --columns 2 201001 201002 201003 201004

  # Showcase style with a QR code linking to the sale page
  bannersmith create -b background.png -c "Scan for deals" -e VLTN --style showcase --qr https://example.com/sale 301001 301002`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createBackground, "background", "b", "", "path to the background image (required)")
	createCmd.Flags().StringVarP(&createCaption, "caption", "c", "", "caption text for the banner (required)")
	createCmd.Flags().StringVarP(&createEvent, "event", "e", "", "4-letter event code, e.g. MOMD, VLTN (required)")
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "output directory (default: configured or current directory)")
	createCmd.Flags().IntVar(&createColumns, "columns", 0, "preferred number of columns (0 = automatic)")
	createCmd.Flags().StringVar(&createQR, "qr", "", "text or URL to render as a QR code on the banner")
	addPipelineFlags(createCmd.Flags())

	_ = createCmd.MarkFlagRequired("background")
	_ = createCmd.MarkFlagRequired("caption")
	_ = createCmd.MarkFlagRequired("event")
}

// runCreate executes the create command.
func runCreate(cmd *cobra.Command, args []string) error {
	composer, cfg, err := buildComposer(cmd)
	if err != nil {
		return err
	}

	result, err := composer.Compose(cmd.Context(), banner.Request{
		Items:            args,
		BackgroundPath:   createBackground,
		Caption:          createCaption,
		EventCode:        createEvent,
		PreferredColumns: createColumns,
		QRText:           createQR,
	})
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if createOutput != "" {
		outputDir = createOutput
	}

	path, err := banner.Export(result.Image, outputDir, result.Filename)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d placed, %d skipped)\n", path, len(result.Placed), len(result.Skipped))
	return nil
}

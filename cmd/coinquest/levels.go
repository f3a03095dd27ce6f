package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-quest/internal/catalog"
)

var (
	flagFormat string
	flagOut    string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect, export and validate level catalogs",
	Long: `Work with level catalogs. Commands read the catalog given by --levels,
or the built-in levels when it is not set.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the catalog",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as JSON or YAML",
	Long: `Write the catalog to stdout or a file.

Without --format the format comes from the --out extension, or JSON for stdout.

Examples:
  coinquest levels export
  coinquest levels export --format yaml
  coinquest levels export --out levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevelsExport,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsValidate,
}

func init() {
	levelsExportCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: json, yaml")
	levelsExportCmd.Flags().StringVar(&flagOut, "out", "", "Output file (default: stdout)")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsExportCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

// levelTable renders a catalog summary.
func levelTable(c catalog.Catalog) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "PLATFORMS", "COINS", "ENEMIES")
	for i, lvl := range c.Levels {
		t.Row(
			strconv.Itoa(i+1),
			lvl.Name,
			strconv.Itoa(len(lvl.Platforms)),
			strconv.Itoa(len(lvl.Coins)),
			strconv.Itoa(len(lvl.Enemies)),
		)
	}
	return t.String()
}

func runLevelsList(cmd *cobra.Command, args []string) {
	c, err := loadLevels()
	if err != nil {
		fail(err)
	}
	fmt.Println(levelTable(c))
	fmt.Println()
	fmt.Println("Run 'coinquest play' to play them.")
}

// exportFormat decides the output format from --format and --out.
func exportFormat(format, out string) (catalog.Format, error) {
	switch {
	case format != "":
		f := catalog.Format(format)
		if f != catalog.FormatJSON && f != catalog.FormatYAML {
			return "", fmt.Errorf("unknown format %q (want json or yaml)", format)
		}
		return f, nil
	case out != "":
		return catalog.FormatForPath(out)
	default:
		return catalog.FormatJSON, nil
	}
}

func runLevelsExport(cmd *cobra.Command, args []string) {
	c, err := loadLevels()
	if err != nil {
		fail(err)
	}
	format, err := exportFormat(flagFormat, flagOut)
	if err != nil {
		fail(err)
	}

	if flagOut != "" {
		if err := catalog.WriteFile(flagOut, c, format); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %d levels to %s\n", c.Len(), flagOut)
		return
	}
	data, err := catalog.Encode(c, format)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(data)
}

func runLevelsValidate(cmd *cobra.Command, args []string) {
	c, err := catalog.LoadFile(args[0])
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s: ok, %d levels\n", args[0], c.Len())
}

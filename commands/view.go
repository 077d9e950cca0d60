package commands

import (
	"context"
	"flag"
	"fmt"
)

var ViewCmd = View{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		workbook:    "",
	},
}

type View struct {
	command
}

func (cmd *View) Name() string {
	return "view"
}

func (cmd *View) Description() string {
	return "Displays the current contents of the first worksheet of a Google Sheets workbook"
}

func (cmd *View) Usage() string {
	return "--credentials <file> --workbook <name>"
}

func (cmd *View) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] view [options] --credentials <credentials> --workbook <name>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the current contents of the first worksheet of a Google Sheets workbook")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println()
	fmt.Println(`    gsheet-upload view --credentials "credentials.json" --workbook "python_test"`)
	fmt.Println()
}

func (cmd *View) FlagSet() *flag.FlagSet {
	return cmd.flagset("view")
}

func (cmd *View) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.verbose = options.Verbose
	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	ctx := context.Background()

	google, spreadsheet, sheet, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	rows, err := readRows(google, spreadsheet, sheet, ctx)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		warnf("Worksheet '%s' has no data", sheet.Properties.Title)
	}

	cmd.printRows(rows)

	return nil
}

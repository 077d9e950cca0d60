package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/jtice/gsheet-upload/dataset"
)

var UploadCmd = Upload{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		workbook:    "",
	},
	file: "",
}

type Upload struct {
	command
	file string
}

func (cmd *Upload) Name() string {
	return "upload"
}

func (cmd *Upload) Description() string {
	return "Appends a tabular dataset to the first worksheet of a Google Sheets workbook"
}

func (cmd *Upload) Usage() string {
	return "--credentials <file> --workbook <name> [--file <file>]"
}

func (cmd *Upload) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--verbose] [--debug] upload [options] --credentials <credentials> --workbook <name>\n", APP)
	fmt.Println()
	fmt.Println("  Appends a tabular dataset to the first worksheet of a Google Sheets workbook and")
	fmt.Println("  displays the worksheet contents afterwards. The dataset is read from a TSV file")
	fmt.Println("  when the --file option is supplied, otherwise the built-in sample dataset is used.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println()
	fmt.Println(`    gsheet-upload --verbose upload --credentials "credentials.json" --workbook "python_test"`)
	fmt.Println()
	fmt.Println(`    gsheet-upload upload --credentials "credentials.json" --workbook "python_test" --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Upload) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("upload")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with the dataset to upload. Defaults to the built-in sample dataset")

	return flagset
}

func (cmd *Upload) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.verbose = options.Verbose
	cmd.debug = options.Debug

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	ds, err := cmd.dataset()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Dataset - %vx%v  columns:%v", ds.RowCount(), ds.ColumnCount(), ds.Headers())
	}

	ctx := context.Background()

	// ... upload
	google, spreadsheet, sheet, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	if err := cmd.append(google, spreadsheet, sheet, ds, ctx); err != nil {
		return err
	}

	infof("Appended %v rows to workbook '%s'", ds.RowCount(), cmd.workbook)

	// ... read back for verification, with a fresh client (no session reuse)
	google, spreadsheet, sheet, err = cmd.open(ctx)
	if err != nil {
		return err
	}

	rows, err := readRows(google, spreadsheet, sheet, ctx)
	if err != nil {
		return err
	}

	cmd.printRows(rows)

	return nil
}

func (cmd *Upload) dataset() (*dataset.Dataset, error) {
	if strings.TrimSpace(cmd.file) == "" {
		return dataset.Sample(), nil
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return dataset.FromTSV(f)
}

// append wraps the capacity-then-append sequence with the three progress checkpoints:
// after authentication, before appending and after appending.
func (cmd *Upload) append(google *sheets.Service, spreadsheet *sheets.Spreadsheet, sheet *sheets.Sheet, ds *dataset.Dataset, ctx context.Context) error {
	cmd.progress("Client authenticated...")

	cmd.progress("Adding rows...")
	if err := appendDataset(google, spreadsheet, sheet, ds, ctx); err != nil {
		return err
	}

	cmd.progress("Rows successfully added!...")

	return nil
}

// appendDataset grows the worksheet to accommodate the dataset and then appends the
// dataset rows in order, one remote call per row. Every call is a pure append - there is
// no deduplication and no rollback, so a failure partway through leaves the rows already
// appended in place. An empty dataset issues no remote calls at all.
func appendDataset(google *sheets.Service, spreadsheet *sheets.Spreadsheet, sheet *sheets.Sheet, ds *dataset.Dataset, ctx context.Context) error {
	if ds.RowCount() == 0 {
		return nil
	}

	if err := addRowCapacity(google, spreadsheet, sheet, ds.RowCount(), ctx); err != nil {
		return err
	}

	for _, row := range ds.Rows() {
		if err := appendRow(google, spreadsheet, sheet, row, ctx); err != nil {
			return err
		}
	}

	return nil
}

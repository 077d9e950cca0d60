package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// authorize loads the service account key file and constructs an HTTP client restricted
// to the given scopes. Clients are not cached or reused - every command invocation
// authorizes afresh.
func authorize(credentials string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	return config.Client(context.Background()), nil
}

// openWorkbook resolves a workbook name to a spreadsheet ID via the Drive API. Only the
// first match is used.
func openWorkbook(gdrive *drive.Service, workbook string, ctx context.Context) (string, error) {
	name := strings.ReplaceAll(workbook, `'`, `\'`)
	q := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", name)

	list, err := gdrive.Files.List().Q(q).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to resolve workbook '%s' (%v)", workbook, err)
	}

	if len(list.Files) == 0 {
		return "", &NotFoundError{Workbook: workbook}
	}

	return list.Files[0].Id, nil
}

func getSpreadsheet(google *sheets.Service, id string, ctx context.Context) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// firstSheet returns the first worksheet of the workbook - the only worksheet this tool
// ever targets.
func firstSheet(spreadsheet *sheets.Spreadsheet) (*sheets.Sheet, error) {
	if len(spreadsheet.Sheets) == 0 {
		return nil, fmt.Errorf("workbook '%s' has no worksheets", spreadsheet.Properties.Title)
	}

	return spreadsheet.Sheets[0], nil
}

// addRowCapacity grows the worksheet's backing grid by N rows. The grid has a fixed
// allocated size independent of written content and is grown up front so that the
// subsequent appends cannot run out of capacity.
func addRowCapacity(google *sheets.Service, spreadsheet *sheets.Spreadsheet, sheet *sheets.Sheet, rows int, ctx context.Context) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AppendDimension: &sheets.AppendDimensionRequest{
					SheetId:   sheet.Properties.SheetId,
					Dimension: "ROWS",
					Length:    int64(rows),
				},
			},
		},
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return &RemoteWriteError{Op: "add rows", Err: err}
	}

	return nil
}

// appendRow appends a single row after the last row with content in the worksheet. One
// remote mutation per row - rows are never batched.
func appendRow(google *sheets.Service, spreadsheet *sheets.Spreadsheet, sheet *sheets.Sheet, row []string, ctx context.Context) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	rq := sheets.ValueRange{
		Values: [][]interface{}{values},
	}

	call := google.Spreadsheets.Values.Append(spreadsheet.SpreadsheetId, worksheetArea(sheet), &rq)
	call.ValueInputOption("USER_ENTERED")
	call.InsertDataOption("INSERT_ROWS")

	if _, err := call.Context(ctx).Do(); err != nil {
		return &RemoteWriteError{Op: "append row", Err: err}
	}

	return nil
}

// readRows retrieves every row currently in the worksheet as raw cell text, without
// pagination, filtering or type coercion.
func readRows(google *sheets.Service, spreadsheet *sheets.Spreadsheet, sheet *sheets.Sheet, ctx context.Context) ([][]string, error) {
	response, err := google.Spreadsheets.Values.Get(spreadsheet.SpreadsheetId, worksheetArea(sheet)).Context(ctx).Do()
	if err != nil {
		return nil, &RemoteReadError{Err: err}
	}

	rows := make([][]string, len(response.Values))
	for i, values := range response.Values {
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = fmt.Sprintf("%v", v)
		}

		rows[i] = row
	}

	return rows, nil
}

func worksheetArea(sheet *sheets.Sheet) string {
	return fmt.Sprintf("'%s'", sheet.Properties.Title)
}

// open authorizes a fresh client, resolves the workbook by name and returns a handle to
// its first worksheet. The handle is valid for the duration of a single command - it is
// never cached or reused across invocations.
func (c *command) open(ctx context.Context) (*sheets.Service, *sheets.Spreadsheet, *sheets.Sheet, error) {
	client, err := authorize(c.credentials, SHEETS, DRIVE)
	if err != nil {
		return nil, nil, nil, err
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, nil, &AuthenticationError{Err: err}
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, nil, &AuthenticationError{Err: err}
	}

	id, err := openWorkbook(gdrive, c.workbook, ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	if c.debug {
		debugf("Workbook - name:%s  ID:%s", c.workbook, id)
	}

	spreadsheet, err := getSpreadsheet(google, id, ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	sheet, err := firstSheet(spreadsheet)
	if err != nil {
		return nil, nil, nil, err
	}

	return google, spreadsheet, sheet, nil
}

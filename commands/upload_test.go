package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jtice/gsheet-upload/dataset"
)

// fakeWorksheet is an in-memory stand-in for the remote worksheet, served over HTTP to
// the real generated Sheets client.
type fakeWorksheet struct {
	rows     [][]string
	capacity int64
	events   []string
	failAt   int
}

func (f *fakeWorksheet) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			var rq sheets.BatchUpdateSpreadsheetRequest
			if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			for _, q := range rq.Requests {
				if q.AppendDimension != nil && q.AppendDimension.Dimension == "ROWS" {
					f.capacity += q.AppendDimension.Length
					f.events = append(f.events, fmt.Sprintf("resize:%v", q.AppendDimension.Length))
				}
			}

			fmt.Fprintln(w, "{}")

		case strings.HasSuffix(r.URL.Path, ":append"):
			if f.failAt > 0 && len(f.events) >= f.failAt {
				http.Error(w, `{"error": {"code": 500, "message": "internal error"}}`, http.StatusInternalServerError)
				return
			}

			var rq sheets.ValueRange
			if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			for _, values := range rq.Values {
				row := make([]string, len(values))
				for i, v := range values {
					row[i] = fmt.Sprintf("%v", v)
				}

				f.rows = append(f.rows, row)
				f.events = append(f.events, fmt.Sprintf("append:%v", strings.Join(row, ",")))
			}

			fmt.Fprintln(w, "{}")

		case strings.Contains(r.URL.Path, "/values/"):
			values := make([][]interface{}, len(f.rows))
			for i, row := range f.rows {
				values[i] = make([]interface{}, len(row))
				for j, v := range row {
					values[i][j] = v
				}
			}

			json.NewEncoder(w).Encode(sheets.ValueRange{Values: values})

		default:
			http.Error(w, `{"error": {"code": 404, "message": "not found"}}`, http.StatusNotFound)
		}
	}
}

func fakeSheetsService(t *testing.T, handler http.Handler) *sheets.Service {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	google, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()))

	if err != nil {
		t.Fatalf("Unexpected error creating Sheets client (%v)", err)
	}

	return google
}

func worksheet() (*sheets.Spreadsheet, *sheets.Sheet) {
	sheet := &sheets.Sheet{
		Properties: &sheets.SheetProperties{
			SheetId: 0,
			Title:   "Sheet1",
			GridProperties: &sheets.GridProperties{
				RowCount:    10,
				ColumnCount: 26,
			},
		},
	}

	spreadsheet := &sheets.Spreadsheet{
		SpreadsheetId: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		Properties: &sheets.SpreadsheetProperties{
			Title: "python_test",
		},
		Sheets: []*sheets.Sheet{sheet},
	}

	return spreadsheet, sheet
}

func TestAppendDataset(t *testing.T) {
	expected := [][]string{
		{"1", "2", "3"},
		{"1", "2", "3"},
		{"1", "2", "3"},
	}

	f := fakeWorksheet{}
	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	if err := appendDataset(google, spreadsheet, sheet, dataset.Sample(), context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from appendDataset (%v)", err)
	}

	if !reflect.DeepEqual(f.rows, expected) {
		t.Errorf("Incorrect appended rows\n   expected: %v\n   got:      %v\n", expected, f.rows)
	}

	if f.capacity != 3 {
		t.Errorf("Incorrect added row capacity - expected 3, got %v", f.capacity)
	}

	if len(f.events) == 0 || f.events[0] != "resize:3" {
		t.Errorf("Expected worksheet resize before any appends, got %v", f.events)
	}
}

func TestAppendDatasetAppendsOneRowPerCall(t *testing.T) {
	expected := []string{
		"resize:3",
		"append:1,2,3",
		"append:1,2,3",
		"append:1,2,3",
	}

	f := fakeWorksheet{}
	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	if err := appendDataset(google, spreadsheet, sheet, dataset.Sample(), context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from appendDataset (%v)", err)
	}

	if !reflect.DeepEqual(f.events, expected) {
		t.Errorf("Incorrect remote call sequence\n   expected: %v\n   got:      %v\n", expected, f.events)
	}
}

func TestAppendDatasetIsAdditive(t *testing.T) {
	expected := [][]string{
		{"x", "y"},
		{"1", "2"},
		{"3", "4"},
		{"5", "6"},
	}

	f := fakeWorksheet{
		rows: [][]string{{"x", "y"}},
	}

	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	d1, _ := dataset.New(
		dataset.Column{Name: "a", Cells: []string{"1", "3"}},
		dataset.Column{Name: "b", Cells: []string{"2", "4"}})

	d2, _ := dataset.New(
		dataset.Column{Name: "a", Cells: []string{"5"}},
		dataset.Column{Name: "b", Cells: []string{"6"}})

	if err := appendDataset(google, spreadsheet, sheet, d1, context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from appendDataset (%v)", err)
	}

	if err := appendDataset(google, spreadsheet, sheet, d2, context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from appendDataset (%v)", err)
	}

	if !reflect.DeepEqual(f.rows, expected) {
		t.Errorf("Incorrect worksheet content\n   expected: %v\n   got:      %v\n", expected, f.rows)
	}
}

func TestAppendDatasetWithEmptyDataset(t *testing.T) {
	f := fakeWorksheet{}
	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	d, err := dataset.New(
		dataset.Column{Name: "a", Cells: []string{}},
		dataset.Column{Name: "b", Cells: []string{}})

	if err != nil {
		t.Fatalf("Unexpected error returned from New (%v)", err)
	}

	if err := appendDataset(google, spreadsheet, sheet, d, context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from appendDataset (%v)", err)
	}

	if len(f.events) != 0 {
		t.Errorf("Expected no remote calls for an empty dataset, got %v", f.events)
	}

	if f.capacity != 0 {
		t.Errorf("Expected unchanged capacity for an empty dataset, got +%v", f.capacity)
	}
}

func TestAppendDatasetWithFailedAppend(t *testing.T) {
	f := fakeWorksheet{
		failAt: 2,
	}

	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	err := appendDataset(google, spreadsheet, sheet, dataset.Sample(), context.Background())
	if err == nil {
		t.Fatalf("Expected error return for failed append, got %v", err)
	}

	var werr *RemoteWriteError
	if !errors.As(err, &werr) {
		t.Errorf("Expected RemoteWriteError, got %T (%v)", err, err)
	}

	// rows appended before the failure are left in place
	if len(f.rows) != 1 {
		t.Errorf("Expected 1 row appended before failure, got %v", f.rows)
	}
}

func TestUploadProgressMessages(t *testing.T) {
	expected := "Client authenticated...\n" +
		"Adding rows...\n" +
		"Rows successfully added!...\n"

	f := fakeWorksheet{}
	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	var out strings.Builder

	cmd := Upload{
		command: command{
			verbose: true,
			stdout:  &out,
		},
	}

	if err := cmd.append(google, spreadsheet, sheet, dataset.Sample(), context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from append (%v)", err)
	}

	if out.String() != expected {
		t.Errorf("Incorrect progress messages\n   expected: %q\n   got:      %q\n", expected, out.String())
	}
}

func TestUploadProgressMessagesWithoutVerbose(t *testing.T) {
	f := fakeWorksheet{}
	google := fakeSheetsService(t, f.handler())
	spreadsheet, sheet := worksheet()

	var out strings.Builder

	cmd := Upload{
		command: command{
			stdout: &out,
		},
	}

	if err := cmd.append(google, spreadsheet, sheet, dataset.Sample(), context.Background()); err != nil {
		t.Fatalf("Unexpected error returned from append (%v)", err)
	}

	if out.String() != "" {
		t.Errorf("Expected no progress messages without --verbose, got %q", out.String())
	}
}

package commands

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const APP = "gsheet-upload"
const VERSION = "v0.1.0"

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive"
)

// Options is the set of 'global' command line options, shared by all the commands.
type Options struct {
	Verbose bool
	Debug   bool
}

type command struct {
	credentials string
	workbook    string
	verbose     bool
	debug       bool
	stdout      io.Writer
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account key 'credentials.json' file")
	flagset.StringVar(&c.workbook, "workbook", c.workbook, "Name of the Google Sheets workbook")

	return flagset
}

func (c *command) validate() error {
	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.workbook) == "" {
		return fmt.Errorf("--workbook is a required option")
	}

	return nil
}

// progress writes a plain progress message to the command's output when the --verbose
// option is set.
func (c *command) progress(msg string) {
	if c.verbose {
		fmt.Fprintln(c.out(), msg)
	}
}

func (c *command) print(msg string) {
	fmt.Fprintln(c.out(), msg)
}

func (c *command) printRows(rows [][]string) {
	c.print("Current worksheet values:")
	for _, row := range rows {
		c.print(strings.Join(row, "\t"))
	}
}

func (c *command) out() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}

	return os.Stdout
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

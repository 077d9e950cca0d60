package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jtice/gsheet-upload/commands"
)

// Command is the interface implemented by all the CLI commands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

var cli = []Command{
	&commands.VersionCmd,
	&commands.UploadCmd,
	&commands.ViewCmd,
}

var options = commands.Options{
	Verbose: false,
	Debug:   false,
}

func main() {
	flag.BoolVar(&options.Verbose, "verbose", options.Verbose, "Prints progress messages")
	flag.BoolVar(&options.Verbose, "v", options.Verbose, "Prints progress messages (shorthand)")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		os.Exit(0)
	}

	cmd := find(args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command '%s'\n\n", args[0])
		usage()
		os.Exit(1)
	}

	flagset := cmd.FlagSet()
	if err := flagset.Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func find(name string) Command {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func help(args []string) {
	if len(args) > 0 {
		if cmd := find(args[0]); cmd != nil {
			cmd.Help()
			return
		}

		fmt.Printf("\nInvalid command '%s'\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Println("  Usage: gsheet-upload [--verbose] [--debug] <command> [options]")
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-9s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Println("  Use 'gsheet-upload help <command>' for command specific information.")
	fmt.Println()
}

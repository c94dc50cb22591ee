package app

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "run":
		return runRun(args[1:])
	case "serve":
		return runServe(args[1:])
	case "history":
		return runHistory(args[1:])
	case "languages":
		return runLanguages(args[1:])
	case "token":
		return runToken(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "resx-translate CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  resx-translate <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run        Translate a YAML job file or the missing entries of a .resx file")
	fmt.Fprintln(os.Stderr, "  serve      Start Echo API server")
	fmt.Fprintln(os.Stderr, "  history    List recent translation runs from the history store")
	fmt.Fprintln(os.Stderr, "  languages  List supported target language codes")
	fmt.Fprintln(os.Stderr, "  token      Generate an API bearer token and its bcrypt hash")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"resx-translate <command> -h\" for command-specific flags.")
}

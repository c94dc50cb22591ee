package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	for _, option := range translation.LanguageOptions() {
		fmt.Printf("%-10s %-8s %s\n", option.Tag, option.Code, option.Label)
	}
	return 0
}

package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BobinYang/ResXResourceManager/internal/auth"
)

func runToken(args []string) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	token, err := auth.GenerateToken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate token: %v\n", err)
		return 1
	}
	hash, err := auth.HashToken(token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash token: %v\n", err)
		return 1
	}

	fmt.Printf("Token:       %s\n", token)
	fmt.Printf("Bcrypt hash: %s\n", hash)
	fmt.Println()
	fmt.Println("Set API_TOKEN_HASH to the hash and send the token as a Bearer credential.")
	return 0
}

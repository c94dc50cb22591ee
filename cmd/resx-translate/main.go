package main

import (
	"os"

	"github.com/BobinYang/ResXResourceManager/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}

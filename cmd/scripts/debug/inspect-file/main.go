package main

import (
	"fmt"
	"os"

	"github.com/bookriapp/bookri/pkg/mediafile"
	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
)

func main() {
	log := logger.New()

	var opts struct {
		Verbose bool `short:"v" long:"verbose" description:"Print the derived display name too"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/inspect-file <path/to/file>")
		os.Exit(1)
	}

	info, err := mediafile.Inspect(args[0])
	if err != nil {
		log.Err(err).Fatal("inspect error")
	}

	fmt.Printf("Format: %s\nSize: %d bytes\nPage Count: %d\n", info.Format, info.SizeBytes, info.PageCount)
	if opts.Verbose {
		fmt.Printf("Display Name: %s\n", mediafile.NameFromPath(args[0]))
	}
}

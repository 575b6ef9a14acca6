// main.go - multiglob command line driver
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/opencoff/go-logger"
	flag "github.com/opencoff/pflag"

	mg "github.com/opencoff/go-multiglob"
)

var Z = path.Base(os.Args[0])

func main() {
	var help, followLinks, caseInsensitive, skipInvalid, sameFS bool
	var maxDepth, maxOpen int
	var logfile string

	fs := flag.NewFlagSet(Z, flag.ExitOnError)

	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.BoolVarP(&followLinks, "follow", "L", false, "Follow symbolic links while descending [False]")
	fs.BoolVarP(&caseInsensitive, "ignore-case", "i", false, "Match patterns case-insensitively [False]")
	fs.BoolVarP(&skipInvalid, "skip-invalid", "", false, "Skip unparseable patterns instead of failing [False]")
	fs.BoolVarP(&sameFS, "same-file-system", "x", false, "Don't cross filesystem boundaries [False]")
	fs.IntVarP(&maxDepth, "max-depth", "d", 0, "Limit each recursive pattern to `N` levels [0 = unbounded]")
	fs.IntVarP(&maxOpen, "max-open", "", 10, "Cap concurrently open directory handles to `N`")
	fs.StringVarP(&logfile, "log", "", "", "Write debug log to `FILE` [none]")

	fs.SetOutput(os.Stdout)

	if err := fs.Parse(os.Args[1:]); err != nil {
		Die("%s", err)
	}

	if help {
		usage(fs)
	}

	args := fs.Args()
	if len(args) < 1 {
		Die("Usage: %s [options] base [pattern...]", Z)
	}

	base := args[0]
	patterns := args[1:]

	b := mg.New(base, patterns).
		FollowLinks(followLinks).
		MaxDepth(maxDepth).
		MaxOpen(maxOpen).
		SameFileSystem(sameFS).
		CaseInsensitive(caseInsensitive).
		SkipInvalid(skipInvalid)

	if len(logfile) > 0 {
		log, err := logger.NewLogger(logfile, logger.LOG_DEBUG, Z, logger.Ldate|logger.Ltime|logger.Lmicroseconds)
		if err != nil {
			Die("logfile: %s", err)
		}
		b = b.Log(log)
	}

	w, err := b.Build()
	if err != nil {
		Die("%s", err)
	}

	for {
		ent, err := w.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", Z, err)
			continue
		}

		suffix := ""
		if ft := ent.FileType(); ft.IsDir() {
			suffix = "/"
		}
		fmt.Println(ent.Path() + suffix)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, Z, Z)
	fs.PrintDefaults()
	os.Exit(0)
}

func Die(f string, v ...interface{}) {
	s := fmt.Sprintf(f, v...)
	fmt.Fprintf(os.Stderr, "%s: %s\n", Z, s)
	os.Exit(1)
}

var usageStr = `%s - walk a directory tree against a set of glob patterns.

Usage: %s [options] base [pattern...]

With no patterns, nothing is printed. Patterns may be literal paths,
single-segment globs, or contain a recursive "**" segment.

Options:
`

// Command newtype-generator expands newtype directives into Go source.
//
// It is meant to be run from a go:generate line:
//
//	//go:generate go run newtype-generator/cmd/newtype-generator
//
// Directives are comments of the form //newtype(Name, Type[, field][, pub|priv])
// anywhere in the package. With -f, invocations are read from a YAML
// manifest instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sys/unix"

	"newtype-generator/internal/manifest"
)

// Version is printed by -version. Release builds set it with
// -ldflags "-X main.Version=...".
var Version = "dev"

var (
	oFlag       = flag.String("o", manifest.DefaultOutput, "output file name")
	fFlag       = flag.String("f", "", "generate from a YAML manifest instead of directives")
	cFlag       = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag       = flag.Bool("v", false, "print warnings")
	dumpFlag    = flag.Bool("dump", false, "print the resolved plans")
	versionFlag = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println("newtype-generator", Version)
		return
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	plans, err := loadPlans(wd, *oFlag, *fFlag, flag.Args())
	if err != nil {
		fail(err, color)
	}

	if *dumpFlag {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true, SortKeys: true}
		dumper.Fdump(os.Stdout, plans)
	}

	if *vFlag {
		for _, p := range plans {
			for _, w := range p.Diagnostics.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w.String())
			}
		}
	}

	results, err := generate(plans)
	if err != nil {
		fail(err, color)
	}

	for _, r := range results {
		out := r.path
		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}

		if r.removed {
			fmt.Println("Removed:", out)
		} else {
			fmt.Println("Generated:", out)
		}
	}
}

func fail(err error, color bool) {
	message := err.Error()
	if color {
		message = colorize(message)
	}

	fmt.Fprintln(os.Stderr, message)
	os.Exit(1)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reCode       = regexp.MustCompile(`\[[a-z-]+\]`)
	reSuggestion = regexp.MustCompile(`did you mean: [^?]+\?`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)

	message = reCode.ReplaceAllStringFunc(message, func(s string) string {
		return red + s + reset
	})

	return reSuggestion.ReplaceAllStringFunc(message, func(s string) string {
		return dim + s + reset
	})
}

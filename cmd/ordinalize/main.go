// Command ordinalize generates ordinal functions for the enum types requested
// by ordinalize.Ordinal directives in the given packages:
//
//	ordinalize [-b tags] [-t] [-o file] [-c auto|always|never] [packages]
//
// It is usually invoked by a go:generate comment:
//
//	//go:generate go run github.com/caelunshun/ordinalize/cmd/ordinalize
package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"regexp"
	"slices"

	"golang.org/x/sys/unix"

	ordinalizeinternal "github.com/caelunshun/ordinalize/internal/ordinalize"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "ordinalize_gen.go", "output file name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	ordinalizeinternal.Version = Version
}

func main() {
	flag.Parse()
	os.Exit(run(flag.Args()))
}

// run generates the files for the patterns and returns the exit code.
func run(patterns []string) int {
	color, err := useColor(*cFlag, isatty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outs, err := ordinalizeinternal.Main(ctx, wd, os.Environ(), *bFlag, *tFlag, *oFlag, patterns)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		return 1
	}

	// Paths of outs are relative to wd, the current directory.
	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("Generated:", out)
	}
	return 0
}

// useColor decides whether to colorize errors by the -c flag.
func useColor(mode string, terminal func() bool) (bool, error) {
	switch mode {
	case "auto":
		return terminal(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid -c value: %q", mode)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab   = regexp.MustCompile(`(?m)^\t.+`)
	reFirst = regexp.MustCompile(`(?m)^(\S+:\d+:\d+: )?([^\t\n].*)$`)
)

// colorize adds ANSI color codes to the message. The message of the first
// line of each error is red after its position, and the indented lines
// explaining it are dimmed.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = reFirst.ReplaceAll(m, []byte("${1}"+red+"${2}"+reset))
	m = reTab.ReplaceAll(m, []byte(dim+"${0}"+reset))
	return string(m)
}

// Package util holds the flag, assertion and file helpers shared by
// the commands in this repository.
package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

func init() {
	log.SetFlags(0)
}

// FlagParse installs a usage message naming the positional arguments
// and parses the command line.
func FlagParse(positional string, desc string) {
	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n", path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("\n%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}
			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n    %s\n", fl.Name, def, usage)
		})
		os.Exit(1)
	}
	flag.Parse()
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

func AssertLeastNArg(n int) {
	if flag.NArg() < n {
		flag.Usage()
	}
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

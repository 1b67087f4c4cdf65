package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/komkom/charstream/charstream"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	lossy   = kingpin.Flag(`lossy`, `substitute invalid byte sequences with U+FFFD`).Short('l').Bool()
	escape  = kingpin.Flag(`escape`, `print one U+XXXX code point per line`).Short('e').Bool()
	retries = kingpin.Flag(`retries`, `max consecutive interrupted reads before giving up`).Default(`5`).Int()
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
}

func main() {
	kingpin.Parse()

	if err := run(os.Stdin, os.Stdout, *lossy, *escape, *retries); err != nil {
		log.Errorf(`charstream failed: %v`, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, lossy bool, escape bool, retries int) error {

	it := charstream.NewIterator(charstream.New(in, lossy), retries)
	buf := bufio.NewWriter(out)

	for it.Next() {

		if err := it.Err(); err != nil {
			log.Errorf(`skipping element: %v`, err)
			continue
		}

		if escape {
			fmt.Fprintf(buf, "U+%04X\n", it.Char())
			continue
		}
		buf.WriteRune(it.Char())
	}

	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, `flushing output failed`)
	}
	return nil
}

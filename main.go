package main

import (
	"flag"
	"io"
	"os"

	"github.com/komkom/charstream/charstream"
)

var strict bool

func init() {
	flag.BoolVar(&strict, `s`, false, `fail on invalid byte sequences instead of substituting U+FFFD`)
}

func main() {
	flag.Parse()

	r := charstream.NewReader(charstream.New(os.Stdin, !strict))

	io.Copy(os.Stdout, r)

	if !r.Done() {
		os.Exit(1)
	}
}

package main

import (
	"bufio"
	"io"

	"braces.dev/errtrace"
)

// eachInput calls fn for every argument, or for every line of r if there are none.
func eachInput(args []string, r io.Reader, fn func(s string) error) error {
	if len(args) > 0 {
		for _, s := range args {
			if err := fn(s); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		if err := fn(sc.Text()); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(sc.Err())
}

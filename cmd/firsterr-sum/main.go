// Sums integer lines from the given files, stopping at the first malformed
// line. Demonstrates firsterr over a genuinely lazy source: a bad line late
// in the file is still reported even though summing stopped reading values at
// it, and nothing is read past it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/anacrolix/tagflag"

	"github.com/anacrolix/firsterr"
)

func main() {
	log.SetFlags(log.Flags() | log.Lshortfile)
	var args struct {
		tagflag.StartPos
		Files []string `arity:"+"`
	}
	tagflag.Parse(&args, tagflag.Description("Sums the integer lines of FILES, reporting the first malformed line."))
	var total int64
	for _, path := range args.Files {
		sum, err := sumFile(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		total += sum
	}
	fmt.Println(total)
}

func sumFile(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return firsterr.OrElse(intLines(f), func(it *firsterr.Iter[int64]) (sum int64) {
		for v := range it.Values() {
			sum += v
		}
		return
	})
}

// Parses r line by line as base-10 integers, yielding each value or the
// parse error annotated with its line number.
func intLines(r io.Reader) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		sc := bufio.NewScanner(r)
		line := 0
		for sc.Scan() {
			line++
			v, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
			if err != nil {
				err = fmt.Errorf("line %d: %w", line, err)
			}
			if !yield(v, err) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(0, err)
		}
	}
}

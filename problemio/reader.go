// Package problemio reads and writes the text problem-file format: an item
// count, one "id value weight" line per item, and a trailing capacity line.
// Grounded on original_source/src/solver/problem.rs's Problem::read.
package problemio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sallysoul/knapsack"
)

// ErrMalformed is returned when a problem file's tokens cannot be parsed as
// the expected nonnegative decimal integers.
var ErrMalformed = errors.New("problemio: malformed problem file")

// Read parses a Problem from r, in the format:
//
//	<item_count>
//	<id> <value> <weight>        × item_count
//	<capacity>
//
// Tokens are whitespace-separated nonnegative decimal integers; extra
// trailing whitespace on any line is tolerated.
func Read(r io.Reader) (knapsack.Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	itemCount, err := readUint(scanner, "item count")
	if err != nil {
		return knapsack.Problem{}, err
	}

	items := make([]knapsack.Item, 0, itemCount)
	for i := uint64(0); i < itemCount; i++ {
		if !scanner.Scan() {
			return knapsack.Problem{}, errors.Wrapf(ErrMalformed, "expected item line %d, got EOF", i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return knapsack.Problem{}, errors.Wrapf(ErrMalformed, "item line %d has %d fields, want 3", i, len(fields))
		}

		id, err := parseUint(fields[0])
		if err != nil {
			return knapsack.Problem{}, errors.Wrapf(ErrMalformed, "item line %d: id %q", i, fields[0])
		}
		value, err := parseUint(fields[1])
		if err != nil {
			return knapsack.Problem{}, errors.Wrapf(ErrMalformed, "item line %d: value %q", i, fields[1])
		}
		weight, err := parseUint(fields[2])
		if err != nil {
			return knapsack.Problem{}, errors.Wrapf(ErrMalformed, "item line %d: weight %q", i, fields[2])
		}

		items = append(items, knapsack.Item{ID: id, Value: value, Weight: weight})
	}

	capacity, err := readUint(scanner, "capacity")
	if err != nil {
		return knapsack.Problem{}, err
	}

	if err := scanner.Err(); err != nil {
		return knapsack.Problem{}, errors.Wrap(err, "problemio: scanning input")
	}

	return knapsack.Problem{Items: items, Capacity: capacity}, nil
}

func readUint(scanner *bufio.Scanner, label string) (uint64, error) {
	if !scanner.Scan() {
		return 0, errors.Wrapf(ErrMalformed, "expected %s, got EOF", label)
	}
	v, err := parseUint(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s: %v", label, err)
	}
	return v, nil
}

func parseUint(token string) (uint64, error) {
	return strconv.ParseUint(token, 10, 64)
}

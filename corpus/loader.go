package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"go.uber.org/multierr"
	"golang.org/x/text/unicode/norm"
)

// Pair is a single training word pair, surface form wordA rewritten
// into wordB.
type Pair struct {
	WordA string
	WordB string
	// Source identifies where the pair was read from, for diagnostics.
	Source string
	// Line is the 1-based line number within Source.
	Line int
}

// LoadFile reads one corpus file of comma-separated "wordA,wordB"
// lines through proc, returning every pair that parsed successfully.
// Lines that fail to parse are collected and returned together as a
// single multierr error; a non-nil error does not mean pairs is empty.
func LoadFile(path string, proc Processor) (pairs []Pair, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	var errs error
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		pair, parseErr := parseLine(raw, proc)
		if parseErr != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s:%d: %w", path, lineNo, parseErr))
			continue
		}
		pair.Source = path
		pair.Line = lineNo
		pairs = append(pairs, pair)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		errs = multierr.Append(errs, scanErr)
	}
	return pairs, errs
}

// LoadAll reads every file in paths through proc, aggregating pairs
// and errors across all of them.
func LoadAll(paths []string, proc Processor) ([]Pair, error) {
	var all []Pair
	var errs error
	for _, path := range paths {
		pairs, err := LoadFile(path, proc)
		all = append(all, pairs...)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return all, errs
}

func parseLine(raw string, proc Processor) (Pair, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("expected \"wordA,wordB\", got %q", raw)
	}

	// Fields are validated in their raw, un-processed surface form: a
	// Processor (e.g. HangeulComposer) may legitimately decompose
	// precomposed syllables into a form that is no longer NFC-normal,
	// which is expected downstream rather than a corpus defect.
	trimmedA := strings.TrimSpace(parts[0])
	trimmedB := strings.TrimSpace(parts[1])
	if err := validateSingleWord(trimmedA); err != nil {
		return Pair{}, fmt.Errorf("left field: %w", err)
	}
	if err := validateSingleWord(trimmedB); err != nil {
		return Pair{}, fmt.Errorf("right field: %w", err)
	}

	return Pair{WordA: proc.ProcessInput(parts[0]), WordB: proc.ProcessInput(parts[1])}, nil
}

// validateSingleWord rejects empty fields and fields that segment into
// more than one Unicode word-break token, catching corpus lines where
// a field accidentally contains multiple space-separated words.
func validateSingleWord(s string) error {
	if s == "" {
		return errors.New("empty word")
	}
	if !norm.NFC.IsNormalString(s) {
		return fmt.Errorf("word %q is not NFC-normalized", s)
	}

	tokens := 0
	seg := words.FromString(s)
	for seg.Next() {
		if strings.TrimSpace(seg.Value()) == "" {
			continue
		}
		tokens++
	}
	if tokens > 1 {
		return fmt.Errorf("word %q contains more than one token", s)
	}
	return nil
}

// Package corpus discovers and parses training word-pair corpora:
// files of comma-separated "wordA,wordB" lines, optionally pre- and
// post-processed by a chain of Processors before the pair reaches the
// alignment core.
package corpus

// Processor transforms a word on its way into training (ProcessInput)
// and, symmetrically, on its way back out when rendering a result
// against the original surface form (ProcessOutput).
type Processor interface {
	ProcessInput(s string) string
	ProcessOutput(s string) string
}

// StripProcessor trims leading and trailing whitespace from input; it
// leaves output untouched, since a stripped word has nothing to
// restore.
type StripProcessor struct{}

func (StripProcessor) ProcessInput(s string) string  { return trimSpace(s) }
func (StripProcessor) ProcessOutput(s string) string { return s }

// CombinedProcessor chains Processors: inputs flow through them in
// order, outputs flow back through them in reverse.
type CombinedProcessor struct {
	processors []Processor
}

// NewCombinedProcessor builds a CombinedProcessor from procs, applied
// input-side in the given order and output-side in reverse.
func NewCombinedProcessor(procs ...Processor) *CombinedProcessor {
	cp := make([]Processor, len(procs))
	copy(cp, procs)
	return &CombinedProcessor{processors: cp}
}

func (c *CombinedProcessor) ProcessInput(s string) string {
	for _, p := range c.processors {
		s = p.ProcessInput(s)
	}
	return s
}

func (c *CombinedProcessor) ProcessOutput(s string) string {
	for i := len(c.processors) - 1; i >= 0; i-- {
		s = c.processors[i].ProcessOutput(s)
	}
	return s
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

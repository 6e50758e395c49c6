package jsonrepair

// LogEntry records a single repair decision for diagnostic purposes,
// pairing a short description of the heuristic that fired with a window of
// surrounding input text.
type LogEntry struct {
	Context string
	Text    string
}

// parser holds everything a single Parse call shares across its recursive
// descent: the scanner, the context stack, and (optionally) a log sink. It
// owns the context stack; individual component parsers borrow it and must
// push/pop symmetrically.
type parser struct {
	s       *scanner
	ctx     *contextStack
	logging bool
	logs    []LogEntry
}

func newParser(input string, logging bool) *parser {
	return &parser{
		s:       newScanner(input),
		ctx:     newContextStack(),
		logging: logging,
	}
}

const logWindow = 10

func (p *parser) log(text string) {
	if !p.logging {
		return
	}
	start := p.s.pos - logWindow
	if start < 0 {
		start = 0
	}
	end := p.s.pos + logWindow
	if end > p.s.len() {
		end = p.s.len()
	}
	p.logs = append(p.logs, LogEntry{Text: text, Context: p.s.sliceString(start, end)})
}

package text

import (
	"strings"
	"unicode"
)

// item is one grapheme cluster plus any SGR codes that preceded it, along
// with the SGR state as it stood immediately after the cluster was
// consumed. Non-SGR escape sequences (OSC-8, APC, etc.) ride along as part
// of codes but do not affect the tracker.
type item struct {
	codes      string
	cluster    string
	width      int
	isSpace    bool
	afterState SGRState
}

// tokenize scans a single physical line (no literal '\n') into items,
// threading tracker through every SGR sequence encountered in order.
func tokenize(line string, tracker *SGRState) []item {
	var items []item
	var pendingCodes strings.Builder
	i := 0
	for i < len(line) {
		if line[i] == 0x1b {
			if n, params, ok := scanSGR(line, i); ok {
				tracker.Apply(params)
				pendingCodes.WriteString(line[i : i+n])
				i += n
				continue
			}
			n := sequenceLen(line[i:])
			if n > 0 {
				pendingCodes.WriteString(line[i : i+n])
				i += n
				continue
			}
		}
		cluster, size := nextGrapheme(line[i:])
		items = append(items, item{
			codes:      pendingCodes.String(),
			cluster:    cluster,
			width:      ClusterWidth(cluster),
			isSpace:    isWhitespaceCluster(cluster),
			afterState: *tracker,
		})
		pendingCodes.Reset()
		i += size
	}
	if pendingCodes.Len() > 0 {
		items = append(items, item{codes: pendingCodes.String(), afterState: *tracker})
	}
	return items
}

func (it item) raw() string {
	return it.codes + it.cluster
}

// token is a maximal run of items sharing the same isSpace classification.
type token struct {
	items      []item
	width      int
	isSpace    bool
	afterState SGRState
}

func (t token) raw() string {
	var b strings.Builder
	for _, it := range t.items {
		b.WriteString(it.raw())
	}
	return b.String()
}

func tokenizeLine(line string, tracker *SGRState) []token {
	items := tokenize(line, tracker)
	var tokens []token
	for _, it := range items {
		if it.cluster == "" {
			// trailing bare codes with no following grapheme: attach to the
			// last token, or start a code-only token.
			if len(tokens) > 0 {
				last := &tokens[len(tokens)-1]
				last.items = append(last.items, it)
				last.afterState = it.afterState
				continue
			}
			tokens = append(tokens, token{items: []item{it}, afterState: it.afterState})
			continue
		}
		if len(tokens) > 0 && tokens[len(tokens)-1].isSpace == it.isSpace {
			last := &tokens[len(tokens)-1]
			last.items = append(last.items, it)
			last.width += it.width
			last.afterState = it.afterState
			continue
		}
		tokens = append(tokens, token{items: []item{it}, width: it.width, isSpace: it.isSpace, afterState: it.afterState})
	}
	return tokens
}

// Wrap splits text on literal newlines, then word-wraps each resulting
// line to width. Tokens that themselves exceed width are broken at
// grapheme boundaries. SGR state is tracked across the whole input: a
// forced line break re-emits the underline-off code (CSI 24m) at the
// truncation point and the currently active attributes at the start of
// the next line; a literal newline carries active attributes to the next
// physical line the same way.
func Wrap(text string, width int) []string {
	if width <= 0 {
		width = 1
	}
	var out []string
	tracker := SGRState{}
	physicalLines := strings.Split(text, "\n")
	for _, line := range physicalLines {
		wrapped := wrapPhysicalLine(line, width, &tracker)
		out = append(out, wrapped...)
	}
	return out
}

func wrapPhysicalLine(line string, width int, tracker *SGRState) []string {
	startState := *tracker
	tokens := tokenizeLine(line, tracker)

	var lines []string
	var cur strings.Builder
	curWidth := 0
	haveContent := false
	var pending *token
	lineState := startState
	cur.WriteString(startState.Sequence())

	flush := func(forced bool) {
		if forced && lineState.Underline {
			cur.WriteString(ResetUnderline)
		}
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
		haveContent = false
		pending = nil
	}

	for _, tok := range tokens {
		if tok.isSpace {
			pending = &tok
			continue
		}
		extra := tok.width
		if pending != nil {
			extra += pending.width
		}
		if haveContent && curWidth+extra > width {
			flush(true)
			prefix := lineState.Sequence()
			if prefix != "" {
				cur.WriteString(prefix)
			}
			pending = nil
		} else if pending != nil {
			if haveContent {
				cur.WriteString(pending.raw())
				curWidth += pending.width
			}
			pending = nil
		}
		if tok.width > width {
			cur, curWidth, haveContent, lines = breakLong(tok, width, &lineState, cur, curWidth, haveContent, lines)
		} else {
			cur.WriteString(tok.raw())
			curWidth += tok.width
			haveContent = true
			lineState = tok.afterState
		}
	}
	lines = append(lines, strings.TrimRight(cur.String(), " \t"))
	if len(lines) == 1 && lines[0] == "" && len(tokens) == 0 {
		lines[0] = ""
	}
	*tracker = lineState
	return trimTrailingOnAll(lines)
}

// breakLong character-breaks a token wider than width, emitting the
// underline-reset/active-state re-emit dance at every internal break the
// same way a word-boundary break does.
func breakLong(tok token, width int, lineState *SGRState, cur strings.Builder, curWidth int, haveContent bool, lines []string) (strings.Builder, int, bool, []string) {
	state := *lineState
	for _, it := range tok.items {
		if it.cluster == "" {
			cur.WriteString(it.raw())
			state = it.afterState
			continue
		}
		if curWidth+it.width > width && haveContent {
			if state.Underline {
				cur.WriteString(ResetUnderline)
			}
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
			if prefix := state.Sequence(); prefix != "" {
				cur.WriteString(prefix)
			}
			haveContent = false
		}
		cur.WriteString(it.raw())
		curWidth += it.width
		haveContent = true
		state = it.afterState
	}
	*lineState = state
	return cur, curWidth, haveContent, lines
}

func trimTrailingOnAll(lines []string) []string {
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return lines
}

func nextGrapheme(s string) (cluster string, size int) {
	clusters := GraphemeClusters(s)
	if len(clusters) == 0 {
		return "", 1
	}
	c := clusters[0]
	return c, len(c)
}

// isWhitespaceCluster reports whether a grapheme cluster is whitespace for
// wrap/word-motion purposes.
func isWhitespaceCluster(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return cluster != ""
}

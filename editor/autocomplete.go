package editor

// Suggestion is one autocomplete candidate: the text that replaces the
// current token and the label shown in the popover.
type Suggestion struct {
	Replacement string
	DisplayLabel string
}

// Completer is the capability an embedder provides for tab-completion.
// Complete is invoked on demand (an explicit key), never on every
// keystroke. It runs synchronously inside HandleInput, which does not
// return until Complete does.
type Completer interface {
	Complete(line string, cursorCol int) []Suggestion
}

// autocompleteState is the editor's open/closed popover state machine:
// closed, or open over a fixed suggestion list with a selected index.
type autocompleteState struct {
	open        bool
	suggestions []Suggestion
	selected    int
	// tokenStart/tokenEnd bound the token being replaced, in rune offsets
	// on the line the popover was opened against.
	tokenStart, tokenEnd int
	line                 int
}

func closedAutocomplete() autocompleteState { return autocompleteState{} }

// tokenBounds finds the run of non-whitespace characters touching col on
// line, for the completer to replace.
func tokenBounds(line string, col int) (start, end int) {
	runes := []rune(line)
	start, end = col, col
	for start > 0 && !isWhitespace(runes[start-1]) {
		start--
	}
	for end < len(runes) && !isWhitespace(runes[end]) {
		end++
	}
	return start, end
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

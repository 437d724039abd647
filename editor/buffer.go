package editor

import "strings"

// Buffer is immutable text content stored as one string per logical line.
// Every mutator returns a new Buffer; the zero value is not valid, use
// NewBuffer.
type Buffer struct {
	lines []string
}

// NewBuffer returns an empty single-line buffer.
func NewBuffer() *Buffer { return &Buffer{lines: []string{""}} }

// NewBufferFromString splits text on '\n' into a buffer.
func NewBufferFromString(text string) *Buffer {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Buffer{lines: lines}
}

// Lines returns a defensive copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Line returns a single line, or "" if row is out of bounds.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// String joins every line with '\n'.
func (b *Buffer) String() string { return strings.Join(b.lines, "\n") }

// IsEmpty reports whether the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool { return len(b.lines) == 1 && b.lines[0] == "" }

func (b *Buffer) clone() *Buffer {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return &Buffer{lines: out}
}

// InsertChar inserts ch at (row, col), clamping col to the line's length.
func (b *Buffer) InsertChar(row, col int, ch rune) *Buffer {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c
	}
	line := []rune(c.lines[row])
	if col > len(line) {
		col = len(line)
	}
	if col < 0 {
		col = 0
	}
	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, ch)
	newLine = append(newLine, line[col:]...)
	c.lines[row] = string(newLine)
	return c
}

// InsertString inserts s (which may itself contain newlines) at (row, col).
func (b *Buffer) InsertString(row, col int, s string) (*Buffer, Position) {
	c := b
	for _, ch := range s {
		if ch == '\n' {
			c = c.InsertNewline(row, col)
			row++
			col = 0
			continue
		}
		c = c.InsertChar(row, col, ch)
		col++
	}
	return c, Position{Line: row, Col: col}
}

// DeleteChar removes the rune at (row, col).
func (b *Buffer) DeleteChar(row, col int) *Buffer {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c
	}
	line := []rune(c.lines[row])
	if col < 0 || col >= len(line) {
		return c
	}
	newLine := make([]rune, 0, len(line)-1)
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, line[col+1:]...)
	c.lines[row] = string(newLine)
	return c
}

// InsertNewline splits the line at (row, col) into two lines.
func (b *Buffer) InsertNewline(row, col int) *Buffer {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c
	}
	line := []rune(c.lines[row])
	if col > len(line) {
		col = len(line)
	}
	before, after := string(line[:col]), string(line[col:])

	newLines := make([]string, 0, len(c.lines)+1)
	newLines = append(newLines, c.lines[:row]...)
	newLines = append(newLines, before, after)
	newLines = append(newLines, c.lines[row+1:]...)
	c.lines = newLines
	return c
}

// DeleteLine removes row entirely, returning the new buffer and the
// removed text. The buffer always keeps at least one line.
func (b *Buffer) DeleteLine(row int) (*Buffer, string) {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c, ""
	}
	deleted := c.lines[row]
	if len(c.lines) == 1 {
		c.lines[0] = ""
		return c, deleted
	}
	newLines := make([]string, 0, len(c.lines)-1)
	newLines = append(newLines, c.lines[:row]...)
	newLines = append(newLines, c.lines[row+1:]...)
	c.lines = newLines
	return c, deleted
}

// DeleteToLineEnd removes everything on row from col onward, returning the
// new buffer and the removed text.
func (b *Buffer) DeleteToLineEnd(row, col int) (*Buffer, string) {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c, ""
	}
	line := []rune(c.lines[row])
	if col < 0 || col >= len(line) {
		return c, ""
	}
	deleted := string(line[col:])
	c.lines[row] = string(line[:col])
	return c, deleted
}

// DeleteToLineStart removes everything on row before col, returning the new
// buffer and the removed text.
func (b *Buffer) DeleteToLineStart(row, col int) (*Buffer, string) {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c, ""
	}
	line := []rune(c.lines[row])
	if col > len(line) {
		col = len(line)
	}
	if col <= 0 {
		return c, ""
	}
	deleted := string(line[:col])
	c.lines[row] = string(line[col:])
	return c, deleted
}

// SetLine replaces row's content wholesale.
func (b *Buffer) SetLine(row int, text string) *Buffer {
	c := b.clone()
	if row < 0 || row >= len(c.lines) {
		return c
	}
	c.lines[row] = text
	return c
}

// JoinWithNextLine appends row+1's content to row and removes row+1.
func (b *Buffer) JoinWithNextLine(row int) *Buffer {
	c := b.clone()
	if row < 0 || row >= len(c.lines)-1 {
		return c
	}
	c.lines[row] += c.lines[row+1]
	newLines := make([]string, 0, len(c.lines)-1)
	newLines = append(newLines, c.lines[:row+1]...)
	newLines = append(newLines, c.lines[row+2:]...)
	c.lines = newLines
	return c
}

// TextInRange returns the text spanned by r.
func (b *Buffer) TextInRange(r Range) string {
	if r.Start.Line == r.End.Line {
		line := []rune(b.Line(r.Start.Line))
		start, end := r.Start.Col, r.End.Col
		if start > len(line) {
			start = len(line)
		}
		if end > len(line) {
			end = len(line)
		}
		if start >= end {
			return ""
		}
		return string(line[start:end])
	}

	var out strings.Builder
	first := []rune(b.Line(r.Start.Line))
	if r.Start.Col < len(first) {
		out.WriteString(string(first[r.Start.Col:]))
	}
	out.WriteRune('\n')
	for row := r.Start.Line + 1; row < r.End.Line; row++ {
		out.WriteString(b.Line(row))
		out.WriteRune('\n')
	}
	last := []rune(b.Line(r.End.Line))
	end := r.End.Col
	if end > len(last) {
		end = len(last)
	}
	out.WriteString(string(last[:end]))
	return out.String()
}

// DeleteRange removes the text spanned by r, returning the new buffer and
// the removed text.
func (b *Buffer) DeleteRange(r Range) (*Buffer, string) {
	deleted := b.TextInRange(r)
	if r.Start.Line == r.End.Line {
		return b.deleteSingleLineRange(r), deleted
	}

	c := b.clone()
	startLine := []rune(c.lines[r.Start.Line])
	endLine := []rune(c.lines[r.End.Line])
	startCol := r.Start.Col
	if startCol > len(startLine) {
		startCol = len(startLine)
	}
	endCol := r.End.Col
	if endCol > len(endLine) {
		endCol = len(endLine)
	}
	merged := string(startLine[:startCol]) + string(endLine[endCol:])

	newLines := make([]string, 0, len(c.lines)-(r.End.Line-r.Start.Line))
	newLines = append(newLines, c.lines[:r.Start.Line]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, c.lines[r.End.Line+1:]...)
	c.lines = newLines
	return c, deleted
}

func (b *Buffer) deleteSingleLineRange(r Range) *Buffer {
	c := b.clone()
	line := []rune(c.Line(r.Start.Line))
	start, end := r.Start.Col, r.End.Col
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	if start >= end {
		return c
	}
	newLine := make([]rune, 0, len(line)-(end-start))
	newLine = append(newLine, line[:start]...)
	newLine = append(newLine, line[end:]...)
	c.lines[r.Start.Line] = string(newLine)
	return c
}

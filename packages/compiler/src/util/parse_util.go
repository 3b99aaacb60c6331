package util

import (
	"fmt"
	"strings"
)

// ParseLocation represents a location in the source file
type ParseLocation struct {
	File   *ParseSourceFile
	Offset int
	Line   int
	Col    int
}

// NewParseLocation creates a new ParseLocation
func NewParseLocation(file *ParseSourceFile, offset, line, col int) *ParseLocation {
	return &ParseLocation{
		File:   file,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

// String returns a string representation of the location, 1-based like editors show it
func (p *ParseLocation) String() string {
	if p.Offset >= 0 {
		return fmt.Sprintf("%s@%d:%d", p.File.URL, p.Line+1, p.Col+1)
	}
	return p.File.URL
}

// MoveBy moves the location forward by delta bytes
func (p *ParseLocation) MoveBy(delta int) *ParseLocation {
	source := p.File.Content
	offset := p.Offset
	line := p.Line
	col := p.Col

	for offset < len(source) && delta > 0 {
		ch := source[offset]
		offset++
		delta--
		if ch == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}

	return NewParseLocation(p.File, offset, line, col)
}

// GetContext returns the source around the location, up to maxChars on
// each side and never crossing more than maxLines line breaks.
func (p *ParseLocation) GetContext(maxChars, maxLines int) *Context {
	content := p.File.Content
	if p.Offset < 0 || len(content) == 0 {
		return nil
	}
	offset := p.Offset
	if offset > len(content) {
		offset = len(content)
	}

	start := offset
	lines := 0
	for chars := 0; chars < maxChars && start > 0; chars++ {
		if content[start-1] == '\n' {
			lines++
			if lines == maxLines {
				break
			}
		}
		start--
	}

	end := offset
	lines = 0
	for chars := 0; chars < maxChars && end < len(content); chars++ {
		if content[end] == '\n' {
			lines++
			if lines == maxLines {
				break
			}
		}
		end++
	}

	return &Context{
		Before: content[start:offset],
		After:  content[offset:end],
	}
}

// Context represents source context around a location
type Context struct {
	Before string
	After  string
}

// ParseSourceFile represents a source file
type ParseSourceFile struct {
	Content string
	URL     string
}

// NewParseSourceFile creates a new ParseSourceFile
func NewParseSourceFile(content, url string) *ParseSourceFile {
	return &ParseSourceFile{
		Content: content,
		URL:     url,
	}
}

// Span returns the source span between two byte offsets of the file
func (f *ParseSourceFile) Span(start, end int) *ParseSourceSpan {
	origin := NewParseLocation(f, 0, 0, 0)
	from := origin.MoveBy(start)
	return NewParseSourceSpan(from, from.MoveBy(end-start))
}

// ParseSourceSpan represents a span of source code
type ParseSourceSpan struct {
	Start *ParseLocation
	End   *ParseLocation
}

// NewParseSourceSpan creates a new ParseSourceSpan
func NewParseSourceSpan(start, end *ParseLocation) *ParseSourceSpan {
	return &ParseSourceSpan{
		Start: start,
		End:   end,
	}
}

// String returns the source code in this span
func (p *ParseSourceSpan) String() string {
	return p.Start.File.Content[p.Start.Offset:p.End.Offset]
}

// ParseErrorLevel represents the level of a parse error
type ParseErrorLevel int

const (
	ParseErrorLevelWarning ParseErrorLevel = iota
	ParseErrorLevelError
)

func (l ParseErrorLevel) String() string {
	if l == ParseErrorLevelWarning {
		return "warning"
	}
	return "error"
}

// ParseError represents a parse error
type ParseError struct {
	Span  *ParseSourceSpan
	Msg   string
	Level ParseErrorLevel
}

// NewParseError creates a new ParseError
func NewParseError(span *ParseSourceSpan, msg string) *ParseError {
	return &ParseError{
		Span:  span,
		Msg:   msg,
		Level: ParseErrorLevelError,
	}
}

// Error implements the error interface
func (p *ParseError) Error() string {
	return p.String()
}

// ContextualMessage returns the error message with context
func (p *ParseError) ContextualMessage() string {
	if p.Span == nil || p.Span.Start == nil {
		return p.Msg
	}
	ctx := p.Span.Start.GetContext(100, 3)
	if ctx != nil {
		return fmt.Sprintf(`%s ("%s[%s ->]%s")`, p.Msg, ctx.Before, strings.ToUpper(p.Level.String()), ctx.After)
	}
	return p.Msg
}

// String returns a string representation of the error
func (p *ParseError) String() string {
	if p.Span == nil || p.Span.Start == nil {
		return p.Msg
	}
	return fmt.Sprintf("%s: %s", p.ContextualMessage(), p.Span.Start)
}

// ParseErrors is the list of errors produced by one parse
type ParseErrors []*ParseError

// Error implements the error interface
func (e ParseErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns nil for an empty list, so callers can return it as an error
func (e ParseErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

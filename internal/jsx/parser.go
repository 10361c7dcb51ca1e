package jsx

import (
	"bytes"
	"fmt"
)

// SyntaxError reports source the scanner cannot make sense of.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// token classes used to decide whether '/' starts a regex and '<' starts JSX.
type tokenClass int

const (
	tokNone tokenClass = iota
	tokPunct
	tokKeyword
	tokValue
)

// keywords after which an expression (and so a regex or JSX) may start.
var exprKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true, "default": true,
	"extends": true,
}

// keywords whose parenthesized header is followed by a statement, not a value.
var headerKeywords = map[string]bool{
	"if": true, "while": true, "for": true, "with": true,
}

var declKeywords = map[string]bool{
	"function": true, "class": true, "const": true, "let": true, "var": true,
}

type parser struct {
	src  []byte
	pos  int
	file *File

	// sink receives elements found while scanning code; parent is the
	// element owning the current expression container, if any.
	sink   *[]*Element
	parent *Element
}

// Parse scans src into a File.
func Parse(src []byte) (*File, error) {
	f := &File{Src: src}
	p := &parser{src: src, file: f, sink: &f.Elements}
	if err := p.scanCode(0, true); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) errorf(offset int, format string, args ...interface{}) error {
	return &SyntaxError{
		Line: bytes.Count(p.src[:min(offset, len(p.src))], []byte("\n")) + 1,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func closerFor(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

// scanCode scans code until the matching closer (consumed) or, when closer
// is 0, until end of input.
func (p *parser) scanCode(closer byte, topLevel bool) error {
	prev := tokNone
	openedAt := p.pos - 1

	// header is set right after a statement keyword such as if.
	header := false

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		afterHeader := header
		if !isSpace(c) && c != '/' {
			header = false
		}

		switch {
		case isSpace(c):
			p.pos++

		case c == '/' && p.peek(1) == '/':
			p.skipLineComment()

		case c == '/' && p.peek(1) == '*':
			if err := p.skipBlockComment(); err != nil {
				return err
			}

		case c == '\'' || c == '"':
			if err := p.skipString(c); err != nil {
				return err
			}
			prev = tokValue

		case c == '`':
			if err := p.skipTemplate(); err != nil {
				return err
			}
			prev = tokValue

		case c == '/':
			if prev == tokValue {
				p.pos++
				prev = tokPunct
				continue
			}
			if err := p.skipRegex(); err != nil {
				return err
			}
			prev = tokValue

		case c == '(' || c == '[' || c == '{':
			p.pos++
			if err := p.scanCode(closerFor(c), false); err != nil {
				return err
			}
			if c == '{' || (c == '(' && afterHeader) {
				prev = tokPunct
			} else {
				prev = tokValue
			}

		case c == ')' || c == ']' || c == '}':
			if c != closer {
				return p.errorf(p.pos, "unexpected %q", c)
			}
			p.pos++
			return nil

		case c == '<' && prev != tokValue:
			el, ok := p.tryElement()
			if !ok {
				p.pos++
				prev = tokPunct
				continue
			}
			el.Parent = p.parent
			*p.sink = append(*p.sink, el)
			prev = tokValue

		case isIdentStart(c):
			start := p.pos
			word := p.readIdent()
			if topLevel {
				if handled, err := p.topLevelWord(word, start); err != nil {
					return err
				} else if handled {
					prev = tokKeyword
					continue
				}
			}
			if exprKeywords[word] {
				prev = tokKeyword
			} else if headerKeywords[word] {
				prev = tokKeyword
				header = true
			} else {
				prev = tokValue
			}

		case c >= '0' && c <= '9':
			for p.pos < len(p.src) && (isIdentPart(p.src[p.pos]) || p.src[p.pos] == '.') {
				p.pos++
			}
			prev = tokValue

		default:
			p.pos++
			prev = tokPunct
		}
	}

	if closer != 0 {
		return p.errorf(openedAt, "unclosed bracket, expected %q", closer)
	}
	return nil
}

func (p *parser) peek(n int) byte {
	if p.pos+n < len(p.src) {
		return p.src[p.pos+n]
	}
	return 0
}

func (p *parser) readIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// skipTrivia skips whitespace and comments.
func (p *parser) skipTrivia() error {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case isSpace(c):
			p.pos++
		case c == '/' && p.peek(1) == '/':
			p.skipLineComment()
		case c == '/' && p.peek(1) == '*':
			if err := p.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) skipLineComment() {
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.pos++
	}
}

func (p *parser) skipBlockComment() error {
	start := p.pos
	end := bytes.Index(p.src[p.pos+2:], []byte("*/"))
	if end < 0 {
		return p.errorf(start, "unterminated comment")
	}
	p.pos += 2 + end + 2
	return nil
}

func (p *parser) skipString(quote byte) error {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
		case quote:
			p.pos++
			return nil
		case '\n':
			return p.errorf(start, "unterminated string")
		default:
			p.pos++
		}
	}
	return p.errorf(start, "unterminated string")
}

func (p *parser) skipTemplate() error {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
		case '`':
			p.pos++
			return nil
		case '$':
			if p.peek(1) == '{' {
				p.pos += 2
				if err := p.scanCode('}', false); err != nil {
					return err
				}
				continue
			}
			p.pos++
		default:
			p.pos++
		}
	}
	return p.errorf(start, "unterminated template literal")
}

func (p *parser) skipRegex() error {
	start := p.pos
	p.pos++
	inClass := false
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '\n':
			return p.errorf(start, "unterminated regular expression")
		case '/':
			if !inClass {
				p.pos++
				for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
					p.pos++
				}
				return nil
			}
		}
		p.pos++
	}
	return p.errorf(start, "unterminated regular expression")
}

// topLevelWord records imports, exports and declarations at the top level.
func (p *parser) topLevelWord(word string, start int) (bool, error) {
	switch {
	case word == "import":
		save := p.pos
		if err := p.skipTrivia(); err != nil {
			return false, err
		}
		if c := p.peek(0); c == '(' || c == '.' {
			p.pos = save
			return false, nil
		}
		imp, err := p.parseImport(start)
		if err != nil {
			return false, err
		}
		p.file.Imports = append(p.file.Imports, imp)
		return true, nil

	case word == "export":
		return true, p.parseExport()

	case declKeywords[word]:
		save := p.pos
		if err := p.skipTrivia(); err != nil {
			return false, err
		}
		if p.peek(0) == '*' {
			p.pos++
			if err := p.skipTrivia(); err != nil {
				return false, err
			}
		}
		if isIdentStart(p.peek(0)) {
			p.file.Decls = append(p.file.Decls, p.readIdent())
			return true, nil
		}
		p.pos = save
		return true, nil
	}
	return false, nil
}

func (p *parser) parseImport(start int) (*Import, error) {
	imp := &Import{Start: start}

	if bytes.HasPrefix(p.src[p.pos:], []byte("type")) && p.pos+4 < len(p.src) && !isIdentPart(p.src[p.pos+4]) {
		save := p.pos
		p.pos += 4
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if c := p.peek(0); c == '{' || c == '*' || (isIdentStart(c) && !p.atWord("from")) {
			imp.TypeOnly = true
		} else {
			p.pos = save
		}
	}

	if c := p.peek(0); c != '\'' && c != '"' {
		if isIdentStart(c) {
			imp.Default = p.readIdent()
			if err := p.skipTrivia(); err != nil {
				return nil, err
			}
			if p.peek(0) == ',' {
				p.pos++
				if err := p.skipTrivia(); err != nil {
					return nil, err
				}
			}
		}

		switch p.peek(0) {
		case '*':
			p.pos++
			if err := p.skipTrivia(); err != nil {
				return nil, err
			}
			if !p.atWord("as") {
				return nil, p.errorf(p.pos, "expected 'as' in namespace import")
			}
			p.pos += 2
			if err := p.skipTrivia(); err != nil {
				return nil, err
			}
			imp.Namespace = p.readIdent()
			if imp.Namespace == "" {
				return nil, p.errorf(p.pos, "expected namespace name")
			}
		case '{':
			names, err := p.parseNamedList()
			if err != nil {
				return nil, err
			}
			imp.Named = names
		}

		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if !p.atWord("from") {
			return nil, p.errorf(p.pos, "expected 'from' in import declaration")
		}
		p.pos += 4
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
	}

	q := p.peek(0)
	if q != '\'' && q != '"' {
		return nil, p.errorf(p.pos, "expected module source string")
	}
	srcStart := p.pos
	if err := p.skipString(q); err != nil {
		return nil, err
	}
	imp.Quote = q
	imp.Source = string(p.src[srcStart+1 : p.pos-1])
	imp.End = p.pos

	// Import attributes: with { type: 'json' }
	save := p.pos
	p.skipInlineSpace()
	if p.atWord("with") || p.atWord("assert") {
		p.readIdent()
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.peek(0) == '{' {
			p.pos++
			if err := p.scanCode('}', false); err != nil {
				return nil, err
			}
			imp.End = p.pos
			save = p.pos
		}
	}
	p.pos = save

	p.skipInlineSpace()
	if p.peek(0) == ';' {
		p.pos++
		imp.HasSemicolon = true
		imp.End = p.pos
	} else {
		p.pos = imp.End
	}
	return imp, nil
}

// parseNamedList parses `{ a, b as c, type d }` and returns local names.
func (p *parser) parseNamedList() ([]string, error) {
	p.pos++
	var names []string
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		switch c := p.peek(0); {
		case c == '}':
			p.pos++
			return names, nil
		case c == ',':
			p.pos++
		case isIdentStart(c):
			name := p.readIdent()
			if name == "type" {
				if err := p.skipTrivia(); err != nil {
					return nil, err
				}
				if isIdentStart(p.peek(0)) {
					name = p.readIdent()
				}
			}
			if err := p.skipTrivia(); err != nil {
				return nil, err
			}
			if p.atWord("as") {
				p.pos += 2
				if err := p.skipTrivia(); err != nil {
					return nil, err
				}
				name = p.readIdent()
			}
			if name == "" {
				return nil, p.errorf(p.pos, "expected binding name")
			}
			names = append(names, name)
		case c == '\'' || c == '"':
			// string export names: { "a-b" as ab }
			if err := p.skipString(c); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf(p.pos, "unexpected %q in import list", c)
		}
	}
}

// parseExport handles the word after `export`. Scanning resumes after the
// keyword so declarations and bodies are still visited.
func (p *parser) parseExport() error {
	if err := p.skipTrivia(); err != nil {
		return err
	}

	switch {
	case p.atWord("default"):
		start := p.pos
		p.pos += len("default")
		exp := &DefaultExport{Kind: ExportAnonymous, Start: start}

		save := p.pos
		if err := p.skipTrivia(); err != nil {
			return err
		}
		if p.atWord("async") {
			p.pos += len("async")
			if err := p.skipTrivia(); err != nil {
				return err
			}
		}
		switch {
		case p.atWord("function"):
			exp.Kind = ExportFunction
			exp.Name = p.declName(len("function"))
		case p.atWord("class"):
			exp.Kind = ExportClass
			exp.Name = p.declName(len("class"))
		case isIdentStart(p.peek(0)):
			name := p.readIdent()
			if p.atStatementEnd() {
				exp.Kind = ExportIdentifier
				exp.Name = name
			}
		}
		if exp.Name == "" {
			exp.Kind = ExportAnonymous
		}
		p.file.DefaultExport = exp
		p.pos = save
		return nil

	case p.peek(0) == '{':
		save := p.pos
		p.pos++
		for {
			if err := p.skipTrivia(); err != nil {
				return err
			}
			c := p.peek(0)
			if c == '}' || c == 0 {
				break
			}
			if c == ',' {
				p.pos++
				continue
			}
			if !isIdentStart(c) {
				p.pos++
				continue
			}
			start := p.pos
			local := p.readIdent()
			if err := p.skipTrivia(); err != nil {
				return err
			}
			if p.atWord("as") {
				p.pos += 2
				if err := p.skipTrivia(); err != nil {
					return err
				}
				if p.atWord("default") {
					p.file.DefaultExport = &DefaultExport{Kind: ExportIdentifier, Name: local, Start: start}
				}
				p.readIdent()
			}
		}
		p.pos = save
		return nil
	}
	return nil
}

// declName reads the name after a function or class keyword of length n.
func (p *parser) declName(n int) string {
	p.pos += n
	if p.skipTrivia() != nil {
		return ""
	}
	if p.peek(0) == '*' {
		p.pos++
		if p.skipTrivia() != nil {
			return ""
		}
	}
	if !isIdentStart(p.peek(0)) {
		return ""
	}
	name := p.readIdent()
	if name == "extends" || name == "implements" {
		return ""
	}
	return name
}

// atStatementEnd reports whether only a semicolon, a newline, a closing
// brace or end of input follows on the current line.
func (p *parser) atStatementEnd() bool {
	i := p.pos
	for i < len(p.src) && (p.src[i] == ' ' || p.src[i] == '\t') {
		i++
	}
	if i >= len(p.src) {
		return true
	}
	switch p.src[i] {
	case ';', '\n', '\r', '}':
		return true
	case '/':
		return i+1 < len(p.src) && (p.src[i+1] == '/' || p.src[i+1] == '*')
	}
	return false
}

func (p *parser) atWord(word string) bool {
	if !bytes.HasPrefix(p.src[p.pos:], []byte(word)) {
		return false
	}
	end := p.pos + len(word)
	return end >= len(p.src) || !isIdentPart(p.src[end])
}

func (p *parser) skipInlineSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

package jsx

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// indentUnit is the indentation added per nesting level.
const indentUnit = "  "

type edit struct {
	start, end int
	text       string
	seq        int
}

// Editor collects offset-based edits against a parsed file and applies them
// in a single pass. Offsets always refer to the original source.
type Editor struct {
	file  *File
	edits []edit
}

// NewEditor returns an editor for f.
func NewEditor(f *File) *Editor {
	return &Editor{file: f}
}

// Insert inserts text at offset. Inserts at the same offset keep call order.
func (e *Editor) Insert(offset int, text string) {
	e.Replace(offset, offset, text)
}

// Replace replaces src[start:end] with text.
func (e *Editor) Replace(start, end int, text string) {
	e.edits = append(e.edits, edit{start: start, end: end, text: text, seq: len(e.edits)})
}

// Bytes applies the edits and returns the new source.
func (e *Editor) Bytes() ([]byte, error) {
	src := e.file.Src
	edits := append([]edit(nil), e.edits...)
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start < edits[j].start
		}
		// An insert at the start of a replaced range goes before it.
		if ii, ij := edits[i].start == edits[i].end, edits[j].start == edits[j].end; ii != ij {
			return ii
		}
		return edits[i].seq < edits[j].seq
	})

	var buf bytes.Buffer
	buf.Grow(len(src))
	last := 0
	for _, ed := range edits {
		if ed.start < last || ed.end < ed.start || ed.end > len(src) {
			return nil, fmt.Errorf("overlapping or out of range edit at offset %d", ed.start)
		}
		buf.Write(src[last:ed.start])
		buf.WriteString(ed.text)
		last = ed.end
	}
	buf.Write(src[last:])
	return buf.Bytes(), nil
}

// lineStart returns the offset of the first byte of the line holding offset.
func (e *Editor) lineStart(offset int) int {
	return bytes.LastIndexByte(e.file.Src[:offset], '\n') + 1
}

// Indent returns the leading whitespace of the line holding offset.
func (e *Editor) Indent(offset int) string {
	src := e.file.Src
	i := e.lineStart(offset)
	j := i
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	return string(src[i:j])
}

// startsLine reports whether only whitespace precedes offset on its line.
func (e *Editor) startsLine(offset int) bool {
	return strings.TrimSpace(string(e.file.Src[e.lineStart(offset):offset])) == ""
}

// AppendChildren appends snippets as the last children of el, one per line,
// keeping existing children and the surrounding layout.
func (e *Editor) AppendChildren(el *Element, snippets []string) {
	if len(snippets) == 0 {
		return
	}

	src := e.file.Src
	indent := e.Indent(el.Start)
	childIndent := indent + indentUnit

	var block strings.Builder
	for _, s := range snippets {
		block.WriteString("\n")
		block.WriteString(childIndent)
		block.WriteString(s)
	}

	if el.SelfClosing {
		open := strings.TrimRight(string(src[el.Start:el.End-2]), " \t\r\n")
		e.Replace(el.Start, el.End, open+">"+block.String()+"\n"+indent+"</"+el.Name+">")
		return
	}

	inner := src[el.OpenEnd:el.CloseStart]
	trimmed := bytes.TrimSpace(inner)

	switch {
	case len(trimmed) == 0:
		e.Replace(el.OpenEnd, el.CloseStart, block.String()+"\n"+indent)

	case bytes.IndexByte(inner, '\n') >= 0:
		lastContent := el.OpenEnd + len(bytes.TrimRight(inner, " \t\r\n"))
		if e.lineStart(lastContent) != e.lineStart(el.OpenEnd) {
			childIndent = e.Indent(lastContent)
			block.Reset()
			for _, s := range snippets {
				block.WriteString("\n")
				block.WriteString(childIndent)
				block.WriteString(s)
			}
		}
		e.Insert(lastContent, block.String())

	default:
		// Only the whitespace around the children is replaced, so edits to
		// nested elements on the same line stay disjoint.
		contentStart := el.OpenEnd + len(inner) - len(bytes.TrimLeft(inner, " \t"))
		contentEnd := el.OpenEnd + len(bytes.TrimRight(inner, " \t"))
		e.Replace(el.OpenEnd, contentStart, "\n"+childIndent)
		e.Replace(contentEnd, el.CloseStart, block.String()+"\n"+indent)
	}
}

// Wrap encloses el in open and close tags. An element on its own line is
// wrapped across lines with its body indented one level deeper.
func (e *Editor) Wrap(el *Element, open, close string) {
	body := string(e.file.Src[el.Start:el.End])

	if !e.startsLine(el.Start) {
		e.Replace(el.Start, el.End, open+body+close)
		return
	}

	indent := e.Indent(el.Start)
	body = strings.ReplaceAll(body, "\n", "\n"+indentUnit)
	e.Replace(el.Start, el.End, open+"\n"+indent+indentUnit+body+"\n"+indent+close)
}

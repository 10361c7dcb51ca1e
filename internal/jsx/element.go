package jsx

// tryElement attempts to parse a JSX element at p.pos. On failure the
// position is restored and ok is false, so the caller can treat '<' as an
// operator or a type argument list.
func (p *parser) tryElement() (el *Element, ok bool) {
	start := p.pos
	sink, parent := p.sink, p.parent

	el, err := p.parseElement()
	p.sink, p.parent = sink, parent
	if err != nil {
		p.pos = start
		return nil, false
	}
	return el, true
}

func isNameChar(c byte) bool {
	return isIdentPart(c) || c == '.' || c == ':' || c == '-'
}

func (p *parser) readName() string {
	start := p.pos
	if start < len(p.src) && !isIdentStart(p.src[start]) {
		return ""
	}
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) parseElement() (*Element, error) {
	el := &Element{Start: p.pos}
	p.pos++

	if err := p.skipTrivia(); err != nil {
		return nil, err
	}

	if p.peek(0) == '>' {
		p.pos++
		el.OpenEnd = p.pos
	} else {
		el.Name = p.readName()
		if el.Name == "" {
			return nil, p.errorf(p.pos, "expected tag name")
		}
		if err := p.parseAttributes(el); err != nil {
			return nil, err
		}
		if el.SelfClosing {
			return el, nil
		}
	}

	if err := p.parseChildren(el); err != nil {
		return nil, err
	}
	return el, nil
}

func (p *parser) parseAttributes(el *Element) error {
	for {
		if err := p.skipTrivia(); err != nil {
			return err
		}

		switch c := p.peek(0); {
		case c == '/' && p.peek(1) == '>':
			p.pos += 2
			el.SelfClosing = true
			el.End = p.pos
			el.OpenEnd = p.pos
			el.CloseStart = p.pos
			return nil

		case c == '>':
			p.pos++
			el.OpenEnd = p.pos
			return nil

		case c == '{':
			p.pos++
			if err := p.scanEmbedded(el); err != nil {
				return err
			}

		case isIdentStart(c):
			p.readName()
			if err := p.skipTrivia(); err != nil {
				return err
			}
			if p.peek(0) != '=' {
				continue
			}
			p.pos++
			if err := p.skipTrivia(); err != nil {
				return err
			}
			if err := p.parseAttributeValue(el); err != nil {
				return err
			}

		default:
			return p.errorf(p.pos, "unexpected %q in tag", c)
		}
	}
}

func (p *parser) parseAttributeValue(el *Element) error {
	switch c := p.peek(0); c {
	case '"', '\'':
		// JSX attribute strings have no escapes and may span lines.
		start := p.pos
		p.pos++
		for p.pos < len(p.src) && p.src[p.pos] != c {
			p.pos++
		}
		if p.pos >= len(p.src) {
			return p.errorf(start, "unterminated attribute value")
		}
		p.pos++
		return nil
	case '{':
		p.pos++
		return p.scanEmbedded(el)
	case '<':
		child, err := p.parseElement()
		if err != nil {
			return err
		}
		child.Parent = el
		el.Embedded = append(el.Embedded, child)
		return nil
	default:
		return p.errorf(p.pos, "expected attribute value")
	}
}

// scanEmbedded scans an expression container whose '{' was consumed.
// Elements found inside are attached to el.
func (p *parser) scanEmbedded(el *Element) error {
	sink, parent := p.sink, p.parent
	p.sink, p.parent = &el.Embedded, el
	err := p.scanCode('}', false)
	p.sink, p.parent = sink, parent
	return err
}

func (p *parser) parseChildren(el *Element) error {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '<':
			closeStart := p.pos
			p.pos++
			if err := p.skipTrivia(); err != nil {
				return err
			}
			if p.peek(0) == '/' {
				p.pos++
				if err := p.skipTrivia(); err != nil {
					return err
				}
				name := p.readName()
				if name != el.Name {
					return p.errorf(p.pos, "closing tag %q does not match %q", name, el.Name)
				}
				if err := p.skipTrivia(); err != nil {
					return err
				}
				if p.peek(0) != '>' {
					return p.errorf(p.pos, "expected '>' in closing tag")
				}
				p.pos++
				el.CloseStart = closeStart
				el.End = p.pos
				return nil
			}

			p.pos = closeStart
			child, err := p.parseElement()
			if err != nil {
				return err
			}
			child.Parent = el
			el.Children = append(el.Children, child)

		case '{':
			p.pos++
			if err := p.scanEmbedded(el); err != nil {
				return err
			}

		default:
			p.pos++
		}
	}
	return p.errorf(el.Start, "unclosed element <%s>", el.Name)
}

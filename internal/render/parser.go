package render

import (
	"fmt"
	"strings"
)

// parse compiles template source into a node tree. Tags:
//
//	{{path}}            escaped variable
//	{{{path}}}          raw variable
//	{{#if path}}...{{/if}}
//	{{#each path}}...{{/each}}
//	{{> name}}          partial reference
func parse(source string) ([]Node, error) {
	p := &parser{src: source}
	nodes, err := p.parseUntil("")
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

type parser struct {
	src string
	pos int
}

// parseUntil consumes nodes until the given closing tag ("/if" or
// "/each"), or end of input when closing is empty.
func (p *parser) parseUntil(closing string) ([]Node, error) {
	var nodes []Node
	for p.pos < len(p.src) {
		open := strings.Index(p.src[p.pos:], "{{")
		if open < 0 {
			nodes = append(nodes, &TextNode{Text: p.src[p.pos:]})
			p.pos = len(p.src)
			break
		}
		if open > 0 {
			nodes = append(nodes, &TextNode{Text: p.src[p.pos : p.pos+open]})
			p.pos += open
		}

		if strings.HasPrefix(p.src[p.pos:], "{{{") {
			end := strings.Index(p.src[p.pos:], "}}}")
			if end < 0 {
				return nil, fmt.Errorf("unterminated {{{ tag at offset %d", p.pos)
			}
			path := strings.TrimSpace(p.src[p.pos+3 : p.pos+end])
			if path == "" {
				return nil, fmt.Errorf("empty raw tag at offset %d", p.pos)
			}
			p.pos += end + 3
			nodes = append(nodes, &VariableNode{Path: path, Raw: true})
			continue
		}

		end := strings.Index(p.src[p.pos:], "}}")
		if end < 0 {
			return nil, fmt.Errorf("unterminated tag at offset %d", p.pos)
		}
		tag := strings.TrimSpace(p.src[p.pos+2 : p.pos+end])
		p.pos += end + 2

		switch {
		case strings.HasPrefix(tag, "#if"):
			path := strings.TrimSpace(strings.TrimPrefix(tag, "#if"))
			if path == "" {
				return nil, fmt.Errorf("#if tag is missing a path")
			}
			body, err := p.parseUntil("/if")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &ConditionalNode{Path: path, Body: body})

		case strings.HasPrefix(tag, "#each"):
			path := strings.TrimSpace(strings.TrimPrefix(tag, "#each"))
			if path == "" {
				return nil, fmt.Errorf("#each tag is missing a path")
			}
			body, err := p.parseUntil("/each")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &LoopNode{Path: path, Body: body})

		case tag == "/if" || tag == "/each":
			if tag != closing {
				return nil, fmt.Errorf("unexpected {{%s}}", tag)
			}
			return nodes, nil

		case strings.HasPrefix(tag, ">"):
			name := strings.TrimSpace(strings.TrimPrefix(tag, ">"))
			if name == "" {
				return nil, fmt.Errorf("partial tag is missing a name")
			}
			nodes = append(nodes, &PartialNode{Name: name})

		case strings.HasPrefix(tag, "#"):
			return nil, fmt.Errorf("unknown block tag {{%s}}", tag)

		case tag == "":
			return nil, fmt.Errorf("empty tag at offset %d", p.pos)

		default:
			nodes = append(nodes, &VariableNode{Path: tag})
		}
	}

	if closing != "" {
		return nil, fmt.Errorf("missing closing tag {{%s}}", closing)
	}
	return nodes, nil
}

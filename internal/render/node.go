package render

import (
	"fmt"
	"html"
	"reflect"
	"strings"
)

// Node is one element of a compiled template tree. Rendering walks the
// tree and writes text; it never synthesizes markup beyond what the
// template source and data contain.
type Node interface {
	render(sb *strings.Builder, sc *scope, partials partialResolver) error
}

// partialResolver maps a partial name to its compiled template. A nil
// resolver renders partial references as empty.
type partialResolver func(name string) (*Template, error)

// scope is a lexical chain of data maps. Loop iterations push a scope so
// element fields shadow outer names and resolution falls through to the
// enclosing data.
type scope struct {
	data   map[string]interface{}
	parent *scope
}

func (s *scope) lookup(path string) interface{} {
	parts := strings.Split(path, ".")
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := resolvePath(sc.data, parts); ok {
			return v
		}
	}
	return nil
}

func resolvePath(data map[string]interface{}, parts []string) (interface{}, bool) {
	var current interface{} = data
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// TextNode emits literal template text unchanged.
type TextNode struct {
	Text string
}

func (n *TextNode) render(sb *strings.Builder, _ *scope, _ partialResolver) error {
	sb.WriteString(n.Text)
	return nil
}

// VariableNode emits the value at a dot-path. Missing paths render empty.
// Values are HTML-escaped unless the tag used the triple-stash form.
type VariableNode struct {
	Path string
	Raw  bool
}

func (n *VariableNode) render(sb *strings.Builder, sc *scope, _ partialResolver) error {
	value := stringify(sc.lookup(n.Path))
	if !n.Raw {
		value = html.EscapeString(value)
	}
	sb.WriteString(value)
	return nil
}

// ConditionalNode renders its body when the path's value is truthy. There
// is no else branch; the inverse case is a second conditional in the
// template source.
type ConditionalNode struct {
	Path string
	Body []Node
}

func (n *ConditionalNode) render(sb *strings.Builder, sc *scope, partials partialResolver) error {
	if !truthy(sc.lookup(n.Path)) {
		return nil
	}
	return renderNodes(n.Body, sb, sc, partials)
}

// LoopNode renders its body once per element. Each iteration's scope holds
// the element's own fields (when it is a map) plus @index, @first, @last,
// and the element itself as "this". Non-sequence values render empty.
type LoopNode struct {
	Path string
	Body []Node
}

func (n *LoopNode) render(sb *strings.Builder, sc *scope, partials partialResolver) error {
	items := toSlice(sc.lookup(n.Path))
	for i, item := range items {
		frame := make(map[string]interface{})
		if m, ok := item.(map[string]interface{}); ok {
			for k, v := range m {
				frame[k] = v
			}
		}
		frame["this"] = item
		frame["@index"] = i
		frame["@first"] = i == 0
		frame["@last"] = i == len(items)-1

		if err := renderNodes(n.Body, sb, &scope{data: frame, parent: sc}, partials); err != nil {
			return err
		}
	}
	return nil
}

// PartialNode splices another template into the output at the current
// scope.
type PartialNode struct {
	Name string
}

func (n *PartialNode) render(sb *strings.Builder, sc *scope, partials partialResolver) error {
	if partials == nil {
		return nil
	}
	tpl, err := partials(n.Name)
	if err != nil {
		return err
	}
	return renderNodes(tpl.nodes, sb, sc, partials)
}

func renderNodes(nodes []Node, sb *strings.Builder, sc *scope, partials partialResolver) error {
	for _, n := range nodes {
		if err := n.render(sb, sc, partials); err != nil {
			return err
		}
	}
	return nil
}

func stringify(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}

func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case int:
		return value != 0
	case int64:
		return value != 0
	case float64:
		return value != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

// toSlice normalizes a value into []interface{}, or nil when the value is
// not a sequence.
func toSlice(v interface{}) []interface{} {
	switch value := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return value
	case []map[string]interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = item
		}
		return out
	case []string:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = item
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

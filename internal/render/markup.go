package render

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/searchql/internal/types"
)

// MarkupVersion is the version attribute written on the query element.
const MarkupVersion = "1"

// element is a generic XML node; the markup vocabulary is open-ended
// (operator names are element names) so documents are walked by hand.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Markup serializes n into a request document. Text runes XML cannot carry
// are written as U+FFFD; the scanner drops them, so parsed trees are
// unaffected.
func Markup(n types.Node) string {
	query := element{
		XMLName: xml.Name{Local: "query"},
		Attrs:   []xml.Attr{{Name: xml.Name{Local: "version"}, Value: MarkupVersion}},
	}
	if n != nil {
		query.Children = []element{markupNode(n)}
	}
	doc := element{XMLName: xml.Name{Local: "request"}, Children: []element{query}}

	out, err := xml.Marshal(doc)
	if err != nil {
		// Element and attribute names come from fixed vocabularies.
		return ""
	}
	return string(out)
}

func markupNode(n types.Node) element {
	switch node := n.(type) {
	case *types.ListNode:
		e := element{XMLName: xml.Name{Local: string(node.Combinator)}}
		for _, child := range node.Children() {
			e.Children = append(e.Children, markupNode(child))
		}
		return e
	case *types.TermNode:
		name := types.OpContains
		if node.Operator != nil {
			name = node.Operator.Name
		}
		e := element{XMLName: xml.Name{Local: name}}
		if node.Field != nil {
			e.Children = append(e.Children, element{
				XMLName: xml.Name{Local: "field"},
				Attrs:   []xml.Attr{{Name: xml.Name{Local: "name"}, Value: node.Field.Name}},
			})
		}
		e.Children = append(e.Children, markupValue(node.Value))
		return e
	}
	return element{}
}

func markupValue(v types.Value) element {
	e := element{XMLName: xml.Name{Local: v.Kind().String()}}
	if v.IsEmpty() {
		return e
	}

	switch v.Kind() {
	case types.KindText:
		e.Text = v.Text()
	case types.KindInteger:
		e.Text = strconv.FormatInt(v.Int(), 10)
	case types.KindDate:
		e.Attrs = []xml.Attr{{Name: xml.Name{Local: "precision"}, Value: v.Precision().String()}}
		e.Text = v.Time().Format(time.RFC3339)
	case types.KindFileSize:
		if f := v.Factor().String(); f != "" {
			e.Attrs = []xml.Attr{{Name: xml.Name{Local: "factor"}, Value: f}}
		}
		e.Text = strconv.FormatInt(v.Int(), 10)
	}
	return e
}

// ParseMarkup reads a request document. Any structural problem rejects the
// whole document; the surviving tree is trimmed. A query element with no
// child yields a nil tree and no error.
func ParseMarkup(doc string, reg *types.Registry) (types.Node, error) {
	var root element
	if err := xml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, NewMarkupError("", "%v", err)
	}
	if root.XMLName.Local != "request" {
		return nil, NewMarkupError(root.XMLName.Local, "expected <request>")
	}
	if len(root.Children) != 1 || root.Children[0].XMLName.Local != "query" {
		return nil, NewMarkupError("request", "expected a single <query>")
	}

	query := root.Children[0]
	if v, _ := query.attr("version"); v != MarkupVersion {
		return nil, NewMarkupError("query", "unsupported version %q", v)
	}
	switch len(query.Children) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, NewMarkupError("query", "expected one child, found %d", len(query.Children))
	}

	n, err := readNode(&query.Children[0], reg)
	if err != nil {
		return nil, err
	}
	return types.Trim(n), nil
}

func readNode(e *element, reg *types.Registry) (types.Node, error) {
	if c, ok := types.ParseCombinator(e.XMLName.Local); ok {
		list := types.NewList(c)
		for i := range e.Children {
			child, err := readNode(&e.Children[i], reg)
			if err != nil {
				return nil, err
			}
			list.Add(child)
		}
		return list, nil
	}
	return readTerm(e, reg)
}

func readTerm(e *element, reg *types.Registry) (types.Node, error) {
	name := e.XMLName.Local

	var field *types.Field
	var valueElem *element
	for i := range e.Children {
		child := &e.Children[i]
		switch {
		case child.XMLName.Local == "field":
			if field != nil {
				return nil, NewMarkupError(name, "more than one <field>")
			}
			fieldName, _ := child.attr("name")
			f, ok := reg.Fields.Get(fieldName)
			if !ok {
				return nil, NewMarkupError("field", "unknown field %q", fieldName)
			}
			field = f
		case valueElem != nil:
			return nil, NewMarkupError(name, "more than one value")
		default:
			valueElem = child
		}
	}
	if valueElem == nil {
		return nil, NewMarkupError(name, "missing value")
	}

	kind, err := types.ParseKind(valueElem.XMLName.Local)
	if err != nil {
		return nil, NewMarkupError(valueElem.XMLName.Local, "unknown value kind")
	}
	if field != nil && !field.Accepts(kind) {
		return nil, NewMarkupError(name, "field %q does not accept %s values", field.Name, kind)
	}

	op, ok := reg.Operators(kind).Get(name)
	if !ok {
		return nil, NewMarkupError(name, "unknown operator for %s values", kind)
	}

	value, err := readValue(kind, valueElem)
	if err != nil {
		return nil, err
	}
	return types.NewTerm(field, op, value), nil
}

func readValue(kind types.Kind, e *element) (types.Value, error) {
	text := e.Text
	switch kind {
	case types.KindText:
		return types.TextValue(text), nil
	case types.KindInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return types.Value{}, NewMarkupError(e.XMLName.Local, "invalid integer %q", text)
		}
		return types.IntegerValue(n), nil
	case types.KindDate:
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(text))
		if err != nil {
			return types.Value{}, NewMarkupError(e.XMLName.Local, "invalid date %q", text)
		}
		precision := types.PrecisionSecond
		if p, ok := e.attr("precision"); ok {
			if precision, ok = types.ParsePrecision(p); !ok {
				return types.Value{}, NewMarkupError(e.XMLName.Local, "invalid precision %q", p)
			}
		}
		return types.DateValue(t, precision), nil
	case types.KindFileSize:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return types.Value{}, NewMarkupError(e.XMLName.Local, "invalid byte count %q", text)
		}
		f, _ := e.attr("factor")
		factor, ok := types.ParseFactor(f)
		if !ok {
			return types.Value{}, NewMarkupError(e.XMLName.Local, "invalid factor %q", f)
		}
		return types.FileSizeValue(n, factor), nil
	case types.KindEmpty:
		return types.EmptyValue(), nil
	}
	return types.Value{}, NewMarkupError(e.XMLName.Local, "unsupported kind")
}

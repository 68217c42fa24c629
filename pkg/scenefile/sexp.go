package scenefile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scenefile/scnsexp"
)

// S-expression scene format. The same document the DSL describes can be
// stored as a single (scene ...) form, which is easier to generate from
// other tools:
//
//	(scene (name "demo")
//	  (rect (id hero) (at 10 20) (size 40 30) (rotate 45) (layer 2) (selected)))

// LoadSexp reads a scene document in S-expression form.
func LoadSexp(r io.Reader) (*Document, error) {
	nodes, err := scnsexp.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("expected one (scene ...) form, got %d top-level forms", len(nodes))
	}
	root, ok := nodes[0].(*scnsexp.List)
	if !ok || nodeName(root) != "scene" {
		return nil, fmt.Errorf("expected (scene ...), got %s", nodes[0])
	}

	doc := &Document{Scene: scene.New()}
	if nameNode, ok := childNode(root, "name"); ok {
		doc.Name, _ = stringAt(nameNode, 1)
	}

	for _, rect := range childNodes(root, "rect") {
		o, err := rectFromSexp(rect)
		if err != nil {
			return nil, err
		}
		if err := doc.Scene.Add(o); err != nil {
			return nil, fmt.Errorf("object %q: %w", o.ID, err)
		}
	}
	return doc, nil
}

// LoadSexpString reads a scene document from a string.
func LoadSexpString(s string) (*Document, error) {
	return LoadSexp(strings.NewReader(s))
}

// LoadSexpFile reads a scene document from a file path.
func LoadSexpFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return LoadSexp(f)
}

func rectFromSexp(n *scnsexp.List) (*scene.Object, error) {
	o := &scene.Object{}

	idNode, ok := childNode(n, "id")
	if !ok {
		return nil, fmt.Errorf("rect without (id ...): %s", n)
	}
	o.ID, _ = stringAt(idNode, 1)

	at, ok := childNode(n, "at")
	if !ok {
		return nil, fmt.Errorf("rect %q: missing (at x y)", o.ID)
	}
	var err error
	if o.X, err = floatAt(at, 1); err != nil {
		return nil, fmt.Errorf("rect %q: %w", o.ID, err)
	}
	if o.Y, err = floatAt(at, 2); err != nil {
		return nil, fmt.Errorf("rect %q: %w", o.ID, err)
	}

	size, ok := childNode(n, "size")
	if !ok {
		return nil, fmt.Errorf("rect %q: missing (size w h)", o.ID)
	}
	if o.Width, err = floatAt(size, 1); err != nil {
		return nil, fmt.Errorf("rect %q: %w", o.ID, err)
	}
	if o.Height, err = floatAt(size, 2); err != nil {
		return nil, fmt.Errorf("rect %q: %w", o.ID, err)
	}

	if rot, ok := childNode(n, "rotate"); ok {
		deg, err := floatAt(rot, 1)
		if err != nil {
			return nil, fmt.Errorf("rect %q: %w", o.ID, err)
		}
		o.SetRotation(deg)
	}
	if layer, ok := childNode(n, "layer"); ok {
		z, err := intAt(layer, 1)
		if err != nil {
			return nil, fmt.Errorf("rect %q: %w", o.ID, err)
		}
		o.ZIndex = z
	}
	o.Selected = hasFlag(n, "selected")

	return o, nil
}

// EncodeSexp serializes a document to its S-expression form.
func EncodeSexp(doc *Document) string {
	var b strings.Builder
	b.WriteString("(scene")
	if doc.Name != "" {
		fmt.Fprintf(&b, " (name %s)", strconv.Quote(doc.Name))
	}
	for _, o := range doc.Scene.ByZAscending() {
		b.WriteString("\n  (rect")
		fmt.Fprintf(&b, " (id %s)", o.ID)
		fmt.Fprintf(&b, " (at %s %s)", num(o.X), num(o.Y))
		fmt.Fprintf(&b, " (size %s %s)", num(o.Width), num(o.Height))
		if o.Rotation != 0 {
			fmt.Fprintf(&b, " (rotate %s)", num(o.Rotation))
		}
		if o.ZIndex != 0 {
			fmt.Fprintf(&b, " (layer %d)", o.ZIndex)
		}
		if o.Selected {
			b.WriteString(" (selected)")
		}
		b.WriteString(")")
	}
	b.WriteString(")\n")
	return b.String()
}

// SaveSexpFile writes a document to a file in S-expression form.
func SaveSexpFile(filename string, doc *Document) error {
	return os.WriteFile(filename, []byte(EncodeSexp(doc)), 0644)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// S-expression navigation helpers

// nodeName returns the first symbol of a list, or the atom itself.
func nodeName(n scnsexp.Node) string {
	if n == nil {
		return ""
	}
	if n.Atom() {
		return n.String()
	}
	head := n.First()
	if head == nil || !head.Atom() {
		return ""
	}
	return head.String()
}

// childNode finds the first child list whose head is key.
// Example: childNode(rect, "at") finds (at 10 20).
func childNode(n *scnsexp.List, key string) (*scnsexp.List, bool) {
	for i := 0; i < n.Len(); i++ {
		if sub, ok := n.At(i).(*scnsexp.List); ok && nodeName(sub) == key {
			return sub, true
		}
	}
	return nil, false
}

// childNodes finds all child lists whose head is key.
func childNodes(n *scnsexp.List, key string) []*scnsexp.List {
	var out []*scnsexp.List
	for i := 0; i < n.Len(); i++ {
		if sub, ok := n.At(i).(*scnsexp.List); ok && nodeName(sub) == key {
			out = append(out, sub)
		}
	}
	return out
}

// stringAt extracts the atom at the given index in a list.
// Index 0 is the key, 1 is the first value.
func stringAt(n *scnsexp.List, index int) (string, error) {
	item := n.At(index)
	if item == nil {
		return "", fmt.Errorf("index %d out of bounds in %s", index, n)
	}
	sym, ok := item.(scnsexp.Sym)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d in %s", index, n)
	}
	return string(sym), nil
}

// floatAt extracts a float64 value at the given index.
func floatAt(n *scnsexp.List, index int) (float64, error) {
	str, err := stringAt(n, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

// intAt extracts an int value at the given index.
func intAt(n *scnsexp.List, index int) (int, error) {
	str, err := stringAt(n, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}

// hasFlag checks whether a list contains a bare (flag) child or symbol.
func hasFlag(n *scnsexp.List, flag string) bool {
	for i := 0; i < n.Len(); i++ {
		item := n.At(i)
		if item.Atom() && item.String() == flag {
			return true
		}
		if sub, ok := item.(*scnsexp.List); ok && nodeName(sub) == flag {
			return true
		}
	}
	return false
}

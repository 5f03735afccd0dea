package regmap

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

const defaultRegWidth = 32

// DecodeError is returned when a register map description can not be
// turned into a tree.
type DecodeError struct {
	Path string // dotted path of the offending node
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

type document struct {
	Top []nodeDesc `yaml:"top"`
}

type nodeDesc struct {
	Kind     string      `yaml:"kind"`
	Name     string      `yaml:"name"`
	Offset   uint64      `yaml:"offset"`
	Array    []uint64    `yaml:"array"`
	Stride   uint64      `yaml:"stride"`
	RegWidth uint        `yaml:"regwidth"`
	Children []nodeDesc  `yaml:"children"`
	Fields   []fieldDesc `yaml:"fields"`
}

type fieldDesc struct {
	Name  string `yaml:"name"`
	Lsb   uint   `yaml:"lsb"`
	Width uint   `yaml:"width"`
}

// Load reads a YAML or JSON register map description and returns the root
// node of the tree. Addresses in the description are expected to be
// resolved already, no semantic checks are performed.
func Load(reader io.Reader) (*Node, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if len(doc.Top) == 0 {
		return nil, &DecodeError{Msg: "no top level node found"}
	}

	root := NewRoot()
	for _, desc := range doc.Top {
		node, err := desc.build("")
		if err != nil {
			return nil, err
		}
		root.Add(node)
	}
	return root, nil
}

func (d nodeDesc) build(parentPath string) (*Node, error) {
	path := d.Name
	if parentPath != "" {
		path = parentPath + "." + d.Name
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, &DecodeError{Path: parentPath, Msg: "child node without name"}
	}

	kind, ok := kindKeywords[strings.ToLower(d.Kind)]
	if !ok {
		return nil, &DecodeError{Path: path, Msg: fmt.Sprintf("unsupported node kind '%s'", d.Kind)}
	}

	node := newNode(kind, d.Name, d.Offset)
	if err := d.setArray(node, path); err != nil {
		return nil, err
	}

	if kind == KindReg {
		for _, field := range d.Fields {
			if err := field.check(path); err != nil {
				return nil, err
			}
			node.Add(NewField(field.Name, field.Lsb, field.Width))
		}
		if len(d.Children) > 0 {
			return nil, &DecodeError{Path: path, Msg: "registers can only contain fields"}
		}
		return node, nil
	}

	if len(d.Fields) > 0 {
		return nil, &DecodeError{Path: path, Msg: fmt.Sprintf("fields are not allowed in %s", kind)}
	}
	for _, childDesc := range d.Children {
		child, err := childDesc.build(path)
		if err != nil {
			return nil, err
		}
		node.Add(child)
	}
	return node, nil
}

func (d nodeDesc) setArray(node *Node, path string) error {
	if len(d.Array) == 0 {
		return nil
	}
	for _, dim := range d.Array {
		if dim == 0 {
			return &DecodeError{Path: path, Msg: "array dimension can not be 0"}
		}
	}

	stride := d.Stride
	if stride == 0 {
		if node.kind != KindReg {
			return &DecodeError{Path: path, Msg: "array stride missing"}
		}
		width := d.RegWidth
		if width == 0 {
			width = defaultRegWidth
		}
		stride = uint64(width / 8)
	}
	node.WithArray(stride, d.Array...)
	return nil
}

func (f fieldDesc) check(regPath string) error {
	if strings.TrimSpace(f.Name) == "" {
		return &DecodeError{Path: regPath, Msg: "field without name"}
	}
	if f.Width == 0 {
		return &DecodeError{Path: regPath + "." + f.Name, Msg: "field width can not be 0"}
	}
	return nil
}

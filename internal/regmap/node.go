// Package regmap models a resolved register map tree: address maps, memories,
// register files, registers and fields with their final addresses.
package regmap

// Node is a single node of a register map tree. All kinds share the same
// struct, the kind decides which of the properties are meaningful.
type Node struct {
	kind     Kind
	name     string
	parent   *Node
	children []*Node

	offset uint64   // offset of the first element relative to the parent
	dims   []uint64 // array dimensions, empty for scalar nodes
	stride uint64   // distance between two array elements
	index  int      // flat element index of an unrolled array instance, -1 otherwise

	low   uint // field lsb
	width uint // field width in bits
}

// NewRoot returns an empty root node.
func NewRoot() *Node {
	return newNode(KindRoot, "$root", 0)
}

// NewAddrMap returns an address map node at the given offset of its parent.
func NewAddrMap(name string, offset uint64) *Node {
	return newNode(KindAddrMap, name, offset)
}

// NewMem returns a memory node at the given offset of its parent.
func NewMem(name string, offset uint64) *Node {
	return newNode(KindMem, name, offset)
}

// NewRegFile returns a register file node at the given offset of its parent.
func NewRegFile(name string, offset uint64) *Node {
	return newNode(KindRegFile, name, offset)
}

// NewReg returns a register node at the given offset of its parent.
func NewReg(name string, offset uint64) *Node {
	return newNode(KindReg, name, offset)
}

// NewSignal returns a signal node, signals do not occupy address space.
func NewSignal(name string) *Node {
	return newNode(KindSignal, name, 0)
}

// NewField returns a field node covering width bits starting at bit low.
func NewField(name string, low, width uint) *Node {
	n := newNode(KindField, name, 0)
	n.low = low
	n.width = width
	return n
}

func newNode(kind Kind, name string, offset uint64) *Node {
	return &Node{
		kind:   kind,
		name:   name,
		offset: offset,
		index:  -1,
	}
}

// Add appends the given nodes as children and returns the node itself.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// WithArray turns the node into an array with the given element stride and
// dimensions and returns the node itself.
func (n *Node) WithArray(stride uint64, dims ...uint64) *Node {
	n.stride = stride
	n.dims = append([]uint64(nil), dims...)
	return n
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind { return n.kind }

// InstName returns the instance name of the node.
func (n *Node) InstName() string { return n.name }

// Parent returns the parent node or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Is returns whether the node is of any of the given kinds.
func (n *Node) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if n.kind == k {
			return true
		}
	}
	return false
}

// IsAddressable returns whether the node occupies address space.
func (n *Node) IsAddressable() bool {
	return n.kind.IsAddressable()
}

// IsArray returns whether the node is an array or an unrolled element of one.
func (n *Node) IsArray() bool {
	return len(n.dims) > 0
}

// IsBlockCapable returns whether the node can be exported as an address block
// of its own: a non array address map or memory.
func (n *Node) IsBlockCapable() bool {
	return n.Is(KindAddrMap, KindMem) && !n.IsArray()
}

// Index returns the flat element index of an unrolled array instance or -1.
func (n *Node) Index() int { return n.index }

// Low returns the lowest bit position of a field.
func (n *Node) Low() uint { return n.low }

// Width returns the bit width of a field.
func (n *Node) Width() uint { return n.width }

// RawAddressOffset returns the offset of the first array element, or of the
// node itself when it is not an array, relative to the parent.
func (n *Node) RawAddressOffset() uint64 { return n.offset }

// ArrayStride returns the address distance between two array elements.
func (n *Node) ArrayStride() uint64 { return n.stride }

// AddressOffset returns the offset of this node relative to its parent.
// For an array that is not unrolled the first element is used.
func (n *Node) AddressOffset() uint64 {
	if n.index <= 0 {
		return n.offset
	}
	return n.offset + uint64(n.index)*n.stride
}

// AbsoluteAddress returns the address of the node in the root address space.
func (n *Node) AbsoluteAddress() uint64 {
	var address uint64
	for node := n; node != nil; node = node.parent {
		address += node.AddressOffset()
	}
	return address
}

// ElementCount returns the number of elements of an array node, 1 for scalar nodes.
func (n *Node) ElementCount() int {
	count := 1
	for _, dim := range n.dims {
		count *= int(dim)
	}
	return count
}

// Top returns the top level address map of a root node. For any other node
// kind or a root without address map child nil is returned.
func (n *Node) Top() *Node {
	if n.kind != KindRoot {
		return nil
	}
	for _, child := range n.children {
		if child.kind == KindAddrMap {
			return child
		}
	}
	return nil
}

// Children returns the child nodes. If unroll is set, array children are
// expanded into one instance per element.
func (n *Node) Children(unroll bool) []*Node {
	if !unroll {
		return append([]*Node(nil), n.children...)
	}

	result := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		if !child.IsArray() || child.index >= 0 {
			result = append(result, child)
			continue
		}
		for i, count := 0, child.ElementCount(); i < count; i++ {
			result = append(result, child.instance(n, i))
		}
	}
	return result
}

// Fields returns the field children of a register.
func (n *Node) Fields() []*Node {
	var fields []*Node
	for _, child := range n.children {
		if child.kind == KindField {
			fields = append(fields, child)
		}
	}
	return fields
}

// Count returns the number of nodes of the given kind in the subtree,
// the node itself included. Arrays count once.
func (n *Node) Count(kind Kind) int {
	count := 0
	if n.kind == kind {
		count++
	}
	for _, child := range n.children {
		count += child.Count(kind)
	}
	return count
}

// instance returns a copy of the subtree that represents array element index.
func (n *Node) instance(parent *Node, index int) *Node {
	c := n.clone(parent)
	c.index = index
	return c
}

func (n *Node) clone(parent *Node) *Node {
	c := *n
	c.parent = parent
	c.children = make([]*Node, len(n.children))
	for i, child := range n.children {
		c.children[i] = child.clone(&c)
	}
	return &c
}

package regmap

// Kind identifies the variant of a register tree node.
type Kind int

// Node kinds of a register tree.
const (
	KindRoot Kind = iota
	KindAddrMap
	KindMem
	KindRegFile
	KindReg
	KindField
	KindSignal
)

var kindNames = map[Kind]string{
	KindRoot:    "RootNode",
	KindAddrMap: "AddrmapNode",
	KindMem:     "MemNode",
	KindRegFile: "RegfileNode",
	KindReg:     "RegNode",
	KindField:   "FieldNode",
	KindSignal:  "SignalNode",
}

// kindKeywords maps the kind keywords of a register map description to node kinds.
var kindKeywords = map[string]Kind{
	"addrmap": KindAddrMap,
	"mem":     KindMem,
	"regfile": KindRegFile,
	"reg":     KindReg,
	"signal":  KindSignal,
}

// String returns the type name of the kind as used in error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownNode"
}

// IsAddressable returns whether nodes of this kind occupy address space.
func (k Kind) IsAddressable() bool {
	switch k {
	case KindAddrMap, KindMem, KindRegFile, KindReg:
		return true
	default:
		return false
	}
}

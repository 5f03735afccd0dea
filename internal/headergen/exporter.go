// Package headergen generates Verilog or C/C++ header files with macros for
// the base addresses, register addresses and field masks of a register map.
package headergen

import (
	"fmt"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/retroenv/rdlheader/internal/language"
	"github.com/retroenv/rdlheader/internal/regmap"
	"github.com/retroenv/rdlheader/internal/writer"
)

// Exporter generates header files for register maps.
// It is not safe for concurrent use by multiple goroutines.
type Exporter struct {
	cfg     Config
	dialect dialect
}

// New returns a new exporter for the given config.
func New(cfg Config) (*Exporter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Exporter{
		cfg:     cfg,
		dialect: newDialect(cfg.Language),
	}, nil
}

// OutputPath returns the path of the header file that Export writes for the
// given path: the extension is replaced by the one of the output language.
func (e *Exporter) OutputPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+language.Extension(e.cfg.Language))
}

// Export writes the header file for the given root or address map node.
// The output directory is created if it does not exist. No file is touched
// if the node can not be exported.
func (e *Exporter) Export(node *regmap.Node, path string) error {
	outputPath := e.OutputPath(path)

	lines, err := e.Generate(node, filepath.Base(outputPath))
	if err != nil {
		return err
	}

	if err := writer.WriteFile(outputPath, lines); err != nil {
		return fmt.Errorf("writing header file: %w", err)
	}
	return nil
}

// Generate returns the lines of the header file for the given root or address
// map node. The file name is used to derive the include guard.
func (e *Exporter) Generate(node *regmap.Node, fileName string) ([]string, error) {
	em := &emitter{dialect: e.dialect}
	em.guard(guardToken(fileName))

	// a root is replaced by its top level address map
	if node != nil && node.Kind() == regmap.KindRoot {
		node = node.Top()
	}
	if node == nil {
		return nil, &TypeError{Got: "nil"}
	}
	if node.Kind() != regmap.KindAddrMap {
		return nil, &TypeError{Got: node.Kind().String()}
	}

	if explode(node) {
		// every child becomes an address block of its own, the node itself
		// does not contribute a macro
		for _, child := range node.Children(true) {
			if !child.IsAddressable() {
				continue
			}
			em.addAddressBlock(child)
		}
	} else {
		em.addAddressBlock(node)
	}

	em.lines = append(em.lines, "\n"+e.dialect.endif)
	return em.lines, nil
}

// explode returns whether the addressable children of the node should be
// exported as separate address blocks. This is the case if all of them are
// non array address maps or memories.
func explode(node *regmap.Node) bool {
	var blockCapable, other int
	for _, child := range node.Children(false) {
		if !child.IsAddressable() {
			continue
		}
		if child.IsBlockCapable() {
			blockCapable++
		} else {
			other++
		}
	}
	return other == 0 && blockCapable > 0
}

// guardToken converts a file name to the include guard name.
func guardToken(fileName string) string {
	return strings.ReplaceAll(strings.ToUpper(fileName), ".", "_")
}

// emitter holds the state of a single header generation pass.
type emitter struct {
	dialect dialect
	lines   []string

	baseAddressName string // reference to the base address macro of the current block
}

func (em *emitter) guard(token string) {
	em.lines = append(em.lines,
		fmt.Sprintf("%s__%s__", em.dialect.ifndef, token),
		fmt.Sprintf("%s__%s__\n", em.dialect.define, token),
	)
}

func (em *emitter) define(name, value string) {
	em.lines = append(em.lines, em.dialect.define+name+" "+value)
}

func (em *emitter) comment(text string) {
	em.lines = append(em.lines, "//"+text)
}

func (em *emitter) hex(value uint64) string {
	return em.dialect.hexPrefix + strconv.FormatUint(value, 16)
}

func (em *emitter) addAddressBlock(node *regmap.Node) {
	name := strings.ToUpper(node.InstName()) + "_BASE_ADDR"
	em.define(name, "0")
	em.baseAddressName = em.dialect.baseQuote + name

	em.addChildren(node)
}

// addRegisterFile flattens a nested address map or register file into the
// current address block, it does not introduce a new base address.
func (em *emitter) addRegisterFile(node *regmap.Node) {
	em.addChildren(node)
}

func (em *emitter) addChildren(node *regmap.Node) {
	for _, child := range node.Children(false) {
		switch child.Kind() {
		case regmap.KindReg:
			em.addRegister(node, child)
		case regmap.KindAddrMap, regmap.KindRegFile:
			em.addRegisterFile(child)
		}
	}
}

func (em *emitter) addRegister(parent, reg *regmap.Node) {
	name := strings.ToUpper(parent.InstName()) + "_" + strings.ToUpper(reg.InstName())
	x := em.dialect.arrayParam

	em.comment("register: " + reg.InstName())

	switch {
	case parent.IsArray():
		em.define(name+"(X)", fmt.Sprintf("%s + %s + %s*%s + %s",
			em.baseAddressName, em.hex(parent.RawAddressOffset()), x, em.hex(parent.ArrayStride()),
			em.hex(reg.AddressOffset())))

	case reg.IsArray():
		em.define(name+"(X)", fmt.Sprintf("%s + %s + %s*%s",
			em.baseAddressName, em.hex(reg.RawAddressOffset()), x, em.hex(reg.ArrayStride())))

	default:
		em.define(name, fmt.Sprintf("%s + %s", em.baseAddressName, em.hex(reg.AbsoluteAddress())))
	}

	for _, field := range reg.Fields() {
		em.addField(reg, field)
	}
}

func (em *emitter) addField(reg, field *regmap.Node) {
	prefix := strings.ToUpper(reg.InstName()) + "_REG_" + strings.ToUpper(field.InstName())

	em.define(prefix+"_OFFSET", strconv.FormatUint(uint64(field.Low()), 10))
	em.define(prefix+"_MASK", em.dialect.hexPrefix+fieldMask(field.Low(), field.Width()))
}

// fieldMask returns the mask of a bit field as hex digits without prefix.
// Fields are not limited to 64 bit registers.
func fieldMask(low, width uint) string {
	mask := new(big.Int).Lsh(big.NewInt(1), width)
	mask.Sub(mask, big.NewInt(1))
	mask.Lsh(mask, low)
	return mask.Text(16)
}

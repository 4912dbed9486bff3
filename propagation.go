package sdc

// NaturalPropagation answers alias queries over the netlist: wires
// structurally guaranteed to carry the identical signal as the given
// wire, e.g. through direct zero-delay connections. An empty result
// means no further propagation from that wire.
type NaturalPropagation interface {
	FindAliasWires(wire Wire) []Wire
}

// BufferPropagation answers sink queries over the netlist: the wires
// driven through the named output pin of cells of the named type whose
// input carries the given wire.
type BufferPropagation interface {
	FindSinkWiresForCellType(wire Wire, cellType, outputPin string) []Wire
}

// ClockDividerPropagation is reserved for divider-specific sink
// discovery. No methods are required while divider propagation remains
// unimplemented.
type ClockDividerPropagation interface{}

// A Buffer describes a class of clock buffer cells: the cell type name,
// its output pin, and the fixed delay one instance adds to the clock
// path.
type Buffer struct {
	Name   string
	Output string
	Delay  float64
}

// IBuf is the input buffer template used by buffer propagation.
func IBuf() Buffer {
	return Buffer{Name: "IBUF", Output: "O", Delay: 1}
}

// Bufg is the global clock buffer template used by buffer propagation.
func Bufg() Buffer {
	return Buffer{Name: "BUFG", Output: "O", Delay: 1}
}

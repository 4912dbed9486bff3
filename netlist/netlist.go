// Package netlist provides a minimal structural netlist: named wires,
// zero-delay alias connections between wires, and typed cell instances
// with named pins. It implements the traversal oracles clock
// propagation queries (alias discovery and buffer sink discovery).
//
// It is deliberately not a simulation model: wires carry no values and
// cells have no behavior, only connectivity.
package netlist

import (
	sdc "github.com/antmicro/f4pga"
)

// A Wire is a netlist wire. Wires are created and owned by a Netlist;
// pointer identity is wire identity.
type Wire struct {
	name string
}

// Name returns the wire name.
func (w *Wire) Name() string { return w.name }

// A Cell is an instance of a cell type, its pins connected to wires.
type Cell struct {
	typ  string
	name string
	pins map[string]*Wire
}

// Type returns the cell type name, e.g. "IBUF".
func (c *Cell) Type() string { return c.typ }

// Name returns the instance name.
func (c *Cell) Name() string { return c.name }

// Pin returns the wire connected to the named pin, or nil.
func (c *Cell) Pin(name string) *Wire { return c.pins[name] }

// A Netlist holds wires, alias connections and cell instances.
type Netlist struct {
	wires map[string]*Wire
	// alias adjacency, edges in connection order so discovery order is
	// reproducible across runs
	edges map[*Wire][]*Wire
	cells []*Cell
}

// New returns an empty netlist.
func New() *Netlist {
	return &Netlist{
		wires: make(map[string]*Wire),
		edges: make(map[*Wire][]*Wire),
	}
}

// Wire returns the named wire, or nil if it does not exist.
func (n *Netlist) Wire(name string) *Wire {
	return n.wires[name]
}

// WireOrNew returns the named wire, creating it if necessary.
func (n *Netlist) WireOrNew(name string) *Wire {
	w, ok := n.wires[name]
	if !ok {
		w = &Wire{name: name}
		n.wires[name] = w
	}
	return w
}

// Connect records that wires a and b carry the identical signal with no
// propagation delay. Both wires are created if needed. The relation is
// symmetric; transitivity is resolved at query time.
func (n *Netlist) Connect(a, b string) {
	wa, wb := n.WireOrNew(a), n.WireOrNew(b)
	if wa == wb {
		return
	}
	n.edges[wa] = append(n.edges[wa], wb)
	n.edges[wb] = append(n.edges[wb], wa)
}

// AddCell adds a cell instance of the given type. pins maps pin names
// to wire names; wires are created as needed.
func (n *Netlist) AddCell(typ, name string, pins map[string]string) *Cell {
	c := &Cell{typ: typ, name: name, pins: make(map[string]*Wire, len(pins))}
	for pin, wire := range pins {
		c.pins[pin] = n.WireOrNew(wire)
	}
	n.cells = append(n.cells, c)
	return c
}

// FindAliasWires returns every wire reachable from wire over alias
// connections, excluding wire itself. Wires not owned by this netlist
// have no aliases.
func (n *Netlist) FindAliasWires(wire sdc.Wire) []sdc.Wire {
	w, ok := wire.(*Wire)
	if !ok {
		return nil
	}
	seen := map[*Wire]bool{w: true}
	queue := []*Wire{w}
	var aliases []sdc.Wire
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range n.edges[cur] {
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
			aliases = append(aliases, next)
		}
	}
	return aliases
}

// FindSinkWiresForCellType returns the wires driven through the named
// output pin of cells of the named type that have wire on one of their
// other pins. Cells are visited in the order they were added.
func (n *Netlist) FindSinkWiresForCellType(wire sdc.Wire, cellType, outputPin string) []sdc.Wire {
	w, ok := wire.(*Wire)
	if !ok {
		return nil
	}
	var sinks []sdc.Wire
	for _, c := range n.cells {
		if c.typ != cellType {
			continue
		}
		out := c.pins[outputPin]
		if out == nil || out == w {
			continue
		}
		for pin, pw := range c.pins {
			if pin != outputPin && pw == w {
				sinks = append(sinks, out)
				break
			}
		}
	}
	return sinks
}

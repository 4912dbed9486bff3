package sdc

import (
	"github.com/pkg/errors"
)

// A Wire is an opaque reference to a netlist wire. Implementations must
// have stable identity: two Wire values compare equal if and only if
// they refer to the same physical wire. The name is used for
// diagnostics and constraint output only.
type Wire interface {
	Name() string
}

// A ClockWire annotates a single netlist wire with the waveform of the
// clock it carries. The wire reference is the identity of the record;
// the waveform fields are updated in place as propagation refines them.
type ClockWire struct {
	wire        Wire
	period      float64
	risingEdge  float64
	fallingEdge float64
}

func newClockWire(wire Wire, period, risingEdge, fallingEdge float64) *ClockWire {
	cw := &ClockWire{wire: wire}
	cw.setWaveform(period, risingEdge, fallingEdge)
	return cw
}

// Wire returns the annotated netlist wire.
func (cw *ClockWire) Wire() Wire { return cw.wire }

// Name returns the name of the annotated wire.
func (cw *ClockWire) Name() string { return cw.wire.Name() }

// Period returns the clock period.
func (cw *ClockWire) Period() float64 { return cw.period }

// RisingEdge returns the rising edge offset within one period.
func (cw *ClockWire) RisingEdge() float64 { return cw.risingEdge }

// FallingEdge returns the falling edge offset within one period.
func (cw *ClockWire) FallingEdge() float64 { return cw.fallingEdge }

// setWaveform updates period and both edges as a single step, then
// checks the 50% duty cycle invariant. Splitting the update would let a
// caller leave the record with edges from a stale period, so there is
// deliberately no way to set the period alone.
//
// A violation is a defect in a propagation pass, not a recoverable
// condition, and panics.
func (cw *ClockWire) setWaveform(period, risingEdge, fallingEdge float64) {
	cw.period = period
	cw.risingEdge = risingEdge
	cw.fallingEdge = fallingEdge
	if fallingEdge-risingEdge != period/2 {
		panic(errors.Errorf("wire %s: waveform {%f %f} is not a 50%% duty cycle of period %f",
			cw.wire.Name(), risingEdge, fallingEdge, period))
	}
}

// A Clock is a named domain: the set of wires known to carry the same
// logical clock signal. Wires are kept in registration order, unique by
// wire identity.
type Clock struct {
	name  string
	wires []*ClockWire
}

func newClock(name string) *Clock {
	return &Clock{name: name}
}

// Name returns the domain name.
func (c *Clock) Name() string { return c.name }

// Wires returns a snapshot of the domain's clock wires in registration
// order. The returned slice is a copy; the records it points to are
// live and reflect later updates.
func (c *Clock) Wires() []*ClockWire {
	return append([]*ClockWire(nil), c.wires...)
}

// AddClockWire registers wire in the domain with the given waveform. If
// the wire is already present its record is updated in place (last
// write wins); otherwise a new record is appended. The collection is
// searched linearly by wire identity, which is fine at the scale of
// clock trees.
func (c *Clock) AddClockWire(wire Wire, period, risingEdge, fallingEdge float64) {
	for _, cw := range c.wires {
		if cw.wire == wire {
			cw.setWaveform(period, risingEdge, fallingEdge)
			return
		}
	}
	c.wires = append(c.wires, newClockWire(wire, period, risingEdge, fallingEdge))
}

package sdc

// A LogFunc receives line-oriented diagnostics from propagation passes.
// It is purely observational; nil disables it.
type LogFunc func(format string, args ...interface{})

// Clocks is the clock domain registry for one analysis run. It maps
// domain names to their wire sets and drives the propagation passes.
// It is not safe for concurrent use; a run owns its registry.
type Clocks struct {
	clocks map[string]*Clock
	names  []string // registration order, keys of clocks
	logf   LogFunc
}

// NewClocks returns an empty registry. Diagnostics go to logf; pass nil
// to discard them.
func NewClocks(logf LogFunc) *Clocks {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Clocks{clocks: make(map[string]*Clock), logf: logf}
}

// AddClockWire registers wire in the named domain with a default 50%
// duty cycle waveform: rising edge at 0, falling edge at period/2.
func (cs *Clocks) AddClockWire(name string, wire Wire, period float64) {
	cs.AddClockWireWaveform(name, wire, period, 0, period/2)
}

// AddClockWireWaveform registers wire in the named domain with an
// explicit waveform. The domain is created on first use. Registering a
// wire already present in the domain overwrites its waveform.
func (cs *Clocks) AddClockWireWaveform(name string, wire Wire, period, risingEdge, fallingEdge float64) {
	clock, ok := cs.clocks[name]
	if !ok {
		clock = newClock(name)
		cs.clocks[name] = clock
		cs.names = append(cs.names, name)
	}
	clock.AddClockWire(wire, period, risingEdge, fallingEdge)
}

// AddClockWires registers each wire independently; there is no
// atomicity across the batch.
func (cs *Clocks) AddClockWires(name string, wires []Wire, period, risingEdge, fallingEdge float64) {
	for _, w := range wires {
		cs.AddClockWireWaveform(name, w, period, risingEdge, fallingEdge)
	}
}

// ClockNames returns the registered domain names in registration order.
func (cs *Clocks) ClockNames() []string {
	return append([]string(nil), cs.names...)
}

// Clock returns the named domain, or nil if no wire was ever registered
// under that name.
func (cs *Clocks) Clock(name string) *Clock {
	return cs.clocks[name]
}

// PropagateNatural extends every domain with the electrical aliases of
// its wires. An alias carries the identical signal with zero delay, so
// it inherits the source waveform unchanged.
func (cs *Clocks) PropagateNatural(pass NaturalPropagation) {
	cs.logf("Start natural clock propagation")
	for _, name := range cs.names {
		cs.logf("Processing clock %s", name)
		clock := cs.clocks[name]
		for _, cw := range clock.Wires() {
			aliases := pass.FindAliasWires(cw.Wire())
			cs.AddClockWires(name, aliases, cw.Period(), cw.RisingEdge(), cw.FallingEdge())
		}
	}
	cs.logf("Finish natural clock propagation")
}

// PropagateBuffers extends every domain through clock buffer cells,
// once for each buffer template: input buffers first, then global
// buffers. Sinks keep the source period and get the buffer delay added
// to both edges.
func (cs *Clocks) PropagateBuffers(pass BufferPropagation) {
	cs.logf("Start buffer clock propagation")
	for _, name := range cs.names {
		cs.logf("Processing clock %s", name)
		cs.propagateThroughBuffer(pass, cs.clocks[name], IBuf())
		cs.propagateThroughBuffer(pass, cs.clocks[name], Bufg())
	}
	cs.logf("Finish buffer clock propagation")
}

// propagateThroughBuffer registers the sink wires reachable from each
// of clock's wires through one instance of the buffer cell type. The
// path delay accumulates across all sinks returned for one source wire,
// so the Nth sink of a query is shifted by N buffer delays. Constraint
// consumers depend on this chain-style accumulation; do not reset the
// sum per sink.
func (cs *Clocks) propagateThroughBuffer(pass BufferPropagation, clock *Clock, buffer Buffer) {
	for _, cw := range clock.Wires() {
		sinks := pass.FindSinkWiresForCellType(cw.Wire(), buffer.Name, buffer.Output)
		pathDelay := 0.0
		for _, w := range sinks {
			cs.logf("%s wire: %s", buffer.Name, w.Name())
			pathDelay += buffer.Delay
			cs.AddClockWireWaveform(clock.Name(), w, cw.Period(),
				cw.RisingEdge()+pathDelay,
				cw.FallingEdge()+pathDelay)
		}
	}
}

// PropagateClockDividers walks the domains for diagnostics but
// registers nothing: divider frequency and phase transformation is not
// implemented yet. Keep the traversal so the pass ordering of drivers
// stays stable once it is.
func (cs *Clocks) PropagateClockDividers(pass ClockDividerPropagation) {
	cs.logf("Start clock divider clock propagation")
	for _, name := range cs.names {
		cs.logf("Processing clock %s", name)
	}
	cs.logf("Finish clock divider clock propagation")
}

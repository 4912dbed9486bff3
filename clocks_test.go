package sdc_test

import (
	"testing"

	sdc "github.com/antmicro/f4pga"
)

// wire is a minimal netlist wire stand-in with pointer identity.
type wire struct {
	name string
}

func (w *wire) Name() string { return w.name }

func checkWire(t *testing.T, cw *sdc.ClockWire, w sdc.Wire, period, rise, fall float64) {
	t.Helper()
	if cw.Wire() != w {
		t.Errorf("got wire %s, want %s", cw.Name(), w.Name())
	}
	if cw.Period() != period || cw.RisingEdge() != rise || cw.FallingEdge() != fall {
		t.Errorf("wire %s: got period %g waveform {%g %g}, want period %g waveform {%g %g}",
			cw.Name(), cw.Period(), cw.RisingEdge(), cw.FallingEdge(), period, rise, fall)
	}
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}

func Test_default_duty_cycle(t *testing.T) {
	td := []struct {
		name   string
		period float64
		fall   float64
	}{
		{"clk100", 10, 5},
		{"clk200", 5, 2.5},
		{"slow", 1000, 500},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			w := &wire{"CLK_IN"}
			cs := sdc.NewClocks(nil)
			cs.AddClockWire(d.name, w, d.period)
			wires := cs.Clock(d.name).Wires()
			if len(wires) != 1 {
				t.Fatalf("got %d wires, want 1", len(wires))
			}
			checkWire(t, wires[0], w, d.period, 0, d.fall)
		})
	}
}

func Test_idempotent_reregistration(t *testing.T) {
	w := &wire{"CLK_IN"}
	cs := sdc.NewClocks(nil)
	cs.AddClockWireWaveform("clk", w, 10, 1, 6)
	cs.AddClockWireWaveform("clk", w, 10, 1, 6)
	wires := cs.Clock("clk").Wires()
	if len(wires) != 1 {
		t.Fatalf("got %d wires, want 1", len(wires))
	}
	checkWire(t, wires[0], w, 10, 1, 6)
}

func Test_reregistration_updates_in_place(t *testing.T) {
	w := &wire{"CLK_IN"}
	cs := sdc.NewClocks(nil)
	cs.AddClockWire("clk", w, 10)
	cs.AddClockWireWaveform("clk", w, 8, 2, 6)
	wires := cs.Clock("clk").Wires()
	if len(wires) != 1 {
		t.Fatalf("got %d wires, want 1", len(wires))
	}
	checkWire(t, wires[0], w, 8, 2, 6)
}

func Test_domain_isolation(t *testing.T) {
	w := &wire{"CLK_IN"}
	cs := sdc.NewClocks(nil)
	cs.AddClockWire("a", w, 10)
	cs.AddClockWire("b", &wire{"OTHER"}, 4)
	if got := len(cs.Clock("b").Wires()); got != 1 {
		t.Errorf("domain b has %d wires, want 1", got)
	}
	cs.AddClockWire("a", w, 20)
	wires := cs.Clock("b").Wires()
	if len(wires) != 1 {
		t.Fatalf("domain b has %d wires, want 1", len(wires))
	}
	checkWire(t, wires[0], wires[0].Wire(), 4, 0, 2)
}

func Test_same_wire_in_two_domains(t *testing.T) {
	w := &wire{"CLK_IN"}
	cs := sdc.NewClocks(nil)
	cs.AddClockWire("a", w, 10)
	cs.AddClockWire("b", w, 4)
	checkWire(t, cs.Clock("a").Wires()[0], w, 10, 0, 5)
	checkWire(t, cs.Clock("b").Wires()[0], w, 4, 0, 2)
}

func Test_clock_names(t *testing.T) {
	cs := sdc.NewClocks(nil)
	cs.AddClockWire("clk100", &wire{"A"}, 10)
	cs.AddClockWire("clk200", &wire{"B"}, 5)
	cs.AddClockWire("clk100", &wire{"C"}, 10)
	names := cs.ClockNames()
	want := []string{"clk100", "clk200"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func Test_unknown_clock(t *testing.T) {
	cs := sdc.NewClocks(nil)
	if cs.Clock("nope") != nil {
		t.Error("lookup of unregistered domain should return nil")
	}
	if len(cs.ClockNames()) != 0 {
		t.Error("empty registry should have no names")
	}
}

func Test_add_clock_wires_batch(t *testing.T) {
	ws := []sdc.Wire{&wire{"A"}, &wire{"B"}, &wire{"C"}}
	cs := sdc.NewClocks(nil)
	cs.AddClockWires("clk", ws, 10, 0, 5)
	wires := cs.Clock("clk").Wires()
	if len(wires) != len(ws) {
		t.Fatalf("got %d wires, want %d", len(wires), len(ws))
	}
	for i, w := range ws {
		checkWire(t, wires[i], w, 10, 0, 5)
	}
}

func Test_asymmetric_waveform_panics(t *testing.T) {
	cs := sdc.NewClocks(nil)
	t.Run("new wire", func(t *testing.T) {
		mustPanic(t, func() {
			cs.AddClockWireWaveform("clk", &wire{"A"}, 10, 0, 6)
		})
	})
	t.Run("existing wire", func(t *testing.T) {
		w := &wire{"B"}
		cs.AddClockWire("clk2", w, 10)
		mustPanic(t, func() {
			cs.AddClockWireWaveform("clk2", w, 10, 1, 7)
		})
	})
}

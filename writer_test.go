package sdc_test

import (
	"strings"
	"testing"

	sdc "github.com/antmicro/f4pga"
)

func Test_write_constraints(t *testing.T) {
	clkIn, clkInBuf, clkInt := &wire{"CLK_IN"}, &wire{"CLK_IN_BUF"}, &wire{"CLK_INT"}
	cs := sdc.NewClocks(nil)
	cs.AddClockWire("clk100", clkIn, 10)
	cs.PropagateNatural(aliasOracle{clkIn: {clkInBuf}})
	cs.PropagateBuffers(sinkOracle{clkInBuf: {"IBUF": {clkInt}}})

	var b strings.Builder
	if err := sdc.WriteConstraints(&b, cs); err != nil {
		t.Fatal(err)
	}
	want := "create_clock -period 10.000000 -name clk100 -waveform {0.000000 5.000000} CLK_IN\n" +
		"create_clock -period 10.000000 -name clk100 -waveform {0.000000 5.000000} CLK_IN_BUF\n" +
		"create_clock -period 10.000000 -name clk100 -waveform {1.000000 6.000000} CLK_INT\n"
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func Test_write_constraints_empty(t *testing.T) {
	var b strings.Builder
	if err := sdc.WriteConstraints(&b, sdc.NewClocks(nil)); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("got %q, want no output", b.String())
	}
}

package sdc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteConstraints emits one create_clock directive per clock wire in
// the registry, domains in registration order, wires in registration
// order within a domain:
//
//	create_clock -period 10.000000 -name clk100 -waveform {0.000000 5.000000} CLK_IN
//
// Generated clocks on propagated wires reuse the domain name so
// downstream timing tools treat them as one domain.
func WriteConstraints(w io.Writer, clocks *Clocks) error {
	bw := bufio.NewWriter(w)
	for _, name := range clocks.ClockNames() {
		for _, cw := range clocks.Clock(name).Wires() {
			_, err := fmt.Fprintf(bw, "create_clock -period %f -name %s -waveform {%f %f} %s\n",
				cw.Period(), name, cw.RisingEdge(), cw.FallingEdge(), cw.Name())
			if err != nil {
				return errors.Wrap(err, "write create_clock for "+name)
			}
		}
	}
	return errors.Wrap(bw.Flush(), "flush constraints")
}

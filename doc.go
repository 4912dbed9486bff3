/*
Package sdc tracks named clock domains over a synthesized netlist and
propagates their timing information along structural paths, so that SDC
constraint generation can emit an accurate create_clock definition for
every wire reachable from a declared clock source.

A driver registers initial clock wires on named domains, then runs the
propagation passes in sequence. Each pass walks every known domain,
queries a traversal oracle for newly reachable wires (electrical
aliases, clock buffer sinks) and registers them back into the same
domain, updating waveforms in place for wires seen before. Passes
converge to a fixed point and are safe to run again once the registry
reflects their output.

The netlist itself is not part of this package; oracles answering
structural reachability questions are supplied by the caller (see the
netlist package for a ready-made implementation).
*/
package sdc

// Command sdcgen loads a netlist description, propagates declared
// clocks through aliases and clock buffers, and writes an SDC
// constraint file with one create_clock per discovered clock wire.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	sdc "github.com/antmicro/f4pga"
	"github.com/antmicro/f4pga/netlist"
)

type clockDef struct {
	name   string
	wire   string
	period float64
	rise   float64
	fall   float64
	edges  bool
}

// clockDefs collects repeated -clock flags.
type clockDefs []clockDef

func (d *clockDefs) String() string {
	var b strings.Builder
	for i, c := range *d {
		if i > 0 {
			b.WriteRune(' ')
		}
		fmt.Fprintf(&b, "name=%s,wire=%s,period=%g", c.name, c.wire, c.period)
	}
	return b.String()
}

func (d *clockDefs) Set(s string) error {
	var c clockDef
	var hasRise, hasFall bool
	for _, f := range strings.Split(s, ",") {
		i := strings.IndexRune(f, '=')
		if i <= 0 {
			return errors.Errorf("malformed field %q", f)
		}
		k, v := f[:i], f[i+1:]
		var err error
		switch k {
		case "name":
			c.name = v
		case "wire":
			c.wire = v
		case "period":
			c.period, err = strconv.ParseFloat(v, 64)
		case "rise":
			c.rise, err = strconv.ParseFloat(v, 64)
			hasRise = true
		case "fall":
			c.fall, err = strconv.ParseFloat(v, 64)
			hasFall = true
		default:
			return errors.Errorf("unknown field %q", k)
		}
		if err != nil {
			return errors.Wrap(err, k)
		}
	}
	if c.name == "" || c.wire == "" || c.period <= 0 {
		return errors.New("name, wire and a positive period are required")
	}
	if hasRise != hasFall {
		return errors.New("rise and fall must be given together")
	}
	c.edges = hasRise
	*d = append(*d, c)
	return nil
}

func main() {
	log.SetFlags(0)

	netlistPath := flag.String("n", "", "netlist description file")
	outPath := flag.String("o", "", "output file (default stdout)")
	verbose := flag.Bool("v", false, "log propagation diagnostics")
	var defs clockDefs
	flag.Var(&defs, "clock", "clock definition name=N,wire=W,period=P[,rise=R,fall=F], repeatable")
	flag.Parse()

	if *netlistPath == "" || len(defs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*netlistPath)
	if err != nil {
		log.Fatal(err)
	}
	n, err := netlist.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v", *netlistPath, err)
	}

	var logf sdc.LogFunc
	if *verbose {
		logf = log.Printf
	}
	clocks := sdc.NewClocks(logf)
	for _, d := range defs {
		w := n.Wire(d.wire)
		if w == nil {
			log.Fatalf("clock %s: wire %s not found in netlist", d.name, d.wire)
		}
		if d.edges {
			// the registry treats a bad waveform as a logic defect, so
			// reject user input here
			if d.fall-d.rise != d.period/2 {
				log.Fatalf("clock %s: waveform {%g %g} is not a 50%% duty cycle of period %g",
					d.name, d.rise, d.fall, d.period)
			}
			clocks.AddClockWireWaveform(d.name, w, d.period, d.rise, d.fall)
		} else {
			clocks.AddClockWire(d.name, w, d.period)
		}
	}

	clocks.PropagateNatural(n)
	clocks.PropagateBuffers(n)
	clocks.PropagateClockDividers(n)

	out := os.Stdout
	if *outPath != "" {
		out, err = os.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := sdc.WriteConstraints(out, clocks); err != nil {
		log.Fatal(err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

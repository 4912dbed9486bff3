package netlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a line-oriented netlist description:
//
//	# comment
//	wire CLK_IN
//	alias CLK_IN CLK_IN_BUF
//	cell IBUF ibuf0 I=CLK_IN_BUF O=CLK_INT
//
// wire declares a wire, alias connects two wires as carriers of the
// identical signal, cell adds an instance of the given type with
// PIN=WIRE connections. Wires referenced before declaration are created
// implicitly.
func Parse(r io.Reader) (*Netlist, error) {
	n := New()
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "wire":
			if len(fields) != 2 {
				return nil, parseError(line, "wire takes exactly one name")
			}
			n.WireOrNew(fields[1])
		case "alias":
			if len(fields) != 3 {
				return nil, parseError(line, "alias takes exactly two wire names")
			}
			n.Connect(fields[1], fields[2])
		case "cell":
			if len(fields) < 4 {
				return nil, parseError(line, "cell takes a type, a name and at least one PIN=WIRE connection")
			}
			pins := make(map[string]string, len(fields)-3)
			for _, f := range fields[3:] {
				i := strings.IndexRune(f, '=')
				if i <= 0 || i == len(f)-1 {
					return nil, parseError(line, "malformed pin connection "+f)
				}
				pin := f[:i]
				if _, ok := pins[pin]; ok {
					return nil, parseError(line, "duplicate pin "+pin)
				}
				pins[pin] = f[i+1:]
			}
			n.AddCell(fields[1], fields[2], pins)
		default:
			return nil, parseError(line, "unknown directive "+fields[0])
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	return n, nil
}

func parseError(line int, msg string) error {
	return errors.Errorf("line %d: %s", line, msg)
}

package benchmarks

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/txtar"

	"znkr.io/listdiff/internal/cellgen"
)

// Input is a pair of files to compare.
type Input struct {
	Name string
	X, Y []byte
}

// Generated returns one input per size. Each line of an input is a cell, the cell ID is the key.
func Generated(sizes ...int) []Input {
	inputs := make([]Input, len(sizes))
	for i, size := range sizes {
		g := cellgen.New(uint64(size))
		m := g.Mutate(g.Cells(size), size/2, 2*size)
		inputs[i] = Input{
			Name: fmt.Sprintf("cells-%d", size),
			X:    render(m.From),
			Y:    render(m.To),
		}
	}
	return inputs
}

func render(cells []*cellgen.Cell) []byte {
	var buf bytes.Buffer
	for _, c := range cells {
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", c.ID, c.Title, c.Subtitle)
	}
	return buf.Bytes()
}

// LoadTxtar reads an input from a txtar archive with the files "x" and "y".
func LoadTxtar(filename string) (Input, error) {
	ar, err := txtar.ParseFile(filename)
	if err != nil {
		return Input{}, err
	}
	in := Input{Name: filename}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			in.X = f.Data
		case "y":
			in.Y = f.Data
		default:
			return Input{}, fmt.Errorf("unknown file in archive: %v", f.Name)
		}
	}
	return in, nil
}

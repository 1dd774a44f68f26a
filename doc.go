/*
Package seamcarve is a content aware image resize library. It shrinks the width of an
image by repeatedly removing the vertical seam of lowest energy, thereby preserving
the salient parts of the picture.

A single iteration is made of four stages, each of them exposed on its own:

	energy := seamcarve.ComputeEnergy(img)        // dual-gradient energy with wraparound
	table := seamcarve.ComputeSeamTable(energy)   // cumulative minimum energy
	seam, err := seamcarve.RecoverSeam(table, img.Height(), img.Width())
	narrower, err := seamcarve.RemoveSeam(img, seam)

The Processor repeats the pipeline until the requested width is reached:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/seamcarve"
	)

	func main() {
		p := &seamcarve.Processor{
			NewWidth: 320,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error rescaling image: %s", err.Error())
		}
	}

The package also provides a command line interface, supporting various flags for the
rescaling operation. To check the supported commands type:

	$ seamcarve --help
*/
package seamcarve

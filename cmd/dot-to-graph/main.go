package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2016, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/chenghe-take/MiningByHypertree/cmd"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
	"github.com/chenghe-take/MiningByHypertree/viz"
)

func init() {
	cmd.UsageMessage = "dot-to-graph --help"
	cmd.ExtendedMessage = `
dot-to-graph -i graph.dot -o graph.lg
cat graph.dot | dot-to-graph > graph.lg
dot-to-graph -i graph.dot > graph.lg
cat graph.dot | dot-to-graph -o graph.lg.gz

Vertices must be labelled "<id>:<int>" or "<int>", edge labels must be ints.
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hi:o:",
		[]string{
			"help",
			"input=",
			"output=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "trailing args: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	inputPath := ""
	outputPath := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-i", "--input":
			inputPath = cmd.AssertFileExists(oa.Arg())
		case "-o", "--output":
			outputPath = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	input := func() (io.Reader, func()) {
		return os.Stdin, func() {}
	}
	if inputPath != "" {
		input = cmd.Input(inputPath)
	} else {
		inputPath = "<stdin>"
	}

	var output io.Writer
	if outputPath != "" {
		outputf, err := os.Create(outputPath)
		if err != nil {
			errors.Logf("ERROR", "could not open %v : %v", outputPath, err)
			return 1
		}
		defer outputf.Close()
		if strings.HasSuffix(outputPath, ".gz") {
			z := gzip.NewWriter(outputf)
			defer z.Close()
			output = z
		} else {
			output = outputf
		}
	} else {
		outputPath = "<stdout>"
		output = os.Stdout
	}

	errors.Logf("INFO", "converting %v writing to %v", inputPath, outputPath)
	graphs, err := viz.Read(input)
	if err != nil {
		errors.Logf("ERROR", "error reading dot %v", err)
		return 1
	}
	for _, g := range graphs {
		if err := graph.Write(output, g); err != nil {
			errors.Logf("ERROR", "error writing graph %v", err)
			return 1
		}
	}
	return 0
}

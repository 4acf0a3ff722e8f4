package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
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
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/chenghe-take/MiningByHypertree/cmd"
	"github.com/chenghe-take/MiningByHypertree/viz"
)

func init() {
	cmd.UsageMessage = "patterns-to-dot --help"
	cmd.ExtendedMessage = `
patterns-to-dot -i <output>/patterns.txt -o <output>/patterns_dotfile

Writes every pattern of a patterns file to <dir>/g<id>.dot.
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
	outputDir := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-i", "--input":
			inputPath = cmd.AssertFileExists(oa.Arg())
		case "-o", "--output":
			outputDir = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if inputPath == "" || outputDir == "" {
		fmt.Fprintf(os.Stderr, "You must supply both -i and -o\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	count, err := viz.Convert(cmd.Input(inputPath), outputDir)
	if err != nil {
		errors.Logf("ERROR", "error converting %v: %v", inputPath, err)
		return 1
	}
	errors.Logf("INFO", "wrote %v dot files to %v", count, outputDir)
	return 0
}

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
	"log"
	"math"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/chenghe-take/MiningByHypertree/cmd"
	"github.com/chenghe-take/MiningByHypertree/config"
	"github.com/chenghe-take/MiningByHypertree/support"
)

func init() {
	cmd.UsageMessage = "hypermine --help"
	cmd.ExtendedMessage = `
hypermine - frequent subgraph mining in a single labeled graph

$ hypermine -o <path> --support=<int> [Global Options] <input-path> \
    [<reporter> [Reporter Options]]

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'
      (and 'dot' when --dot is given).

Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<int>           minimum support of patterns (required)
    -m, --measure=<name>      support measure: MNI, MI, MVC, MIS (default MNI)
    --max-edges=<int>         maximum edges in a pattern (default unlimited)
    -s, --single-vertices     also output the frequent single vertices
    --hypertree               count support on a random spanning hypertree
                              of the occurrences
    --seed=<int>              seed of the hypertree sampler (default 0)
    --dot                     write a GraphViz file per pattern to
                              <output>/patterns_dotfile
    --occurrences             write the occurrences of every pattern to
                              <output>/occurrences.txt
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    t # <graph-id>
    v <vertex-id> <vertex-label>
    e <vertex-id> <vertex-id> <edge-label>

    Only the first graph of the file is mined.

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the output dir
    dot                       write one GraphViz file per pattern
    unique                    takes an "inner reporter" but only passes the
                              patterns with an unseen code to it
    heap-profile              write a heap profile as patterns are found

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line
        -e, every=<int>       only log every n-th pattern

    file Options
        -p, patterns=<name>    the prefix of the name of the file in the output
                               directory to write the patterns
        -e, occurrences=<name> the prefix of the name of the file in the output
                               directory to write the occurrences

    dot Options
        -d, dir-name=<name>   name of the directory in the output directory

    heap-profile Options
        -p, profile=<path>    where you want the heap-profile written
        -e, every=<int>       profile every n patterns (default 1)

    Examples

        $ hypermine -o /tmp/hm --support=10 --measure=MIS \
            ./data/citeseer.lg

        $ hypermine -o /tmp/hm --support=10 --hypertree --seed=7 \
            ./data/citeseer.lg.gz \
            chain log -e 100 file --occurrences=occ dot endchain
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:m:s",
		[]string{
			"help",
			"output=", "cache=",
			"reporters",
			"support=",
			"measure=",
			"max-edges=",
			"single-vertices",
			"hypertree",
			"seed=",
			"dot",
			"occurrences",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := &config.Config{
		Measure:  support.MNI,
		MaxEdges: math.MaxInt32,
	}
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			conf.Output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			conf.Cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			conf.Support = cmd.ParseInt(oa.Arg())
		case "-m", "--measure":
			conf.Measure = cmd.ParseMeasure(oa.Arg())
		case "--max-edges":
			conf.MaxEdges = cmd.ParseInt(oa.Arg())
		case "-s", "--single-vertices":
			conf.SingleVertices = true
		case "--hypertree":
			conf.Hypertree = true
		case "--seed":
			conf.Seed = int64(cmd.ParseInt(oa.Arg()))
		case "--dot":
			conf.Dot = true
		case "--occurrences":
			conf.Occurrences = true
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if conf.Support <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if conf.Output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(args, conf)
}

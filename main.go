// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/klplate/fem"
	"github.com/cpmech/klplate/inp"
	"github.com/cpmech/klplate/out"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	verbose bool   // show messages
	doPlot  bool   // plot profiles in the terminal
	workers int    // number of concurrent workers; zero keeps the value in the input file
	dirOut  string // output directory; empty keeps the value in the input file
	npts    int    // number of stations along the profile
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "klplate",
		Short: "Kirchhoff-Love thin plate analysis with spline elements",
	}

	runCmd := &cobra.Command{
		Use:   "run [file.yaml]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "show messages")
	runCmd.Flags().BoolVar(&doPlot, "plot", false, "plot deflection and stress resultants along the centre line")
	runCmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers")
	runCmd.Flags().StringVar(&dirOut, "out", "", "output directory")
	runCmd.Flags().IntVar(&npts, "npts", 21, "number of stations along the centre line")

	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "print default problem file",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := inp.Default().Marshal()
			if err != nil {
				return err
			}
			io.Pf("%s", b)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, defaultsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runSimulation reads the input file, solves and reports
func runSimulation(cmd *cobra.Command, args []string) (err error) {

	// input
	sim, err := inp.ReadSim(args[0])
	if err != nil {
		return
	}
	if workers > 0 {
		sim.Solver.Workers = workers
	}
	if dirOut != "" {
		sim.Data.DirOut = dirOut
	}

	// run
	if verbose {
		io.PfWhite("\nklplate -- Kirchhoff-Love plates with spline elements\n\n")
	}
	m, err := fem.NewMainSim(sim, verbose)
	if err != nil {
		return
	}
	err = m.Run()
	if err != nil {
		return
	}
	dom := m.Dom

	// vibration
	if sim.Solver.Mode == "vibration" {
		io.Pf("\n%s", out.FrequencyTable(dom.Omega))
		return
	}

	// norms
	io.Pf("\n%s", out.NormTable(dom.Norms))

	// centre line
	xa, xb := []float64{0}, []float64{sim.Mesh.Size[0]}
	if sim.Ndim == 2 {
		yc := sim.Mesh.Size[1] / 2.0
		xa, xb = append(xa, yc), append(xb, yc)
	}
	stations, err := dom.Stations(xa, xb, npts)
	if err != nil {
		return
	}
	io.Pf("\n%s", out.StationsTable(stations))
	if doPlot {
		io.Pf("\n%s\n", out.PlotDeflection(stations, "deflection along centre line"))
		io.Pf("\n%s\n", out.PlotMoments(stations, "stress resultants along centre line"))
	}

	// pressure samples
	if samples := dom.Plate.PresSamples(); len(samples) > 0 {
		out.WritePressure(sim.Data.DirOut, sim.Key, samples)
	}
	return
}

// cmd/kinsim/main.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// kinsim projects aircraft trajectories for the single-maneuver scenarios
// in one or more scenario files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mmp/kinematics/log"
	"github.com/mmp/kinematics/maneuver"
	"github.com/mmp/kinematics/math"
	"github.com/mmp/kinematics/metrics"
	"github.com/mmp/kinematics/scenario"

	"github.com/goforj/godump"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	logLevel    = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "Log file directory")
	outFile     = flag.String("o", "", "Write trajectories to `file` (msgpack, zstd compressed)")
	printJSON   = flag.Bool("json", false, "Print each scenario's final state as JSON")
	dump        = flag.Bool("dump", false, "Dump the parsed scenarios and exit")
	showMetrics = flag.Bool("metrics", false, "Report kinematics engine call counts")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: kinsim [flags] scenario.json...\nwhere [flags] may be:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := log.ParseLevel(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	if err := run(lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "kinsim: %v\n", err)
		os.Exit(1)
	}
}

func run(lg *log.Logger) error {
	var scenarios []*scenario.Scenario
	for _, fn := range flag.Args() {
		s, err := scenario.Load(fn)
		if err != nil {
			return err
		}
		lg.Info("loaded scenarios", slog.String("file", fn), slog.Int("count", len(s)))
		scenarios = append(scenarios, s...)
	}

	if *dump {
		godump.Fdump(os.Stdout, scenarios)
		return nil
	}

	var d maneuver.Dispatcher
	var collector *metrics.EngineCollector
	if *showMetrics {
		var err error
		if collector, err = metrics.NewEngineCollector(prometheus.NewRegistry()); err != nil {
			return err
		}
		d = collector.Instrument(d)
	}

	lg.Debugf("running %d scenarios", len(scenarios))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	trajectories, err := scenario.Run(ctx, scenarios, d, lg)
	if err != nil {
		return err
	}

	if *outFile != "" {
		if err := scenario.StoreTrajectories(*outFile, trajectories); err != nil {
			return err
		}
		lg.Infof("wrote %d trajectories to %s", len(trajectories), *outFile)
	}

	if *printJSON {
		if err := writeFinalStates(os.Stdout, trajectories); err != nil {
			return err
		}
	} else {
		for _, tr := range trajectories {
			if f, ok := tr.Final(); ok {
				fmt.Printf("%-24s t=%6.1fs  %s\n", tr.Name, f.T, f.State)
			}
		}
	}

	if collector != nil {
		counts, err := collector.Snapshot()
		if err != nil {
			return err
		}
		s := metrics.SnapshotString(counts)
		lg.Info("engine calls", slog.String("counts", s))
		fmt.Fprintf(os.Stderr, "engine calls: %s\n", s)
	}
	return nil
}

// finalState is a trajectory's last sample in aviation units.
type finalState struct {
	Name             string      `json:"name"`
	Frame            string      `json:"frame"`
	TimeS            float64     `json:"t_s"`
	LatLong          *string     `json:"position,omitempty"`
	XYNM             *[2]float64 `json:"xy_nm,omitempty"`
	AltitudeFt       float64     `json:"altitude_ft"`
	TrackDeg         float64     `json:"track_deg"`
	GroundspeedKts   float64     `json:"groundspeed_kts"`
	VerticalSpeedFpm float64     `json:"vertical_speed_fpm"`
}

func writeFinalStates(w io.Writer, trajectories []scenario.Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	for _, tr := range trajectories {
		f, ok := tr.Final()
		if !ok {
			continue
		}
		p, v := f.State.Position, f.State.Velocity
		fs := finalState{
			Name:             tr.Name,
			Frame:            tr.Frame.String(),
			TimeS:            f.T,
			AltitudeFt:       math.MetersToFeet(p.Alt()),
			TrackDeg:         math.NormalizeHeading(math.Degrees(v.Trk())),
			GroundspeedKts:   math.MPSToKnots(v.Gs()),
			VerticalSpeedFpm: math.MPSToFPM(v.Vs()),
		}
		if p.IsLatLon() {
			s := p.LatLonAlt().DDString()
			fs.LatLong = &s
		} else if p.IsCartesian() {
			pt := p.Point()
			fs.XYNM = &[2]float64{math.MetersToNM(pt[0]), math.MetersToNM(pt[1])}
		}
		if err := enc.Encode(fs); err != nil {
			return err
		}
	}
	return nil
}

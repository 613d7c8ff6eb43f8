// Command amsim runs one AM communication-chain simulation and prints its
// parameters, metrics and spectral markers.
//
// Usage:
//
//	amsim [flags]
//
// Examples:
//
//	amsim --fc 100k --fm 1k --m 0.8
//	amsim --mode dsbsc --demod coherent --phase 20
//	amsim --config sim.yaml --snr 10 --seed 7
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/urfave/cli.v1"

	"github.com/cwbudde/algo-am/sim"
	"github.com/cwbudde/algo-am/sim/runner"
)

var (
	configFlag = cli.StringFlag{Name: "config", Usage: "YAML parameter file; flags override its values"}

	carrierFreqFlag = cli.StringFlag{Name: "fc", Value: "10k", Usage: "carrier frequency (e.g. 10k, 1.5M)"}
	messageFreqFlag = cli.StringFlag{Name: "fm", Value: "500", Usage: "message frequency"}
	carrierAmpFlag  = cli.Float64Flag{Name: "ac", Value: 1, Usage: "carrier amplitude"}
	modIndexFlag    = cli.Float64Flag{Name: "m", Value: 0.7, Usage: "modulation index"}
	messageAmpFlag  = cli.Float64Flag{Name: "am", Usage: "message amplitude (instead of --m)"}
	shapeFlag       = cli.StringFlag{Name: "shape", Value: "sine", Usage: "message shape: sine, square, sawtooth, dualtone"}
	modeFlag        = cli.StringFlag{Name: "mode", Value: "dsbfc", Usage: "AM variant: dsbfc, dsbsc"}
	demodFlag       = cli.StringFlag{Name: "demod", Value: "envelope", Usage: "receiver: envelope, coherent"}
	phaseFlag       = cli.Float64Flag{Name: "phase", Usage: "coherent receiver phase error in degrees"}
	snrFlag         = cli.Float64Flag{Name: "snr", Value: 50, Usage: "channel SNR in dB"}
	fftCenterFlag   = cli.StringFlag{Name: "fft-center", Usage: "spectrum window centre (default fc)"}
	fftSpanFlag     = cli.StringFlag{Name: "fft-span", Usage: "spectrum window span (default depends on shape)"}

	seedFlag     = cli.Uint64Flag{Name: "seed", Usage: "channel noise seed (0 draws a random seed)"}
	durationFlag = cli.Float64Flag{Name: "duration", Value: sim.DefaultDuration, Usage: "simulated seconds"}
	timeoutFlag  = cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "abort waiting after this long"}
	verboseFlag  = cli.BoolFlag{Name: "verbose", Usage: "debug logging"}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "amsim"
	app.Usage = "simulate an AM transmitter, noisy channel and receiver"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		configFlag,
		carrierFreqFlag, messageFreqFlag,
		carrierAmpFlag, modIndexFlag, messageAmpFlag,
		shapeFlag, modeFlag, demodFlag, phaseFlag, snrFlag,
		fftCenterFlag, fftSpanFlag,
		seedFlag, durationFlag, timeoutFlag, verboseFlag,
	}
	app.Action = run
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "amsim:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	level := slog.LevelInfo
	if ctx.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	p, err := paramsFromFlags(ctx)
	if err != nil {
		return err
	}

	simOpts := []sim.Option{sim.WithDuration(ctx.Float64(durationFlag.Name))}
	if seed := ctx.Uint64(seedFlag.Name); seed != 0 {
		simOpts = append(simOpts, sim.WithNoiseSeed(seed))
	}

	r := runner.New(runner.WithLogger(logger), runner.WithSimOptions(simOpts...))
	h, err := r.Submit(p)
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration(timeoutFlag.Name))
	defer cancel()

	st, err := r.Wait(waitCtx, h)
	if err != nil {
		return err
	}
	if st.State == runner.Failed {
		return st.Err
	}

	return report(os.Stdout, st.Result)
}

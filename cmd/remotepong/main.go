package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/diegok/remotepong/internal/app"
	"github.com/diegok/remotepong/internal/config"
	"github.com/diegok/remotepong/internal/logger"
	"github.com/diegok/remotepong/internal/sim"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if cfg.Simulate > 0 {
		if err := simulate(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate(cfg *config.Config) error {
	log, closer, err := logger.Setup(cfg.LoggerOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	rep := sim.Run(sim.Options{
		PointsToWin: cfg.PointsToWin,
		MaxTicks:    cfg.Simulate,
		Log:         log,
	})
	fmt.Println(rep.Render())
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  remotepong [options]              Play in the terminal")
	fmt.Fprintln(os.Stderr, "  remotepong --simulate <ticks>     Run a headless match and print a report")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>                Points to win (default: 7)")
	fmt.Fprintln(os.Stderr, "  --controller <kind>         none, keyboard or joystick (default: joystick)")
	fmt.Fprintln(os.Stderr, "  --joystick <path>           Joystick device (default: /dev/input/js0)")
	fmt.Fprintln(os.Stderr, "  --ball-interval <d>         Physics tick (default: 20ms)")
	fmt.Fprintln(os.Stderr, "  --ai-interval <d>           AI tick (default: 20ms)")
	fmt.Fprintln(os.Stderr, "  --controller-interval <d>   Controller poll (default: 50ms)")
	fmt.Fprintln(os.Stderr, "  --assets <dir>              WAV clips for sound effects")
	fmt.Fprintln(os.Stderr, "  --log-file <path>           Log file (default: remotepong.log)")
	fmt.Fprintln(os.Stderr, "  --log-level <level>         Log level (default: info)")
	fmt.Fprintln(os.Stderr, "  --config <file>             Read options from a config file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  remotepong --controller keyboard")
	fmt.Fprintln(os.Stderr, "  remotepong --points 3 --simulate 100000")
}

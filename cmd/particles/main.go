package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/profile"

	"github.com/samsarge/particles/alloc"
	"github.com/samsarge/particles/constant"
	"github.com/samsarge/particles/render"
	"github.com/samsarge/particles/sim"
)

var (
	configFlag     = flag.String("config", "", "Path to YAML config file")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	initialFlag    = flag.Int("initial", constant.InitialSpawnCount, "Initial spawn burst")
	ticksFlag      = flag.Int("ticks", 0, "Stop after N ticks (0 = run until quit)")
	headlessFlag   = flag.Bool("headless", false, "Run without a screen (for telemetry capture; requires -ticks)")
	soundFlag      = flag.Bool("sound", false, "Chime on spawn bursts")
	memProfileFlag = flag.Bool("memprofile", false, "Write an allocation profile to the working directory")
)

const audioSampleRate = beep.SampleRate(44100)

func main() {
	flag.Parse()

	if err := validateFlags(*headlessFlag, *ticksFlag); err != nil {
		fmt.Fprintf(os.Stderr, "particles: %v\n", err)
		os.Exit(2)
	}

	cfg := sim.DefaultConfig()
	if *configFlag != "" {
		var err error
		cfg, err = sim.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "particles: %v\n", err)
			os.Exit(1)
		}
	}
	applyFlags(&cfg)

	if *memProfileFlag {
		p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	}

	// Every particle is carved from this allocator; one telemetry record
	// per spawn goes to stderr for the whole process lifetime.
	reporter := alloc.NewReportingAllocator(alloc.NewSystemAllocator())

	monitor := alloc.NewMonitor(os.Stderr, cfg.MonitorInterval)
	monitor.Start()
	defer monitor.Stop()

	world := sim.NewWorld(cfg.Width, cfg.Height, &sim.WorldConfig{
		Seed:      cfg.Seed,
		Allocator: reporter,
	})
	world.Spawn(cfg.InitialSpawn)

	if *headlessFlag {
		runHeadless(world)
	} else {
		runScreen(world, cfg)
	}

	fmt.Fprintf(os.Stderr, "ticks=%d particles=%d allocations=%d frees=%d bytes_allocated=%d\n",
		world.TickCount(), world.Len(),
		reporter.Allocations(), reporter.Frees(), reporter.BytesAllocated())
}

// applyFlags overlays flags the user set explicitly on top of the config,
// so command-line values win over the file.
func applyFlags(cfg *sim.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "initial":
			cfg.InitialSpawn = *initialFlag
		case "sound":
			cfg.Sound = *soundFlag
		}
	})
}

// validateFlags rejects combinations that leave the process with no way to
// stop: without a screen there is no quit key, so headless runs must be
// bounded by a tick count.
func validateFlags(headless bool, ticks int) error {
	if headless && ticks <= 0 {
		return fmt.Errorf("-headless requires -ticks > 0")
	}
	return nil
}

func runHeadless(world *sim.World) {
	for i := 0; i < *ticksFlag; i++ {
		world.Tick()
	}
}

func runScreen(world *sim.World, cfg sim.Config) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not create a window: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not create a window: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before the crash report so it stays readable
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "particles crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var chime func()
	if cfg.Sound {
		if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
			// Non-fatal, the simulation can run without sound
			fmt.Fprintf(os.Stderr, "audio init failed: %v (continuing without sound)\n", err)
		} else {
			chime = playChime
			defer speaker.Close()
		}
	}

	renderer := render.New(screen)

	eventChan := make(chan tcell.Event, constant.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				renderer.Resize()
				screen.Sync()
			}

		case <-ticker.C:
			n := world.Tick()
			if n > 0 && chime != nil {
				chime()
			}
			renderer.Frame(world)

			if *ticksFlag > 0 && world.TickCount() >= uint64(*ticksFlag) {
				return
			}
		}
	}
}

func playChime() {
	sine, err := generators.SineTone(audioSampleRate, constant.ChimeFrequencyHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(50*time.Millisecond), sine))
}

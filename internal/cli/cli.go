// Package cli provides the command-line entry point: it loads a page,
// wires the engine, and runs the tick loop either headless (printing the
// packed debug frames) or inside the terminal preview.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/openmarquee/marquee/internal/core/engine"
	"github.com/openmarquee/marquee/internal/core/font"
	"github.com/openmarquee/marquee/internal/core/page"
	"github.com/openmarquee/marquee/internal/core/raster"
	"github.com/openmarquee/marquee/internal/tui"
)

// Run executes the renderer with the provided CLI arguments. It returns a
// POSIX-style exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine, but other errors should be surfaced to help with debugging.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			_, _ = fmt.Fprintf(stderr, "failed to load .env: %v\n", err)
			return 1
		}
	}

	flagSet := flag.NewFlagSet("marquee", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	pagePath := flagSet.String("page", os.Getenv("MARQUEE_PAGE"), "page descriptor JSON (empty runs the built-in demo)")
	width := flagSet.Int("width", envInt("MARQUEE_WIDTH", 100), "panel width in pixels")
	height := flagSet.Int("height", envInt("MARQUEE_HEIGHT", 16), "panel height in pixels")
	interval := flagSet.Duration("interval", 100*time.Millisecond, "tick period")
	ticks := flagSet.Int("ticks", 0, "stop after this many ticks (0 runs until interrupted)")
	useTUI := flagSet.Bool("tui", false, "show the live terminal preview instead of printing frames")
	logLevel := flagSet.String("log-level", os.Getenv("MARQUEE_LOG_LEVEL"), "minimum log level (DEBUG, INFO, WARN, ERROR, CRITICAL)")

	if err := flagSet.Parse(args); err != nil {
		return 2
	}

	db := engine.NewVarStore()
	dbp := engine.NewVarStore()

	raw := []byte(demoPage)
	isDemo := *pagePath == ""
	if !isDemo {
		var err error
		raw, err = os.ReadFile(*pagePath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "failed to read page: %v\n", err)
			return 1
		}
	}

	spec, err := page.Parse(raw)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	ctrl, err := engine.NewController(engine.Options{
		PanelWidth:  *width,
		PanelHeight: *height,
		LogLevel:    *logLevel,
		LogWriter:   stderr,
	}, db, dbp)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	// Font decoding lives outside the engine; every page font resolves to
	// the bundled face here.
	fonts := map[string]*font.Pack{"default": font.Face5x8()}
	for name := range spec.Fonts {
		fonts[name] = font.Face5x8()
	}

	if err := page.Build(spec, fonts, ctrl); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	start := time.Now()
	onTick := func(now time.Time) {}
	if isDemo {
		seedDemoVars(db)
		dbp.CopyFrom(db)
		onTick = func(now time.Time) { demoTick(db, start, now) }
	}

	if *useTUI {
		err := tui.Run(ctx, tui.Options{
			Controller: ctrl,
			Interval:   *interval,
			OnTick:     onTick,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintf(stderr, "preview failed: %v\n", err)
			return 1
		}
		return 0
	}

	return runHeadless(ctx, ctrl, onTick, *interval, *ticks, stdout)
}

// runHeadless is the reference tick loop: update variables, render, pack,
// show, roll the previous snapshot forward.
func runHeadless(ctx context.Context, ctrl *engine.Controller, onTick func(time.Time), interval time.Duration, ticks int, stdout io.Writer) int {
	w, h := ctrl.PanelSize()
	byteRows := (h + 7) / 8

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ticks == 0 || i < ticks; i++ {
		select {
		case <-ctx.Done():
			return 0
		case now := <-ticker.C:
			onTick(now)
			img := ctrl.Next()
			if img != nil {
				frame := raster.Pack(img, 0, 0, w, h)
				if err := raster.Show(stdout, frame, w, byteRows); err != nil {
					return 1
				}
			}
			ctrl.PrevVars().CopyFrom(ctrl.Vars())
		}
	}
	return 0
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

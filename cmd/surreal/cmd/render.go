package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/surreal-ui/surreal/cmd/surreal/internal/config"
	"github.com/surreal-ui/surreal/internal/demo"
	"github.com/surreal-ui/surreal/pkg/app"
	"github.com/surreal-ui/surreal/pkg/render"
	"github.com/surreal-ui/surreal/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo tree to a PNG",
		Long: `Lay out and render the demo view tree without a window.

Settings come from surreal.yaml in the project root when present (window
size, theme, fonts and images); flags override them.

Flags:
  -o, --out FILE     Output PNG (default: surreal.png)
  --width N          Window width in pixels
  --height N         Window height in pixels
  --theme FILE       YAML theme file
  --tap ID           Click the widget with this id before the final frame
                     (repeatable, applied in order)
  --trace FILE       Write per-frame timings as JSON

Examples:
  surreal render -o demo.png
  surreal render --tap test --tap test --tap append -o clicked.png`,
		Usage: "surreal render [-o FILE] [--width N] [--height N] [--theme FILE] [--tap ID]... [--trace FILE]",
		Run:   runRender,
	})
}

type renderOptions struct {
	out       string
	width     uint32
	height    uint32
	themePath string
	taps      []string
	tracePath string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{out: "surreal.png"}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-o", "--out", "--theme", "--tap", "--trace", "--width", "--height":
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
		v, err := flagValue(args, i)
		if err != nil {
			return opts, err
		}
		i++
		switch arg {
		case "-o", "--out":
			opts.out = v
		case "--theme":
			opts.themePath = v
		case "--tap":
			opts.taps = append(opts.taps, v)
		case "--trace":
			opts.tracePath = v
		case "--width", "--height":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n == 0 {
				return opts, fmt.Errorf("%s must be a positive integer, got %q", arg, v)
			}
			if arg == "--width" {
				opts.width = uint32(n)
			} else {
				opts.height = uint32(n)
			}
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	dir, err := config.FindProjectRoot(wd)
	if err != nil {
		dir = wd
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return renderDemo(ctx, cfg, opts)
}

func renderDemo(ctx context.Context, cfg *config.Resolved, opts renderOptions) error {
	width, height := cfg.Width, cfg.Height
	if opts.width != 0 {
		width = opts.width
	}
	if opts.height != 0 {
		height = opts.height
	}

	th := theme.Default()
	themePath := cfg.ThemePath
	if opts.themePath != "" {
		themePath = opts.themePath
	}
	if themePath != "" {
		var err error
		if th, err = theme.Load(themePath); err != nil {
			return err
		}
	}

	r, err := render.NewImageRenderer(int(width), int(height))
	if err != nil {
		return err
	}
	if err := loadResources(r, cfg); err != nil {
		return err
	}

	root := demo.New()
	surface := &headlessSurface{renderer: r, root: root, taps: opts.taps}
	var trace *app.FrameTraceBuffer
	if opts.tracePath != "" {
		trace = app.NewFrameTraceBuffer(0, 0)
	}
	application := app.New(surface, app.Config{Theme: th, FPS: -1, Trace: trace})
	if err := application.Run(ctx, root); err != nil {
		return err
	}
	if surface.err != nil {
		return surface.err
	}

	if err := writePNG(r, opts.out); err != nil {
		return err
	}
	if trace != nil {
		if err := writeTrace(trace, opts.tracePath); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "wrote %s (%dx%d, %d frames)\n", opts.out, width, height, surface.frames)
	return nil
}

// loadResources registers the configured fonts and images. The demo's plus
// icon is generated when the project does not provide one.
func loadResources(r *render.ImageRenderer, cfg *config.Resolved) error {
	for _, f := range cfg.Fonts {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("font %s: %w", f.Alias, err)
		}
		if err := r.RegisterFont(f.Alias, data); err != nil {
			return err
		}
	}
	hasPlus := false
	for _, img := range cfg.Images {
		if err := r.LoadImage(img.Alias, img.Path); err != nil {
			return err
		}
		hasPlus = hasPlus || img.Alias == demo.PlusResource
	}
	if !hasPlus {
		return r.AddImage(demo.PlusResource, demo.PlusIcon())
	}
	return nil
}

func writePNG(r *render.ImageRenderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTrace(buf *app.FrameTraceBuffer, path string) error {
	data, err := json.MarshalIndent(buf.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

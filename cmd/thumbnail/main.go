// Command thumbnail renders a YAML scene into a raster image with the
// software backend.
//
// Usage:
//
//	thumbnail [flags] <scene.yaml> [output]
//
// The output format follows the file extension (png, jpg, bmp, tif). When
// no output is given the scene's base name with a .png extension is
// written to the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/vgbridge"
	"github.com/gogpu/vgbridge/scene"
)

// config is the optional TOML configuration. Flags set on the command line
// override it.
type config struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Fit          string `toml:"fit"`
	Align        string `toml:"align"`
	Background   string `toml:"background"`
	MaxImageSize int    `toml:"max_image_size"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
}

func defaultConfig() config {
	return config{
		Width:        1024,
		Height:       1024,
		Fit:          "cover",
		Align:        "center",
		MaxImageSize: vgbridge.DefaultMaxImageDimension,
		LogLevel:     "warn",
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, rest, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "thumbnail: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "thumbnail: %v\n", err)
		return 1
	}
	defer closeLog()

	in := rest[0]
	out := outputPath(in)
	if len(rest) > 1 {
		out = rest[1]
	}

	if err := render(cfg, in, out); err != nil {
		vgbridge.Logger().Error("render failed", "scene", in, "err", err)
		fmt.Fprintf(stderr, "thumbnail: %v\n", err)
		return 1
	}
	vgbridge.Logger().Info("thumbnail written", "scene", in, "output", out,
		"width", cfg.Width, "height", cfg.Height)
	return 0
}

// parseArgs resolves the configuration from defaults, an optional TOML
// file and explicitly set flags, in that order.
func parseArgs(args []string, stderr io.Writer) (config, []string, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("thumbnail", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: thumbnail [flags] <scene.yaml> [output]")
		fs.PrintDefaults()
	}
	var (
		configPath = fs.String("config", "", "TOML configuration file")
		width      = fs.Int("width", cfg.Width, "output width in pixels")
		height     = fs.Int("height", cfg.Height, "output height in pixels")
		fit        = fs.String("fit", cfg.Fit, "fit: fill, contain, cover, fitWidth, fitHeight, none, scaleDown")
		align      = fs.String("align", cfg.Align, "alignment: topLeft, topCenter, ..., center, ..., bottomRight")
		background = fs.String("background", "", "background color #RRGGBB or #AARRGGBB")
		logLevel   = fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
		logFile    = fs.String("log-file", "", "write JSON logs to this rotating file")
	)
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return cfg, nil, fmt.Errorf("config %s: %w", *configPath, err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fit":
			cfg.Fit = *fit
		case "align":
			cfg.Align = *align
		case "background":
			cfg.Background = *background
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return cfg, nil, errors.New("expected a scene file and an optional output path")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, nil, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, fs.Args(), nil
}

// outputPath names the default output: the scene's base name with a .png
// extension, in the working directory.
func outputPath(scenePath string) string {
	base := filepath.Base(scenePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

func setupLogging(cfg config, stderr io.Writer) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile == "" {
		vgbridge.SetLogger(slog.New(slog.NewTextHandler(stderr, opts)))
		return func() { vgbridge.SetLogger(nil) }, nil
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	vgbridge.SetLogger(slog.New(slog.NewJSONHandler(lj, opts)))
	return func() {
		vgbridge.SetLogger(nil)
		_ = lj.Close()
	}, nil
}

func render(cfg config, in, out string) error {
	fit, err := vgbridge.ParseFit(cfg.Fit)
	if err != nil {
		return err
	}
	align, err := vgbridge.ParseAlignment(cfg.Align)
	if err != nil {
		return err
	}

	sc, err := scene.Load(in)
	if err != nil {
		return err
	}

	var ropts []vgbridge.RendererOption
	if cfg.Background != "" {
		bg, err := vgbridge.ParseHexColor(cfg.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		ropts = append(ropts, vgbridge.WithBackground(bg))
	}

	r := vgbridge.NewSoftwareRenderer(cfg.Width, cfg.Height, ropts...)
	defer r.Close()
	if r.State() != vgbridge.StateReady {
		return vgbridge.ErrNoSurface
	}

	f := vgbridge.NewSoftwareFactory(vgbridge.WithMaxImageSize(cfg.MaxImageSize))
	frame := vgbridge.AABB{MaxX: float32(cfg.Width), MaxY: float32(cfg.Height)}

	r.Save()
	r.Align(fit, align, frame, sc.Bounds())
	err = sc.Render(f, r)
	r.Restore()
	if err != nil {
		return err
	}
	return r.SaveImage(out)
}

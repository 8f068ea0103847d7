package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/fabric-warp-go/app"
	"github.com/soocke/fabric-warp-go/config"
)

func main() {
	var (
		configPath   = flag.String("config", "", "optional JSON config file")
		templatePath = flag.String("template", "", "template image (PNG or JPEG) with visible creases")
		graphicPath  = flag.String("graphic", "", "design graphic to place (PNG or JPEG)")
		outPath      = flag.String("out", "result.png", "output PNG path")
		selection    = flag.String("selection", "", "placement area as x1,y1,x2,y2 (default: centered half of the template)")
		scale        = flag.Float64("scale", 0, "scale factor in (0,2]; 0 keeps the configured value")
		parallel     = flag.Bool("parallel", false, "displace row bands in parallel")
		debug        = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *parallel {
		cfg.Parallel = true
	}
	if *debug {
		cfg.Debug = true
	}
	if *selection != "" {
		var x1, y1, x2, y2 int
		if _, err := fmt.Sscanf(*selection, "%d,%d,%d,%d", &x1, &y1, &x2, &y2); err != nil {
			fmt.Fprintf(os.Stderr, "selection: expected x1,y1,x2,y2, got %q\n", *selection)
			os.Exit(1)
		}
		cfg.SelectionX1, cfg.SelectionY1 = x1, y1
		cfg.SelectionX2, cfg.SelectionY2 = x2, y2
	}
	if *templatePath == "" || *graphicPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fabric-warp -template t.png -graphic g.png [-out result.png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	application := app.NewApp(cfg, logger)
	if err := application.Run(*templatePath, *graphicPath, *outPath); err != nil {
		logger.Error("placement failed", "error", err)
		os.Exit(1)
	}
}

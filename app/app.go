package app

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"github.com/soocke/fabric-warp-go/config"
	"github.com/soocke/fabric-warp-go/domain/warp"
	"github.com/soocke/fabric-warp-go/images"
)

// App runs the one-shot placement pipeline: load the template and the design
// graphic, warp the graphic against the template's creases and write the
// composite out as PNG. It is the external collaborator around the warp core:
// decoding, encoding and logging all live here.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	_ = cfg.Validate()
	return &App{cfg: cfg, logger: logger}
}

// Run executes the pipeline and writes the result to outPath. A preview
// scaled to the configured bounding box is written next to the result when
// previews are enabled.
func (a *App) Run(templatePath, graphicPath, outPath string) error {
	tmpl, err := a.loadImage(templatePath)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}
	graphic, err := a.loadImage(graphicPath)
	if err != nil {
		return fmt.Errorf("load graphic: %w", err)
	}

	comp := warp.NewCompositor(tmpl, warp.WarpOptions{
		WaveAmplitude:  a.cfg.WaveAmplitude,
		SagAmplitude:   a.cfg.SagAmplitude,
		WavePeriod:     a.cfg.WavePeriod,
		CreaseExponent: a.cfg.CreaseExponent,
		Parallel:       a.cfg.Parallel,
	})

	x1, y1, x2, y2 := a.selection(tmpl.Bounds().Dx(), tmpl.Bounds().Dy())
	comp.SetSelection(x1, y1, x2, y2)
	a.logger.Info("placing graphic",
		"template", templatePath,
		"graphic", graphicPath,
		"selection", fmt.Sprintf("%d,%d,%d,%d", x1, y1, x2, y2),
		"scale", a.cfg.Scale,
	)

	result, err := comp.PlaceGraphic(graphic, a.cfg.Scale)
	if err != nil {
		return fmt.Errorf("place graphic: %w", err)
	}

	if err := os.WriteFile(outPath, images.EncodePNG(result), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	a.logger.Info("wrote composite", "path", outPath,
		"width", result.Bounds().Dx(), "height", result.Bounds().Dy())

	if a.cfg.PreviewMaxW > 0 && a.cfg.PreviewMaxH > 0 {
		preview := images.ScaleToFit(result, a.cfg.PreviewMaxW, a.cfg.PreviewMaxH)
		previewPath := previewName(outPath)
		if err := os.WriteFile(previewPath, images.EncodePNG(preview), 0o644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		a.logger.Info("wrote preview", "path", previewPath)
	}
	return nil
}

// selection returns the configured rectangle, falling back to the centered
// half-size area of the template when none was configured.
func (a *App) selection(w, h int) (int, int, int, int) {
	if a.cfg.HasSelection() {
		return a.cfg.SelectionX1, a.cfg.SelectionY1, a.cfg.SelectionX2, a.cfg.SelectionY2
	}
	return w / 4, h / 4, w * 3 / 4, h * 3 / 4
}

func (a *App) loadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return images.DecodeRGBA(f)
}

func previewName(outPath string) string {
	if i := strings.LastIndex(outPath, "."); i > 0 {
		return outPath[:i] + "_preview" + outPath[i:]
	}
	return outPath + "_preview.png"
}

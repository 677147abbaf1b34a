package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"phantomproj/pkg/config"
	"phantomproj/pkg/geometry"
	"phantomproj/pkg/phantom"
	"phantomproj/pkg/projector"
	"phantomproj/pkg/render"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "phantomproj.yaml", "YAML run description (defaults are used if missing)")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to the config path and exit")
	imageOut := flag.String("image", "", "Override the output PNG path from the config")
	oversample := flag.Int("oversample", 0, "Override the oversampling factor from the config")
	flag.Parse()

	if *writeConfig {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *imageOut != "" {
		cfg.Output.Image = *imageOut
	}
	if *oversample > 0 {
		cfg.Geometry.Oversample = *oversample
	}

	ellipses, err := buildPhantom(cfg)
	if err != nil {
		log.Fatalf("Invalid phantom: %v", err)
	}

	src, err := buildGeometry(cfg)
	if err != nil {
		log.Fatalf("Invalid geometry: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("ANALYTIC ELLIPSE-PHANTOM FORWARD PROJECTOR")
	fmt.Println("================================")
	fmt.Printf("Geometry: %s, %d bins x %d views, oversample %d\n",
		cfg.Geometry.Type, cfg.Geometry.Bins, cfg.Geometry.Views, cfg.Geometry.Oversample)
	fmt.Printf("Phantom: %d ellipses\n", len(ellipses))

	opts := projector.Options{
		XScale:  cfg.Phantom.XScale,
		YScale:  cfg.Phantom.YScale,
		Workers: cfg.Processing.Workers,
	}

	startTime := time.Now()
	sino, err := projector.ProjectGeometryWithOptions(src, ellipses, cfg.Geometry.Oversample, opts)
	if err != nil {
		log.Fatalf("Projection failed: %v", err)
	}
	elapsed := time.Since(startTime)

	fmt.Printf("\nProjection completed in %.3f seconds\n", elapsed.Seconds())
	fmt.Printf("Sinogram: %d bins x %d views\n", sino.Bins, sino.Views)
	fmt.Printf("  mean:  %.6f\n", stat.Mean(sino.Data, nil))
	fmt.Printf("  sigma: %.6f\n", stat.StdDev(sino.Data, nil))
	fmt.Printf("  min:   %.6f\n", floats.Min(sino.Data))
	fmt.Printf("  max:   %.6f\n", floats.Max(sino.Data))

	if err := writeImage(cfg, sino); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	fmt.Printf("\nSinogram image saved to: %s\n", cfg.Output.Image)

	if cfg.Output.Raw != "" {
		if err := writeRaw(cfg.Output.Raw, sino); err != nil {
			log.Fatalf("Failed to write raw sinogram: %v", err)
		}
		fmt.Printf("Raw float32 sinogram saved to: %s\n", cfg.Output.Raw)
	}
}

// buildPhantom resolves the configured phantom: an inline ellipse list wins
// over a named preset.
func buildPhantom(cfg *config.Config) ([]phantom.Ellipse, error) {
	if len(cfg.Phantom.Ellipses) > 0 {
		ellipses := make([]phantom.Ellipse, len(cfg.Phantom.Ellipses))
		for i, s := range cfg.Phantom.Ellipses {
			ellipses[i] = phantom.Ellipse{
				CenterX:   s.CenterX,
				CenterY:   s.CenterY,
				SemiX:     s.RadiusX,
				SemiY:     s.RadiusY,
				Angle:     s.Angle,
				Amplitude: s.Amplitude,
			}
			if err := ellipses[i].Validate(); err != nil {
				return nil, fmt.Errorf("ellipse %d: %v", i, err)
			}
		}
		return ellipses, nil
	}

	switch cfg.Phantom.Preset {
	case "shepp-logan":
		return phantom.SheppLogan(), nil
	case "modified-shepp-logan", "":
		return phantom.ModifiedSheppLogan(), nil
	default:
		return nil, fmt.Errorf("unknown phantom preset %q", cfg.Phantom.Preset)
	}
}

// buildGeometry constructs the configured sampling geometry.
func buildGeometry(cfg *config.Config) (geometry.Source, error) {
	g := cfg.Geometry
	switch g.Type {
	case "parallel", "":
		p := geometry.NewParallel(g.Bins, g.Views, g.FOV)
		p.Offset = g.Offset
		return p, nil
	case "fan":
		return geometry.NewFan(g.Bins, g.Views, g.SourceRadius, g.FOV)
	case "mojette":
		// Directions (1, q) centered on the axis, one per view.
		dirs := make([]geometry.Direction, g.Views)
		for i := range dirs {
			dirs[i] = geometry.Direction{P: 1, Q: i - g.Views/2}
		}
		return geometry.NewMojette(g.Bins, dirs)
	default:
		return nil, fmt.Errorf("unknown geometry type %q", g.Type)
	}
}

func writeImage(cfg *config.Config, sino *projector.Sinogram) error {
	switch cfg.Output.Colormap {
	case "heat":
		rgba, err := render.Heatmap(sino.Data, sino.Bins, sino.Views)
		if err != nil {
			return err
		}
		return render.SavePNG(rgba, cfg.Output.Image)
	case "gray", "":
		gray, err := render.Gray16(sino.Data, sino.Bins, sino.Views)
		if err != nil {
			return err
		}
		return render.SavePNG(gray, cfg.Output.Image)
	default:
		return fmt.Errorf("unknown colormap %q", cfg.Output.Colormap)
	}
}

// writeRaw dumps the sinogram as little-endian float32 values in row-major
// order, detector bins major. Single precision matches the convention for
// detector data exchange.
func writeRaw(filename string, sino *projector.Sinogram) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, v := range sino.Data {
		if err := binary.Write(file, binary.LittleEndian, float32(v)); err != nil {
			return fmt.Errorf("failed to write binary data: %v", err)
		}
	}

	return nil
}

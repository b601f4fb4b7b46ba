// TileCover — Polygon Covering Calculator
//
// A command-line tool that covers arbitrary polygonal regions with
// square, rectangular or circular panels and exports the resulting
// layout as PDF, DXF, XLSX or printable panel labels.
//
// Build:
//   go build -o tilecover ./cmd/tilecover
//
// Usage:
//   tilecover -in floor.dxf -shape rectangles -min-size 20 -pdf plan.pdf
//   tilecover -in zones.csv -shape circles -max-k 8 -xlsx steps.xlsx
//   tilecover -in saved.json -steps -labels labels.pdf

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/TileCover/internal/engine"
	"github.com/piwi3910/TileCover/internal/export"
	"github.com/piwi3910/TileCover/internal/importer"
	"github.com/piwi3910/TileCover/internal/model"
	"github.com/piwi3910/TileCover/internal/project"
	"github.com/piwi3910/TileCover/internal/region"
)

func main() {
	var (
		inPath    = flag.String("in", "", "input file: saved plan (.json), .dxf, .csv or .xlsx")
		shape     = flag.String("shape", "", "panel shape: squares, rectangles or circles")
		preset    = flag.String("preset", "", "start from a named option preset")
		keepAs    = flag.String("save-preset", "", "save the effective options as a custom preset")
		minSize   = flag.Float64("min-size", 0, "base grid cell size")
		maxK      = flag.Int("max-k", 0, "largest merge factor")
		minK      = flag.Int("min-k", 0, "smallest merge factor")
		showSteps = flag.Bool("steps", false, "print each merge step as it happens")
		compare   = flag.Bool("compare", false, "compare alternative covering scenarios")
		pdfPath   = flag.String("pdf", "", "write covering plan PDF to this path")
		dxfPath   = flag.String("dxf", "", "write covering plan DXF to this path")
		xlsxPath  = flag.String("xlsx", "", "write step log XLSX to this path")
		labelPath = flag.String("labels", "", "write printable panel labels PDF to this path")
		savePath  = flag.String("save", "", "save the plan (zones + options) as JSON")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load config: %v\n", err)
		config = model.DefaultAppConfig()
	}

	plan, err := loadInput(*inPath)
	if err != nil {
		fatal(err)
	}

	opts := plan.Options
	if strings.ToLower(filepath.Ext(*inPath)) != ".json" {
		// Imported files carry no options of their own, start from
		// the user's saved defaults.
		config.ApplyToOptions(&opts)
	}
	if *preset != "" {
		custom, err := project.LoadCustomPresets(project.DefaultPresetsPath())
		if err != nil {
			fatal(err)
		}
		p, ok := model.FindPreset(*preset, custom)
		if !ok {
			fatal(fmt.Errorf("unknown preset %q", *preset))
		}
		opts = p.Options
	}
	if *shape != "" {
		opts.Shape = model.ShapeMode(strings.ToLower(*shape))
	}
	if *minSize > 0 {
		opts.MinSize = *minSize
	}
	if *maxK > 0 {
		opts.MaxK = *maxK
	}
	if *minK > 0 {
		opts.MinK = *minK
	}
	opts = opts.Normalized()

	if *keepAs != "" {
		p := model.Preset{Name: *keepAs, Options: opts}
		if err := project.RememberCustomPreset(project.DefaultPresetsPath(), p); err != nil {
			fatal(err)
		}
		fmt.Printf("Saved preset %q\n", *keepAs)
	}

	rings := model.Rings(plan.Zones)
	if *compare {
		runComparison(rings, opts)
		return
	}

	steps := runSteps(rings, opts, *showSteps)
	result := resultFromSteps(rings, opts, steps)
	printStats(result)

	regions := region.UnionPolygons(rings)
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, regions, result); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", *pdfPath)
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, regions, result); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", *dxfPath)
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, steps, result); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", *xlsxPath)
	}
	if *labelPath != "" {
		if err := export.ExportLabels(*labelPath, result); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %s\n", *labelPath)
	}

	if *savePath != "" {
		plan.Options = opts
		plan.Result = &result
		if err := project.SavePlan(*savePath, plan); err != nil {
			fatal(err)
		}
		project.RememberRecentPlan(&config, *savePath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save config: %v\n", err)
		}
		fmt.Printf("Saved plan to %s\n", *savePath)
	}
}

func loadInput(path string) (model.Plan, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return project.LoadPlan(path)
	case ".dxf":
		return planFromImport(path, importer.ImportDXF)
	case ".csv":
		return planFromImport(path, importer.ImportCSV)
	case ".xlsx":
		return planFromImport(path, importer.ImportExcel)
	default:
		return model.Plan{}, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

func planFromImport(path string, fn func(string) importer.ImportResult) (model.Plan, error) {
	res := fn(path)
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(res.Zones) == 0 {
		return model.Plan{}, fmt.Errorf("no zones imported from %s", path)
	}
	plan := model.NewPlan()
	plan.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	plan.Zones = res.Zones
	return plan, nil
}

func runSteps(rings []model.Ring, opts model.CoverOptions, verbose bool) []model.CoveringStep {
	run := engine.RunCovering(rings, opts)
	var steps []model.CoveringStep
	for {
		step, ok := run.Next()
		if !ok {
			break
		}
		steps = append(steps, step)
		if verbose {
			fmt.Printf("iteration %d: %d rectangles, %d circles\n",
				step.Iteration, len(step.Rectangles), len(step.Circles))
		}
	}
	return steps
}

func resultFromSteps(rings []model.Ring, opts model.CoverOptions, steps []model.CoveringStep) model.CoverResult {
	var final model.CoveringStep
	if len(steps) > 0 {
		final = steps[len(steps)-1]
	}
	return model.CoverResult{
		Shape:      opts.Shape,
		Rectangles: final.Rectangles,
		Circles:    final.Circles,
		Steps:      len(steps),
		Stats:      model.NewCoverStats(region.UnionArea(rings), final),
	}
}

func runComparison(rings []model.Ring, opts model.CoverOptions) {
	scenarios := engine.BuildDefaultScenarios(opts)
	results := engine.CompareScenarios(scenarios, rings)
	fmt.Printf("%-28s %8s %8s %8s\n", "Scenario", "Shapes", "Steps", "Waste%")
	for _, r := range results {
		fmt.Printf("%-28s %8d %8d %7.1f%%\n",
			r.Scenario.Name, r.ShapeCount, r.StepCount, r.WastePercent)
	}
}

func printStats(result model.CoverResult) {
	s := result.Stats
	fmt.Printf("Shape mode:   %s\n", result.Shape)
	fmt.Printf("Panels:       %d\n", s.ShapeCount)
	fmt.Printf("Merge steps:  %d\n", s.MergeCount)
	fmt.Printf("Union area:   %.2f\n", s.UnionArea)
	fmt.Printf("Covered area: %.2f\n", s.CoveredArea)
	fmt.Printf("Efficiency:   %.1f%%\n", s.Efficiency)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

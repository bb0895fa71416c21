package main

import (
	"encoding/json"
	"os"

	"github.com/ibtiwahab/urbangen/pkg/geo"
	"github.com/ibtiwahab/urbangen/pkg/plan"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runGenerate(path string, seed int64) error {
	req, err := plan.LoadRequest(path)
	if err != nil {
		return err
	}
	if seed != 0 {
		req.Seed = seed
	}

	result, report, err := plan.Generate(req)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"result":     result,
		"validation": report,
	})
}

func runAnalyze(path string) error {
	req, err := plan.LoadRequest(path)
	if err != nil {
		return err
	}

	analysis, err := plan.Analyze(req.Vertices, geo.DefaultTolerance)
	if err != nil {
		return err
	}

	return printJSON(analysis)
}

func runValidate(path string) error {
	req, err := plan.LoadRequest(path)
	if err != nil {
		return err
	}

	opts := plan.CheckOptions{Closure: true, SelfIntersection: true, Planarity: true}
	check, report, err := plan.CheckGeometry(req.Vertices, opts, geo.DefaultTolerance)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !check.Valid {
		os.Exit(1)
	}
	return nil
}

func runOffset(path string, distance float64, outward bool) error {
	req, err := plan.LoadRequest(path)
	if err != nil {
		return err
	}

	out, report, err := plan.OffsetBoundary(req.Vertices, distance, outward, geo.DefaultTolerance)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"offset":     out,
		"validation": report,
	})
}

func runIntersect(aPath, bPath string) error {
	a, err := plan.LoadRequest(aPath)
	if err != nil {
		return err
	}
	b, err := plan.LoadRequest(bPath)
	if err != nil {
		return err
	}

	rep, err := plan.ClassifyIntersection(a.Vertices, b.Vertices, geo.DefaultTolerance)
	if err != nil {
		return err
	}

	return printJSON(rep)
}

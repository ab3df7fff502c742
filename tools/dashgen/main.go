// Command dashgen generates the Grafana dashboard and Prometheus rule
// artifacts for listing-finder into the deploy directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mgoodall/listing-finder/tools/dashgen/dashboards"
	"github.com/mgoodall/listing-finder/tools/dashgen/rules"
	"github.com/mgoodall/listing-finder/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	if cfg.DashboardEnabled {
		if err := generateDashboard(cfg, validateOnly); err != nil {
			return err
		}
	}
	if cfg.RulesEnabled {
		if err := generateRules(cfg, validateOnly); err != nil {
			return err
		}
	}
	return nil
}

func generateDashboard(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		return fmt.Errorf("dashboard validation failed: %v", result.Errors)
	}

	if validateOnly {
		fmt.Println("dashboard validation passed")
		return nil
	}

	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(cfg.OutputDir, "grafana", "data", "lsf-overview.json")
	return writeFile(path, data)
}

func generateRules(cfg Config, validateOnly bool) error {
	artifacts := []struct {
		name string
		cr   rules.PrometheusRule
	}{
		{"lsf-recording-rules.yaml", rules.RecordingRules()},
		{"lsf-alerts.yaml", rules.AlertRules()},
	}

	for _, a := range artifacts {
		var exprs []string
		for _, g := range a.cr.Spec.Groups {
			for _, r := range g.Rules {
				exprs = append(exprs, r.Expr)
			}
		}
		if result := validate.Exprs(exprs, KnownMetrics); !result.Ok() {
			return fmt.Errorf("%s validation failed: %v", a.name, result.Errors)
		}

		if validateOnly {
			fmt.Printf("%s validation passed\n", a.name)
			continue
		}

		data, err := yaml.Marshal(a.cr)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", a.name, err)
		}
		data = append([]byte(generatedHeader), data...)

		path := filepath.Join(cfg.OutputDir, "prometheus", a.name)
		if err := writeFile(path, data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // generated artifacts are world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

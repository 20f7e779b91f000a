// Package main provides a performance benchmarking tool for the modelprof CLI.
// It measures execution times across different profile sizes and command types,
// running each test multiple times, treating the first run as cold and averaging
// the rest as warm, generating CSV output for performance analysis.
//
// Prerequisites:
// - modelprof binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated profiles and the SQLite store
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	ProfileSize string
	Command     string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir      string
	Timeout      time.Duration
	Runs         int
	MetricCounts []int
	OutputModes  []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:      workDir,
		Timeout:      time.Minute,
		Runs:         4,
		MetricCounts: []int{10, 100, 1000},
		OutputModes:  []string{"text", "grid", "json", "csv"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := writeResults(results); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
}

// checkPrerequisites verifies the modelprof binary and work directory exist.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("modelprof"); err != nil {
		return fmt.Errorf("modelprof binary not found in PATH: %w", err)
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir: %w", err)
	}
	return nil
}

// generateProfile writes a synthetic profile JSON file with n metrics.
func generateProfile(config BenchmarkConfig, name string, n int) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `{"name": %q, "backend": "TorchBackend", "metrics": [`, name)
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b,
			`{"key": "metric_%04d", "friendly_name": "Metric %d", "value": %g, "units": "ms", "comparative": "ratio"}`,
			i, i, float64(i)+0.5)
	}
	b.WriteString("]}")

	path := filepath.Join(config.WorkDir, name+".json")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// runBenchmarks runs all command/size combinations and collects results.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	for _, n := range config.MetricCounts {
		sizeLabel := fmt.Sprintf("%d-metrics", n)

		basePath, err := generateProfile(config, fmt.Sprintf("base-%d", n), n)
		if err != nil {
			fmt.Printf("Failed to generate base profile: %v\n", err)
			continue
		}
		targetPath, err := generateProfile(config, fmt.Sprintf("target-%d", n), n)
		if err != nil {
			fmt.Printf("Failed to generate target profile: %v\n", err)
			continue
		}

		for _, mode := range config.OutputModes {
			showArgs := []string{"show", basePath, "--store-backend", "none", "--output", mode}
			cold, warm, err := timeCommand(config, showArgs)
			if err != nil {
				fmt.Printf("show %s/%s failed: %v\n", sizeLabel, mode, err)
				continue
			}
			results = append(results, BenchmarkResult{
				ProfileSize: sizeLabel,
				Command:     "show " + mode,
				ColdTime:    cold,
				WarmTime:    warm,
			})

			compareArgs := []string{"compare", basePath, targetPath, "--store-backend", "none", "--output", mode}
			cold, warm, err = timeCommand(config, compareArgs)
			if err != nil {
				fmt.Printf("compare %s/%s failed: %v\n", sizeLabel, mode, err)
				continue
			}
			results = append(results, BenchmarkResult{
				ProfileSize: sizeLabel,
				Command:     "compare " + mode,
				ColdTime:    cold,
				WarmTime:    warm,
			})
		}
	}

	return results
}

// timeCommand runs a modelprof command config.Runs times. The first run is
// reported as cold and the remaining runs are averaged as warm.
func timeCommand(config BenchmarkConfig, args []string) (string, string, error) {
	var cold time.Duration
	var warmTotal time.Duration
	warmRuns := 0

	for i := range config.Runs {
		start := time.Now()
		cmd := exec.Command("modelprof", args...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		if err := cmd.Run(); err != nil {
			return "", "", err
		}
		elapsed := time.Since(start)
		if elapsed > config.Timeout {
			return "", "", fmt.Errorf("run exceeded timeout of %s", config.Timeout)
		}

		if i == 0 {
			cold = elapsed
		} else {
			warmTotal += elapsed
			warmRuns++
		}
	}

	warm := time.Duration(0)
	if warmRuns > 0 {
		warm = warmTotal / time.Duration(warmRuns)
	}
	return cold.String(), warm.String(), nil
}

// writeResults prints benchmark results as CSV on stdout.
func writeResults(results []BenchmarkResult) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"profile_size", "command", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.ProfileSize, r.Command, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	return nil
}

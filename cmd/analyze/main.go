package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"api-insights/internal/analyzers"
	"api-insights/internal/loaders"
	"api-insights/internal/models"
	"api-insights/internal/shared/configs"
)

// analyze runs the analysis pipeline over a single log file and prints the
// full report as JSON, either to stdout or to an output file.
//
// Usage: analyze <log_file> [output_file]
//
// Degenerate inputs (not a JSON array, empty, nothing valid) still produce a
// report with the _error field set and exit 0; only unreadable or undecodable
// files exit 1.
func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "Usage: analyze <log_file> [output_file]")
		os.Exit(1)
	}
	logPath := os.Args[1]

	ctx := context.Background()

	loader := loaders.NewLogLoader()
	decoded, err := loader.LoadFile(ctx, logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", logPath, err)
		os.Exit(1)
	}

	analysisService := analyzers.NewAnalysisService(configs.DefaultAnalysisConfig())
	result := analysisService.Analyze(ctx, decoded)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize report: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) == 3 {
		outputPath := os.Args[2]
		if err := os.WriteFile(outputPath, append(output, '\n'), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outputPath, err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", outputPath)
	} else {
		fmt.Println(string(output))
	}

	printDigest(result)
}

// printDigest prints a short human-readable summary to stderr so it does not
// interfere with piping the JSON report.
func printDigest(result *models.AnalysisResult) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "=== Summary ===")
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "Note: %s\n", result.Error)
	}
	fmt.Fprintf(os.Stderr, "Total requests: %d\n", result.Summary.TotalRequests)
	fmt.Fprintf(os.Stderr, "Error rate: %.2f%%\n", result.Summary.ErrorRatePercentage)
	fmt.Fprintf(os.Stderr, "Avg response time: %.2fms\n", result.Summary.AvgResponseTimeMs)
	fmt.Fprintf(os.Stderr, "Endpoints: %d\n", len(result.EndpointStats))
	fmt.Fprintf(os.Stderr, "Performance issues: %d\n", len(result.PerformanceIssues))
	fmt.Fprintf(os.Stderr, "Anomalies: %d\n", len(result.Anomalies))
	fmt.Fprintf(os.Stderr, "Estimated cost: $%.2f\n", result.CostAnalysis.TotalCostUSD)
}

// Command evals runs MCP tool selection evaluations.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// This command loads evaluation test suites and reports on test coverage
// and expected behavior patterns. For actual LLM evaluation, integrate
// the evals package with your LLM testing framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaanyildiz/etscore-mcp-server/evals"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, arguments, or all")
	verbose := flag.Bool("verbose", false, "Show detailed test information")
	flag.Parse()

	fmt.Println("ETS Score MCP Server - Evaluation Framework")
	fmt.Println("===========================================")
	fmt.Println()

	switch *suite {
	case "tool_selection":
		loadToolSelection(*dir, *verbose)
	case "confusion_pairs":
		loadConfusionPairs(*dir, *verbose)
	case "arguments":
		loadArguments(*dir, *verbose)
	case "all":
		loadToolSelection(*dir, *verbose)
		loadConfusionPairs(*dir, *verbose)
		loadArguments(*dir, *verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
}

func loadToolSelection(dir string, verbose bool) {
	suite, err := evals.LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tool selection suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tool Selection Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	categories := make(map[string]int)
	tools := make(map[string]int)
	for _, test := range suite.Tests {
		categories[test.Category]++
		tools[test.ExpectedTool]++
	}

	fmt.Println("Tests by Category:")
	for cat, count := range categories {
		fmt.Printf("  %-15s: %d\n", cat, count)
	}
	fmt.Println()

	fmt.Println("Tests by Tool:")
	for tool, count := range tools {
		fmt.Printf("  %-30s: %d\n", tool, count)
	}
	fmt.Println()

	if verbose {
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %q -> %s\n", test.ID, test.Input, test.ExpectedTool)
		}
		fmt.Println()
	}
}

func loadConfusionPairs(dir string, verbose bool) {
	suite, err := evals.LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading confusion pair suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Confusion Pair Suite: %s\n", suite.Name)
	fmt.Printf("Pairs: %d\n", len(suite.Pairs))
	fmt.Println()

	for _, pair := range suite.Pairs {
		fmt.Printf("  %s (%d tests)\n", pair.ID, len(pair.Tests))
		if verbose {
			fmt.Printf("    Disambiguation: %s\n", pair.Disambiguation)
			for _, test := range pair.Tests {
				fmt.Printf("    %q -> %s (%s)\n", test.Input, test.Expected, test.Reason)
			}
		}
	}
	fmt.Println()
}

func loadArguments(dir string, verbose bool) {
	suite, err := evals.LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading argument suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Argument Suite: %s\n", suite.Name)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	if verbose {
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s: required %v", test.ID, test.Tool, test.RequiredArgs)
			if len(test.ForbiddenArgs) > 0 {
				fmt.Printf(", forbidden %v", test.ForbiddenArgs)
			}
			fmt.Println()
		}
		fmt.Println()
	}
}

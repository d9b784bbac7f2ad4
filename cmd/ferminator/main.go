// Package main provides the CLI entry point for ferminator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Recursing/Ferminator/pkg/ferminator"
	"github.com/Recursing/Ferminator/pkg/ferminator/output"
	"github.com/Recursing/Ferminator/pkg/ferminator/render"
)

var (
	outputPath  string
	pretty      bool
	diagramPath string
	renderURL   bool
	renderSrv   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ferminator [input.xlsx]",
		Short: "Convert a spreadsheet into a probabilistic-model graph",
		Long: `ferminator converts a spreadsheet workbook into a computation graph of
metrics and guesstimates, and a dependency diagram of the same graph.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path for the graph JSON (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&diagramPath, "diagram", "", "File path for the dependency diagram text")
	rootCmd.Flags().BoolVar(&renderURL, "render-url", false, "Print the remote rendering URL for the diagram")
	rootCmd.Flags().StringVar(&renderSrv, "render-server", "", "Rendering server (default: "+render.DefaultServer+")")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	result, err := ferminator.Convert(inputPath, ferminator.DefaultOptions())
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	jsonData, err := output.ToJSON(result.Graph, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(jsonData))
	} else if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if diagramPath != "" {
		if err := os.WriteFile(diagramPath, []byte(result.Diagram), 0644); err != nil {
			return fmt.Errorf("failed to write diagram: %w", err)
		}
	}

	if renderURL {
		client := render.NewClient(renderSrv)
		fmt.Println(client.URL("svg", result.Diagram))
	}

	return nil
}

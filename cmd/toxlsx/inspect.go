package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/toxlsx-go/pkg/toxlsx"
	"github.com/ukaji3/toxlsx-go/pkg/toxlsx/output"
)

var (
	pretty  bool
	asYAML  bool
	outPath string
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.xlsx>",
		Short: "Print the cells of a workbook as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output YAML instead of JSON")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	wb, err := toxlsx.Inspect(path)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	var data []byte
	if asYAML {
		data, err = output.ToYAML(wb)
	} else {
		data, err = output.ToJSON(wb, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

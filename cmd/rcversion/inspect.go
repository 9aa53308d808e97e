package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rcversion/internal/peinfo"
)

func newInspectCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect <image>",
		Short: "Show the version resource of a compiled executable or DLL",
		Long: `The inspect command prints the string table of the version resource in
a PE image, so a build can confirm that the numbers written into the
resource script made it into the binary.

Example:
  rcversion inspect build/app.exe
  rcversion inspect build/app.dll --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func runInspect(out io.Writer, path string, jsonOut bool) error {
	info, err := peinfo.Read(path)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(out, info.Fields)
	}
	printInfo(out, info)
	return nil
}

func printInfo(out io.Writer, info *peinfo.Info) {
	fmt.Fprintf(out, "%s\n", info.Path)
	width := 0
	for _, k := range info.Keys() {
		width = max(width, len(k))
	}
	for _, k := range info.Keys() {
		fmt.Fprintf(out, "  %-*s  %s\n", width, k, info.Fields[k])
	}
	if info.HasFile {
		fmt.Fprintf(out, "file version:    %s\n", info.FileVersion)
	}
	if info.HasProduct {
		fmt.Fprintf(out, "product version: %s\n", info.ProductVersion)
	}
}

// printJSON outputs data as JSON
func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

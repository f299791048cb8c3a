package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	distaff "github.com/reoring/distaff"
	"github.com/reoring/distaff/dtype"
)

var rootCmd = &cobra.Command{
	Use:   "distaff",
	Short: "Schema-driven validation and coercion for JSON/YAML documents",
	Long: `distaff compiles a declarative schema document and processes data
documents against it, reporting a per-field error tree.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSchema compiles a schema document from a JSON or YAML file using the
// built-in type registry.
func loadSchema(path string) (*distaff.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reg := dtype.NewRegistry()
	if isYAML(path) {
		return reg.CompileYAML(b)
	}
	return reg.CompileJSON(b)
}

// loadData decodes a data document from a JSON or YAML file.
func loadData(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAML(path) {
		return distaff.DecodeYAML(b)
	}
	return distaff.DecodeJSON(b)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

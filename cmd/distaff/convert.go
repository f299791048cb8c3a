package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	distaff "github.com/reoring/distaff"
)

var convertSchemaPath string

var convertCmd = &cobra.Command{
	Use:   "convert [data-file]",
	Short: "Convert a data document to its serialization-ready form",
	Long: `Compiles the schema, casts and validates the data document, applies
each type's serialization transform, and prints the result as JSON. Fails on
the first document that accumulates any error.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args[0]); err != nil {
			fatalf("convert: %v", err)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertSchemaPath, "schema", "s", "", "schema document (JSON or YAML)")
	_ = convertCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(dataPath string) error {
	schema, err := loadSchema(convertSchemaPath)
	if err != nil {
		return err
	}
	data, err := loadData(dataPath)
	if err != nil {
		return err
	}

	// Cast and check first so the serialization pass works on native values.
	opt := distaff.ProcessOpt{Cast: true, Check: true, Serialize: true, FailOnError: true}
	res, err := schema.Process(data, opt)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(res.Value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

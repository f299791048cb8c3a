package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var validateSchemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate [data-file]",
	Short: "Validate a data document against a schema",
	Long: `Compiles the schema, converts the data document to its native form,
and prints the error tree as JSON. An empty object means the document is
clean.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fatalf("validate: %v", err)
		}
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "schema document (JSON or YAML)")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(dataPath string) error {
	schema, err := loadSchema(validateSchemaPath)
	if err != nil {
		return err
	}
	data, err := loadData(dataPath)
	if err != nil {
		return err
	}

	_, errs := schema.ToNative(data)
	out, err := json.MarshalIndent(errs, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !errs.Empty() {
		os.Exit(1)
	}
	return nil
}

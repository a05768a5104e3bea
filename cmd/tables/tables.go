/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tables provides the tables command, which lists the identifiers
// karaconv understands.
package tables

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/karaconv/keycode"
)

// Cmd is the tables cobra command.
var Cmd = &cobra.Command{
	Use:   "tables",
	Short: "List supported key, button and modifier identifiers",
	Long:  `List the XML identifiers karaconv recognizes and the JSON identifiers they convert to.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("category", "c", "", "Only list one table: key, button, modifier")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	format, _ := cmd.Flags().GetString("format")

	categories := keycode.Categories()
	if category != "" {
		c, err := keycode.ParseCategory(category)
		if err != nil {
			return err
		}
		categories = []keycode.Category{c}
	}

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), categories)
	case "table":
		return outputTable(cmd.OutOrStdout(), categories)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}
}

func outputTable(w io.Writer, categories []keycode.Category) error {
	title := cases.Title(language.English)
	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s::)\n", title.String(c.String()), c.XMLName())
		for _, e := range keycode.Entries(c) {
			if _, err := fmt.Fprintf(w, "  %-20s %s\n", e.Legacy, e.Canonical); err != nil {
				return err
			}
		}
	}
	return nil
}

func outputJSON(w io.Writer, categories []keycode.Category) error {
	out := make(map[string][]keycode.Entry, len(categories))
	for _, c := range categories {
		out[c.String()] = keycode.Entries(c)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

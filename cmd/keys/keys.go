/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package keys provides the keys command, which converts attributes given
// on the command line.
package keys

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	convertlib "bennypowers.dev/karaconv/convert"
	"bennypowers.dev/karaconv/keyspec"
	"bennypowers.dev/karaconv/parser"
)

// Cmd is the keys cobra command.
var Cmd = &cobra.Command{
	Use:   "keys <attribute>...",
	Short: "Convert key attributes given as arguments",
	Long: `Convert one or more Karabiner autogen key attributes.

A single attribute prints a list of keys; several print a list per attribute.

Examples:
  karaconv keys "KeyCode::A, ModifierFlag::SHIFT, KeyCode::B"
  karaconv keys --format yaml "PointingButton::LEFT" "KeyCode::ESCAPE, VK_COMMAND"`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "json", "Output format: json, yaml")
	Cmd.Flags().Int("indent", 2, "JSON indent width, 0 for compact output")
}

func run(cmd *cobra.Command, args []string) error {
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	indent, _ := cmd.Flags().GetInt("indent")

	format, err := convertlib.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	return writeKeys(cmd.OutOrStdout(), args, format, indent)
}

func writeKeys(w io.Writer, attrs []string, format convertlib.Format, indent int) error {
	converted := make([][]keyspec.KeySpec, 0, len(attrs))
	for _, attr := range attrs {
		specs, err := parser.CollectKeys(attr)
		if err != nil {
			return fmt.Errorf("%w (in %q)", err, attr)
		}
		converted = append(converted, specs)
	}

	var v any = converted
	if len(converted) == 1 {
		v = converted[0]
	}

	out, err := convertlib.Encode(v, format, convertlib.Options{Indent: indent})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for karaconv.
package convert

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/karaconv/attrfile"
	"bennypowers.dev/karaconv/config"
	convertlib "bennypowers.dev/karaconv/convert"
	"bennypowers.dev/karaconv/fs"
	"bennypowers.dev/karaconv/internal/logger"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert attribute-list files",
	Long: `Convert attribute-list files: plain text with one Karabiner autogen key
attribute per line. Blank lines and lines starting with # are ignored.

The first attribute that fails to convert aborts the run; nothing is written.

Examples:
  # Convert one file to stdout
  karaconv convert private.txt

  # Convert every file listed in .config/karaconv.yaml to YAML
  karaconv convert --format yaml -o remaps.yaml`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: json, yaml (default from config, else json)")
	Cmd.Flags().Int("indent", config.DefaultIndent, "JSON indent width, 0 for compact output")
}

// options holds the resolved settings for one conversion run.
type options struct {
	format convertlib.Format
	indent int
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}

	out, err := convertFiles(filesystem, files, opts)
	if err != nil {
		return err
	}

	if output != "" {
		if err := filesystem.WriteFile(output, out, 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", output, err)
		}
		logger.Debug("wrote %s", output)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// resolveOptions merges flags (or KARACONV_* env) over the config file.
func resolveOptions(cmd *cobra.Command, cfg *config.Config) (options, error) {
	formatName := viper.GetString("format")
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := convertlib.ParseFormat(formatName)
	if err != nil {
		return options{}, err
	}

	indent := cfg.IndentWidth()
	if cmd.Flags().Changed("indent") {
		indent, _ = cmd.Flags().GetInt("indent")
	}

	return options{format: format, indent: indent}, nil
}

// convertFiles converts every file in order and encodes the combined
// entries. Any failure aborts before output is produced.
func convertFiles(filesystem fs.FileSystem, files []string, opts options) ([]byte, error) {
	entries := []attrfile.Entry{}
	for _, file := range files {
		logger.Debug("converting %s", file)

		fileEntries, err := attrfile.ParseFile(filesystem, file)
		if err != nil {
			return nil, err
		}
		if len(fileEntries) == 0 {
			logger.Warn("%s has no attributes", file)
		}
		entries = append(entries, fileEntries...)
	}
	logger.Info("converted %d entries from %d files", len(entries), len(files))

	return convertlib.Encode(entries, opts.format, convertlib.Options{Indent: opts.indent})
}

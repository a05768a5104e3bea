/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for karaconv.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/karaconv/cmd/convert"
	"bennypowers.dev/karaconv/cmd/keys"
	"bennypowers.dev/karaconv/cmd/tables"
	"bennypowers.dev/karaconv/cmd/version"
	"bennypowers.dev/karaconv/internal/logger"
	internalversion "bennypowers.dev/karaconv/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "karaconv",
	Short: "Convert Karabiner XML key attributes to Karabiner-Elements JSON",
	Long: `karaconv converts the key, pointing button and modifier tokens of Karabiner
private.xml autogen attributes (KeyCode::A, ModifierFlag::SHIFT, ...) into the
identifiers used by Karabiner-Elements JSON (key_code, pointing_button, modifiers).`,
	Version:       internalversion.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	return err
}

func init() {
	viper.SetEnvPrefix("KARACONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(keys.Cmd)
	rootCmd.AddCommand(tables.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

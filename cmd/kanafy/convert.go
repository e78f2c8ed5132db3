package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kanafy/internal/pipeline"
)

func newConvertCommand() *cobra.Command {
	var showPhonetic bool
	command := &cobra.Command{
		Use:   "convert <text>...",
		Short: "Convert a Korean text into katakana",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newKanafyClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			outcome, err := pipeline.NewFromConfig(cfg, client).ConvertText(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("pipeline.ConvertText > %w", err)
			}
			if outcome.Error != "" {
				return errors.New(outcome.Error)
			}

			output := cmd.OutOrStdout()
			if showPhonetic {
				if _, err := fmt.Fprintln(output, outcome.PhoneticHangul); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(output, outcome.Kana)
			return err
		},
	}
	command.Flags().BoolVar(&showPhonetic, "phonetic", false, "Also print the phonetic hangul")
	return command
}

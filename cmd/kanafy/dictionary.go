package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kanafy/internal/feedback"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Manage the community pronunciation dictionary",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "add <hangul> <kana>",
		Short: "Submit a pronunciation correction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := feedback.NewClient(cfg.Dictionary.BaseURL, time.Duration(cfg.Service.TimeoutSeconds)*time.Second)
			entry, err := client.Submit(cmd.Context(), args[0], args[1])
			if err != nil {
				var submitErr *feedback.SubmitError
				if errors.As(err, &submitErr) {
					fmt.Fprintln(cmd.ErrOrStderr(), submitErr.UserMessage())
				}
				return fmt.Errorf("feedback.Client.Submit > %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s -> %s\n", entry.Source, entry.Pronunciation)
			return err
		},
	})
	return &rootCommand
}

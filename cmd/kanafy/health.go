package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the conversion service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newKanafyClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			status, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("kanafy.Client.Health > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s at %s\n", status.Status, status.Service, status.Version, client.BaseURL())
			return err
		},
	}
}

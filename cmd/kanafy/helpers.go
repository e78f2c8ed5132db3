package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/kanafy/internal/config"
	"github.com/at-ishikawa/kanafy/internal/kanafy"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newKanafyClient(cfg *config.Config) *kanafy.Client {
	return kanafy.NewClient(cfg.Service.BaseURL, time.Duration(cfg.Service.TimeoutSeconds)*time.Second)
}

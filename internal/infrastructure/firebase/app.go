package firebase

import (
	"context"
	"fmt"
	"os"

	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"altanzam/pkg/config"
	"altanzam/pkg/logger"
)

// ClientOption picks service account credentials: inline JSON first, then a
// file path. With neither set, application default credentials are used.
func ClientOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}

	if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return option.WithCredentialsFile(cfg.ServiceAccountPath), nil
	}

	logger.Info("Using application default credentials")
	return nil, nil
}

func NewApp(ctx context.Context, cfg *config.Config) (*fbapp.App, []option.ClientOption, error) {
	var opts []option.ClientOption
	opt, err := ClientOption(cfg)
	if err != nil {
		return nil, nil, err
	}
	if opt != nil {
		opts = append(opts, opt)
	}

	fbConfig := &fbapp.Config{ProjectID: cfg.FirebaseProject}
	if cfg.StorageBucket != "" {
		fbConfig.StorageBucket = cfg.StorageBucket
	}

	app, err := fbapp.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Firebase: %v", err)
	}
	return app, opts, nil
}

package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lxl66566/urldecoder/config"
	"github.com/lxl66566/urldecoder/libs/log"
	tmos "github.com/lxl66566/urldecoder/libs/os"
)

// MakeInitCommand returns the command that writes a default config.toml
// into the home directory. An existing file only gains the settings it is
// missing; values already in it are kept.
func MakeInitCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file into the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initFiles(cmd.Context(), conf, logger)
		},
	}
}

func initFiles(ctx context.Context, conf *config.Config, logger log.Logger) error {
	path := conf.ConfigFile()
	if tmos.FileExists(path) {
		added, err := config.UpgradeConfigFile(ctx, path, conf)
		if err != nil {
			return err
		}
		if len(added) == 0 {
			logger.Info("Found config file", "path", path)
			return nil
		}
		logger.Info("Updated config file", "path", path, "added", strings.Join(added, ","))
		return nil
	}

	if err := config.EnsureRoot(conf.RootDir); err != nil {
		return err
	}
	if err := config.WriteConfigFile(conf.RootDir, conf); err != nil {
		return err
	}
	logger.Info("Generated config file", "path", path)
	return nil
}

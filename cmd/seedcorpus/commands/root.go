package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lxl66566/urldecoder/config"
	"github.com/lxl66566/urldecoder/libs/cli"
	"github.com/lxl66566/urldecoder/libs/log"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. SEEDCORPUS_CORPUS_BUFFER_SIZE.
const EnvPrefix = "SEEDCORPUS"

// ParseConfig retrieves the default environment configuration,
// sets up the home directory and validates the result.
func ParseConfig(conf *config.Config) (*config.Config, error) {
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	conf.SetRoot(conf.RootDir)

	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// RootCommand constructs the root command-line entry point. Run without a
// subcommand it generates the whole corpus.
func RootCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seedcorpus",
		Short:         "Generate the buffer-boundary seed corpus for the URL decoder fuzz target",
		SilenceUsage:  true,
		SilenceErrors: true, // main logs them
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == VersionCmd.Name() {
				return nil
			}

			if err := cli.BindFlagsLoadViper(cmd, args); err != nil {
				return err
			}

			pconf, err := ParseConfig(conf)
			if err != nil {
				return err
			}
			*conf = *pconf

			return log.OverrideWithNewLogger(logger, conf.LogFormat, conf.LogLevel)
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(conf, logger, nil)
		},
	}
	cmd.PersistentFlags().String(cli.HomeFlag, conf.RootDir, "directory holding config and corpus")
	cmd.PersistentFlags().String("log-level", conf.LogLevel, "log level")
	cmd.PersistentFlags().String("log-format", conf.LogFormat, "log format (plain|json)")
	AddCorpusFlags(cmd, conf.Corpus)
	cobra.OnInitialize(func() { cli.InitEnv(EnvPrefix) })
	return cmd
}

// AddCorpusFlags exposes the corpus options on the command-line.
func AddCorpusFlags(cmd *cobra.Command, conf *config.CorpusConfig) {
	cmd.PersistentFlags().String("corpus.dir", conf.Dir,
		"directory the seeds are written to, relative to home unless absolute")
	cmd.PersistentFlags().Int("corpus.buffer-size", conf.BufferSize,
		"read size of the scanner under test")
	cmd.PersistentFlags().Int64("corpus.seed", conf.Seed,
		"seed for the randomized scenarios (0 = random)")
	cmd.PersistentFlags().Int("corpus.stress-threshold", conf.StressThreshold,
		"minimum length of the stress payload")
}

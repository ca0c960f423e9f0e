package commands

import (
	"github.com/spf13/cobra"

	"github.com/lxl66566/urldecoder/config"
	"github.com/lxl66566/urldecoder/internal/corpus"
	"github.com/lxl66566/urldecoder/libs/log"
)

// MakeGenerateCommand returns the command that writes the named scenarios,
// or every scenario when no names are given.
func MakeGenerateCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [scenario...]",
		Short: "Write seed files into the corpus directory",
		Long: `Write seed files into the corpus directory.

Without arguments every scenario is generated, unless corpus.scenarios is set
in the config file. Run "seedcorpus list" for the available names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(conf, logger, args)
		},
	}
}

func generate(conf *config.Config, logger log.Logger, names []string) error {
	g, err := corpus.NewGenerator(conf.Corpus, logger)
	if err != nil {
		return err
	}
	_, err = g.Run(names...)
	return err
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lxl66566/urldecoder/cmd/seedcorpus/commands"
	"github.com/lxl66566/urldecoder/config"
	"github.com/lxl66566/urldecoder/libs/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args. Progress is logged to stdout and
// a failure is reported on stderr, so the two streams can be told apart.
func run(args []string, stdout, stderr io.Writer) int {
	conf := config.DefaultConfig()

	logger, err := log.NewDefaultLoggerWithOutput(stdout, conf.LogFormat, conf.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	rcmd := commands.RootCommand(conf, logger)
	rcmd.AddCommand(
		commands.MakeGenerateCommand(conf, logger),
		commands.MakeInitCommand(conf, logger),
		commands.ListCmd,
		commands.VersionCmd,
	)
	rcmd.SetArgs(args)
	rcmd.SetOut(stdout)
	rcmd.SetErr(stderr)

	if err := rcmd.Execute(); err != nil {
		// conf may hold the rejected settings, so fall back to plain text
		// when they cannot build a logger.
		errLogger, lerr := log.NewDefaultLoggerWithOutput(stderr, conf.LogFormat, log.LogLevelError)
		if lerr != nil {
			fmt.Fprintf(stderr, "seed corpus generation failed: %v\n", err)
			return 1
		}
		errLogger.Error("seed corpus generation failed", "err", err)
		return 1
	}
	return 0
}

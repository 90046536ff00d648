package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/parencheck"
	"github.com/vippsas/parencheck/scanner"
)

// setup loads the configuration and builds the logger and check options
// for cmd.
func setup(cmd *cobra.Command) (Config, parencheck.Options, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, parencheck.Options{}, err
	}
	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return Config{}, parencheck.Options{}, err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return Config{}, parencheck.Options{}, err
	}
	logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"dialect": opts.Dialect.Name,
		"config":  config.ConfigFileUsed(),
	}).Debug("configuration loaded")
	return cfg, opts, nil
}

// load reads the documents named by args, or the default file.
func load(opts parencheck.Options, args []string) ([]*scanner.Document, error) {
	return parencheck.LoadPaths(opts, paths(args)...)
}

func paths(args []string) []string {
	if len(args) == 0 {
		return []string{parencheck.DefaultFile}
	}
	return args
}

package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/basedalex/textlens/internal/analyzer"
	"github.com/basedalex/textlens/pkg/config"
	"github.com/basedalex/textlens/pkg/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var opts analyzer.Options

	cmd := &cobra.Command{
		Use:   "textlens [flags] text...",
		Short: "Analyze text with pre-trained language models",
		Long: `Textlens joins its arguments into one string and runs the enabled
analysis passes over it: language detection, sentiment scoring, lemmatization,
embedding-space alternatives and named-entity extraction. Every pass is
delegated to a pre-trained model; passes with nothing to report print empty
sections instead of failing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			setLogLevel(cfg.LogLevel)
			opts.DefaultLanguage = cfg.DefaultLanguage

			eng, err := engine.New(cfg)
			if err != nil {
				return fmt.Errorf("error starting engine: %w", err)
			}

			analyzer.New(eng, cmd.OutOrStdout()).Run(strings.Join(args, " "), opts)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.DetectLanguage, "detect-language", "d", false, "print the detected language")
	cmd.Flags().BoolVarP(&opts.Sentiment, "sentiment-analysis", "s", false, "print the sentiment score")
	cmd.Flags().BoolVarP(&opts.Lemmatize, "lemmatize", "l", false, "print the lemmas of the input words")
	cmd.Flags().BoolVarP(&opts.Alternatives, "alternatives", "v", false, "print embedding-space alternatives per lemma")
	cmd.Flags().BoolVarP(&opts.Places, "places", "p", false, "print the places found in the text")
	cmd.Flags().BoolVarP(&opts.People, "people", "e", false, "print the people found in the text")
	cmd.Flags().BoolVarP(&opts.Organizations, "organizations", "o", false, "print the organizations found in the text")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "enable every analysis pass")
	cmd.Flags().IntVarP(&opts.MaxAlternatives, "maximum-alternatives", "m", 10, "maximum alternatives per lemma")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file")

	return cmd
}

func setLogLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}

	log.SetLevel(parsed)
}

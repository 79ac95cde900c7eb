package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/client/errmsg"
	"github.com/blogfront/blogfront/internal/config"
	"github.com/blogfront/blogfront/internal/logger"
)

var (
	apiURL     string
	debug      bool
	jsonOutput bool
)

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blogfront",
		Short:         "Serve the blog site or read articles from the blog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			log.Logger = logger.NewConsole(os.Stderr, level)
			zerolog.SetGlobalLevel(level)
			log.Debug().Str("api_url", apiURL).Msg("debug logging enabled")
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", getEnv("VITE_API_BASE_URL", client.DefaultBaseURL), "Base URL of the blog API")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print normalized JSON instead of formatted text")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newArticlesCmd())
	rootCmd.AddCommand(newArticleCmd())
	rootCmd.AddCommand(newCategoriesCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	return client.New(apiURL,
		client.WithDebugLogging(debug),
		client.WithLogger(log.Logger),
	)
}

// userError logs err in full and returns only its display message.
func userError(err error, defaultMsg string) error {
	log.Debug().Err(err).Msg("request failed")
	msg := errmsg.Message(err, defaultMsg)
	production := config.Environment(getEnv("BLOGFRONT_ENVIRONMENT", string(config.EnvDevelopment))) == config.EnvProduction
	errmsg.NewReporter(log.Logger, production).Report(msg, zerolog.ErrorLevel)
	return errors.New(msg)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

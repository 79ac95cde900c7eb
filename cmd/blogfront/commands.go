package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/client/normalize"
	"github.com/blogfront/blogfront/internal/config"
	"github.com/blogfront/blogfront/internal/logger"
	"github.com/blogfront/blogfront/internal/webapp"
)

const requestTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blog web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api-url") {
				cfg.APIBaseURL = apiURL
			}
			if cmd.Flags().Changed("port") {
				cfg.HTTPPort = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			srvLog := logger.New("blogfront").Level(cfg.Level())
			if debug {
				srvLog = srvLog.Level(zerolog.DebugLevel)
			}
			zerolog.SetGlobalLevel(srvLog.GetLevel())
			return webapp.Run(cmd.Context(), cfg, srvLog)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port (overrides BLOGFRONT_HTTP_PORT)")
	return cmd
}

func newArticlesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List articles, optionally in one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			var raw json.RawMessage
			start := time.Now()
			if category != "" {
				raw, err = client.NewCategoryService(c).ArticlesByCategory(ctx, category)
			} else {
				raw, err = client.NewArticleService(c).ArticlesWithCategories(ctx)
			}
			if err != nil {
				return userError(err, "failed to load articles")
			}
			articles := normalize.Articles(raw, log.Logger)
			log.Debug().Str("category", category).Int("count", len(articles)).Dur("elapsed", time.Since(start)).Msg("list articles completed")

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), articles)
			}
			printArticleList(cmd.OutOrStdout(), articles)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list articles in this category")
	return cmd
}

func newArticleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "article ID",
		Short: "Show one article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			raw, err := client.NewArticleService(c).ArticleByID(ctx, args[0])
			if err != nil {
				return userError(err, "failed to load article")
			}
			art, ok := normalize.Article(raw, log.Logger)
			if !ok {
				return fmt.Errorf("article %s: no usable record in response", args[0])
			}

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), art)
			}
			return printArticle(cmd.OutOrStdout(), art)
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			raw, err := client.NewCategoryService(c).Categories(ctx)
			if err != nil {
				return userError(err, "failed to load categories")
			}
			cats := normalize.Categories(raw, log.Logger)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), cats)
			}
			printCategories(cmd.OutOrStdout(), cats)
			return nil
		},
	}
}

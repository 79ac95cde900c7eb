package webapp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/internal/config"
	"github.com/blogfront/blogfront/internal/health"
	"github.com/blogfront/blogfront/internal/views"
)

// Run starts the site's HTTP server and blocks until ctx is canceled, a
// SIGINT/SIGTERM arrives, or the server fails.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	log.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Bool("proxy_api", cfg.ProxyAPI).
		Msg("blogfront starting")

	ctx, stop := newServerContext(ctx)
	defer stop()

	deps, err := initDependencies(cfg, log)
	if err != nil {
		return err
	}

	pinger := health.PingFunc(upstreamPinger(deps.Categories))
	if cfg.WaitForUpstream {
		if err := health.WaitForUpstream(ctx, pinger, cfg.StartupTimeout, log); err != nil {
			log.Error().Stack().Err(err).Msg("startup health check failed")
			return err
		}
	}
	deps.Upstream, deps.Health = startHealthCheckers(ctx, cfg, log, pinger)

	app, err := New(deps)
	if err != nil {
		return err
	}

	server := newHTTPServer(ctx, cfg, app)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies builds the API client, services and templates.
func initDependencies(cfg *config.Config, log zerolog.Logger) (Deps, error) {
	c, err := client.New(cfg.APIBaseURL,
		client.WithHTTPTimeout(cfg.APITimeout),
		client.WithAuthToken(cfg.AuthToken),
		client.WithLogger(log.With().Str("component", "client").Logger()),
	)
	if err != nil {
		return Deps{}, fmt.Errorf("api client: %w", err)
	}
	icons := views.DefaultIcons()
	renderer, err := views.New(icons)
	if err != nil {
		return Deps{}, fmt.Errorf("templates: %w", err)
	}
	log.Debug().Strs("icons", icons.Names()).Msg("templates parsed")
	profile, err := views.LoadProfile()
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Client:     c,
		Articles:   client.NewArticleService(c),
		Categories: client.NewCategoryService(c),
		Views:      renderer,
		Profile:    profile,
		ProxyAPI:   cfg.ProxyAPI,
		Production: cfg.IsProduction(),
		Log:        log,
	}, nil
}

// startHealthCheckers starts the upstream checker and the service-level aggregator.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, pinger health.HealthPinger) (*health.UpstreamHealthChecker, *health.ServiceHealthChecker) {
	upstream := health.NewUpstreamHealthChecker(pinger, log, cfg.HealthCheckTimeout)
	upstream.Check(ctx)
	go upstream.Start(ctx, cfg.HealthInterval)

	svc := health.NewServiceHealthChecker(log, upstream)
	go svc.Start(ctx, cfg.HealthInterval)
	return upstream, svc
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.APITimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a child of parent that is cancelled on SIGINT/SIGTERM.
func newServerContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

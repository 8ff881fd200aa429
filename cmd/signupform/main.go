// Command signupform serves the signup form over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/signupform/modules/signup"
	"github.com/dmitrymomot/signupform/pkg/clientip"
	"github.com/dmitrymomot/signupform/pkg/config"
	"github.com/dmitrymomot/signupform/pkg/environment"
	"github.com/dmitrymomot/signupform/pkg/httpserver"
	"github.com/dmitrymomot/signupform/pkg/i18n"
	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/ratelimiter"
	"github.com/dmitrymomot/signupform/pkg/requestid"
)

const (
	serviceName = "signupform"

	langCookie    = "lang"
	langParam     = "lang"
	langCookieAge = 365 * 24 * time.Hour
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	ScriptURL       string `env:"DATASTAR_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"`

	HTTP      httpserver.Config
	Signup    signup.Config
	RateLimit ratelimiter.Config
	ClientIP  clientip.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("signupform exited", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))

	tr, err := signup.NewTranslator(ctx,
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!environment.IsProduction(ctx)),
	)
	if err != nil {
		return err
	}

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	svc, err := signup.NewService(cfg.Signup, tr,
		signup.WithLogger(log.With(logger.Component("signup"))),
		signup.WithScriptURL(cfg.ScriptURL),
		signup.WithRateLimiter(limiter),
	)
	if err != nil {
		return err
	}

	ips, err := clientip.New(cfg.ClientIP)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		ips.Middleware,
		middleware.Recoverer,
		i18n.Middleware(
			i18n.DefaultLangExtractor(
				i18n.WithSupportedLanguages(tr.SupportedLanguages()...),
				i18n.WithCookieName(langCookie),
				i18n.WithQueryParamName(langParam),
			),
			i18n.WithFallbackLanguage(tr.DefaultLanguage()),
			i18n.WithLanguageCookie(langCookie, langParam, langCookieAge),
		),
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount(cfg.Signup.BasePath, svc.Handle())
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, cfg.Signup.BasePath, http.StatusSeeOther)
	})

	server := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := server.Run(ctx, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package web

import (
	"errors"
	"io"
	"time"

	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/persistdb"
	"github.com/ottermq/mbconsole/internal/session"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/ottermq/mbconsole/web/audit"
	"github.com/ottermq/mbconsole/web/docs"
	"github.com/ottermq/mbconsole/web/handlers"
	"github.com/ottermq/mbconsole/web/handlers/api"
	"github.com/ottermq/mbconsole/web/handlers/ui"
	"github.com/ottermq/mbconsole/web/middleware"
	"github.com/ottermq/mbconsole/web/templates"

	"github.com/gofiber/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

const (
	ApiPrefix     = "/api"
	SwaggerPrefix = "/swagger"
)

type WebServer struct {
	config   *config.Config
	env      *handlers.Env
	recorder metrics.Recorder
}

type Options struct {
	Config        *config.Config
	Sessions      *session.Store
	Tokens        *session.TokenIssuer
	Authenticator console.Authenticator
	Recorder      metrics.Recorder
	Journal       persistdb.Journal
}

func NewWebServer(opts Options) (*WebServer, error) {
	if opts.Config == nil || opts.Sessions == nil || opts.Tokens == nil || opts.Authenticator == nil {
		return nil, errors.New("web server needs config, sessions, tokens and an authenticator")
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NewNoopRecorder()
	}
	if opts.Journal == nil {
		opts.Journal = persistdb.NopJournal{}
	}

	return &WebServer{
		config:   opts.Config,
		recorder: opts.Recorder,
		env: &handlers.Env{
			Config:        opts.Config,
			Sessions:      opts.Sessions,
			Tokens:        opts.Tokens,
			Authenticator: opts.Authenticator,
			Auditor:       audit.New(opts.Journal, opts.Recorder),
			Recorder:      opts.Recorder,
			StartTime:     time.Now(),
			Features:      enabledFeatures(opts.Config, opts.Recorder),
		},
	}, nil
}

// Env exposes the handler environment, mainly for tests.
func (ws *WebServer) Env() *handlers.Env {
	return ws.env
}

func (ws *WebServer) SetupApp(logFile io.Writer) *fiber.App {
	app := ws.configServer(logFile)

	ws.AddOperational(app)
	ws.AddApi(app)
	ws.AddUI(app)

	return app
}

func (ws *WebServer) AddOperational(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "version": ws.config.Version})
	})

	if handler := metricsHandler(ws.recorder); handler != nil {
		log.Info().Str("path", "/metrics").Msg("Metrics enabled")
		app.Get("/metrics", handler)
	}

	if ws.config.EnableSwagger {
		docs.SwaggerInfo.Host = "localhost:" + ws.config.WebPort
		docs.SwaggerInfo.BasePath = ApiPrefix
		docs.SwaggerInfo.Version = ws.config.Version
		log.Info().Str("path", SwaggerPrefix+"/index.html").Msg("Swagger docs enabled")
		app.Get(SwaggerPrefix+"/*", swagger.HandlerDefault)
	}
}

func (ws *WebServer) AddApi(app *fiber.App) {
	env := ws.env

	// Public API routes
	app.Post(ApiPrefix+"/login", func(c *fiber.Ctx) error {
		return api.Login(c, env)
	})

	// Protected API routes
	apiGrp := app.Group(ApiPrefix)
	apiGrp.Use(ws.requireSession(middleware.APIUnauthorized))

	apiGrp.Post("/logout", func(c *fiber.Ctx) error {
		return api.Logout(c, env)
	})
	apiGrp.Get("/overview", func(c *fiber.Ctx) error {
		return api.GetOverview(c, env)
	})
	apiGrp.Get("/activity", func(c *fiber.Ctx) error {
		return api.ListActivity(c, env)
	})

	// Exchange routes
	apiGrp.Get("/exchanges", func(c *fiber.Ctx) error {
		return api.ListExchanges(c, env)
	})
	apiGrp.Post("/exchanges", func(c *fiber.Ctx) error {
		return api.CreateExchange(c, env)
	})
	apiGrp.Get("/exchanges/:exchange", func(c *fiber.Ctx) error {
		return api.GetExchange(c, env)
	})
	apiGrp.Delete("/exchanges/:exchange", func(c *fiber.Ctx) error {
		return api.DeleteExchange(c, env)
	})
	apiGrp.Get("/exchanges/:exchange/bindings", func(c *fiber.Ctx) error {
		return api.ListExchangeBindings(c, env)
	})

	// Queue routes
	apiGrp.Get("/queues", func(c *fiber.Ctx) error {
		return api.ListQueues(c, env)
	})
	apiGrp.Post("/queues", func(c *fiber.Ctx) error {
		return api.CreateQueue(c, env)
	})
	apiGrp.Get("/queues/:queue", func(c *fiber.Ctx) error {
		return api.GetQueue(c, env)
	})
	apiGrp.Delete("/queues/:queue", func(c *fiber.Ctx) error {
		return api.DeleteQueue(c, env)
	})
	apiGrp.Get("/queues/:queue/consumers", func(c *fiber.Ctx) error {
		return api.ListQueueConsumers(c, env)
	})
	apiGrp.Delete("/queues/:queue/messages", func(c *fiber.Ctx) error {
		return api.PurgeQueue(c, env)
	})
}

func (ws *WebServer) AddUI(app *fiber.App) {
	env := ws.env
	auth := ws.requireSession(middleware.UIUnauthorized)

	app.Get("/", func(c *fiber.Ctx) error {
		return ui.LoginPage(c, env)
	})
	app.Post("/login", func(c *fiber.Ctx) error {
		return ui.Login(c, env)
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		return ui.Logout(c, env)
	})

	app.Get("/overview", auth, func(c *fiber.Ctx) error {
		return ui.Overview(c, env)
	})
	if env.HasFeature("activity") {
		app.Get("/activity", auth, func(c *fiber.Ctx) error {
			return ui.Activity(c, env)
		})
	}

	app.Get("/exchange", auth, func(c *fiber.Ctx) error {
		return ui.ListExchanges(c, env)
	})
	app.Post("/exchange", auth, func(c *fiber.Ctx) error {
		return ui.CreateExchange(c, env)
	})
	app.Get("/exchange/:name", auth, func(c *fiber.Ctx) error {
		return ui.GetExchange(c, env)
	})
	app.Post("/exchange/:name/delete", auth, func(c *fiber.Ctx) error {
		return ui.DeleteExchange(c, env)
	})

	app.Get("/queue", auth, func(c *fiber.Ctx) error {
		return ui.ListQueues(c, env)
	})
	app.Post("/queue", auth, func(c *fiber.Ctx) error {
		return ui.CreateQueue(c, env)
	})
	app.Get("/queue/:name", auth, func(c *fiber.Ctx) error {
		return ui.GetQueue(c, env)
	})
	app.Post("/queue/:name/delete", auth, func(c *fiber.Ctx) error {
		return ui.DeleteQueue(c, env)
	})
	app.Post("/queue/:name/purge", auth, func(c *fiber.Ctx) error {
		return ui.PurgeQueue(c, env)
	})

	app.Get("/consumer", auth, func(c *fiber.Ctx) error {
		return ui.ConsumerIndex(c, env)
	})
	app.Get("/consumer/:name", auth, func(c *fiber.Ctx) error {
		return ui.ListConsumers(c, env)
	})
}

func (ws *WebServer) requireSession(unauthorized fiber.ErrorHandler) fiber.Handler {
	return middleware.RequireSession(middleware.SessionConfig{
		Config:       ws.config,
		Sessions:     ws.env.Sessions,
		Tokens:       ws.env.Tokens,
		Recorder:     ws.recorder,
		Unauthorized: unauthorized,
	})
}

func (ws *WebServer) configServer(logFile io.Writer) *fiber.App {

	config := fiber.Config{

		Prefork:               false,
		AppName:               "mbconsole",
		Views:                 templates.New(),
		ViewsLayout:           "layout",
		DisableStartupMessage: true,
	}
	app := fiber.New(config)

	app.Use(recover.New())

	// Enable CORS
	app.Use(middleware.CORSMiddleware())

	if logFile != nil {
		app.Use(logger.New(logger.Config{
			Output: logFile,
		}))
	}
	return app
}

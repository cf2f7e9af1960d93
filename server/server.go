// Package server exposes the icon renderer over HTTP.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vodvud/shift-svg/logger"
	"github.com/vodvud/shift-svg/shift"
)

// ContentType is the media type of every icon response.
const ContentType = "image/svg+xml"

// Config configures a Server.
type Config struct {
	// DefaultKey is rendered when a request carries no key.
	DefaultKey string
	// ReadTimeout and WriteTimeout bound a single request.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves icons rendered by a shift.Renderer.
type Server struct {
	app        *fiber.App
	renderer   *shift.Renderer
	defaultKey string
	log        *zap.SugaredLogger
}

// New builds the fiber app and registers the routes:
//
//	GET /?src=KEY
//	GET /icons/KEY[.svg]
//	GET /healthz
func New(r *shift.Renderer, cfg Config) *Server {
	if cfg.DefaultKey == "" {
		cfg.DefaultKey = "empty"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	s := &Server{
		renderer:   r,
		defaultKey: cfg.DefaultKey,
		log:        logger.Named("server"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "shiftsvg",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Get("/", s.handleQuery)
	s.app.Get("/icons/:key", s.handleParam)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.log.Infow("Serving icons", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleQuery(c *fiber.Ctx) error {
	return s.icon(c, c.Query("src"))
}

func (s *Server) handleParam(c *fiber.Ctx) error {
	return s.icon(c, strings.TrimSuffix(c.Params("key"), ".svg"))
}

func (s *Server) icon(c *fiber.Ctx, key string) error {
	if strings.TrimSpace(key) == "" {
		key = s.defaultKey
	}

	out, err := s.renderer.RenderKey(key)
	if err != nil {
		s.log.Errorw("Rendering icon failed", "key", key, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "cannot render icon")
	}

	c.Set(fiber.HeaderContentType, ContentType)
	return c.SendString(out)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shohaib/portfolio-cms/internal/api/http/handler"
	"github.com/shohaib/portfolio-cms/internal/api/http/middleware"
	"github.com/shohaib/portfolio-cms/internal/logger"
)

// Options tunes the middleware stack.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	// UploadsPrefix and Uploads mount a static file handler. Both are
	// optional; object store deployments serve files themselves.
	UploadsPrefix string
	Uploads       http.Handler
}

// Router wires HTTP handlers and middleware.
type Router struct {
	authService    handler.AuthService
	contentService handler.ContentService
	tokenParser    middleware.TokenParser
	options        Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	contentService handler.ContentService,
	tokenParser middleware.TokenParser,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		contentService: contentService,
		tokenParser:    tokenParser,
		options:        options,
		logger:         logger,
	}
}

// Register builds the route tree.
//
// Public: POST /api/login, GET /api/cms/content, GET /healthz and the
// uploads prefix. Every other /api/cms route requires a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenParser, r.logger)
	authHandler := handler.NewAuth(r.authService, r.logger)
	contentHandler := handler.NewContent(r.contentService, r.options.MaxBodyBytes, r.logger)

	mux := chi.NewRouter()
	mux.Use(
		middleware.RequestID,
		logging.Handle,
		middleware.Recoverer(r.logger),
		middleware.CORS(r.options.AllowedOrigins),
	)
	if r.options.MaxBodyBytes > 0 {
		mux.Use(chimiddleware.RequestSize(r.options.MaxBodyBytes))
	}

	mux.Get("/healthz", handler.Health)

	if r.options.Uploads != nil && r.options.UploadsPrefix != "" {
		prefix := "/" + strings.Trim(r.options.UploadsPrefix, "/")
		mux.Method(http.MethodGet, prefix+"/*", r.options.Uploads)
		mux.Method(http.MethodHead, prefix+"/*", r.options.Uploads)
	}

	mux.Route("/api", func(api chi.Router) {
		api.Post("/login", authHandler.Login)

		api.Route("/cms", func(cms chi.Router) {
			cms.Get("/content", contentHandler.GetAll)

			cms.Group(func(admin chi.Router) {
				admin.Use(authenticate.Handle)

				admin.Put("/hero", contentHandler.ReplaceHero)

				admin.Post("/skill-categories", contentHandler.AddSkillCategory)
				admin.Delete("/skill-categories/{id}", contentHandler.DeleteSkillCategory)
				admin.Post("/skill-categories/{id}/items", contentHandler.AddCategoryItem)
				admin.Delete("/skill-categories/{id}/items/{index}", contentHandler.RemoveCategoryItem)

				admin.Post("/skills", contentHandler.AddSkill)
				admin.Delete("/skills/{id}", contentHandler.DeleteSkill)

				admin.Post("/projects", contentHandler.AddProject)
				admin.Delete("/projects/{id}", contentHandler.DeleteProject)

				admin.Post("/experience", contentHandler.AddExperience)
				admin.Put("/experience/{id}", contentHandler.UpdateExperience)
				admin.Delete("/experience/{id}", contentHandler.DeleteExperience)

				admin.Post("/education", contentHandler.AddEducation)
				admin.Delete("/education/{id}", contentHandler.DeleteEducation)
			})
		})
	})

	return mux
}

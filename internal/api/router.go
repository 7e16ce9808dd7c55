package api

import (
	"log"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qaplayground/playground/internal/auth"
	"github.com/qaplayground/playground/internal/catalog"
	"github.com/qaplayground/playground/internal/cep"
	"github.com/qaplayground/playground/internal/config"
	"github.com/qaplayground/playground/internal/middleware"
	"github.com/qaplayground/playground/internal/shared"
	"github.com/qaplayground/playground/internal/widgets"
)

type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	jwtManager     *auth.JWTManager
	credentials    *auth.CredentialStore
	authMiddleware *middleware.AuthMiddleware
	renderer       *shared.TemplateRenderer
	catalog        *catalog.Catalog
	cepClient      *cep.Client
	docPolicy      widgets.UploadPolicy
	imgPolicy      widgets.UploadPolicy
}

func NewRouter(cfg *config.Config) (*Router, error) {
	jwtManager := auth.NewJWTManager(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.Issuer,
		cfg.Auth.JWT.AccessTokenTTL,
	)
	credentials := auth.NewCredentialStore(cfg.Auth.User.Username, cfg.Auth.User.Password)

	renderer, err := shared.NewTemplateRenderer(cfg.Server.TemplateDir)
	if err != nil {
		return nil, err
	}

	pages, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	docPolicy := widgets.DefaultDocumentPolicy()
	if cfg.Upload.Document.MaxSizeMB > 0 {
		docPolicy.MaxSizeMB = cfg.Upload.Document.MaxSizeMB
	}
	if len(cfg.Upload.Document.Extensions) > 0 {
		docPolicy.Extensions = cfg.Upload.Document.Extensions
	}
	imgPolicy := widgets.DefaultImagePolicy()
	if cfg.Upload.Image.MaxSizeMB > 0 {
		imgPolicy.MaxSizeMB = cfg.Upload.Image.MaxSizeMB
	}
	if len(cfg.Upload.Image.Extensions) > 0 {
		imgPolicy.Extensions = cfg.Upload.Image.Extensions
	}

	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		jwtManager:     jwtManager,
		credentials:    credentials,
		authMiddleware: middleware.NewAuthMiddleware(jwtManager, cfg.Auth.Session.CookieName),
		renderer:       renderer,
		catalog:        pages,
		cepClient:      cep.NewClient(cfg.CEP.BaseURL, cfg.CEP.Timeout),
		docPolicy:      docPolicy,
		imgPolicy:      imgPolicy,
	}, nil
}

func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())

	if r.cfg.Metrics.Enabled {
		metrics, err := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)
		if err != nil {
			log.Printf("Failed to register metrics: %v", err)
		} else {
			r.engine.Use(metrics.Handler())
		}
		path := r.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	r.engine.GET("/health", r.healthCheck)
	r.engine.Static("/static", r.cfg.Server.StaticDir)

	// Public routes
	r.engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	r.engine.GET("/login", r.handleLoginPage)
	r.engine.POST("/login", r.handleLogin)
	r.engine.GET("/logout", r.handleLogout)
	r.engine.GET("/auth/check", r.authMiddleware.Identify(), r.handleAuthCheck)

	// Everything below requires a session
	protected := r.engine.Group("/")
	protected.Use(r.authMiddleware.RequireAuth())
	{
		protected.GET("/playground", r.handlePlayground)

		for _, page := range r.catalog.Pages {
			protected.GET(page.Route, r.pageHandler(page))
		}

		// Widget form submissions render the overlay
		protected.POST("/inputs/submit", r.submitHandler("/inputs", widgets.InputsFields()))
		protected.POST("/textarea/submit", r.submitHandler("/textarea", widgets.TextAreaFields()))
		protected.POST("/checkboxes/submit", r.submitHandler("/checkboxes", widgets.CheckBoxesFields()))
		protected.POST("/radiobuttons/submit", r.submitHandler("/radiobuttons", widgets.RadioButtonsFields()))
		protected.POST("/select/submit", r.submitHandler("/select", widgets.SelectFields()))

		// Tags
		protected.POST("/tags/add", r.handleTagsAdd)
		protected.POST("/tags/remove", r.handleTagsRemove)
		protected.POST("/tags/submit", r.handleTagsSubmit)

		// Date picker
		protected.POST("/datepicker/open", r.handleDatePickerOpen)
		protected.POST("/datepicker/close", r.handleDatePickerClose)
		protected.POST("/datepicker/navigate", r.handleDatePickerNavigate)
		protected.POST("/datepicker/select", r.handleDatePickerSelect)
		protected.POST("/datepicker/submit", r.handleDatePickerSubmit)

		// Upload
		protected.POST("/upload/document", r.handleUploadDocument)
		protected.POST("/upload/image", r.handleUploadImage)
		protected.POST("/upload/remove", r.handleUploadRemove)
		protected.POST("/upload/submit", r.handleUploadSubmit)

		// Tables
		protected.POST("/tables/edit", r.handleTableEdit)
		protected.POST("/tables/save", r.handleTableSave)
		protected.POST("/tables/cancel", r.handleTableCancel)
		protected.POST("/tables/delete", r.handleTableDeleteRequest)
		protected.POST("/tables/delete/confirm", r.handleTableDeleteConfirm)
		protected.POST("/tables/delete/cancel", r.handleTableDeleteCancel)

		// CEP
		protected.POST("/cep/search", r.handleCEPSearch)
		protected.POST("/cep/submit", r.handleCEPSubmit)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": r.cfg.App.Name,
		"version": r.cfg.App.Version,
	})
}

// pageContext builds the base template context shared by every page:
// sidebar entries, breadcrumb title, current path.
func (r *Router) pageContext(c *gin.Context, title string) pongo2.Context {
	return pongo2.Context{
		"Title":      title,
		"Widgets":    r.catalog.Sidebar("widgets"),
		"Reference":  r.catalog.Sidebar("reference"),
		"Breadcrumb": r.catalog.Breadcrumb(c.Request.URL.Path),
	}
}

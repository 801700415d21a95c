//go:build !cli
// +build !cli

package main

import (
	"html/template"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kyuna.GO/api"
	_ "kyuna.GO/api/categories"
	_ "kyuna.GO/api/items"
	_ "kyuna.GO/api/orders"
	_ "kyuna.GO/api/prices"
	_ "kyuna.GO/api/queries"
	"kyuna.GO/backend"
	"kyuna.GO/config"
	"kyuna.GO/core/auth"
	"kyuna.GO/core/session"
	html "kyuna.GO/html"
	"kyuna.GO/html/parts"
	authRepo "kyuna.GO/model/repository/auth"
	"kyuna.GO/panel"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	backendClient := backend.NewClient(config.AppConfig.BackendURL, nil, backend.NoToken)

	sessionStore := session.NewStore()
	sessions := session.NewManager(
		sessionStore,
		authRepo.NewAuthRepository(backendClient),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	deps := panel.NewDeps(sessions, backendClient)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	// Register the template renderer
	css, err := parts.GetCriticalCSS()
	if err != nil {
		log.Println("Starting without inline CSS:", err)
	}
	funcs := template.FuncMap{
		"criticalCSS": func() template.CSS { return template.CSS(css) },
	}
	t := &html.Template{
		Templates: template.Must(template.New("").Funcs(funcs).ParseGlob("html/pages/*.html")),
	}
	e.Renderer = t

	for _, tmpl := range t.Templates.Templates() {
		log.Println("Loaded template:", tmpl.Name())
	}

	e.Use(auth.Middleware(sessions))

	apiGroup := e.Group("/panel/api")
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy"}
	fig := figure.NewFigure("Kyuna Admin ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Panel running on :%s (backend %s)", port, config.AppConfig.BackendURL)
	e.Logger.Fatal(e.Start(":" + port))
}

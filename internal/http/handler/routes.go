package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"studygeni/internal/http/middleware"
	"studygeni/internal/model"
	"studygeni/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; services are injected.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	docSvc service.DocumentService,
	aidSvc service.StudyAidService,
	authSvc service.AuthService,
	verifier middleware.TokenVerifier,
) {
	// Serve the OpenAPI spec and a Swagger UI shell
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/register", Register(authSvc))
	app.Post("/auth/login", Login(authSvc))

	// Document and study-aid endpoints require authentication; only teachers
	// may upload. The role guard runs before any validation or storage work.
	docs := app.Group("/documents", middleware.Auth(verifier))
	docs.Post("/", middleware.RequireRole(model.RoleTeacher), UploadDocument(docSvc))
	docs.Get("/", ListDocuments(docSvc))
	docs.Get("/:id", GetDocument(docSvc))
	docs.Get("/:id/summary", GetSummary(aidSvc))
	docs.Get("/:id/quiz", GetQuiz(aidSvc))
}

package http

import (
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastellr/bizpulse-api/internal/application/auth"
	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	"github.com/jcastellr/bizpulse-api/internal/interfaces/ws"
	"github.com/jcastellr/bizpulse-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ImportUC    *usecase.ImportUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *usecase.SaleUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	InsightUC   *usecase.InsightUseCase
	ReportUC    *usecase.ReportUseCase
	Hub         *ws.Hub
	JWTSecret   string
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/profile", authHandler.Profile)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Importación CSV (protegido)
	uploadHandler := NewUploadHandler(deps.ImportUC, deps.Log)
	protected.Post("/upload-csv", uploadHandler.UploadCSV)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Log)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Analytics (protegido)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.Log)
	protected.Get("/analytics/summary", analyticsHandler.Summary)

	// AI (protegido)
	aiHandler := NewAIHandler(deps.InsightUC, deps.Log)
	protected.Post("/ai/chat", aiHandler.Chat)
	protected.Post("/ai/insights", aiHandler.Insights)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	protected.Get("/reports/inventory", reportHandler.Inventory)

	// Websocket de inventario. El token viaja por query param (el navegador
	// no permite headers en el handshake); se valida antes del upgrade.
	app.Use("/ws/inventory", wsAuth(deps.JWTSecret))
	app.Get("/ws/inventory", websocket.New(func(conn *websocket.Conn) {
		ownerID, _ := conn.Locals(LocalUserID).(string)
		deps.Hub.Register(ownerID, conn)
		defer deps.Hub.Unregister(ownerID, conn)

		// Solo difusión servidor→cliente: el read loop existe para detectar el cierre.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			if parts := strings.SplitN(c.Get("Authorization"), " ", 2); len(parts) == 2 {
				token = strings.TrimSpace(parts[1])
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Access token required"})
		}
		userID, email, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Invalid token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserEmail, email)
		return c.Next()
	}
}

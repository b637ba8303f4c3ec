package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/auth"
	"github.com/tu-usuario/fletes-pro/internal/application/documents"
	"github.com/tu-usuario/fletes-pro/internal/application/finance"
	"github.com/tu-usuario/fletes-pro/internal/application/orders"
	"github.com/tu-usuario/fletes-pro/internal/application/usecase"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC    *orders.LifecycleUseCase
	DocumentUC *documents.DocumentUseCase
	FinanceUC  *finance.ReportUseCase
	ClientUC   *usecase.ClientUseCase
	SellerUC   *usecase.SellerUseCase
	PlantUC    *usecase.PlantUseCase
	FleetUC    *usecase.FleetUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos: ciclo de vida completo
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.DocumentUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/estado", orderHandler.ChangeStatus)
	ordersGroup.Post("/:id/reguia", orderHandler.Reguia)
	ordersGroup.Put("/:id/transporte", orderHandler.ReassignTransport)
	ordersGroup.Put("/:id/pago", orderHandler.RegisterPayment)
	ordersGroup.Put("/:id/cliente", orderHandler.UpdateClient)
	ordersGroup.Put("/:id/vendedor", orderHandler.UpdateSeller)
	ordersGroup.Put("/:id/pedido-venta", orderHandler.UpdateSalesOrderNumber)
	ordersGroup.Put("/:id/fecha-entrega", orderHandler.UpdateDeliveryDate)
	ordersGroup.Put("/:id/cantidad-cargada", orderHandler.UpdateLoadedQuantity)
	ordersGroup.Get("/:id/credito", orderHandler.Credit)
	ordersGroup.Get("/:id/documentos/nota_entrega.pdf", orderHandler.DeliveryNotePDF)
	ordersGroup.Get("/:id/documentos/guia_traslado.xml", orderHandler.TransferGuideXML)
	ordersGroup.Get("/:id/documentos/:tipo", orderHandler.Document)

	// Finanzas
	financeGroup := protected.Group("/finanzas")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup.Get("/resumen", financeHandler.Report)
	financeGroup.Get("/billetera", financeHandler.Wallet)
	financeGroup.Get("/export.csv", financeHandler.ExportCSV)

	// Clientes
	clientsGroup := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/:id", clientHandler.GetByID)
	clientsGroup.Put("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)
	clientsGroup.Post("/:id/direcciones", clientHandler.AddAddress)
	clientsGroup.Delete("/:id/direcciones/:addressId", clientHandler.RemoveAddress)

	// Vendedores
	sellersGroup := protected.Group("/vendedores")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellersGroup.Get("/", sellerHandler.List)
	sellersGroup.Post("/", sellerHandler.Create)
	sellersGroup.Get("/:id", sellerHandler.GetByID)
	sellersGroup.Put("/:id", sellerHandler.Update)
	sellersGroup.Delete("/:id", sellerHandler.Delete)

	// Plantas
	plantsGroup := protected.Group("/plantas")
	plantHandler := NewPlantHandler(deps.PlantUC)
	plantsGroup.Get("/", plantHandler.List)
	plantsGroup.Post("/", plantHandler.Create)
	plantsGroup.Get("/:id", plantHandler.GetByID)
	plantsGroup.Put("/:id", plantHandler.Update)
	plantsGroup.Delete("/:id", plantHandler.Delete)

	// Flota: choferes, chutos y bateas
	fleetGroup := protected.Group("/flota")
	fleetHandler := NewFleetHandler(deps.FleetUC)
	fleetGroup.Get("/choferes", fleetHandler.ListDrivers)
	fleetGroup.Post("/choferes", fleetHandler.CreateDriver)
	fleetGroup.Put("/choferes/:id", fleetHandler.UpdateDriver)
	fleetGroup.Delete("/choferes/:id", fleetHandler.DeleteDriver)
	fleetGroup.Get("/chutos", fleetHandler.ListTrucks)
	fleetGroup.Post("/chutos", fleetHandler.CreateTruck)
	fleetGroup.Put("/chutos/:id", fleetHandler.UpdateTruck)
	fleetGroup.Delete("/chutos/:id", fleetHandler.DeleteTruck)
	fleetGroup.Get("/bateas", fleetHandler.ListTrailers)
	fleetGroup.Post("/bateas", fleetHandler.CreateTrailer)
	fleetGroup.Put("/bateas/:id", fleetHandler.UpdateTrailer)
	fleetGroup.Delete("/bateas/:id", fleetHandler.DeleteTrailer)

	// Admin: operaciones masivas (solo rol admin)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.OrderUC)
	adminGroup.Delete("/pedidos/todos", adminHandler.Truncate)
	adminGroup.Delete("/pedidos", adminHandler.DeleteByStatus)
}

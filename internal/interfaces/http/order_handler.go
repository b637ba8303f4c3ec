package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/documents"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP del ciclo de vida de pedidos (protegido).
type OrderHandler struct {
	uc   *orders.LifecycleUseCase
	docs *documents.DocumentUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.LifecycleUseCase, docs *documents.DocumentUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, docs: docs}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado operativo"
// @Param        client  query  string  false  "Filtrar por cliente (sin distinguir acentos)"
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := dto.OrderFilter{
		Status: c.Query("status"),
		Client: c.Query("client"),
	}
	items, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OrderListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido (PED-xxxx o VIA-xxxx)"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	o, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// Create godoc
// @Summary      Crear pedido (asistente)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Planta, cliente, producto y montos"
// @Success      201   {object}  entity.Order
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.Create(c.Context(), in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

// ChangeStatus godoc
// @Summary      Avanzar el estado de un pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.ChangeStatusRequest  true  "Estado destino; delivered_quantity solo al completar"
// @Success      200   {object}  entity.Order
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/estado [put]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// Reguia godoc
// @Summary      Reguiar un pedido en tránsito hacia otro cliente/destino
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.ReguiaRequest  true  "Nuevo cliente, dirección y vendedor opcional"
// @Success      200   {object}  entity.Order
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/reguia [post]
func (h *OrderHandler) Reguia(c *fiber.Ctx) error {
	var in dto.ReguiaRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.Reguia(c.Context(), c.Params("id"), in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// ReassignTransport godoc
// @Summary      Reasignar chofer, chuto o batea
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.ReassignTransportRequest  true  "IDs de flota; solo los presentes se aplican"
// @Success      200   {object}  entity.Order
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/transporte [put]
func (h *OrderHandler) ReassignTransport(c *fiber.Ctx) error {
	var in dto.ReassignTransportRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.ReassignTransport(c.Context(), c.Params("id"), in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// RegisterPayment godoc
// @Summary      Registrar el pago de un pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.RegisterPaymentRequest  true  "Estado de pago y referencia"
// @Success      200   {object}  entity.Order
// @Router       /api/orders/{id}/pago [put]
func (h *OrderHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.RegisterPayment(c.Context(), c.Params("id"), in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// UpdateClient reasigna el cliente del pedido (una línea de historial).
func (h *OrderHandler) UpdateClient(c *fiber.Ctx) error {
	var in dto.UpdateOrderClientRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.UpdateClient(c.Context(), c.Params("id"), in.ClientID, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// UpdateSeller reasigna el vendedor del pedido.
func (h *OrderHandler) UpdateSeller(c *fiber.Ctx) error {
	var in dto.UpdateOrderSellerRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.UpdateSeller(c.Context(), c.Params("id"), in.SellerID, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// UpdateSalesOrderNumber fija el número de pedido de venta.
func (h *OrderHandler) UpdateSalesOrderNumber(c *fiber.Ctx) error {
	var in dto.UpdateSalesOrderNumberRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.UpdateSalesOrderNumber(c.Context(), c.Params("id"), in.SalesOrderNumber, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// UpdateDeliveryDate fija la fecha de entrega.
func (h *OrderHandler) UpdateDeliveryDate(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryDateRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.UpdateDeliveryDate(c.Context(), c.Params("id"), in.DeliveryDate, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// UpdateLoadedQuantity registra la cantidad realmente cargada por la planta.
func (h *OrderHandler) UpdateLoadedQuantity(c *fiber.Ctx) error {
	var in dto.UpdateLoadedQuantityRequest
	if !parseBody(c, &in) {
		return nil
	}
	o, err := h.uc.UpdateLoadedQuantity(c.Context(), c.Params("id"), in.LoadedQuantity, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(o)
}

// Credit godoc
// @Summary      Crédito estimado por déficit de carga
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderCreditResponse
// @Router       /api/orders/{id}/credito [get]
func (h *OrderHandler) Credit(c *fiber.Ctx) error {
	out, err := h.uc.Credit(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Document godoc
// @Summary      Generar documento imprimible del pedido
// @Tags         orders
// @Security     Bearer
// @Produce      html
// @Param        id    path  string  true  "ID del pedido"
// @Param        tipo  path  string  true  "autorizacion | nota_entrega | guia_traslado"
// @Success      200   {string}  string  "Documento HTML"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/documentos/{tipo} [get]
func (h *OrderHandler) Document(c *fiber.Ctx) error {
	html, err := h.docs.RenderHTML(c.Context(), c.Params("id"), c.Params("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// DeliveryNotePDF genera la nota de entrega en PDF.
func (h *OrderHandler) DeliveryNotePDF(c *fiber.Ctx) error {
	pdf, err := h.docs.RenderDeliveryNotePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="nota_entrega_`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// TransferGuideXML genera el XML de intercambio de la guía de traslado.
func (h *OrderHandler) TransferGuideXML(c *fiber.Ctx) error {
	xml, err := h.docs.RenderTransferGuideXML(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="guia_`+c.Params("id")+`.xml"`)
	return c.Send(xml)
}

// Package documents genera los documentos imprimibles del pedido:
// autorización de carga, nota de entrega y guía de traslado. El motor es una
// sustitución de marcadores {{CAMPO}} sobre plantillas HTML; el PDF y el XML
// de intercambio se delegan a los adaptadores de infraestructura.
package documents

import (
	"strings"

	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	domorder "github.com/tu-usuario/fletes-pro/internal/domain/order"
	"github.com/tu-usuario/fletes-pro/pkg/config"
)

// Placeholders arma el mapa de sustitución de un pedido más la identidad de
// la empresa emisora. QUANTITY_VAL y QUANTITY_UNIT separan la cantidad
// facturada en su parte numérica y su unidad; ese desglose se preserva tal
// cual porque las plantillas impresas los colocan en celdas distintas.
func Placeholders(o entity.Order, cfg config.CompanyConfig) map[string]string {
	qtyVal, qtyUnit := domorder.ParseQuantity(o.Quantity)
	loadedVal, loadedUnit := domorder.ParseQuantity(o.LoadedQuantity)
	return map[string]string{
		"{{ORDER_ID}}":           o.ID,
		"{{PLANT_ORDER_NUMBER}}": o.PlantOrderNumber,
		"{{SALES_ORDER_NUMBER}}": o.SalesOrderNumber,
		"{{CLIENT}}":             o.Client,
		"{{RIF}}":                o.RIF,
		"{{FINAL_CLIENT}}":       o.FinalClient,
		"{{FINAL_ADDRESS}}":      o.FinalAddress,
		"{{DESTINATION_STATE}}":  o.DestinationState,
		"{{DESTINATION_MUN}}":    o.DestinationMunicipality,
		"{{DESTINATION_PARISH}}": o.DestinationParish,
		"{{DESTINATION_DETAIL}}": o.DestinationDetail,
		"{{SELLER_NAME}}":        o.SellerName,
		"{{PRODUCT}}":            o.Product,
		"{{QUANTITY_VAL}}":       qtyVal.String(),
		"{{QUANTITY_UNIT}}":      qtyUnit,
		"{{LOADED_VAL}}":         loadedVal.String(),
		"{{LOADED_UNIT}}":        loadedUnit,
		"{{PLANT}}":              o.Origin,
		"{{DRIVER}}":             o.Driver,
		"{{DRIVER_CEDULA}}":      o.DriverCedula,
		"{{DRIVER_PHONE}}":       o.DriverPhone,
		"{{TRUCK}}":              o.Truck,
		"{{PLATE}}":              o.Plate,
		"{{TRAILER_PLATE}}":      o.TrailerPlate,
		"{{DELIVERY_DATE}}":      o.DeliveryDate,
		"{{ISSUER_NAME}}":        cfg.IssuerName,
		"{{ISSUER_ROLE}}":        cfg.IssuerRole,
		"{{ISSUER_ID}}":          cfg.IssuerID,
		"{{COMPANY_NAME}}":       cfg.Name,
		"{{COMPANY_RIF}}":        cfg.RIF,
		"{{CONTACT_PHONE}}":      cfg.ContactPhone,
	}
}

// Render sustituye los marcadores de la plantilla. Marcadores sin valor
// quedan como cadena vacía; marcadores desconocidos se dejan intactos para
// que el error sea visible en el documento impreso, no silencioso.
func Render(template string, o entity.Order, cfg config.CompanyConfig) string {
	pairs := Placeholders(o, cfg)
	repl := make([]string, 0, len(pairs)*2)
	for k, v := range pairs {
		repl = append(repl, k, v)
	}
	return strings.NewReplacer(repl...).Replace(template)
}

package documents

// Tipos de documento imprimible.
const (
	TypeAutorizacion = "autorizacion"  // autorización de carga para la planta
	TypeNotaEntrega  = "nota-entrega"  // nota de entrega firmada por el receptor
	TypeGuiaTraslado = "guia-traslado" // guía de traslado para el tránsito
)

// Plantillas HTML embebidas. El formato visual importa poco: estos documentos
// se imprimen en blanco y negro y se firman a mano en la planta o en la obra.

const templateAutorizacion = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Autorización de Carga {{ORDER_ID}}</title></head>
<body>
<h1>{{COMPANY_NAME}}</h1>
<p>RIF: {{COMPANY_RIF}} — Telf: {{CONTACT_PHONE}}</p>
<h2>Autorización de Carga N° {{ORDER_ID}}</h2>
<p>Planta: <strong>{{PLANT}}</strong> — N° pedido planta: {{PLANT_ORDER_NUMBER}}</p>
<table border="1" cellspacing="0" cellpadding="4">
  <tr><td>Producto</td><td>{{PRODUCT}}</td></tr>
  <tr><td>Cantidad</td><td>{{QUANTITY_VAL}} {{QUANTITY_UNIT}}</td></tr>
  <tr><td>Chofer</td><td>{{DRIVER}} — C.I. {{DRIVER_CEDULA}}</td></tr>
  <tr><td>Chuto</td><td>{{TRUCK}} — Placa {{PLATE}}</td></tr>
  <tr><td>Batea</td><td>Placa {{TRAILER_PLATE}}</td></tr>
</table>
<p>Se autoriza a la planta {{PLANT}} a despachar el producto indicado a la
unidad descrita, por cuenta de {{COMPANY_NAME}}.</p>
<p>Emitido por: {{ISSUER_NAME}} — {{ISSUER_ROLE}} — C.I. {{ISSUER_ID}}</p>
<p>Firma y sello: ______________________</p>
</body>
</html>`

const templateNotaEntrega = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Nota de Entrega {{ORDER_ID}}</title></head>
<body>
<h1>{{COMPANY_NAME}}</h1>
<p>RIF: {{COMPANY_RIF}} — Telf: {{CONTACT_PHONE}}</p>
<h2>Nota de Entrega N° {{ORDER_ID}}</h2>
<p>Cliente: <strong>{{FINAL_CLIENT}}</strong> — RIF: {{RIF}}</p>
<p>Dirección de entrega: {{FINAL_ADDRESS}}</p>
<table border="1" cellspacing="0" cellpadding="4">
  <tr><th>Producto</th><th>Cantidad</th><th>Unidad</th></tr>
  <tr><td>{{PRODUCT}}</td><td>{{QUANTITY_VAL}}</td><td>{{QUANTITY_UNIT}}</td></tr>
</table>
<p>Transportado por: {{DRIVER}} (C.I. {{DRIVER_CEDULA}}) — Unidad {{TRUCK}},
placa {{PLATE}}. Fecha de entrega: {{DELIVERY_DATE}}.</p>
<p>Recibido conforme: ______________________ &nbsp;&nbsp; C.I.: ______________</p>
</body>
</html>`

const templateGuiaTraslado = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Guía de Traslado {{ORDER_ID}}</title></head>
<body>
<h1>{{COMPANY_NAME}}</h1>
<p>RIF: {{COMPANY_RIF}}</p>
<h2>Guía de Traslado N° {{ORDER_ID}}</h2>
<p>Origen: planta {{PLANT}}</p>
<p>Destino: {{DESTINATION_DETAIL}}, parroquia {{DESTINATION_PARISH}},
municipio {{DESTINATION_MUN}}, estado {{DESTINATION_STATE}}</p>
<p>Consignatario: {{FINAL_CLIENT}}</p>
<table border="1" cellspacing="0" cellpadding="4">
  <tr><td>Producto</td><td>{{PRODUCT}}</td></tr>
  <tr><td>Cantidad</td><td>{{QUANTITY_VAL}} {{QUANTITY_UNIT}}</td></tr>
  <tr><td>Chofer</td><td>{{DRIVER}} — C.I. {{DRIVER_CEDULA}} — Telf. {{DRIVER_PHONE}}</td></tr>
  <tr><td>Vehículo</td><td>{{TRUCK}} placa {{PLATE}} / batea placa {{TRAILER_PLATE}}</td></tr>
</table>
<p>Emitido por: {{ISSUER_NAME}} — {{ISSUER_ROLE}}</p>
</body>
</html>`

// templateByType resuelve la plantilla de un tipo de documento ("" si no existe).
func templateByType(docType string) string {
	switch docType {
	case TypeAutorizacion:
		return templateAutorizacion
	case TypeNotaEntrega:
		return templateNotaEntrega
	case TypeGuiaTraslado:
		return templateGuiaTraslado
	default:
		return ""
	}
}

// Package guia genera el XML de intercambio de la guía de traslado: el
// documento que acompaña la carga en tránsito y que los sistemas de las
// plantas importan para conciliar despachos.
package guia

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/tu-usuario/fletes-pro/internal/application/documents"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	domorder "github.com/tu-usuario/fletes-pro/internal/domain/order"
	"github.com/tu-usuario/fletes-pro/pkg/config"
)

var _ documents.TransferGuideXMLBuilder = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML de la guía de traslado.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// BuildTransferGuideXML genera el documento GuiaTraslado del pedido.
// La cantidad viaja descompuesta en valor y unidad porque los sistemas de
// planta las tratan como campos separados.
func (s *XMLBuilderService) BuildTransferGuideXML(o entity.Order, cfg config.CompanyConfig) ([]byte, error) {
	if o.ID == "" {
		return nil, fmt.Errorf("guia: pedido sin ID")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("GuiaTraslado")
	root.CreateAttr("numero", o.ID)

	emisor := root.CreateElement("Emisor")
	emisor.CreateElement("RazonSocial").SetText(cfg.Name)
	emisor.CreateElement("RIF").SetText(cfg.RIF)
	emisor.CreateElement("Telefono").SetText(cfg.ContactPhone)

	origen := root.CreateElement("Origen")
	origen.CreateElement("Planta").SetText(o.Origin)
	origen.CreateElement("NumeroPedidoPlanta").SetText(o.PlantOrderNumber)

	destino := root.CreateElement("Destino")
	destino.CreateElement("Consignatario").SetText(o.FinalClient)
	destino.CreateElement("RIF").SetText(o.RIF)
	destino.CreateElement("Estado").SetText(o.DestinationState)
	destino.CreateElement("Municipio").SetText(o.DestinationMunicipality)
	destino.CreateElement("Parroquia").SetText(o.DestinationParish)
	destino.CreateElement("Direccion").SetText(o.DestinationDetail)

	qtyVal, qtyUnit := domorder.ParseQuantity(o.Quantity)
	carga := root.CreateElement("Carga")
	carga.CreateElement("Producto").SetText(o.Product)
	cantidad := carga.CreateElement("Cantidad")
	cantidad.CreateAttr("unidad", qtyUnit)
	cantidad.SetText(qtyVal.String())

	transporte := root.CreateElement("Transporte")
	transporte.CreateElement("Chofer").SetText(o.Driver)
	transporte.CreateElement("Cedula").SetText(o.DriverCedula)
	chuto := transporte.CreateElement("Chuto")
	chuto.CreateAttr("placa", o.Plate)
	chuto.SetText(o.Truck)
	transporte.CreateElement("Batea").CreateAttr("placa", o.TrailerPlate)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("guia: serializar XML: %w", err)
	}
	return out, nil
}

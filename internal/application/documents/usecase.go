package documents

import (
	"context"
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
	"github.com/tu-usuario/fletes-pro/pkg/config"
)

// DeliveryNotePDFGenerator genera la representación PDF de la nota de entrega.
type DeliveryNotePDFGenerator interface {
	GenerateDeliveryNotePDF(ctx context.Context, o entity.Order, cfg config.CompanyConfig) ([]byte, error)
}

// TransferGuideXMLBuilder genera el XML de intercambio de la guía de traslado
// (lo consumen los sistemas de las plantas).
type TransferGuideXMLBuilder interface {
	BuildTransferGuideXML(o entity.Order, cfg config.CompanyConfig) ([]byte, error)
}

// DocumentUseCase genera documentos imprimibles a partir de un pedido.
type DocumentUseCase struct {
	orders repository.OrderRepository
	cfg    config.CompanyConfig
	pdf    DeliveryNotePDFGenerator
	xml    TransferGuideXMLBuilder
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	orders repository.OrderRepository,
	cfg config.CompanyConfig,
	pdf DeliveryNotePDFGenerator,
	xml TransferGuideXMLBuilder,
) *DocumentUseCase {
	return &DocumentUseCase{orders: orders, cfg: cfg, pdf: pdf, xml: xml}
}

func (uc *DocumentUseCase) findOrder(ctx context.Context, id string) (entity.Order, error) {
	all, _, err := uc.orders.GetAll(ctx)
	if err != nil {
		return entity.Order{}, err
	}
	for _, o := range all {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, fmt.Errorf("pedido %q: %w", id, domain.ErrNotFound)
}

// RenderHTML genera el documento HTML imprimible del tipo indicado.
func (uc *DocumentUseCase) RenderHTML(ctx context.Context, orderID, docType string) (string, error) {
	tmpl := templateByType(docType)
	if tmpl == "" {
		return "", fmt.Errorf("tipo de documento %q: %w", docType, domain.ErrInvalidInput)
	}
	o, err := uc.findOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	return Render(tmpl, o, uc.cfg), nil
}

// RenderDeliveryNotePDF genera la nota de entrega en PDF.
func (uc *DocumentUseCase) RenderDeliveryNotePDF(ctx context.Context, orderID string) ([]byte, error) {
	o, err := uc.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDeliveryNotePDF(ctx, o, uc.cfg)
}

// RenderTransferGuideXML genera el XML de la guía de traslado.
func (uc *DocumentUseCase) RenderTransferGuideXML(ctx context.Context, orderID string) ([]byte, error) {
	o, err := uc.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildTransferGuideXML(o, uc.cfg)
}

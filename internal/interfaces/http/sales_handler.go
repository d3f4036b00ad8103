package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/application/sales"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
)

// SalesHandler maneja las peticiones HTTP de ventas diarias (protegido).
type SalesHandler struct {
	recordUC *sales.RecordSaleUseCase
	pdfUC    *sales.PDFUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(recordUC *sales.RecordSaleUseCase, pdfUC *sales.PDFUseCase) *SalesHandler {
	return &SalesHandler{recordUC: recordUC, pdfUC: pdfUC}
}

// RecordSale registra una venta: valida stock, descuenta inventario y crea el registro.
// POST /api/sales
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.recordUC.RecordSale(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("stock insuficiente para el producto %q: disponible %d, solicitado %d",
					stockErr.ProductName, stockErr.Available, stockErr.Requested),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History devuelve el historial completo de ventas.
// GET /api/sales
func (h *SalesHandler) History(c *fiber.Ctx) error {
	out, err := h.recordUC.History()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadInvoice genera y descarga la factura PDF de una venta.
// GET /api/sales/:saleId/invoice
func (h *SalesHandler) DownloadInvoice(c *fiber.Ctx) error {
	saleID := c.Params("saleId")
	pdf, err := h.pdfUC.GenerateInvoice(c.Context(), saleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		// Fallos del renderizador se reportan siempre, nunca se silencian.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILURE", Message: "fallo al generar el PDF de la factura"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "invoice_"+saleID+".pdf"))
	return c.Send(pdf)
}

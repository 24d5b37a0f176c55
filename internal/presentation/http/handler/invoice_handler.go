package handler

import (
	"io"
	"net/http"

	"github.com/billforge/billforge-api/internal/application/service"
	"github.com/billforge/billforge-api/internal/domain/enum"
	domainRepo "github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/request"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/response"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	exportService  *service.ExportService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, exportService *service.ExportService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exportService:  exportService,
	}
}

// Create handles saving a new invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), *userID, invoiceInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice saved successfully", gin.H{"invoice": invoice})
}

// List handles listing the user's invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &domainRepo.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.Limit},
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.Currency != "" {
		currency := enum.Currency(req.Currency)
		params.Currency = &currency
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, http.StatusOK, "Invoices retrieved successfully", result)
}

// Get handles fetching one invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", gin.H{"invoice": invoice})
}

// Update handles replacing an invoice's content
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), *userID, id, invoiceInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", gin.H{"invoice": invoice})
}

// Delete handles removing an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}

// DownloadPDF streams the invoice as a PDF document
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	doc, filename, err := h.exportService.GenerateInvoicePDF(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}

func invoiceInput(req *request.SaveInvoiceRequest) *service.InvoiceInput {
	input := &service.InvoiceInput{
		BillFrom:      partyInput(req.BillFrom),
		BillTo:        partyInput(req.BillTo),
		InvoiceNumber: req.InvoiceNumber,
		InvoiceName:   req.InvoiceName,
		InvoiceDate:   req.InvoiceDate,
		Currency:      req.Currency,
		Items:         make([]service.ItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.ItemInput{
			Name:        item.Name,
			Cost:        item.Cost,
			IsExtraCost: item.IsExtraCost,
			ChargeKind:  item.ChargeKind,
			ChargeValue: item.ChargeValue,
		})
	}
	return input
}

func partyInput(req request.BillingPartyRequest) service.PartyInput {
	return service.PartyInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		GSTNumber: req.GSTNumber,
	}
}

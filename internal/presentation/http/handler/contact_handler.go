package handler

import (
	"net/http"

	"github.com/billforge/billforge-api/internal/application/service"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/request"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/response"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Create handles saving a new contact
func (h *ContactHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), *userID, contactInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contact created successfully", gin.H{"contact": contact})
}

// List handles listing the user's contacts
func (h *ContactHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ListContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.Limit}

	contacts, total, err := h.contactService.List(c.Request.Context(), *userID, params, req.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(contacts,
		pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, http.StatusOK, "Contacts retrieved successfully", result)
}

// Get handles fetching one contact
func (h *ContactHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contact ID")
		return
	}

	contact, err := h.contactService.Get(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contact retrieved successfully", gin.H{"contact": contact})
}

// Update handles replacing a contact's fields
func (h *ContactHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contact ID")
		return
	}

	var req request.SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), *userID, id, contactInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contact updated successfully", gin.H{"contact": contact})
}

// Delete handles removing a contact
func (h *ContactHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contact ID")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contact deleted successfully", nil)
}

func contactInput(req *request.SaveContactRequest) *service.ContactInput {
	return &service.ContactInput{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		GSTNumber: req.GSTNumber,
	}
}

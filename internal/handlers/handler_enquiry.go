package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/firm_enquiries_app/internal/core/ports/services"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/SscSPs/firm_enquiries_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// enquiryHandler handles HTTP requests related to enquiries.
type enquiryHandler struct {
	enquiryService portssvc.EnquirySvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// newEnquiryHandler creates a new enquiryHandler.
func newEnquiryHandler(es portssvc.EnquirySvcFacade, ps portssvc.PaymentSvcFacade) *enquiryHandler {
	return &enquiryHandler{
		enquiryService: es,
		paymentService: ps,
	}
}

// RegisterEnquiryRoutes registers routes related to enquiries.
func RegisterEnquiryRoutes(rg *gin.RouterGroup, enquiryService portssvc.EnquirySvcFacade, paymentService portssvc.PaymentSvcFacade) {
	registerBindingValidators()
	h := newEnquiryHandler(enquiryService, paymentService)

	enquiries := rg.Group("/enquiries")
	{
		enquiries.POST("", h.createEnquiry)
		enquiries.GET("", h.listEnquiries)
		enquiries.GET("/:enquiryID", h.getEnquiry)
		enquiries.PATCH("/:enquiryID", h.updateEnquiry)
		enquiries.PUT("/:enquiryID", h.updateEnquiry)
		enquiries.GET("/:enquiryID/payment", h.getEnquiryPayment)
	}
}

// createEnquiry godoc
// @Summary Record a new enquiry
// @Description Creates an enquiry and issues its ENQ-#### identifier. A conversionDate on create also issues the matter code.
// @Tags enquiries
// @Accept  json
// @Produce  json
// @Param   enquiry body dto.CreateEnquiryRequest true "Enquiry details"
// @Success 201 {object} dto.EnquiryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Identifier conflict"
// @Failure 500 {object} map[string]string "Failed to create enquiry"
// @Security BearerAuth
// @Router /enquiries [post]
func (h *enquiryHandler) createEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create enquiry", slog.String("client_name", req.ClientName))

	enquiry, err := h.enquiryService.CreateEnquiry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create enquiry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnquiryResponse(enquiry))
}

// listEnquiries godoc
// @Summary List enquiries
// @Description Lists every enquiry in the order it was recorded
// @Tags enquiries
// @Produce  json
// @Success 200 {array} dto.EnquiryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list enquiries"
// @Security BearerAuth
// @Router /enquiries [get]
func (h *enquiryHandler) listEnquiries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	enquiries, err := h.enquiryService.ListEnquiries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list enquiries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEnquiryResponse(enquiries))
}

// getEnquiry godoc
// @Summary Get an enquiry
// @Tags enquiries
// @Produce  json
// @Param   enquiryID path int true "Enquiry store ID"
// @Success 200 {object} dto.EnquiryResponse
// @Failure 400 {object} map[string]string "Invalid enquiryID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Enquiry not found"
// @Security BearerAuth
// @Router /enquiries/{enquiryID} [get]
func (h *enquiryHandler) getEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "enquiryID")
	if !ok {
		return
	}

	enquiry, err := h.enquiryService.GetEnquiryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("enquiry_id", id)), err, "Failed to retrieve enquiry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEnquiryResponse(enquiry))
}

// updateEnquiry godoc
// @Summary Update an enquiry
// @Description Applies only the provided fields; an empty string clears an optional field. Setting conversionDate for the first time issues the matter code. Answers null when the enquiry disappeared during the update.
// @Tags enquiries
// @Accept  json
// @Produce  json
// @Param   enquiryID path int true "Enquiry store ID"
// @Param   enquiry body dto.UpdateEnquiryRequest true "Fields to update"
// @Success 200 {object} dto.EnquiryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Enquiry not found"
// @Security BearerAuth
// @Router /enquiries/{enquiryID} [patch]
// @Router /enquiries/{enquiryID} [put]
func (h *enquiryHandler) updateEnquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "enquiryID")
	if !ok {
		return
	}

	var req dto.UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("enquiry_id", id))
	enquiry, err := h.enquiryService.UpdateEnquiry(c.Request.Context(), id, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update enquiry")
		return
	}
	if enquiry == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnquiryResponse(enquiry))
}

// getEnquiryPayment godoc
// @Summary Get the payment of an enquiry
// @Description Answers null when no payment has been recorded for the enquiry
// @Tags enquiries
// @Produce  json
// @Param   enquiryID path int true "Enquiry store ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid enquiryID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /enquiries/{enquiryID}/payment [get]
func (h *enquiryHandler) getEnquiryPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "enquiryID")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByEnquiry(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("enquiry_id", id)), err, "Failed to retrieve payment")
		return
	}
	if payment == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/parisboutique/storefront/internal/models"
	service "github.com/parisboutique/storefront/internal/services"
	"github.com/parisboutique/storefront/internal/utils"
	"github.com/parisboutique/storefront/internal/utils/response"
)

type InquiryHandler struct {
	inquiryService service.InquiryService
	validator      *validator.Validate
}

func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService, validator: validator.New()}
}

func (h *InquiryHandler) CreateInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateInquiryRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			writeValidationFailure(w, err)
			return
		}

		if req.UserAgent == "" {
			req.UserAgent = r.UserAgent()
		}

		result, err := h.inquiryService.LogInquiry(r.Context(), &req)
		if err != nil {
			slog.Error("Failed to log inquiry", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusCreated, result)
	}
}

func (h *InquiryHandler) ListInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		inquiries, err := h.inquiryService.ListInquiries(r.Context())
		if err != nil {
			slog.Error("Failed to fetch inquiries", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, inquiries)
	}
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/sync"
	"github.com/parisboutique/storefront/internal/utils"
	"github.com/parisboutique/storefront/internal/utils/response"
)

type ProductHandler struct {
	engine    sync.CatalogService
	validator *validator.Validate
}

func NewProductHandler(engine sync.CatalogService) *ProductHandler {
	return &ProductHandler{engine: engine, validator: validator.New()}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products := h.engine.LoadProducts(r.Context())

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			writeValidationFailure(w, err)
			return
		}

		candidate, err := req.ToProduct()
		if err != nil {
			response.Error(w, appErrors.AddValidationError("price", err.Error()))
			return
		}

		product, err := h.engine.AddProduct(r.Context(), candidate)
		if err != nil {
			slog.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product created successfully", slog.Int64("productId", product.ID))
		response.WriteJson(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		var req models.UpdateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			writeValidationFailure(w, err)
			return
		}

		candidate, err := req.ToProduct(id)
		if err != nil {
			response.Error(w, appErrors.AddValidationError("price", err.Error()))
			return
		}

		product, err := h.engine.UpdateProduct(r.Context(), candidate)
		if err != nil {
			slog.Error("Error during product update", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product updated successfully", slog.Int64("productId", product.ID))
		response.WriteJson(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		if err := h.engine.DeleteProduct(r.Context(), id); err != nil {
			slog.Warn("Product delete refused", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]int64{"deleted": id})
	}
}

func (h *ProductHandler) RestoreDefaults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.engine.RestoreDefaults(r.Context()); err != nil {
			slog.Error("Failed to restore default catalog", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		products := h.engine.LoadProducts(r.Context())

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) SyncStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats := h.engine.SyncStats(r.Context())

		response.WriteJson(w, http.StatusOK, stats)
	}
}

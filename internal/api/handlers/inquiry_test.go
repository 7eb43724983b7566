package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parisboutique/storefront/internal/api/handlers"
	"github.com/parisboutique/storefront/internal/models"
	service "github.com/parisboutique/storefront/internal/services"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/parisboutique/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInquiryHandler() *handlers.InquiryHandler {
	return handlers.NewInquiryHandler(service.NewInquiryService(store.NewMemoryStore(), "211900000000"))
}

func TestCreateInquiry(t *testing.T) {
	handler := newInquiryHandler()

	body := createBody(t, models.CreateInquiryRequest{
		ProductName: "Rose Serum",
		Price:       "$17.99",
	})

	req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/inquiries", body, nil)
	req.Header.Set("User-Agent", "test-agent/1.0")
	rec := httptest.NewRecorder()

	handler.CreateInquiry().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.InquiryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Inquiry)
	assert.Equal(t, "Rose Serum", resp.Inquiry.ProductName)
	assert.Contains(t, resp.ComposeLink, "https://wa.me/211900000000?text=")
}

func TestCreateInquiryMissingFields(t *testing.T) {
	handler := newInquiryHandler()

	body := createBody(t, models.CreateInquiryRequest{ProductName: "No Price"})

	req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/inquiries", body, nil)
	rec := httptest.NewRecorder()

	handler.CreateInquiry().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListInquiriesEndpoint(t *testing.T) {
	svc := service.NewInquiryService(store.NewMemoryStore(), "211900000000")
	handler := handlers.NewInquiryHandler(svc)

	_, err := svc.LogInquiry(context.Background(),
		&models.CreateInquiryRequest{ProductName: "Logged", Price: "$5.00"})
	require.NoError(t, err)

	req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/inquiries", nil, nil)
	rec := httptest.NewRecorder()

	handler.ListInquiries().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var inquiries []models.OrderInquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inquiries))
	require.Len(t, inquiries, 1)
	assert.Equal(t, "Logged", inquiries[0].ProductName)
}

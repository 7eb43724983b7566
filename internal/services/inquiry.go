package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/microcosm-cc/bluemonday"
	appErrors "github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
)

// InquiryService records purchase/contact intents and builds the pre-filled
// message-compose link the visitor is handed off to. The log is append-only.
type InquiryService interface {
	LogInquiry(ctx context.Context, req *models.CreateInquiryRequest) (*models.InquiryResponse, error)
	ListInquiries(ctx context.Context) ([]models.OrderInquiry, error)
}

type inquiryService struct {
	store         store.Store
	policy        *bluemonday.Policy
	contactNumber string
	now           func() time.Time
}

func NewInquiryService(st store.Store, contactNumber string) InquiryService {
	return &inquiryService{
		store:         st,
		policy:        bluemonday.StrictPolicy(),
		contactNumber: contactNumber,
		now:           time.Now,
	}
}

func (s *inquiryService) LogInquiry(ctx context.Context, req *models.CreateInquiryRequest) (*models.InquiryResponse, error) {
	now := s.now()

	message := req.Message
	if message == "" {
		message = fmt.Sprintf(
			"Hi! I'm interested in purchasing the %s (%s). Could you please provide more details about availability, delivery options, and any current promotions?",
			req.ProductName, req.Price,
		)
	}

	inquiry := &models.OrderInquiry{
		ID:          now.UnixMilli(),
		ProductName: s.policy.Sanitize(req.ProductName),
		Price:       req.Price,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Message:     s.policy.Sanitize(message),
		UserAgent:   req.UserAgent,
	}

	existing, err := s.loadInquiries(ctx)
	if err != nil {
		return nil, err
	}

	updated := append([]models.OrderInquiry{*inquiry}, existing...)

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, appErrors.StorageError("Failed to serialize inquiries").WithError(err)
	}

	if err := s.store.Set(ctx, store.KeyInquiries, data); err != nil {
		return nil, appErrors.StorageError("Failed to persist inquiry").WithError(err)
	}

	slog.Info("Order inquiry logged", slog.String("product", inquiry.ProductName), slog.String("price", inquiry.Price))

	return &models.InquiryResponse{
		Inquiry:     inquiry,
		ComposeLink: s.composeLink(inquiry.Message),
	}, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context) ([]models.OrderInquiry, error) {
	return s.loadInquiries(ctx)
}

func (s *inquiryService) loadInquiries(ctx context.Context) ([]models.OrderInquiry, error) {
	data, err := s.store.Get(ctx, store.KeyInquiries)
	if err == store.ErrKeyNotFound {
		return []models.OrderInquiry{}, nil
	}

	if err != nil {
		return nil, appErrors.StorageError("Failed to read inquiries").WithError(err)
	}

	var inquiries []models.OrderInquiry
	if err := json.Unmarshal(data, &inquiries); err != nil {
		// An unreadable log must not block new inquiries.
		slog.Warn("Inquiry log is unparsable, starting fresh", slog.String("error", err.Error()))
		return []models.OrderInquiry{}, nil
	}

	return inquiries, nil
}

// composeLink builds the fire-and-forget message link. No delivery
// confirmation exists.
func (s *inquiryService) composeLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.contactNumber, url.QueryEscape(message))
}

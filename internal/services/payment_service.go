package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payOSHQ/payos-lib-golang"
	"gorm.io/gorm"
	"tripy/internal/models/db_models"
	"tripy/internal/models/response_models"
	"tripy/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string
	ReturnURL    string
	CancelURL    string
	ProviderName string // "payos" (stored on Transaction.Provider)
}

type PaymentServiceInterface interface {
	CreateCheckoutForBooking(ctx context.Context, userID, bookingID string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	db  *gorm.DB
	cfg PayOSConfig
}

func NewPaymentService(db *gorm.DB, cfg PayOSConfig) (PaymentServiceInterface, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if cfg.ProviderName == "" {
		cfg.ProviderName = "payos"
	}
	return &paymentService{db: db, cfg: cfg}, nil
}

// CreateCheckoutForBooking opens a payOS payment link for a booking the caller
// owns. A pending Transaction is written first so the webhook can find its
// local counterpart by order code.
func (p *paymentService) CreateCheckoutForBooking(ctx context.Context, userID, bookingID string) (*response_models.CreateCheckoutResponse, error) {
	var booking db_models.Booking
	if err := p.db.WithContext(ctx).
		Where("id = ?", bookingID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrBookingNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	if booking.UserID != userID {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Status == db_models.BookingStatusFailed {
		return nil, utils.ErrInvalidInput
	}

	amount := booking.TotalAmount
	if amount <= 0 {
		return nil, fmt.Errorf("booking %s is not billable (amount=%d)", bookingID, amount)
	}

	// payOS expects an int64 order code; unix seconds plus a short random
	// suffix keeps it unique enough and well under 13 digits.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	txn := &db_models.Transaction{
		BookingID:     booking.ID,
		AmountMinor:   amount,
		Currency:      strings.ToUpper(booking.Currency),
		Status:        db_models.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}
	if err := p.db.WithContext(ctx).Create(txn).Error; err != nil {
		log.Printf("create transaction: %v", err)
		return nil, utils.ErrDatabaseError
	}

	item := payos.Item{
		Name:     fmt.Sprintf("Trip %s to %s (%s)", booking.Origin, booking.Destination, booking.TravelDate),
		Price:    int(amount),
		Quantity: 1,
	}
	body := payos.CheckoutRequestType{
		OrderCode:   orderCode,
		Amount:      int(amount),
		Items:       []payos.Item{item},
		Description: fmt.Sprintf("Trip booking %s", shortBookingRef(booking.ID.String())),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return nil, utils.ErrPaymentProvider
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.db.WithContext(ctx).Model(txn).
			Update("status", db_models.TxnStatusFailed).Error
		log.Printf("payos create link: %v", err)
		return nil, utils.ErrPaymentProvider
	}

	// Snapshot the provider payload for traceability.
	meta := map[string]any{
		"payos_link": resp,
		"booking_id": booking.ID,
	}
	if bytes, _ := json.Marshal(meta); bytes != nil {
		_ = p.db.WithContext(ctx).Model(txn).Update("metadata", bytes).Error
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amount,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		log.Printf("payos key init: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider unavailable"})
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("Error parsing webhook data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("Error verifying webhook data: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	// payOS sends order code 123 when confirming the webhook URL itself.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"message": "Webhook confirmed"})
		return
	}

	providerTxn := fmt.Sprintf("payos:%d", data.OrderCode)

	var txn db_models.Transaction
	if err := p.db.
		Where("provider_txn_id = ?", providerTxn).
		First(&txn).Error; err != nil {
		// Ack with 200 so the provider does not retry forever, but log for
		// investigation.
		log.Printf("webhook: transaction not found for order %d", data.OrderCode)
		c.JSON(http.StatusOK, gin.H{"message": "Acknowledged"})
		return
	}

	// Idempotency: a replayed webhook for an already paid transaction is a
	// no-op.
	if txn.Status != db_models.TxnStatusPaid {
		now := time.Now().Unix()
		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&txn).Updates(map[string]interface{}{
				"status":  db_models.TxnStatusPaid,
				"paid_at": now,
			}).Error; err != nil {
				return err
			}
			return tx.Model(&db_models.Booking{}).
				Where("id = ?", txn.BookingID).
				Update("status", db_models.BookingStatusPaid).Error
		})
		if err != nil {
			log.Printf("webhook: failed to update txn/booking for order %d: %v", data.OrderCode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}

func shortBookingRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

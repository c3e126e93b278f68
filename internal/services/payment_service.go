package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/webhook"
	"gorm.io/gorm"

	dbm "github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	FrontendURL   string // success/cancel redirects land here
	ProviderName  string // stored on Transaction.Provider
}

func LoadStripeConfig() StripeConfig {
	return StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		ProviderName:  "stripe",
	}
}

type PaymentServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, code string) (*response_models.SubscriptionPlan, error)
	CreateCheckoutForPlan(ctx context.Context, accountID string, planCode string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	db          *gorm.DB
	planRepo    repositories.PlanRepository
	accountRepo repositories.AccountRepository
	cfg         StripeConfig
}

func NewPaymentService(
	db *gorm.DB,
	planRepo repositories.PlanRepository,
	accountRepo repositories.AccountRepository,
	cfg StripeConfig,
) (PaymentServiceInterface, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing stripe secret key")
	}
	stripe.Key = cfg.SecretKey

	return &paymentService{
		db:          db,
		planRepo:    planRepo,
		accountRepo: accountRepo,
		cfg:         cfg,
	}, nil
}

func (p *paymentService) ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {
	plans, err := p.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionPlan, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toPlanResponse(&plan))
	}
	return out, nil
}

func (p *paymentService) GetPlan(ctx context.Context, code string) (*response_models.SubscriptionPlan, error) {
	plan, err := p.planRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	resp := toPlanResponse(plan)
	return &resp, nil
}

func toPlanResponse(plan *dbm.Plan) response_models.SubscriptionPlan {
	return response_models.SubscriptionPlan{
		ID:          plan.ID,
		Code:        plan.Code,
		Name:        plan.Name,
		Description: plan.Description,
		Price:       plan.PriceMinor,
		Currency:    plan.Currency,
		Period:      string(plan.Period),
		TrialDays:   plan.TrialDays,
		IsActive:    plan.IsActive,
	}
}

func (p *paymentService) CreateCheckoutForPlan(ctx context.Context, accountID string, planCode string) (*response_models.CreateCheckoutResponse, error) {
	account, err := p.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	plan, err := p.planRepo.FindByCode(ctx, planCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if plan.PriceMinor <= 0 || plan.StripePriceID == "" {
		return nil, utils.ErrPlanNotFound
	}

	customerID, err := p.ensureStripeCustomer(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("prepare billing: %w", err)
	}

	// Pending transaction first; the webhook flips it to paid. Its ID rides
	// along as the checkout client_reference_id for the round trip back.
	txn := &dbm.Transaction{
		AccountID:   account.ID,
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
		Status:      dbm.TxnStatusPending,
		Provider:    p.cfg.ProviderName,
		Metadata: jsonRaw(map[string]any{
			"plan_id":   plan.ID,
			"plan_code": plan.Code,
		}),
	}
	if err := p.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:          stripe.String(customerID),
		ClientReferenceID: stripe.String(txn.ID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.cfg.FrontendURL + "/billing/success"),
		CancelURL:  stripe.String(p.cfg.FrontendURL + "/billing/cancel"),
	}

	sess, err := session.New(params)
	if err != nil {
		_ = p.db.WithContext(ctx).Model(txn).
			Update("status", dbm.TxnStatusFailed).Error
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	_ = p.db.WithContext(ctx).Model(txn).
		Update("provider_txn_id", sess.ID).Error

	return &response_models.CreateCheckoutResponse{
		CheckoutURL:  sess.URL,
		ProviderName: p.cfg.ProviderName,
		PlanCode:     plan.Code,
	}, nil
}

func (p *paymentService) ensureStripeCustomer(ctx context.Context, account *dbm.Account) (string, error) {
	if account.StripeCustomerID != "" {
		return account.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(account.Email),
		Metadata: map[string]string{
			"account_id": account.ID.String(),
		},
	}
	cust, err := customer.New(params)
	if err != nil {
		return "", err
	}

	if err := p.accountRepo.UpdateFields(ctx, account.ID.String(), map[string]interface{}{
		"stripe_customer_id": cust.ID,
	}); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// HandleWebhook is the only code path that grants or revokes pro_member.
// Client-side success redirects carry no authority.
func (p *paymentService) HandleWebhook(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		log.Printf("stripe webhook read failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if p.cfg.WebhookSecret == "" {
		log.Printf("stripe webhook secret missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook not configured"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		c.GetHeader("Stripe-Signature"),
		p.cfg.WebhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		log.Printf("stripe webhook signature failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("stripe session unmarshal failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
			return
		}
		if err := p.completeCheckout(c.Request.Context(), &sess); err != nil {
			log.Printf("stripe checkout completion failed session=%s: %v", sess.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process transaction"})
			return
		}

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			log.Printf("stripe subscription unmarshal failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription payload"})
			return
		}
		if err := p.cancelSubscription(c.Request.Context(), &sub); err != nil {
			log.Printf("stripe subscription cancel failed sub=%s: %v", sub.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process cancellation"})
			return
		}

	default:
		// Unhandled event types are acked so Stripe stops retrying.
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (p *paymentService) completeCheckout(ctx context.Context, sess *stripe.CheckoutSession) error {
	if sess.ClientReferenceID == "" {
		return errors.New("session missing client_reference_id")
	}

	var txn dbm.Transaction
	err := p.db.WithContext(ctx).
		First(&txn, "id = ?", sess.ClientReferenceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Ack unknown references; a retry storm won't conjure the row.
			log.Printf("webhook: transaction not found for session %s", sess.ID)
			return nil
		}
		return err
	}

	// Idempotent across webhook retries.
	if txn.Status == dbm.TxnStatusPaid {
		return nil
	}

	providerSubID := ""
	if sess.Subscription != nil {
		providerSubID = sess.Subscription.ID
	}
	providerCustomerID := ""
	if sess.Customer != nil {
		providerCustomerID = sess.Customer.ID
	}

	now := time.Now().Unix()
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&txn).Updates(map[string]interface{}{
			"status":  dbm.TxnStatusPaid,
			"paid_at": now,
		}).Error; err != nil {
			return err
		}
		return p.activateSubscription(tx, &txn, providerSubID, providerCustomerID)
	})
}

func (p *paymentService) activateSubscription(tx *gorm.DB, txn *dbm.Transaction, providerSubID, providerCustomerID string) error {
	type meta struct {
		PlanID   uuid.UUID `json:"plan_id"`
		PlanCode string    `json:"plan_code"`
	}
	var m meta
	if err := json.Unmarshal(txn.Metadata, &m); err != nil || m.PlanCode == "" {
		return fmt.Errorf("missing plan info in transaction metadata")
	}

	var plan dbm.Plan
	if err := tx.Where("id = ? AND is_active = TRUE", m.PlanID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found while activating: %w", err)
	}

	starts := time.Now()

	// An account renewing early keeps its remaining paid window.
	var current dbm.Subscription
	err := tx.
		Where("account_id = ? AND status = ? AND ends_at > ?",
			txn.AccountID, dbm.SubStatusActive, starts.Unix()).
		Order("ends_at DESC").
		First(&current).Error
	if err == nil && current.AutoRenew {
		starts = time.Unix(current.EndsAt, 0)
	}

	var ends time.Time
	switch plan.Period {
	case dbm.PeriodYear:
		ends = starts.AddDate(1, 0, 0)
	default:
		ends = starts.AddDate(0, 1, 0)
	}

	sub := dbm.Subscription{
		AccountID: txn.AccountID,
		PlanID:    plan.ID,
		Status:    dbm.SubStatusActive,
		StartsAt:  starts.Unix(),
		EndsAt:    ends.Unix(),
		AutoRenew: true,

		Provider:           p.cfg.ProviderName,
		ProviderCustomerID: providerCustomerID,
		ProviderSubID:      providerSubID,

		Metadata: jsonRaw(map[string]any{
			"activated_by_txn": txn.ID,
			"amount_minor":     txn.AmountMinor,
			"currency":         txn.Currency,
		}),
	}
	if err := tx.Create(&sub).Error; err != nil {
		return err
	}

	if err := tx.Model(&dbm.Transaction{}).
		Where("id = ?", txn.ID).
		Update("subscription_id", sub.ID).Error; err != nil {
		return err
	}

	return tx.Model(&dbm.Account{}).
		Where("id = ?", txn.AccountID).
		Update("pro_member", true).Error
}

func (p *paymentService) cancelSubscription(ctx context.Context, stripeSub *stripe.Subscription) error {
	var sub dbm.Subscription
	err := p.db.WithContext(ctx).
		First(&sub, "provider_sub_id = ?", stripeSub.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("webhook: subscription not found for provider sub %s", stripeSub.ID)
			return nil
		}
		return err
	}

	if sub.Status == dbm.SubStatusCanceled {
		return nil
	}

	now := time.Now().Unix()
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sub).Updates(map[string]interface{}{
			"status":      dbm.SubStatusCanceled,
			"canceled_at": now,
			"auto_renew":  false,
		}).Error; err != nil {
			return err
		}

		// Pro access ends only when no other active subscription remains.
		var remaining int64
		if err := tx.Model(&dbm.Subscription{}).
			Where("account_id = ? AND status = ? AND id <> ? AND ends_at > ?",
				sub.AccountID, dbm.SubStatusActive, sub.ID, now).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		// Dropping back to free also consumes the trial; a lapsed
		// subscriber does not get a second free week.
		return tx.Model(&dbm.Account{}).
			Where("id = ?", sub.AccountID).
			Updates(map[string]interface{}{
				"pro_member": false,
				"trial_used": true,
			}).Error
	})
}

func jsonRaw(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

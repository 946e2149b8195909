package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nithin-912/PayBridge/config"
	"github.com/nithin-912/PayBridge/models"
	"github.com/nithin-912/PayBridge/utils"
	"github.com/gin-gonic/gin"
)

// PaymentStore is the persistence seam used by the webhook pipeline.
// Both writes must be conditional on payment_id so that redelivered
// notifications are silent no-ops; the bool reports whether a row was
// actually inserted.
type PaymentStore interface {
	SavePayment(ctx context.Context, payment *models.CapturedPayment) (bool, error)
	SaveSlabPayment(ctx context.Context, slab string, payment *models.CapturedPayment) (bool, error)
}

// WebhookController handles inbound Razorpay webhook notifications.
type WebhookController struct {
	secret  string
	store   PaymentStore
	slabs   utils.SlabRule
	runner  *utils.TaskRunner
	crm     *utils.CRMClient
	alerts  *utils.AlertMailer
	timeout time.Duration
}

// NewWebhookController wires the webhook pipeline from config.
func NewWebhookController(cfg *config.Config, store PaymentStore, runner *utils.TaskRunner) *WebhookController {
	wc := &WebhookController{
		secret:  cfg.WebhookSecret,
		store:   store,
		slabs:   cfg.SlabRule(),
		runner:  runner,
		alerts:  cfg.AlertMailer(),
		timeout: cfg.PersistTimeout,
	}
	if cfg.CRMAPIURL != "" {
		wc.crm = utils.NewCRMClient(cfg.CRMAPIURL, cfg.CRMAPIKey, cfg.PersistTimeout)
	}
	return wc
}

// POST /razorpay-webhook
//
// Acknowledgment policy: the 200 is written as soon as the signature
// checks out, before the body is even parsed. Razorpay retries on slow
// or failed responses, and a retry storm caused by a slow database
// helps nobody. The flip side is that persistence failures can never
// reach the sender; they are surfaced through logs and alert mail only.
func (wc *WebhookController) HandleWebhook(c *gin.Context) {
	// The signature covers the body bytes exactly as transmitted, so
	// grab them before any binding touches the request.
	body, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Failed to read request body", nil)
		return
	}

	signature := c.GetHeader(utils.SignatureHeader)
	if signature == "" {
		utils.LogError("Webhook rejected: missing signature header")
		utils.BadRequest(c, utils.ErrMissingSignature, nil)
		return
	}
	if !utils.VerifyWebhookSignature(body, signature, wc.secret) {
		utils.LogError("Webhook rejected: signature mismatch")
		utils.BadRequest(c, utils.ErrInvalidSignature, nil)
		return
	}

	utils.Success(c, utils.MsgWebhookReceived, nil)

	wc.runner.Submit(func() {
		wc.process(body)
	})
}

// process runs the post-acknowledgment pipeline: filter the event,
// extract the payment, classify the amount and persist. Every early
// return here is a benign skip, not a failure.
func (wc *WebhookController) process(body []byte) {
	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		utils.LogError("Skipping webhook with malformed body: %v", err)
		return
	}

	if !models.RecognizedEvent(event.Event) {
		utils.LogInfo("Skipping unrecognized event: %s", event.Event)
		return
	}

	payment := event.Payment()
	if payment == nil {
		utils.LogInfo("Skipping %s: no payment entity in payload", event.Event)
		return
	}

	if payment.Status != models.PaymentStatusCaptured {
		utils.LogInfo("Skipping payment %s: status %s does not qualify", payment.ID, payment.Status)
		return
	}

	wc.persist(payment, event.Event)
}

func (wc *WebhookController) persist(payment *models.PaymentEntity, event string) {
	row := payment.Row(event)

	ctx, cancel := context.WithTimeout(context.Background(), wc.timeout)
	defer cancel()

	inserted, err := wc.store.SavePayment(ctx, row)
	if err != nil {
		wc.reportFailure(payment.ID, "primary", err)
		return
	}
	if inserted {
		utils.LogInfo("Stored payment %s (amount %d %s)", payment.ID, payment.Amount, row.Currency)
	} else {
		utils.LogInfo("Duplicate delivery for payment %s, primary row already present", payment.ID)
	}

	// The slab write is best-effort: a failure here never rolls back
	// the primary row.
	if slab := wc.slabs.Classify(payment.Amount); slab != "" {
		if _, err := wc.store.SaveSlabPayment(ctx, slab, row); err != nil {
			wc.reportFailure(payment.ID, slab+" slab", err)
		} else {
			utils.LogInfo("Stored payment %s in %s slab", payment.ID, slab)
		}
	}

	if wc.crm != nil && inserted {
		if err := wc.crm.ForwardPayment(ctx, row); err != nil {
			utils.LogError("CRM forward failed for payment %s: %v", payment.ID, err)
		} else {
			utils.LogInfo("Forwarded payment %s to CRM", payment.ID)
		}
	}
}

// reportFailure records a persistence failure. The webhook was already
// acknowledged, so log plus optional alert mail is all the visibility
// these get.
func (wc *WebhookController) reportFailure(paymentID, target string, err error) {
	utils.LogError("Failed to store payment %s in %s store: %v", paymentID, target, err)
	if wc.alerts == nil {
		return
	}
	subject := fmt.Sprintf("Persistence failure for payment %s", paymentID)
	bodyText := fmt.Sprintf("Writing payment %s to the %s store failed:\n\n%v", paymentID, target, err)
	if mailErr := wc.alerts.Send(subject, bodyText); mailErr != nil {
		utils.LogError("Alert mail for payment %s not sent: %v", paymentID, mailErr)
	}
}

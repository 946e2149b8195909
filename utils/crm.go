package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nithin-912/PayBridge/models"
)

// CRMClient pushes persisted payments to an external CRM over HTTP.
// Forwarding is best-effort: the webhook has long been acknowledged by
// the time this runs, so a failure is logged and dropped, never retried.
type CRMClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewCRMClient creates a client for the CRM endpoint. The timeout bounds
// every forward call so a slow CRM cannot pile up background tasks.
func NewCRMClient(baseURL, apiKey string, timeout time.Duration) *CRMClient {
	return &CRMClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// ForwardPayment POSTs a stored payment row to the CRM as JSON.
func (cl *CRMClient) ForwardPayment(ctx context.Context, payment *models.CapturedPayment) error {
	payload, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to encode payment %s: %w", payment.PaymentID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build CRM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cl.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+cl.apiKey)
	}

	resp, err := cl.client.Do(req)
	if err != nil {
		return fmt.Errorf("CRM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("CRM returned %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

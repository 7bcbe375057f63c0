// Package yookassa implements the payment gateway on top of the YooKassa REST API.
package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/artcontest/internal/domain"
)

const defaultBaseURL = "https://api.yookassa.ru/v3"

// Provider creates and inspects payments through YooKassa.
type Provider struct {
	baseURL    string
	shopID     string
	secretKey  string
	httpClient *http.Client
	log        *slog.Logger
	retryDelay time.Duration
}

// NewProvider creates a Provider. An empty baseURL selects the production API.
func NewProvider(baseURL, shopID, secretKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		shopID:     shopID,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "yookassa"),
		retryDelay: 500 * time.Millisecond,
	}
}

// Name identifies the gateway in logs.
func (p *Provider) Name() string { return "yookassa" }

// CreatePayment registers a one-stage payment and returns its redirect confirmation.
func (p *Provider) CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	body, err := json.Marshal(createPaymentRequest{
		Amount:  amount{Value: formatAmount(req.Amount), Currency: req.Currency},
		Capture: true,
		Confirmation: confirmationRequest{
			Type:      "redirect",
			ReturnURL: req.ReturnURL,
		},
		Description: truncate(req.Description, 128),
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("yookassa: encode request: %w", err)
	}

	var out apiPayment
	if err := p.do(ctx, http.MethodPost, "/payments", body, uuid.NewString(), &out); err != nil {
		return nil, err
	}

	payment := toDomain(out)
	if payment.ConfirmationURL == "" {
		return nil, fmt.Errorf("yookassa: payment %s has no confirmation url", out.ID)
	}

	p.log.InfoContext(ctx, "payment created",
		slog.String("payment_id", payment.ID),
		slog.String("status", string(payment.Status)),
	)
	return payment, nil
}

// GetPayment fetches the authoritative state of a payment.
func (p *Provider) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	var out apiPayment
	if err := p.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(id), nil, "", &out); err != nil {
		return nil, err
	}
	return toDomain(out), nil
}

// do executes a request with a single retry on 5xx or network errors.
// POST retries reuse the idempotence key, so the gateway deduplicates them.
func (p *Provider) do(ctx context.Context, method, path string, body []byte, idempotenceKey string, out any) error {
	resp, err := p.send(ctx, method, path, body, idempotenceKey)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if shouldRetry && ctx.Err() == nil {
		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		p.log.WarnContext(ctx, "yookassa retry", slog.String("path", path), slog.String("reason", reason))

		select {
		case <-ctx.Done():
			return fmt.Errorf("yookassa: %w", ctx.Err())
		case <-time.After(p.retryDelay):
		}
		resp, err = p.send(ctx, method, path, body, idempotenceKey)
	}
	if err != nil {
		p.log.ErrorContext(ctx, "yookassa request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("yookassa: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yookassa: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("yookassa: payment: %w", domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.Unmarshal(raw, &apiErr)
		return fmt.Errorf("yookassa: unexpected status %d: %s %s", resp.StatusCode, apiErr.Code, apiErr.Description)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("yookassa: decode json: %w", err)
	}
	return nil
}

func (p *Provider) send(ctx context.Context, method, path string, body []byte, idempotenceKey string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(p.shopID, p.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotenceKey != "" {
		req.Header.Set("Idempotence-Key", idempotenceKey)
	}

	return p.httpClient.Do(req)
}

func toDomain(in apiPayment) *domain.Payment {
	out := &domain.Payment{
		ID:       in.ID,
		Status:   mapStatus(in.Status),
		Metadata: in.Metadata,
	}
	if in.Confirmation != nil {
		out.ConfirmationURL = in.Confirmation.ConfirmationURL
	}
	return out
}

// mapStatus folds the gateway's lifecycle into PaymentStatus.
// waiting_for_capture cannot occur with capture=true but is treated as pending.
func mapStatus(s string) domain.PaymentStatus {
	switch s {
	case "succeeded":
		return domain.PaymentStatusSucceeded
	case "canceled":
		return domain.PaymentStatusCanceled
	default:
		return domain.PaymentStatusPending
	}
}

// formatAmount renders whole rubles as a two-decimal string.
func formatAmount(rubles int) string {
	return fmt.Sprintf("%d.00", rubles)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Package email delivers milestone notifications through Resend.
package email

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/contacomigo/backend/internal/application/adapter"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// ResendClient implements adapter.EmailSender on the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a new Resend client sending as "fromName <fromEmail>".
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   formatAddress(fromName, fromEmail),
	}
}

// Send delivers one email. Failures come back as EmailError with a
// permanent or temporary code so the worker knows whether to retry.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{formatAddress(input.Name, input.To)},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}
	if input.Tag != "" {
		params.Tags = []resend.Tag{{Name: "milestone", Value: input.Tag}}
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if isPermanentError(err) {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "resend rejected the email", err)
	}
	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

func formatAddress(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// permanentMarkers are substrings of Resend errors that retrying cannot fix:
// bad credentials, forbidden sender, rejected payload. Rate limits and 5xx
// do not match and are retried.
var permanentMarkers = []string{
	"401", "403", "422",
	"unauthorized", "forbidden", "validation", "invalid", "bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// MockEmailSender records emails instead of sending them.
type MockEmailSender struct {
	mu          sync.Mutex
	SentEmails  []adapter.SendEmailInput
	failWith    error
	isPermanent bool
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if m.isPermanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "mock send failure", m.failWith)
	}

	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("mock-%d", len(m.SentEmails))}, nil
}

// SetFailure makes every following Send fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
	m.isPermanent = permanent
}

func (m *MockEmailSender) ClearFailure() {
	m.SetFailure(nil, false)
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)

package backoffice_test

import (
	"bytes"
	"context"
	"homestay/config"
	"homestay/infras/jwt"
	jwtMocks "homestay/infras/jwt/mocks"
	"homestay/infras/otel/mocks"
	"homestay/internal/auth"
	"homestay/internal/backoffice"
	"homestay/internal/client"
	clientMocks "homestay/internal/client/mocks"
	adminDto "homestay/internal/domains/admin/model/dto"
	adminService "homestay/internal/domains/admin/service"
	bookingService "homestay/internal/domains/booking/service"
	contactService "homestay/internal/domains/contact/service"
	guestService "homestay/internal/domains/guest/service"
	paymentService "homestay/internal/domains/payment/service"
	reviewService "homestay/internal/domains/review/service"
	"homestay/shared/cache"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newConsole(t *testing.T, mockClient *clientMocks.MockClient, out *syncBuffer) *backoffice.Console {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockJWT.EXPECT().Check(gomock.Any()).Return(&jwt.Claims{}, nil).AnyTimes()

	ot := mocks.NewOtel()
	storage := auth.NewMemoryStorage()
	tokens := auth.NewTokenStore(storage)
	session := auth.NewSession(storage, tokens, mockJWT)
	prompter := backoffice.NewPrompter(out)

	return backoffice.NewConsole(
		adminService.New(mockClient, tokens, session, ot),
		session,
		prompter,
		out,
		backoffice.NewBookings(bookingService.New(mockClient, ot), prompter, ot),
		backoffice.NewGuests(guestService.New(mockClient, ot), prompter, ot),
		backoffice.NewPayments(paymentService.New(mockClient, ot), prompter, ot),
		backoffice.NewReviews(reviewService.New(mockClient, &config.Config{}, cache.Noop{}, ot), prompter, ot),
		backoffice.NewContacts(contactService.New(mockClient, ot), prompter, ot),
	)
}

func TestConsole_RequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out := &syncBuffer{}
	console := newConsole(t, clientMocks.NewMockClient(ctrl), out)

	err := console.Run(context.Background(), strings.NewReader("use bookings\nlogin admin\nquit\nlist\n"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "please log in first")
	assert.Contains(t, out.String(), "usage: login <email> <password>")
}

func TestConsole_BookingsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientMocks.NewMockClient(ctrl)
	out := &syncBuffer{}
	console := newConsole(t, mockClient, out)

	list := "/booking?limit=100&page=1"
	rows := `[{"_id":"b1","fullName":"Asha Rai","status":"pending"},{"_id":"b2","fullName":"Vikram Singh","status":"pending"}]`

	mockClient.EXPECT().
		Do(gomock.Any(), "/admin/login", client.Options{
			Method: http.MethodPost,
			Body:   adminDto.LoginRequest{Email: "admin@homestay.in", Password: "secret"},
		}).
		Return(client.OK(`{"token":"tok-1"}`))
	mockClient.EXPECT().Do(gomock.Any(), list, client.Options{Method: http.MethodGet}).Return(client.OK(rows)).Times(2)
	mockClient.EXPECT().
		Do(gomock.Any(), "/booking/b1/cancel", client.Options{Method: http.MethodPatch}).
		Return(client.OK(`{"_id":"b1","status":"cancelled"}`))

	input := strings.Join([]string{
		"login admin@homestay.in secret",
		"use bookings",
		"search vikram",
		"search",
		"show b1",
		"delete b1",
		"n",
		"cancel b1",
		"y",
		"frobnicate",
		"quit",
	}, "\n")

	require.NoError(t, console.Run(context.Background(), strings.NewReader(input)))

	output := out.String()
	assert.Contains(t, output, "Logged in as admin@homestay.in")
	assert.Contains(t, output, "Vikram Singh")
	assert.Contains(t, output, `"guestName": "Asha Rai"`)
	assert.Contains(t, output, "Are you sure you want to delete this booking? [y/N]")
	assert.Contains(t, output, "delete b1: cancelled")
	assert.Contains(t, output, "Are you sure you want to cancel this booking? [y/N]")
	assert.Contains(t, output, "cancel b1: done")
	assert.Contains(t, output, `"status": "cancelled"`)
	assert.Contains(t, output, `unknown command "frobnicate"`)
}

func TestConsole_PendingPromptDeclinesOnEOF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientMocks.NewMockClient(ctrl)
	out := &syncBuffer{}
	console := newConsole(t, mockClient, out)

	mockClient.EXPECT().
		Do(gomock.Any(), "/admin/login", gomock.Any()).
		Return(client.OK(`{"token":"tok-1"}`))
	mockClient.EXPECT().
		Do(gomock.Any(), "/contact?limit=100&page=1", client.Options{Method: http.MethodGet}).
		Return(client.OK(`[{"_id":"c1","name":"Meera","subject":"Hello","status":"new"}]`))

	input := "login admin@homestay.in secret\nuse contacts\ndelete c1\n"

	require.NoError(t, console.Run(context.Background(), strings.NewReader(input)))

	assert.Contains(t, out.String(), "new 1, read 0, replied 0")
	assert.Contains(t, out.String(), "delete c1: cancelled")
}

package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"printcase-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test_secret"

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type fakeLineItemLister struct {
	items []*stripe.LineItem
	err   error
	calls int
}

func (f *fakeLineItemLister) ListLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func checkoutSessionJSON(sessionID string) string {
	return fmt.Sprintf(`{"id":%q,"object":"checkout.session","amount_total":4999,"currency":"inr","payment_status":"paid","customer_details":{"email":"buyer@example.com"}}`, sessionID)
}

func signedWebhookRequest(secret string, eventType string, objectJSON string) *http.Request {
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_test_1","object":"event","api_version":%q,"type":%q,"data":{"object":%s}}`,
		stripe.APIVersion, eventType, objectJSON,
	))
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewBuffer(signed.Payload))
	req.Header.Set("Stripe-Signature", signed.Header)
	return req
}

func setupWebhookRouter(t *testing.T, lister LineItemLister) (sqlmock.Sqlmock, http.Handler, func()) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)

	h := NewWebhookHandler(gormDB, lister, testWebhookSecret)
	r := testutils.SetupTestRouter()
	r.POST("/api/payment/webhook", h.Handle)

	return mock, r, cleanup
}

func expectNoExistingOrder(mock sqlmock.Sqlmock, sessionID string) {
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE stripe_session_id = \$1 ORDER BY "orders"\."id" LIMIT \$2`).
		WithArgs(sessionID, 1).
		WillReturnError(gorm.ErrRecordNotFound)
}

func TestWebhook_MissingSignature(t *testing.T) {
	mock, r, cleanup := setupWebhookRouter(t, &fakeLineItemLister{})
	defer cleanup()

	req, _ := http.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewBufferString(`{"type":"checkout.session.completed"}`))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "no write must happen without a signature")
}

func TestWebhook_InvalidSignature(t *testing.T) {
	mock, r, cleanup := setupWebhookRouter(t, &fakeLineItemLister{})
	defer cleanup()

	// Signed with the wrong secret
	req := signedWebhookRequest("whsec_other_secret", "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "no write must happen on a bad signature")
}

func TestWebhook_TamperedBody(t *testing.T) {
	mock, r, cleanup := setupWebhookRouter(t, &fakeLineItemLister{})
	defer cleanup()

	req := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	body, _ := io.ReadAll(req.Body)
	body = bytes.Replace(body, []byte("4999"), []byte("1"), 1)
	req.Body = io.NopCloser(bytes.NewBuffer(body))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_IgnoresOtherEventTypes(t *testing.T) {
	lister := &fakeLineItemLister{}
	mock, r, cleanup := setupWebhookRouter(t, lister)
	defer cleanup()

	req := signedWebhookRequest(testWebhookSecret, "payment_intent.succeeded", `{"id":"pi_test_1","object":"payment_intent"}`)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, lister.calls)
	assert.NoError(t, mock.ExpectationsWereMet(), "an ignored event must produce zero writes")
}

func TestWebhook_RecordsOrderWithLineItems(t *testing.T) {
	lister := &fakeLineItemLister{
		items: []*stripe.LineItem{
			{ID: "li_1", Description: "Phone Case", Quantity: 2, AmountTotal: 2400},
			{ID: "li_2", Description: "Sticker", Quantity: 1, AmountTotal: 100},
		},
	}
	mock, r, cleanup := setupWebhookRouter(t, lister)
	defer cleanup()

	expectNoExistingOrder(mock, "cs_test_123")

	mock.ExpectBegin()
	// amount_total 4999 is persisted as 49.99 in major units
	mock.ExpectQuery(`INSERT INTO "orders" (.+) RETURNING "id"`).
		WithArgs("cs_test_123", "buyer@example.com", 49.99, "inr", "paid", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("order-uuid"))
	mock.ExpectQuery(`INSERT INTO "order_items" (.+) RETURNING "id"`).
		WithArgs("order-uuid", "Phone Case", int64(2), 24.00, sqlmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("item-uuid-1"))
	mock.ExpectQuery(`INSERT INTO "order_items" (.+) RETURNING "id"`).
		WithArgs("order-uuid", "Sticker", int64(1), 1.00, sqlmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("item-uuid-2"))
	mock.ExpectCommit()

	req := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, lister.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_DuplicateDelivery(t *testing.T) {
	lister := &fakeLineItemLister{}
	mock, r, cleanup := setupWebhookRouter(t, lister)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE stripe_session_id = \$1 ORDER BY "orders"\."id" LIMIT \$2`).
		WithArgs("cs_test_123", 1).
		WillReturnRows(mock.NewRows([]string{"id", "stripe_session_id"}).AddRow("order-uuid", "cs_test_123"))

	req := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, lister.calls, "a duplicate delivery must not refetch or rewrite anything")
	assert.NoError(t, mock.ExpectationsWereMet())

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Order already recorded", body["message"])
}

func TestWebhook_ConcurrentDuplicateInsertRace(t *testing.T) {
	lister := &fakeLineItemLister{
		items: []*stripe.LineItem{{ID: "li_1", Description: "Phone Case", Quantity: 1, AmountTotal: 2400}},
	}
	mock, r, cleanup := setupWebhookRouter(t, lister)
	defer cleanup()

	// The existence check ran before the concurrent delivery committed, so the
	// insert loses the race on the unique index.
	expectNoExistingOrder(mock, "cs_test_123")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders" (.+) RETURNING "id"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_orders_stripe_session_id" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	req := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code, "losing the insert race is a success, not a retryable failure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_LineItemFetchFailureLeavesNoOrder(t *testing.T) {
	lister := &fakeLineItemLister{err: errors.New("stripe: connection reset")}
	mock, r, cleanup := setupWebhookRouter(t, lister)
	defer cleanup()

	expectNoExistingOrder(mock, "cs_test_123")

	req := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "an upstream failure must leave zero rows behind")

	// Stripe retries the delivery; with the upstream healthy again the same
	// event now lands exactly once.
	lister.err = nil
	lister.items = []*stripe.LineItem{{ID: "li_1", Description: "Phone Case", Quantity: 2, AmountTotal: 2400}}

	expectNoExistingOrder(mock, "cs_test_123")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("order-uuid"))
	mock.ExpectQuery(`INSERT INTO "order_items" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("item-uuid-1"))
	mock.ExpectCommit()

	retry := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	retryResp := httptest.NewRecorder()

	r.ServeHTTP(retryResp, retry)

	assert.Equal(t, http.StatusOK, retryResp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhook_DatabaseErrorIsRetryable(t *testing.T) {
	lister := &fakeLineItemLister{
		items: []*stripe.LineItem{{ID: "li_1", Description: "Phone Case", Quantity: 1, AmountTotal: 2400}},
	}
	mock, r, cleanup := setupWebhookRouter(t, lister)
	defer cleanup()

	expectNoExistingOrder(mock, "cs_test_123")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders" (.+) RETURNING "id"`).
		WillReturnError(errors.New("pq: the database system is shutting down"))
	mock.ExpectRollback()

	req := signedWebhookRequest(testWebhookSecret, "checkout.session.completed", checkoutSessionJSON("cs_test_123"))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

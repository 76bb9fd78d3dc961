package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	adapterhttp "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/disk"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	addErr    error
	added     *order.Order
	byOrderID map[string]*order.Order
	deleted   []string
	updatedTo order.Status
}

func newStubRepo() *stubRepo {
	return &stubRepo{byOrderID: map[string]*order.Order{}}
}

func (r *stubRepo) Add(_ context.Context, o *order.Order) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.added = o
	r.byOrderID[o.OrderID()] = o
	return nil
}

func (r *stubRepo) GetByOrderID(_ context.Context, orderID string) (*order.Order, error) {
	o, ok := r.byOrderID[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	return o, nil
}

func (r *stubRepo) UpdateStatus(
	ctx context.Context, orderID string, status order.Status,
) (*order.Order, error) {
	o, err := r.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	r.updatedTo = status
	if err := o.ChangeStatus(status); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *stubRepo) Delete(ctx context.Context, orderID string) error {
	if _, err := r.GetByOrderID(ctx, orderID); err != nil {
		return err
	}
	delete(r.byOrderID, orderID)
	r.deleted = append(r.deleted, orderID)
	return nil
}

func (r *stubRepo) IsFileReferenced(context.Context, string) (bool, error) {
	return false, nil
}

type stubAuth struct{ accept string }

func (a stubAuth) Authenticate(token string) (ports.AdminIdentity, error) {
	if token != a.accept {
		return ports.AdminIdentity{}, ports.ErrInvalidAdminToken
	}
	return ports.AdminIdentity{Username: "admin"}, nil
}

func newTestServer(t *testing.T, repo ports.OrderRepository) (*echo.Echo, *disk.Store) {
	t.Helper()

	store, err := disk.NewStore(disk.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	logger := slog.Default()
	srv := adapterhttp.NewServer(
		commands.NewCreateOrderCommandHandler(repo, store, logger),
		commands.NewUpdateOrderStatusCommandHandler(repo),
		commands.NewDeleteOrderCommandHandler(repo, store, logger),
		queries.GetOrderQueryHandler{},
		queries.ListOrdersQueryHandler{},
		queries.GetDashboardStatsQueryHandler{},
		queries.DownloadFileQueryHandler{},
		stubAuth{accept: "valid-token"},
		disk.DefaultMaxFilesPerRequest,
		true,
		logger,
	)

	e := echo.New()
	srv.RegisterRoutes(e)
	return e, store
}

func multipartOrder(t *testing.T, fields map[string]string, fileNames []string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	for _, name := range fileNames {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", "application/pdf")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 " + name))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t, newStubRepo())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestCreateOrder(t *testing.T) {
	fields := map[string]string{
		"fullName":      "Jordan Smith",
		"phoneNumber":   "+1 555 0101",
		"printType":     "color",
		"copies":        "2",
		"selectedPages": "all",
	}

	t.Run("valid submission returns 201 with cost", func(t *testing.T) {
		repo := newStubRepo()
		e, _ := newTestServer(t, repo)

		body, contentType := multipartOrder(t, fields, []string{"thesis.pdf"})
		req := httptest.NewRequest(http.MethodPost, "/orders", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		env := decodeEnvelope(t, rec)
		assert.Equal(t, true, env["success"])

		data := env["data"].(map[string]any)
		assert.Equal(t, "pending", data["status"])
		assert.InDelta(t, 160, data["totalCost"].(float64), 1e-9)
		assert.Regexp(t, `^ORD-\d+-[0-9a-f]{8}$`, data["orderId"])

		require.NotNil(t, repo.added)
		assert.Len(t, repo.added.Files(), 1)
	})

	t.Run("missing files returns 400 without store writes", func(t *testing.T) {
		repo := newStubRepo()
		e, _ := newTestServer(t, repo)

		body, contentType := multipartOrder(t, fields, nil)
		req := httptest.NewRequest(http.MethodPost, "/orders", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, repo.added)
	})

	t.Run("missing required field returns 400 with details", func(t *testing.T) {
		e, _ := newTestServer(t, newStubRepo())

		short := map[string]string{"phoneNumber": "+1 555 0101", "printType": "color"}
		body, contentType := multipartOrder(t, short, []string{"a.pdf"})
		req := httptest.NewRequest(http.MethodPost, "/orders", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, false, env["success"])
		assert.NotEmpty(t, env["details"])
	})

	t.Run("unknown print type returns 400", func(t *testing.T) {
		e, _ := newTestServer(t, newStubRepo())

		bad := map[string]string{
			"fullName": "A", "phoneNumber": "1", "printType": "holography",
		}
		body, contentType := multipartOrder(t, bad, []string{"a.pdf"})
		req := httptest.NewRequest(http.MethodPost, "/orders", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("persistence failure returns 500 and cleans the store", func(t *testing.T) {
		repo := newStubRepo()
		repo.addErr = errors.New("db down")
		e, store := newTestServer(t, repo)

		body, contentType := multipartOrder(t, fields, []string{"a.pdf", "b.pdf"})
		req := httptest.NewRequest(http.MethodPost, "/orders", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		leftovers, err := store.ListOlderThan(0)
		require.NoError(t, err)
		assert.Empty(t, leftovers)
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e, _ := newTestServer(t, newStubRepo())

	adminCalls := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/orders"},
		{http.MethodPatch, "/orders/ORD-1-ff/status"},
		{http.MethodDelete, "/orders/ORD-1-ff"},
		{http.MethodGet, "/orders/ORD-1-ff/files/1-a.pdf"},
		{http.MethodGet, "/stats/dashboard"},
	}

	for _, call := range adminCalls {
		t.Run(call.method+" "+call.path, func(t *testing.T) {
			req := httptest.NewRequest(call.method, call.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req = httptest.NewRequest(call.method, call.path, nil)
			req.Header.Set("Authorization", "Bearer wrong-token")
			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	seedOrder := func(t *testing.T, repo *stubRepo) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			order.NewOrderID(),
			order.Details{
				FullName:    "Jordan Smith",
				PhoneNumber: "+1 555 0101",
				PrintType:   order.PrintTypeColor,
				Copies:      1,
				PaperSize:   order.PaperSizeA4,
				PrintSide:   order.PrintSideSingle,
			},
			[]order.StoredFile{{
				Name: "1-a.pdf", OriginalName: "a.pdf", Size: 10,
				MIMEType: "application/pdf", Path: "uploads/1-a.pdf",
				UploadDate: time.Now(),
			}},
			80,
		)
		require.NoError(t, err)
		require.NoError(t, repo.Add(context.Background(), o))
		return o
	}

	patch := func(e *echo.Echo, orderID, payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(
			http.MethodPatch, "/orders/"+orderID+"/status", bytes.NewBufferString(payload),
		)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid transition returns updated order", func(t *testing.T) {
		repo := newStubRepo()
		e, _ := newTestServer(t, repo)
		o := seedOrder(t, repo)

		rec := patch(e, o.OrderID(), `{"status":"processing"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		env := decodeEnvelope(t, rec)
		data := env["data"].(map[string]any)
		assert.Equal(t, "processing", data["status"])
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		repo := newStubRepo()
		e, _ := newTestServer(t, repo)
		o := seedOrder(t, repo)

		rec := patch(e, o.OrderID(), `{"status":"shipped"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("unknown order returns 404", func(t *testing.T) {
		e, _ := newTestServer(t, newStubRepo())

		rec := patch(e, "ORD-0-00", `{"status":"completed"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	repo := newStubRepo()
	e, _ := newTestServer(t, repo)

	req := httptest.NewRequest(http.MethodDelete, "/orders/ORD-0-00", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
}

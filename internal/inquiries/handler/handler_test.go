package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inquiry_portal_backend/internal/inquiries/domain"
	"inquiry_portal_backend/internal/inquiries/repository"
	"inquiry_portal_backend/internal/inquiries/service"
	"inquiry_portal_backend/internal/inquiries/transport"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/phone"
	"inquiry_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	store  *repository.MemoryStore
	userID uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	userID := uuid.New()
	store.AddUser(domain.CreatorSummary{ID: userID, Name: "Sara Rep", Email: "sara@example.com", Role: "SALES_REP"})

	log := logger.NewWithWriter("test", io.Discard)
	svc := service.New(store, store, phone.NewNormalizer("AE"), log)
	h := New(svc, validator.New())

	r := gin.New()
	r.Use(httpkit.ErrorDetails(true))
	group := r.Group("/api/v1/inquiries", func(c *gin.Context) {
		c.Set(httpkit.ContextUserIDKey, userID)
		c.Set(httpkit.ContextRolesKey, []string{"SALES_REP"})
		c.Next()
	})
	h.RegisterRoutes(group)

	return &testEnv{router: r, store: store, userID: userID}
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Aisha Khan","email":"aisha@example.com","contactNumber":"0501234567","jobType":"electrical","area":"Marina","budgetRange":"10k-50k","city":"Dubai"}`

func (e *testEnv) createOne(t *testing.T) transport.InquiryResponse {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/inquiries", validBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created []transport.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 1)
	return created[0]
}

func TestCreateSingleObjectReturnsArray(t *testing.T) {
	env := newTestEnv(t)
	created := env.createOne(t)

	assert.Equal(t, env.userID, created.CreatedBy)
	assert.Equal(t, "new", created.Status)
	assert.Equal(t, "+971501234567", created.ContactNumber)
}

func TestCreateArray(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/inquiries", "["+validBody+","+validBody+"]")

	require.Equal(t, http.StatusCreated, w.Code)
	var created []transport.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created, 2)
	assert.Equal(t, 2, env.store.Count())
}

func TestCreateErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed", `{"name":`, http.StatusBadRequest, domain.CodeMalformedRequestBody},
		{"missing", `{"name":"Aisha"}`, http.StatusBadRequest, domain.CodeMissingFields},
		{"unknown creator", strings.Replace(validBody, `{`, `{"createdBy":"`+uuid.NewString()+`",`, 1), http.StatusBadRequest, domain.CodeUnknownCreator},
		{"bad enum", strings.Replace(validBody, `"electrical"`, `"ELECTRICAL"`, 1), http.StatusBadRequest, domain.CodeInvalidFormat},
		{"batch with invalid element", "[" + validBody + `,{"name":"x"}]`, http.StatusBadRequest, domain.CodeMissingFields},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do(http.MethodPost, "/api/v1/inquiries", tc.body)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["message"])
			assert.Equal(t, 0, env.store.Count())
		})
	}
}

func TestCreateMissingFieldsBody(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/inquiries", `{"name":"Aisha","email":"a@b.co","area":"JLT","budgetRange":"10k-50k"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"message": "Missing required fields: contactNumber, jobType",
		"code": "missing_fields",
		"missingFields": ["contactNumber", "jobType"]
	}`, w.Body.String())
}

func TestGetByID(t *testing.T) {
	env := newTestEnv(t)
	created := env.createOne(t)

	w := env.do(http.MethodGet, "/api/v1/inquiries?id="+created.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got transport.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.CreatedByUser)
	assert.Equal(t, "Sara Rep", got.CreatedByUser.Name)

	w = env.do(http.MethodGet, "/api/v1/inquiries?id="+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Inquiry not found","code":"not_found"}`, w.Body.String())
}

func TestListFilters(t *testing.T) {
	env := newTestEnv(t)
	env.createOne(t)

	w := env.do(http.MethodGet, "/api/v1/inquiries?city=dubai&jobType=electrical", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []transport.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	w = env.do(http.MethodGet, "/api/v1/inquiries?jobType=plumbing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.do(http.MethodGet, "/api/v1/inquiries?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/api/v1/inquiries?limit=5000", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	created := env.createOne(t)
	target := "/api/v1/inquiries?id=" + created.ID.String()

	w := env.do(http.MethodPut, target, `{"status":"in-progress","createdBy":"`+uuid.NewString()+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res transport.UpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Inquiry updated successfully", res.Message)
	assert.Equal(t, "in-progress", res.Data.Status)
	assert.Equal(t, env.userID, res.Data.CreatedBy)
}

func TestUpdateErrors(t *testing.T) {
	env := newTestEnv(t)
	created := env.createOne(t)
	target := "/api/v1/inquiries?id=" + created.ID.String()

	w := env.do(http.MethodPut, "/api/v1/inquiries", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.CodeMissingID)

	w = env.do(http.MethodPut, "/api/v1/inquiries?id="+uuid.NewString(), `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPut, target, `{"email":"broken"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.CodeInvalidFormat)

	w = env.do(http.MethodPut, target, `{"name":}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON in request body")
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	created := env.createOne(t)
	target := "/api/v1/inquiries?id=" + created.ID.String()

	w := env.do(http.MethodDelete, target, "")
	require.Equal(t, http.StatusOK, w.Code)
	var deleted transport.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, created.ID, deleted.ID)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, target, "").Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, target, "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodDelete, "/api/v1/inquiries", "").Code)
}

func TestStoreFailureExposesDetailOutsideProduction(t *testing.T) {
	env := newTestEnv(t)
	env.store.FailWith = io.ErrUnexpectedEOF

	w := env.do(http.MethodGet, "/api/v1/inquiries", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.CodeStoreFailure, body["code"])
	assert.Contains(t, body["error"], "unexpected EOF")
}

func TestOptions(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/inquiries/options", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res transport.OptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, domain.Values(domain.FieldBudgetRange), res.Fields["budgetRange"])
	assert.Len(t, res.Fields, len(domain.Fields()))
}

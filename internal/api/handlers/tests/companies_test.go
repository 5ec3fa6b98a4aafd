package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCompany_Success(t *testing.T) {
	user := &models.User{ID: 3, Username: "jane", Role: models.UserRoleCandidate}
	env := setupTestRouter(user)

	created := &models.Company{ID: 10, Name: "TechCorp Inc."}
	env.companySvc.On("CreateCompany", mock.Anything, user, mock.MatchedBy(func(req *dto.CreateCompanyRequest) bool {
		return req.Name == "TechCorp Inc."
	})).Return(created, nil).Once()

	body := bytes.NewBufferString(`{"name":"TechCorp Inc."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/companies", body)
	req.Header.Set("Content-Type", "application/json")
	addSession(t, req)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Company
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 10, got.ID)
	env.companySvc.AssertExpectations(t)
}

func TestCreateCompany_RequiresSession(t *testing.T) {
	env := setupTestRouter(nil)

	body := bytes.NewBufferString(`{"name":"TechCorp Inc."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/companies", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.companySvc.AssertNotCalled(t, "CreateCompany", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCompany_MissingName(t *testing.T) {
	user := &models.User{ID: 3, Username: "jane", Role: models.UserRoleCandidate}
	env := setupTestRouter(user)

	body := bytes.NewBufferString(`{"description":"No name"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/companies", body)
	req.Header.Set("Content-Type", "application/json")
	addSession(t, req)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.companySvc.AssertNotCalled(t, "CreateCompany", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCompanyByID_Public(t *testing.T) {
	env := setupTestRouter(nil)

	expected := &models.Company{ID: 10, Name: "TechCorp Inc."}
	env.companySvc.On("GetCompanyByID", mock.Anything, &dto.GetCompanyByIDRequest{ID: 10}).
		Return(expected, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/companies/10", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCompanyByID_NonNumericID(t *testing.T) {
	env := setupTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/companies/abc", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Company not found"}`, w.Body.String())
	env.companySvc.AssertNotCalled(t, "GetCompanyByID", mock.Anything, mock.Anything)
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	env := setupTestRouter(nil)

	env.companySvc.On("GetCompanyByID", mock.Anything, &dto.GetCompanyByIDRequest{ID: 404}).
		Return(nil, services.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/companies/404", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Company not found"}`, w.Body.String())
}

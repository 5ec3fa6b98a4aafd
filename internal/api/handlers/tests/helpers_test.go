package handlers_test

import (
	"context"
	"net/http"
	"time"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/api/routes"
	"job-board-api/internal/identity"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const (
	testSecret = "test-secret"
	testCookie = "session"
)

// generateSessionToken signs a session token the way the auth frontend does:
// HMAC over the subject plus the profile bundle.
func generateSessionToken(subject, secret string, expiration time.Duration) (string, error) {
	claims := &struct {
		Username string `json:"username,omitempty"`
		jwt.RegisteredClaims
	}{
		Username: "jane",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// stubResolver hands back a fixed user for any verified subject, standing in
// for the identity resolver so middleware tests need no database.
type stubResolver struct {
	user *models.User
}

func (r *stubResolver) Resolve(ctx context.Context, profile identity.ExternalProfile) (*models.User, error) {
	return r.user, nil
}

// --- Mock services ---

type MockUserService struct{ mock.Mock }

func (m *MockUserService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockCompanyService struct{ mock.Mock }

func (m *MockCompanyService) CreateCompany(ctx context.Context, user *models.User, req *dto.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, user, req)
	company, _ := args.Get(0).(*models.Company)
	return company, args.Error(1)
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	company, _ := args.Get(0).(*models.Company)
	return company, args.Error(1)
}

type MockJobService struct{ mock.Mock }

func (m *MockJobService) CreateJob(ctx context.Context, user *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, user, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobWithCompany, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.JobWithCompany)
	return job, args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	args := m.Called(ctx, req)
	jobs, _ := args.Get(0).([]models.JobWithCompany)
	return jobs, args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, user *models.User, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, user, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, user *models.User, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, user, req)
	return args.Error(0)
}

type MockApplicationService struct{ mock.Mock }

func (m *MockApplicationService) Apply(ctx context.Context, user *models.User, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, user, req)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

func (m *MockApplicationService) ListByJob(ctx context.Context, user *models.User, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithCandidate, error) {
	args := m.Called(ctx, user, req)
	apps, _ := args.Get(0).([]models.ApplicationWithCandidate)
	return apps, args.Error(1)
}

func (m *MockApplicationService) ListMine(ctx context.Context, user *models.User) ([]models.ApplicationDetail, error) {
	args := m.Called(ctx, user)
	apps, _ := args.Get(0).([]models.ApplicationDetail)
	return apps, args.Error(1)
}

// Compile-time checks
var _ services.UserService = (*MockUserService)(nil)
var _ services.CompanyService = (*MockCompanyService)(nil)
var _ services.JobService = (*MockJobService)(nil)
var _ services.ApplicationService = (*MockApplicationService)(nil)

// testEnv bundles the router and mocks for a handler test.
type testEnv struct {
	router      *gin.Engine
	userSvc     *MockUserService
	companySvc  *MockCompanyService
	jobSvc      *MockJobService
	appSvc      *MockApplicationService
	sessionUser *models.User
}

// setupTestRouter wires mock services through the real handlers, middleware,
// and route registration. sessionUser is what any valid session resolves to.
func setupTestRouter(sessionUser *models.User) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		userSvc:     new(MockUserService),
		companySvc:  new(MockCompanyService),
		jobSvc:      new(MockJobService),
		appSvc:      new(MockApplicationService),
		sessionUser: sessionUser,
	}

	validate := validator.New()
	userHandler := handlers.NewUserHandler(env.userSvc, validate)
	companyHandler := handlers.NewCompanyHandler(env.companySvc, validate)
	jobHandler := handlers.NewJobHandler(env.jobSvc, validate)
	applicationHandler := handlers.NewApplicationHandler(env.appSvc, validate)

	resolver := &stubResolver{user: sessionUser}
	requireAuth := middleware.RequireAuth(resolver, testSecret, testCookie)
	optionalAuth := middleware.OptionalAuth(resolver, testSecret, testCookie)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterUserRoutes(api, userHandler, requireAuth, optionalAuth)
	routes.RegisterCompanyRoutes(api, companyHandler, requireAuth)
	routes.RegisterJobRoutes(api, jobHandler, applicationHandler, requireAuth)
	routes.RegisterApplicationRoutes(api, applicationHandler, requireAuth)

	env.router = router
	return env
}

// addSession attaches a valid signed session cookie to the request.
func addSession(t testingT, req *http.Request) {
	token, err := generateSessionToken("ext|abc123", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
}

// testingT is the slice of *testing.T the helpers need.
type testingT interface {
	Fatalf(format string, args ...any)
}

package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/mica-edu/assessment-backend/internal/utils"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ===== SERVICE MOCKS =====

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) Create(ctx context.Context, req *services.CreateCategoryRequest) (*models.TestCategory, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestCategory), args.Error(1)
}

func (m *mockCategoryService) List(ctx context.Context) ([]*models.TestCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.TestCategory), args.Error(1)
}

func (m *mockCategoryService) GetBySlug(ctx context.Context, slug string) (*models.TestCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestCategory), args.Error(1)
}

type mockQuestionService struct{ mock.Mock }

func (m *mockQuestionService) Create(ctx context.Context, req *services.CreateQuestionRequest) (*models.Question, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *mockQuestionService) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *mockQuestionService) Update(ctx context.Context, id uint, req *services.UpdateQuestionRequest) (*models.Question, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *mockQuestionService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockQuestionService) List(ctx context.Context, req *services.ListQuestionsRequest) ([]*models.Question, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *mockQuestionService) Count(ctx context.Context, categorySlug string) (*repositories.QuestionCounts, error) {
	args := m.Called(ctx, categorySlug)
	return args.Get(0).(*repositories.QuestionCounts), args.Error(1)
}

type mockTestAssemblyService struct{ mock.Mock }

func (m *mockTestAssemblyService) SampleTest(ctx context.Context, grade string, categorySlug string) ([]*models.Question, error) {
	args := m.Called(ctx, grade, categorySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *mockTestAssemblyService) LiveTest(ctx context.Context, grade string, categorySlug string) ([]*models.Question, error) {
	args := m.Called(ctx, grade, categorySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

type mockResultService struct{ mock.Mock }

func (m *mockResultService) Submit(ctx context.Context, req *services.SubmitResultRequest) (*services.SubmitResultResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SubmitResultResponse), args.Error(1)
}

func (m *mockResultService) CheckStatus(ctx context.Context, rollNo string) (*services.ResultStatusResponse, error) {
	args := m.Called(ctx, rollNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ResultStatusResponse), args.Error(1)
}

func (m *mockResultService) List(ctx context.Context, categorySlug string) ([]*models.StudentResult, error) {
	args := m.Called(ctx, categorySlug)
	return args.Get(0).([]*models.StudentResult), args.Error(1)
}

type mockExportService struct{ mock.Mock }

func (m *mockExportService) ExportResults(ctx context.Context, categorySlug string) ([]byte, string, error) {
	args := m.Called(ctx, categorySlug)
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type stubServiceManager struct {
	category services.CategoryService
	question services.QuestionService
	assembly services.TestAssemblyService
	result   services.ResultService
	export   services.ExportService
}

func (s *stubServiceManager) Category() services.CategoryService         { return s.category }
func (s *stubServiceManager) Question() services.QuestionService         { return s.question }
func (s *stubServiceManager) TestAssembly() services.TestAssemblyService { return s.assembly }
func (s *stubServiceManager) Result() services.ResultService             { return s.result }
func (s *stubServiceManager) Export() services.ExportService             { return s.export }

// stubRepository only backs the health endpoint in these tests
type stubRepository struct {
	pingErr error
}

func (s *stubRepository) Category() repositories.CategoryRepository { return nil }
func (s *stubRepository) Question() repositories.QuestionRepository { return nil }
func (s *stubRepository) Result() repositories.ResultRepository     { return nil }
func (s *stubRepository) Ping(ctx context.Context) error            { return s.pingErr }
func (s *stubRepository) Close() error                              { return nil }

type testEnv struct {
	router   *gin.Engine
	category *mockCategoryService
	question *mockQuestionService
	assembly *mockTestAssemblyService
	result   *mockResultService
	export   *mockExportService
}

func newTestEnv(pingErr error) *testEnv {
	env := &testEnv{
		category: &mockCategoryService{},
		question: &mockQuestionService{},
		assembly: &mockTestAssemblyService{},
		result:   &mockResultService{},
		export:   &mockExportService{},
	}

	manager := &stubServiceManager{
		category: env.category,
		question: env.question,
		assembly: env.assembly,
		result:   env.result,
		export:   env.export,
	}

	router := gin.New()
	router.Use(CORSMiddleware())
	NewHandlerManager(manager, &stubRepository{pingErr: pingErr}, quietLogger()).SetupRoutes(router)
	env.router = router
	return env
}

func (env *testEnv) request(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

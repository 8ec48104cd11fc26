package services

import (
	"context"
	"log/slog"

	"github.com/mica-edu/assessment-backend/internal/cache"
	"github.com/mica-edu/assessment-backend/internal/events"
	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/validator"
)

// ===== SERVICE INTERFACES =====

type CategoryService interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*models.TestCategory, error)
	List(ctx context.Context) ([]*models.TestCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.TestCategory, error)
}

type QuestionService interface {
	Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error)
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Update(ctx context.Context, id uint, req *UpdateQuestionRequest) (*models.Question, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, req *ListQuestionsRequest) ([]*models.Question, error)
	Count(ctx context.Context, categorySlug string) (*repositories.QuestionCounts, error)
}

type TestAssemblyService interface {
	SampleTest(ctx context.Context, grade string, categorySlug string) ([]*models.Question, error)
	LiveTest(ctx context.Context, grade string, categorySlug string) ([]*models.Question, error)
}

type ResultService interface {
	Submit(ctx context.Context, req *SubmitResultRequest) (*SubmitResultResponse, error)
	CheckStatus(ctx context.Context, rollNo string) (*ResultStatusResponse, error)
	List(ctx context.Context, categorySlug string) ([]*models.StudentResult, error)
}

type ExportService interface {
	ExportResults(ctx context.Context, categorySlug string) ([]byte, string, error)
}

// ServiceManager aggregates all services behind one handle.
type ServiceManager interface {
	Category() CategoryService
	Question() QuestionService
	TestAssembly() TestAssemblyService
	Result() ResultService
	Export() ExportService
}

type serviceManager struct {
	category CategoryService
	question QuestionService
	assembly TestAssemblyService
	result   ResultService
	export   ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
) ServiceManager {
	categoryService := NewCategoryService(repo, logger, v, publisher)
	questionService := NewQuestionService(repo, logger, v, cacheService, publisher)
	resultService := NewResultService(repo, logger, v, publisher)

	return &serviceManager{
		category: categoryService,
		question: questionService,
		assembly: NewTestAssemblyService(repo, logger),
		result:   resultService,
		export:   NewExportService(repo, logger),
	}
}

func (m *serviceManager) Category() CategoryService         { return m.category }
func (m *serviceManager) Question() QuestionService         { return m.question }
func (m *serviceManager) TestAssembly() TestAssemblyService { return m.assembly }
func (m *serviceManager) Result() ResultService             { return m.result }
func (m *serviceManager) Export() ExportService             { return m.export }

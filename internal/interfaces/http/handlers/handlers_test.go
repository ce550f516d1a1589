package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var brt = time.FixedZone("BRT", -3*60*60)

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) Fetch(ctx context.Context, filter repositories.DateFilter) ([]entities.SurveyRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SurveyRecord), args.Error(1)
}

func (m *MockSurveyRepository) Create(ctx context.Context, record *entities.SurveyRecord) error {
	return m.Called(ctx, record).Error(0)
}

func fixture() []entities.SurveyRecord {
	return []entities.SurveyRecord{
		{ID: "b", Timestamp: time.Date(2024, 3, 10, 9, 0, 0, 0, brt), Responses: datatypes.JSONMap{"atendimento_medico": "muito_satisfeito"}},
		{ID: "a", Timestamp: time.Date(2024, 3, 9, 9, 0, 0, 0, brt), Responses: datatypes.JSONMap{"atendimento_medico": "satisfeito"}},
	}
}

func newTestApp(repo *MockSurveyRepository) *fiber.App {
	clock := utils.FixedClock{Instant: time.Date(2024, 3, 10, 12, 0, 0, 0, brt)}
	uc := usecases.NewSurveyUseCase(repo, nil, clock, brt)
	h := NewHandlers(uc, nil, NewPerformanceHandler(repo, "postgres", brt), brt)

	app := fiber.New()
	app.Get("/health", h.Health)
	app.Post("/surveys", h.Survey.Submit)
	app.Get("/admin/surveys", h.Survey.List)
	app.Get("/admin/surveys/export", h.Survey.Export)
	app.Get("/admin/statistics", h.Dashboard.GetStatistics)
	app.Get("/admin/performance/statistics", h.Performance.TestStatisticsPerformance)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

const validBody = `{
	"atendimento_recepcao": "muito_satisfeito",
	"atendimento_triagem": "satisfeito",
	"atendimento_medico": "regular",
	"capacidade_medico": "ruim",
	"higienizacao": "satisfeito",
	"atendimento_tecnicos": "muito_satisfeito",
	"gostou_espaco": "Sim"
}`

func TestHealth(t *testing.T) {
	resp, err := newTestApp(new(MockSurveyRepository)).Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decode(t, resp)["status"])
}

func TestSubmitHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		repo := new(MockSurveyRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.SurveyRecord) bool {
			return r.UserAgent == "teste/1.0" && r.Answer("gostou_espaco") == "Sim"
		})).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/surveys", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "teste/1.0")

		resp, err := newTestApp(repo).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["data"].(map[string]interface{})["id"])
		repo.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/surveys", strings.NewReader(`{"atendimento_medico":"otimo"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newTestApp(new(MockSurveyRepository)).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "dados inválidos")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/surveys", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newTestApp(new(MockSurveyRepository)).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockSurveyRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("down"))

		req := httptest.NewRequest(http.MethodPost, "/surveys", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newTestApp(repo).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Erro ao enviar pesquisa. Tente novamente.", decode(t, resp)["error"])
	})
}

func TestListHandler(t *testing.T) {
	t.Run("DateOnlyEndCoversWholeDay", func(t *testing.T) {
		repo := new(MockSurveyRepository)
		repo.On("Fetch", mock.Anything, mock.MatchedBy(func(f repositories.DateFilter) bool {
			return f.Active() &&
				f.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, brt)) &&
				f.End.Equal(time.Date(2024, 3, 10, 23, 59, 59, 999999999, brt))
		})).Return(fixture(), nil)

		resp, err := newTestApp(repo).Test(httptest.NewRequest(http.MethodGet, "/admin/surveys?start_date=2024-03-01&end_date=2024-03-10&limit=1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode(t, resp)
		assert.Len(t, body["data"], 1)
		meta := body["meta"].(map[string]interface{})
		assert.EqualValues(t, 2, meta["total"])
		assert.EqualValues(t, 2, meta["total_pages"])
		assert.Equal(t, true, meta["has_next_page"])
		repo.AssertExpectations(t)
	})

	t.Run("SingleBoundIsIgnored", func(t *testing.T) {
		repo := new(MockSurveyRepository)
		repo.On("Fetch", mock.Anything, repositories.DateFilter{}).Return(fixture(), nil)

		resp, err := newTestApp(repo).Test(httptest.NewRequest(http.MethodGet, "/admin/surveys?start_date=2024-03-01", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		repo.AssertExpectations(t)
	})

	t.Run("PageBeyondRange", func(t *testing.T) {
		repo := new(MockSurveyRepository)
		repo.On("Fetch", mock.Anything, repositories.DateFilter{}).Return(fixture(), nil)

		resp, err := newTestApp(repo).Test(httptest.NewRequest(http.MethodGet, "/admin/surveys?page=184467440737095516&limit=100", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode(t, resp)
		assert.Empty(t, body["data"])
		meta := body["meta"].(map[string]interface{})
		assert.EqualValues(t, 2, meta["total"])
		assert.Equal(t, false, meta["has_next_page"])
	})

	t.Run("InvalidDate", func(t *testing.T) {
		resp, err := newTestApp(new(MockSurveyRepository)).Test(httptest.NewRequest(http.MethodGet, "/admin/surveys?start_date=ontem&end_date=hoje", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, decode(t, resp)["success"])
	})
}

func TestStatisticsHandler(t *testing.T) {
	repo := new(MockSurveyRepository)
	repo.On("Fetch", mock.Anything, repositories.DateFilter{}).Return(fixture(), nil)
	app := newTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/statistics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	etag := resp.Header.Get("ETag")
	assert.True(t, strings.HasPrefix(etag, `W/"`))

	body := decode(t, resp)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total"])
	assert.EqualValues(t, 1, data["today"])
	assert.EqualValues(t, 2, data["lastWeek"])
	assert.Equal(t, "3.50", data["averageRatings"].(map[string]interface{})["atendimento_medico"])
	assert.Len(t, data["dailyResponses"], 2)

	req := httptest.NewRequest(http.MethodGet, "/admin/statistics", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)
}

func TestStatisticsHandlerSourceError(t *testing.T) {
	repo := new(MockSurveyRepository)
	repo.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	resp, err := newTestApp(repo).Test(httptest.NewRequest(http.MethodGet, "/admin/statistics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Erro ao carregar dados", decode(t, resp)["error"])
}

func TestExportHandler(t *testing.T) {
	repo := new(MockSurveyRepository)
	repo.On("Fetch", mock.Anything, repositories.DateFilter{}).Return(fixture(), nil)

	resp, err := newTestApp(repo).Test(httptest.NewRequest(http.MethodGet, "/admin/surveys/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="pesquisa-satisfacao-2024-03-10.csv"`, resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Data/Hora,Recepção,Triagem,Médico,Capacidade Médico,Higienização,Técnicos/Enfermeiros", lines[0])
	assert.Equal(t, "10/03/2024 09:00:00,,,muito_satisfeito,,,", lines[1])
}

func TestPerformanceHandler(t *testing.T) {
	repo := new(MockSurveyRepository)
	repo.On("Fetch", mock.Anything, repositories.DateFilter{}).Return(fixture(), nil)

	resp, err := newTestApp(repo).Test(httptest.NewRequest(http.MethodGet, "/admin/performance/statistics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "postgres", body["source"])
	assert.EqualValues(t, 2, body["records"])
}

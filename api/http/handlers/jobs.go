package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Withvansh/college-fest-sub003/api/http/presenter"
	"github.com/Withvansh/college-fest-sub003/pkg/jobs"
	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
	"github.com/Withvansh/college-fest-sub003/pkg/nlp"
	"github.com/Withvansh/college-fest-sub003/pkg/security/jwt"
)

type JobsHandler struct {
	uc  jobs.UseCase
	now func() time.Time
}

func NewJobsHandler(uc jobs.UseCase) *JobsHandler {
	return &JobsHandler{uc: uc, now: time.Now}
}

// jobView: вакансия в выдаче с бейджем "опубликовано сегодня".
type jobView struct {
	jobsearch.JobPosting
	PostedToday bool `json:"postedToday"`
}

type searchResponse struct {
	Items        []jobView              `json:"items"`
	Total        int                    `json:"total"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
	SalaryBounds jobsearch.SalaryBounds `json:"salaryBounds"`
	SalaryRange  jobsearch.SalaryBounds `json:"salaryRange"`
}

// Search отдаёт страницу выдачи с бейджами postedToday.
// @Summary     Поиск вакансий
// @Description Фильтрует и сортирует коллекцию. Списочные параметры можно повторять или перечислять через запятую.
// @Tags        jobs
// @Produce     json
// @Param       q          query string false "поиск по названию, компании и описанию"
// @Param       location   query string false "подстрока локации или remote"
// @Param       tags       query string false "теги"
// @Param       employment query string false "id фасетов занятости"
// @Param       experience query string false "id фасетов опыта"
// @Param       city       query string false "id фасетов города"
// @Param       salaryType query string false "hourly, monthly, yearly"
// @Param       salaryMin  query number false "нижняя граница слайдера"
// @Param       salaryMax  query number false "верхняя граница слайдера"
// @Param       sort       query string false "newest, salary, relevance"
// @Param       limit      query int    false "размер страницы (до 200)"
// @Param       offset     query int    false "смещение"
// @Success     200 {object} searchResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /jobs [get]
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	state, err := parseFilterState(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	limit, offset := parseLimitOffset(c, jobs.DefaultLimit)

	res, err := h.uc.Search(c.Context(), state, limit, offset)
	if err != nil {
		return jobError(c, err)
	}
	now := h.now()
	items := make([]jobView, 0, len(res.Items))
	for _, j := range res.Items {
		items = append(items, jobView{JobPosting: j, PostedToday: jobsearch.PostedToday(j, now)})
	}
	return presenter.JSON(c, http.StatusOK, searchResponse{
		Items:        items,
		Total:        res.Total,
		Limit:        res.Limit,
		Offset:       res.Offset,
		SalaryBounds: res.SalaryBounds,
		SalaryRange:  res.SalaryRange,
	})
}

func parseFilterState(c *fiber.Ctx) (jobsearch.FilterState, error) {
	state := jobsearch.FilterState{
		SearchTerm:   c.Query("q"),
		LocationTerm: c.Query("location"),
		SelectedTags: queryList(c, "tags"),
		Facets: jobsearch.FacetSelections{
			Employment: queryList(c, "employment"),
			Experience: queryList(c, "experience"),
			Location:   queryList(c, "city"),
		},
		Salary: jobsearch.NewSalaryRangeControl(),
	}

	sortKey, err := jobsearch.ParseSortKey(c.Query("sort"))
	if err != nil {
		return state, err
	}
	state.Sort = sortKey

	for _, raw := range queryList(c, "salaryType") {
		st, err := jobsearch.ParseSalaryType(raw)
		if err != nil {
			return state, err
		}
		state.Facets.SalaryType = append(state.Facets.SalaryType, st)
	}

	minRaw, maxRaw := strings.TrimSpace(c.Query("salaryMin")), strings.TrimSpace(c.Query("salaryMax"))
	if minRaw != "" || maxRaw != "" {
		lo, hi := float64(jobsearch.DefaultSalaryMin), float64(jobsearch.DefaultSalaryMax)
		if lo, err = parseAmount("salaryMin", minRaw, lo); err != nil {
			return state, err
		}
		if hi, err = parseAmount("salaryMax", maxRaw, hi); err != nil {
			return state, err
		}
		state.Salary.Set(lo, hi)
	}
	return state, nil
}

// queryList собирает значения ?k=a&k=b и ?k=a,b в один список.
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		out = append(out, nlp.Tokens(string(v))...)
	}
	return out
}

func parseAmount(name, raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, errors.New(name + " must be a non-negative number")
	}
	return v, nil
}

// Facets считаются при загрузке снимка, а не на каждый запрос.
// @Summary Фасеты с количествами по всей коллекции
// @Tags    jobs
// @Produce json
// @Success 200 {object} jobsearch.Facets
// @Router  /jobs/facets [get]
func (h *JobsHandler) Facets(c *fiber.Ctx) error {
	f, err := h.uc.Facets(c.Context())
	if err != nil {
		return jobError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, f)
}

// @Summary Словарь тегов для фильтра
// @Tags    jobs
// @Produce json
// @Success 200 {array} string
// @Router  /jobs/tags [get]
func (h *JobsHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.uc.Tags(c.Context())
	if err != nil {
		return jobError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, tags)
}

// @Summary Вакансия по ID
// @Tags    jobs
// @Produce json
// @Param   id path string true "ID вакансии"
// @Success 200 {object} jobs.Posting
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return jobError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type createJobRequest struct {
	Title           string                `json:"title"`
	Company         string                `json:"company"`
	Location        string                `json:"location"`
	Description     string                `json:"description"`
	JobType         string                `json:"jobType"`
	ExperienceLevel string                `json:"experienceLevel"`
	RemoteAllowed   bool                  `json:"remoteAllowed"`
	SkillsRequired  []string              `json:"skillsRequired"`
	SalaryRange     jobsearch.SalaryRange `json:"salaryRange"`
}

// Create доступен рекрутерам и администраторам.
// @Summary  Опубликовать вакансию
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    input body createJobRequest true "вакансия"
// @Security BearerAuth
// @Success  201 {object} jobs.Posting
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /jobs [post]
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	uid, ok := jwt.Subject(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}
	p, err := h.uc.Create(c.Context(), uid, jobsearch.JobPosting{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		JobType:         jobsearch.JobType(req.JobType),
		ExperienceLevel: jobsearch.ExperienceLevel(req.ExperienceLevel),
		RemoteAllowed:   req.RemoteAllowed,
		SkillsRequired:  req.SkillsRequired,
		Salary:          req.SalaryRange,
	})
	if err != nil {
		return jobError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

// Delete: владелец или администратор.
// @Summary  Удалить вакансию
// @Tags     jobs
// @Param    id path string true "ID вакансии"
// @Security BearerAuth
// @Success  204
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /jobs/{id} [delete]
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	uid, ok := jwt.Subject(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}
	if err := h.uc.Delete(c.Context(), uid, jwt.IsAdmin(c), c.Params("id")); err != nil {
		return jobError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary  Перечитать коллекцию из базы
// @Tags     jobs
// @Security BearerAuth
// @Success  204
// @Router   /jobs/refresh [post]
func (h *JobsHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.Context()); err != nil {
		return jobError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func jobError(c *fiber.Ctx, err error) error {
	var verr jobs.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case jobs.IsNotFound(err):
		return presenter.Error(c, http.StatusNotFound, "job not found")
	case errors.Is(err, jobs.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, err.Error())
	}
	slog.Error("jobs handler failed", slog.String("path", c.Path()), slog.Any("error", err))
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}

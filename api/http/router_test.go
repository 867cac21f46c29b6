package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/Withvansh/college-fest-sub003/api/http"
	"github.com/Withvansh/college-fest-sub003/api/http/handlers"
	"github.com/Withvansh/college-fest-sub003/pkg/auth"
	"github.com/Withvansh/college-fest-sub003/pkg/health"
	"github.com/Withvansh/college-fest-sub003/pkg/jobs"
	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
	"github.com/Withvansh/college-fest-sub003/pkg/security/jwt"
)

const (
	secret = "router-secret"
	issuer = "router-test"
)

// ── fakes ──

type memJobs struct {
	mu    sync.Mutex
	items []jobs.Posting
}

func (r *memJobs) Create(_ context.Context, p jobs.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, p)
	return nil
}

func (r *memJobs) GetByID(_ context.Context, id string) (jobs.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return jobs.Posting{}, jobs.ErrNotFound
}

func (r *memJobs) ListAll(context.Context) ([]jobsearch.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]jobsearch.JobPosting, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.JobPosting)
	}
	return out, nil
}

func (r *memJobs) DeleteForOwner(ctx context.Context, owner uuid.UUID, id string) error {
	if p, err := r.GetByID(ctx, id); err != nil || p.OwnerID != owner {
		return jobs.ErrNotFound
	}
	return r.DeleteAny(ctx, id)
}

func (r *memJobs) DeleteAny(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return jobs.ErrNotFound
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]auth.User
}

func (m *memUsers) Create(_ context.Context, u auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return auth.ErrUserAlreadyExists
	}
	m.users[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

type fixture struct {
	app   *fiber.App
	repo  *memJobs
	users *memUsers
	gen   *jwt.Generator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		app:   fiber.New(),
		repo:  &memJobs{},
		users: &memUsers{users: map[string]auth.User{}},
		gen:   jwt.NewGenerator(secret, issuer, time.Hour),
	}
	apihttp.Register(f.app,
		handlers.NewAuthHandler(auth.NewAuthService(f.users, f.gen)),
		handlers.NewHealthHandler(health.NewService()),
		handlers.NewJobsHandler(jobs.NewService(f.repo, nil, 0)),
		jwt.NewAuthMiddleware(secret, issuer),
	)
	return f
}

func (f *fixture) token(t *testing.T, role auth.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	tok, err := f.gen.Generate(context.Background(), auth.User{ID: id, Role: role})
	require.NoError(t, err)
	return id, tok
}

func (f *fixture) do(t *testing.T, method, target, token, body string) (int, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func (f *fixture) seed(owner uuid.UUID, jobsIn ...jobsearch.JobPosting) {
	for i, j := range jobsIn {
		if j.ID == "" {
			j.ID = uuid.NewString()
		}
		if j.CreatedAt.IsZero() {
			j.CreatedAt = time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
		}
		f.repo.items = append(f.repo.items, jobs.Posting{JobPosting: j, OwnerID: owner})
	}
}

type searchBody struct {
	Items []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		PostedToday bool   `json:"postedToday"`
	} `json:"items"`
	Total        int                    `json:"total"`
	Limit        int                    `json:"limit"`
	SalaryBounds jobsearch.SalaryBounds `json:"salaryBounds"`
	SalaryRange  jobsearch.SalaryBounds `json:"salaryRange"`
}

func f64(v float64) *float64 { return &v }

// ── health / auth ──

func TestHealthAndReady(t *testing.T) {
	f := newFixture(t)
	status, _ := f.do(t, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	status, body := f.do(t, http.MethodGet, "/api/v1/ready", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "ready")
}

func TestAuth_RegisterLoginWithRole(t *testing.T) {
	f := newFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/auth/register", "",
		`{"email":"rec@example.com","password":"pw","role":"recruiter"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Contains(t, string(body), `"role":"recruiter"`)

	status, _ = f.do(t, http.MethodPost, "/api/v1/auth/register", "",
		`{"email":"boss@example.com","password":"pw","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = f.do(t, http.MethodPost, "/api/v1/auth/register", "",
		`{"email":"rec@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, body = f.do(t, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"rec@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, status)
	var login struct{ Token string }
	require.NoError(t, json.Unmarshal(body, &login))

	// выданный токен сразу годится для публикации
	status, body = f.do(t, http.MethodPost, "/api/v1/jobs", login.Token,
		`{"title":"Go Dev","company":"Acme","jobType":"full_time"}`)
	assert.Equal(t, http.StatusCreated, status, string(body))
}

// ── search ──

func TestSearch_FiltersSortsAndReportsSlider(t *testing.T) {
	f := newFixture(t)
	f.seed(uuid.New(),
		jobsearch.JobPosting{ID: "j1", Title: "React Developer", Company: "A", Location: "Mumbai",
			JobType: jobsearch.JobTypeFullTime, RemoteAllowed: true, SkillsRequired: []string{"React"},
			Salary: jobsearch.SalaryRange{Max: f64(1_200_000)}},
		jobsearch.JobPosting{ID: "j2", Title: "Python Intern", Company: "B", Location: "Pune",
			JobType: jobsearch.JobTypeInternship, SkillsRequired: []string{"Python"},
			Salary: jobsearch.SalaryRange{Min: f64(120_000)}},
		jobsearch.JobPosting{ID: "j3", Title: "Go Contractor", Company: "C", Location: "Delhi",
			JobType: jobsearch.JobTypeContract, Salary: jobsearch.SalaryRange{Max: f64(600_000)}},
	)

	status, body := f.do(t, http.MethodGet, "/api/v1/jobs?sort=salary", "", "")
	require.Equal(t, http.StatusOK, status)
	var res searchBody
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, jobs.DefaultLimit, res.Limit, "no limit param falls back to the service page size")
	require.Len(t, res.Items, 3)
	assert.Equal(t, "j1", res.Items[0].ID)
	assert.Equal(t, "j3", res.Items[1].ID)
	assert.Equal(t, "j2", res.Items[2].ID)
	assert.Equal(t, jobsearch.SalaryBounds{Min: 100_000, Max: 1_200_000}, res.SalaryBounds)
	assert.Equal(t, res.SalaryBounds, res.SalaryRange)

	status, body = f.do(t, http.MethodGet, "/api/v1/jobs?employment=Full-time,Internship&tags=python", "", "")
	require.Equal(t, http.StatusOK, status)
	res = searchBody{}
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "j2", res.Items[0].ID)

	status, body = f.do(t, http.MethodGet, "/api/v1/jobs?tags=remote&tags=go", "", "")
	require.Equal(t, http.StatusOK, status)
	res = searchBody{}
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 1, res.Total, "tags match job type or skills, not titles")

	status, body = f.do(t, http.MethodGet, "/api/v1/jobs?salaryMin=500000", "", "")
	require.Equal(t, http.StatusOK, status)
	res = searchBody{}
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, jobsearch.SalaryBounds{Min: 500_000, Max: 2_000_000}, res.SalaryRange)

	status, body = f.do(t, http.MethodGet, "/api/v1/jobs?limit=1&offset=1", "", "")
	require.Equal(t, http.StatusOK, status)
	res = searchBody{}
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Limit)
	require.Len(t, res.Items, 1)
}

func TestSearch_RejectsBadParams(t *testing.T) {
	f := newFixture(t)
	for _, q := range []string{"sort=cheapest", "salaryType=weekly", "salaryMin=lots", "salaryMax=-5"} {
		status, body := f.do(t, http.MethodGet, "/api/v1/jobs?"+q, "", "")
		assert.Equal(t, http.StatusBadRequest, status, q)
		assert.Contains(t, string(body), "message", q)
	}
}

func TestSearch_PostedTodayBadge(t *testing.T) {
	f := newFixture(t)
	f.seed(uuid.New(), jobsearch.JobPosting{ID: "fresh", Title: "Fresh", JobType: jobsearch.JobTypeFreelance,
		CreatedAt: time.Now()})

	_, body := f.do(t, http.MethodGet, "/api/v1/jobs", "", "")
	var res searchBody
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].PostedToday)
}

func TestFacetsAndTags(t *testing.T) {
	f := newFixture(t)
	f.seed(uuid.New(),
		jobsearch.JobPosting{Title: "A", Location: "Bangalore", JobType: jobsearch.JobTypeFullTime,
			ExperienceLevel: jobsearch.ExperienceSenior, SkillsRequired: []string{"Go"}},
		jobsearch.JobPosting{Title: "B", Location: "Remote", JobType: jobsearch.JobTypePartTime, RemoteAllowed: true},
	)

	status, body := f.do(t, http.MethodGet, "/api/v1/jobs/facets", "", "")
	require.Equal(t, http.StatusOK, status)
	var facets jobsearch.Facets
	require.NoError(t, json.Unmarshal(body, &facets))
	ids := make([]string, 0, len(facets.Employment))
	for _, o := range facets.Employment {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"Full-time", "Part-time", "Remote", "Senior Level"}, ids)
	assert.Equal(t, jobsearch.DefaultSalaryBounds(), facets.SalaryBounds)

	status, body = f.do(t, http.MethodGet, "/api/v1/jobs/tags", "", "")
	require.Equal(t, http.StatusOK, status)
	var tags []string
	require.NoError(t, json.Unmarshal(body, &tags))
	assert.Equal(t, []string{"full_time", "Go", "part_time", "remote"}, tags)
}

// ── write paths ──

func TestCreate_RequiresRecruiter(t *testing.T) {
	f := newFixture(t)
	payload := `{"title":"Go Dev","company":"Acme","jobType":"Full-time","salaryRange":{"min":100000,"max":200000}}`

	status, _ := f.do(t, http.MethodPost, "/api/v1/jobs", "", payload)
	assert.Equal(t, http.StatusUnauthorized, status)

	_, candidate := f.token(t, auth.RoleCandidate)
	status, _ = f.do(t, http.MethodPost, "/api/v1/jobs", candidate, payload)
	assert.Equal(t, http.StatusForbidden, status)

	owner, recruiter := f.token(t, auth.RoleRecruiter)
	status, body := f.do(t, http.MethodPost, "/api/v1/jobs", recruiter, payload)
	require.Equal(t, http.StatusCreated, status, string(body))
	var created jobs.Posting
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, owner, created.OwnerID)
	assert.Equal(t, jobsearch.JobTypeFullTime, created.JobType)

	status, body = f.do(t, http.MethodGet, "/api/v1/jobs/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "Go Dev")

	status, _ = f.do(t, http.MethodPost, "/api/v1/jobs", recruiter, `{"title":"","company":"Acme","jobType":"contract"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDelete_OwnerOrAdmin(t *testing.T) {
	f := newFixture(t)
	owner, ownerTok := f.token(t, auth.RoleRecruiter)
	_, otherTok := f.token(t, auth.RoleRecruiter)
	_, adminTok := f.token(t, auth.RoleAdmin)
	f.seed(owner,
		jobsearch.JobPosting{ID: "mine", Title: "Mine", JobType: jobsearch.JobTypeContract},
		jobsearch.JobPosting{ID: "also-mine", Title: "Also mine", JobType: jobsearch.JobTypeContract},
	)

	status, _ := f.do(t, http.MethodDelete, "/api/v1/jobs/mine", otherTok, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = f.do(t, http.MethodDelete, "/api/v1/jobs/mine", ownerTok, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = f.do(t, http.MethodDelete, "/api/v1/jobs/mine", ownerTok, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = f.do(t, http.MethodDelete, "/api/v1/jobs/also-mine", adminTok, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = f.do(t, http.MethodGet, "/api/v1/jobs/also-mine", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRefresh_AdminOnly(t *testing.T) {
	f := newFixture(t)
	_, recruiter := f.token(t, auth.RoleRecruiter)
	_, admin := f.token(t, auth.RoleAdmin)

	_, body := f.do(t, http.MethodGet, "/api/v1/jobs", "", "")
	var res searchBody
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Zero(t, res.Total)

	// запись в обход сервиса видна только после refresh
	f.seed(uuid.New(), jobsearch.JobPosting{Title: "Imported", JobType: jobsearch.JobTypeFullTime})

	status, _ := f.do(t, http.MethodPost, "/api/v1/jobs/refresh", recruiter, "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = f.do(t, http.MethodPost, "/api/v1/jobs/refresh", admin, "")
	assert.Equal(t, http.StatusNoContent, status)

	_, body = f.do(t, http.MethodGet, "/api/v1/jobs", "", "")
	res = searchBody{}
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 1, res.Total)
}

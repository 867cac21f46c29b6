package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
	"github.com/Withvansh/college-fest-sub003/pkg/nlp"
)

// DefaultLimit: размер страницы, если limit не задан.
const DefaultLimit = 50

// UseCase описывает сценарии ленты вакансий, публикацию рекрутером и поиск кандидатом.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, j jobsearch.JobPosting) (Posting, error)
	Get(ctx context.Context, id string) (Posting, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id string) error
	Search(ctx context.Context, state jobsearch.FilterState, limit, offset int) (SearchResult, error)
	Facets(ctx context.Context) (jobsearch.Facets, error)
	Tags(ctx context.Context) ([]string, error)
	Refresh(ctx context.Context) error
}

type service struct {
	repo      Repository
	cache     SnapshotCache
	sanitizer *nlp.Sanitizer
	ttl       time.Duration
	now       func() time.Time

	mu   sync.RWMutex
	snap *Snapshot

	// genMu упорядочивает установку снимка относительно записей: gen растёт
	// при каждой записи, и загрузка, начатая до неё, не попадает ни в память, ни в Redis.
	genMu sync.Mutex
	gen   uint64
}

// NewService собирает сервис ленты. cache может быть nil; ttl <= 0 означает,
// что снимок в памяти живёт до явной инвалидации.
func NewService(repo Repository, cache SnapshotCache, ttl time.Duration) UseCase {
	return &service{
		repo:      repo,
		cache:     cache,
		sanitizer: nlp.NewSanitizer(),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, j jobsearch.JobPosting) (Posting, error) {
	j, err := s.normalize(j)
	if err != nil {
		return Posting{}, err
	}
	j.ID = uuid.New().String()
	j.CreatedAt = s.now().UTC()

	p := Posting{JobPosting: j, OwnerID: ownerID}
	if err := s.repo.Create(ctx, p); err != nil {
		return Posting{}, fmt.Errorf("create job: %w", err)
	}
	s.invalidate(ctx)
	slog.Info("jobs: posting created", slog.String("id", j.ID), slog.String("owner", ownerID.String()))
	return p, nil
}

func (s *service) normalize(j jobsearch.JobPosting) (jobsearch.JobPosting, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	j.Location = strings.TrimSpace(j.Location)
	if j.Title == "" {
		return j, ErrValidation("title is required")
	}
	if j.Company == "" {
		return j, ErrValidation("company is required")
	}
	j.JobType = jobsearch.JobType(nlp.EnumKey(string(j.JobType)))
	if !j.JobType.Valid() {
		return j, ErrValidation("jobType must be one of full_time, part_time, contract, internship, freelance")
	}
	switch j.ExperienceLevel = jobsearch.ExperienceLevel(nlp.Fold(string(j.ExperienceLevel))); j.ExperienceLevel {
	case "", jobsearch.ExperienceEntry, jobsearch.ExperienceMid, jobsearch.ExperienceIntermediate,
		jobsearch.ExperienceSenior, jobsearch.ExperienceExecutive:
	default:
		return j, ErrValidation("experienceLevel must be one of entry, mid, intermediate, senior, executive")
	}
	if (j.Salary.Min != nil && *j.Salary.Min < 0) || (j.Salary.Max != nil && *j.Salary.Max < 0) {
		return j, ErrValidation("salary must not be negative")
	}
	if j.Salary.Min != nil && j.Salary.Max != nil && *j.Salary.Max < *j.Salary.Min {
		return j, ErrValidation("salaryRange.max must be >= salaryRange.min")
	}
	skills := make([]string, 0, len(j.SkillsRequired))
	for _, sk := range j.SkillsRequired {
		if sk = strings.TrimSpace(sk); sk != "" {
			skills = append(skills, sk)
		}
	}
	j.SkillsRequired = skills
	j.Description = s.sanitizer.Clean(j.Description)
	return j, nil
}

func (s *service) Get(ctx context.Context, id string) (Posting, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id string) error {
	var err error
	if isAdmin {
		err = s.repo.DeleteAny(ctx, id)
	} else {
		var p Posting
		if p, err = s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		if p.OwnerID != actorID {
			return ErrForbidden
		}
		err = s.repo.DeleteForOwner(ctx, actorID, id)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) Search(ctx context.Context, state jobsearch.FilterState, limit, offset int) (SearchResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	visible := jobsearch.FilterAndSort(snap.Jobs, state)

	// state is a copy, so syncing here only reports what the slider shows
	slider := state.Salary
	slider.Sync(snap.Facets.SalaryBounds, len(snap.Jobs))

	return SearchResult{
		Items:        page(visible, limit, offset),
		Total:        len(visible),
		Limit:        limit,
		Offset:       offset,
		SalaryBounds: snap.Facets.SalaryBounds,
		SalaryRange:  slider.Range(),
	}, nil
}

func page(jobs []jobsearch.JobPosting, limit, offset int) []jobsearch.JobPosting {
	if offset >= len(jobs) {
		return []jobsearch.JobPosting{}
	}
	end := offset + limit
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[offset:end]
}

func (s *service) Facets(ctx context.Context) (jobsearch.Facets, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return jobsearch.Facets{}, err
	}
	return snap.Facets, nil
}

func (s *service) Tags(ctx context.Context) ([]string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Tags, nil
}

// Refresh перечитывает коллекцию из репозитория и обновляет общий кэш.
func (s *service) Refresh(ctx context.Context) error {
	_, err := s.reload(ctx, false)
	return err
}

func (s *service) snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil && (s.ttl <= 0 || s.now().Sub(snap.LoadedAt) < s.ttl) {
		return snap, nil
	}
	return s.reload(ctx, true)
}

// reload: память -> Redis -> Postgres. Фасеты считаются здесь и только здесь.
func (s *service) reload(ctx context.Context, useCache bool) (*Snapshot, error) {
	s.genMu.Lock()
	gen := s.gen
	s.genMu.Unlock()

	var list []jobsearch.JobPosting
	source := "repository"
	if useCache && s.cache != nil {
		cached, ok, err := s.cache.Load(ctx)
		switch {
		case err != nil:
			slog.Warn("jobs: snapshot cache load failed", slog.Any("error", err))
		case ok:
			list, source = cached, "cache"
		}
	}
	if source == "repository" {
		var err error
		if list, err = s.repo.ListAll(ctx); err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
	}

	snap := &Snapshot{
		Jobs:     list,
		Facets:   jobsearch.ComputeFacets(list),
		Tags:     jobsearch.AvailableTags(list),
		LoadedAt: s.now(),
	}

	s.genMu.Lock()
	defer s.genMu.Unlock()
	if s.gen != gen {
		// коллекция изменилась во время загрузки: отдаём результат вызывающему,
		// но не кэшируем его
		slog.Debug("jobs: stale snapshot discarded", slog.String("source", source))
		return snap, nil
	}
	if source == "repository" && s.cache != nil {
		if err := s.cache.Store(ctx, list); err != nil {
			slog.Warn("jobs: snapshot cache store failed", slog.Any("error", err))
		}
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	slog.Debug("jobs: snapshot loaded", slog.String("source", source), slog.Int("jobs", len(list)))
	return snap, nil
}

func (s *service) invalidate(ctx context.Context) {
	s.genMu.Lock()
	s.gen++
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
	s.genMu.Unlock()
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("jobs: snapshot cache invalidate failed", slog.Any("error", err))
	}
}

// IsNotFound сообщает, что вакансия не найдена.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
)

var (
	ErrNotFound  = errors.New("job not found")
	ErrForbidden = errors.New("job belongs to another recruiter")
)

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Posting: вакансия вместе с владельцем-рекрутером.
type Posting struct {
	jobsearch.JobPosting
	OwnerID uuid.UUID `json:"ownerId"`
}

// Repository: порт к источнику вакансий.
type Repository interface {
	Create(ctx context.Context, p Posting) error
	GetByID(ctx context.Context, id string) (Posting, error)
	ListAll(ctx context.Context) ([]jobsearch.JobPosting, error)
	DeleteForOwner(ctx context.Context, ownerID uuid.UUID, id string) error
	DeleteAny(ctx context.Context, id string) error
}

// SnapshotCache хранит общий снимок коллекции между экземплярами сервиса.
type SnapshotCache interface {
	Load(ctx context.Context) ([]jobsearch.JobPosting, bool, error)
	Store(ctx context.Context, jobs []jobsearch.JobPosting) error
	Invalidate(ctx context.Context) error
}

// Snapshot: загруженная коллекция и фасеты, посчитанные в момент загрузки.
type Snapshot struct {
	Jobs     []jobsearch.JobPosting
	Facets   jobsearch.Facets
	Tags     []string
	LoadedAt time.Time
}

// SearchResult: страница отфильтрованной выдачи.
type SearchResult struct {
	Items        []jobsearch.JobPosting `json:"items"`
	Total        int                    `json:"total"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
	SalaryBounds jobsearch.SalaryBounds `json:"salaryBounds"`
	SalaryRange  jobsearch.SalaryBounds `json:"salaryRange"`
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Withvansh/college-fest-sub003/pkg/jobs"
	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
)

// JobRepository хранит вакансии в таблице job_postings.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, owner_id, title, company, location, description, job_type,
	experience_level, remote_allowed, skills_required, salary_min, salary_max, created_at`

func (r *JobRepository) Create(ctx context.Context, p jobs.Posting) error {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return fmt.Errorf("job id: %w", err)
	}
	skills := p.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO job_postings (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`, id, p.OwnerID, p.Title, p.Company, p.Location, p.Description, string(p.JobType),
		string(p.ExperienceLevel), p.RemoteAllowed, skills, p.Salary.Min, p.Salary.Max, p.CreatedAt)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (jobs.Posting, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return jobs.Posting{}, jobs.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, uid)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobs.Posting{}, jobs.ErrNotFound
		}
		return jobs.Posting{}, err
	}
	return p, nil
}

// ListAll отдаёт всю коллекцию, новые первыми. Порядок важен: на нём
// держится стабильность сортировки при равных ключах.
func (r *JobRepository) ListAll(ctx context.Context) ([]jobsearch.JobPosting, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM job_postings ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []jobsearch.JobPosting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p.JobPosting)
	}
	return res, rows.Err()
}

func (r *JobRepository) DeleteForOwner(ctx context.Context, ownerID uuid.UUID, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return jobs.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1 AND owner_id = $2`, uid, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return jobs.ErrNotFound
	}
	return nil
}

// DeleteAny: для администратора, без фильтра владельца.
func (r *JobRepository) DeleteAny(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return jobs.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return jobs.ErrNotFound
	}
	return nil
}

func scanPosting(row pgx.Row) (jobs.Posting, error) {
	var (
		p          jobs.Posting
		id         uuid.UUID
		jobType    string
		experience string
		created    time.Time
	)
	err := row.Scan(&id, &p.OwnerID, &p.Title, &p.Company, &p.Location, &p.Description, &jobType,
		&experience, &p.RemoteAllowed, &p.SkillsRequired, &p.Salary.Min, &p.Salary.Max, &created)
	if err != nil {
		return jobs.Posting{}, err
	}
	p.ID = id.String()
	p.JobType = jobsearch.JobType(jobType)
	p.ExperienceLevel = jobsearch.ExperienceLevel(experience)
	p.CreatedAt = created.UTC()
	return p, nil
}

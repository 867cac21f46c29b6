package jobsearch

import (
	"strings"

	"github.com/Withvansh/college-fest-sub003/pkg/nlp"
)

const remoteTerm = "remote"

// FilterAndSort возвращает вакансии, прошедшие все активные фильтры, в порядке
// state.Sort. Функция чистая: входной срез не изменяется, результат: новый срез.
func FilterAndSort(jobs []JobPosting, state FilterState) []JobPosting {
	m := newMatcher(state)
	out := make([]JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if m.match(j) {
			out = append(out, j)
		}
	}
	sortJobs(out, state.Sort)
	return out
}

// matcher держит предварительно нормализованные критерии, чтобы на каждую
// вакансию приходились только проверки подстрок.
type matcher struct {
	search       string
	location     string
	remoteOnly   bool
	tags         []string
	employment   []string
	experience   []string
	cities       []string
	salary       SalaryRangeControl
	salaryActive bool
}

func newMatcher(state FilterState) matcher {
	loc := nlp.Fold(state.LocationTerm)
	return matcher{
		search:       nlp.Fold(state.SearchTerm),
		location:     loc,
		remoteOnly:   loc == remoteTerm,
		tags:         foldAll(state.SelectedTags),
		employment:   nonBlank(state.Facets.Employment),
		experience:   nonBlank(state.Facets.Experience),
		cities:       nonBlank(state.Facets.Location),
		salary:       state.Salary,
		salaryActive: state.Salary.Touched(),
	}
}

func (m matcher) match(j JobPosting) bool {
	return m.matchSearch(j) &&
		m.matchLocation(j) &&
		m.matchTags(j) &&
		m.matchEmployment(j) &&
		m.matchExperience(j) &&
		m.matchCity(j) &&
		m.matchSalary(j)
}

func (m matcher) matchSearch(j JobPosting) bool {
	if m.search == "" {
		return true
	}
	return nlp.ContainsFold(j.Title, m.search) ||
		nlp.ContainsFold(j.Company, m.search) ||
		nlp.ContainsFold(j.Description, m.search)
}

func (m matcher) matchLocation(j JobPosting) bool {
	if m.location == "" {
		return true
	}
	if m.remoteOnly && j.RemoteAllowed {
		return true
	}
	return nlp.ContainsFold(j.Location, m.location)
}

func (m matcher) matchTags(j JobPosting) bool {
	if len(m.tags) == 0 {
		return true
	}
	for _, tag := range m.tags {
		if tagMatches(j, tag) {
			return true
		}
	}
	return false
}

// tagMatches: tag уже приведён к нижнему регистру.
func tagMatches(j JobPosting, tag string) bool {
	if tag == remoteTerm && j.RemoteAllowed {
		return true
	}
	jobType := string(j.JobType)
	if nlp.ContainsFold(jobType, tag) || strings.Contains(nlp.EnumKey(jobType), nlp.EnumKey(tag)) {
		return true
	}
	for _, skill := range j.SkillsRequired {
		if nlp.ContainsFold(skill, tag) {
			return true
		}
	}
	return false
}

func (m matcher) matchEmployment(j JobPosting) bool {
	if len(m.employment) == 0 {
		return true
	}
	for _, id := range m.employment {
		if f, ok := lookup(employmentFacets, id); ok {
			if f.match(j) {
				return true
			}
			continue
		}
		// ids outside the catalogue degrade to a folded job type match
		if strings.Contains(nlp.EnumKey(string(j.JobType)), nlp.EnumKey(id)) {
			return true
		}
	}
	return false
}

func (m matcher) matchExperience(j JobPosting) bool {
	if len(m.experience) == 0 {
		return true
	}
	for _, id := range m.experience {
		if f, ok := lookup(experienceFacets, id); ok {
			if f.match(j) {
				return true
			}
			continue
		}
		if j.ExperienceLevel != "" && nlp.EnumKey(string(j.ExperienceLevel)) == nlp.EnumKey(id) {
			return true
		}
	}
	return false
}

func (m matcher) matchCity(j JobPosting) bool {
	if len(m.cities) == 0 {
		return true
	}
	for _, id := range m.cities {
		if f, ok := lookup(locationFacets, id); ok {
			if f.match(j) {
				return true
			}
			continue
		}
		if nlp.ContainsFold(j.Location, id) {
			return true
		}
	}
	return false
}

func (m matcher) matchSalary(j JobPosting) bool {
	if !m.salaryActive {
		return true
	}
	return m.salary.overlaps(j.Salary)
}

func foldAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = nlp.Fold(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

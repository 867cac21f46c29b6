package jobsearch

import "time"

// JobType: тип занятости вакансии. Неизвестные значения допустимы и
// просто не совпадают ни с одним фиксированным фасетом.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// Valid сообщает, входит ли значение в фиксированное перечисление.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

// ExperienceLevel: требуемый уровень опыта; пустая строка означает «не указан».
type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceMid          ExperienceLevel = "mid"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceSenior       ExperienceLevel = "senior"
	ExperienceExecutive    ExperienceLevel = "executive"
)

// SalaryRange: вилка зарплаты; любая граница может отсутствовать.
// Валюта предполагается единой, max >= min не проверяется.
type SalaryRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// JobPosting: вакансия в том виде, в каком её отдаёт API списка вакансий.
type JobPosting struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	JobType         JobType         `json:"jobType"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	RemoteAllowed   bool            `json:"remoteAllowed"`
	SkillsRequired  []string        `json:"skillsRequired"`
	Salary          SalaryRange     `json:"salaryRange"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SortKey: порядок выдачи.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortSalary    SortKey = "salary"
	SortRelevance SortKey = "relevance"
)

// SalaryType: единица зарплаты, которую пользователь выбирает в фильтре.
// В данных вакансий единица не хранится, поэтому фильтрация по ней не выполняется.
type SalaryType string

const (
	SalaryHourly  SalaryType = "hourly"
	SalaryMonthly SalaryType = "monthly"
	SalaryYearly  SalaryType = "yearly"
)

// FacetSelections: отмеченные пользователем фасеты.
type FacetSelections struct {
	Employment []string     `json:"employment"`
	Experience []string     `json:"experience"`
	Location   []string     `json:"location"`
	SalaryType []SalaryType `json:"salaryType"`
}

// FilterState: снимок состояния фильтров, которым владеет вызывающая сторона.
// Движок получает его по значению и никогда не изменяет.
type FilterState struct {
	SearchTerm   string
	LocationTerm string
	SelectedTags []string
	Facets       FacetSelections
	Salary       SalaryRangeControl
	Sort         SortKey
}

// FacetOption: вариант фасета с количеством подходящих вакансий.
type FacetOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// SalaryBounds: границы слайдера зарплаты.
type SalaryBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Facets: всё, что нужно для отрисовки панели фильтров.
type Facets struct {
	Employment   []FacetOption `json:"employment"`
	Experience   []FacetOption `json:"experience"`
	Location     []FacetOption `json:"location"`
	SalaryBounds SalaryBounds  `json:"salaryBounds"`
}

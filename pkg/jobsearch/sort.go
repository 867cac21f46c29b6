package jobsearch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownSortKey    = errors.New("unknown sort key")
	ErrUnknownSalaryType = errors.New("unknown salary type")
)

// ParseSortKey разбирает ключ сортировки; пустая строка означает newest.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortNewest, nil
	case SortNewest, SortSalary, SortRelevance:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// ParseSalaryType разбирает единицу зарплаты.
func ParseSalaryType(s string) (SalaryType, error) {
	switch t := SalaryType(strings.ToLower(strings.TrimSpace(s))); t {
	case SalaryHourly, SalaryMonthly, SalaryYearly:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSalaryType, s)
}

// sortJobs сортирует стабильно и по убыванию; неизвестный ключ сохраняет порядок.
func sortJobs(jobs []JobPosting, key SortKey) {
	switch key {
	case SortNewest:
		sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	case SortSalary:
		sort.SliceStable(jobs, func(i, j int) bool { return salaryScore(jobs[i].Salary) > salaryScore(jobs[j].Salary) })
	case SortRelevance:
		sort.SliceStable(jobs, func(i, j int) bool { return relevance(jobs[i]) > relevance(jobs[j]) })
	}
}

// relevance считает число навыков плюс 1 за удалёнку.
func relevance(j JobPosting) int {
	score := len(j.SkillsRequired)
	if j.RemoteAllowed {
		score++
	}
	return score
}

package jobsearch

import (
	"math"
	"sort"
)

const (
	// DefaultSalaryMin и DefaultSalaryMax: границы слайдера, пока данных о зарплатах нет.
	DefaultSalaryMin = 0
	DefaultSalaryMax = 2_000_000

	salaryStep = 50_000
)

// DefaultSalaryBounds возвращает границы слайдера по умолчанию.
func DefaultSalaryBounds() SalaryBounds {
	return SalaryBounds{Min: DefaultSalaryMin, Max: DefaultSalaryMax}
}

// ComputeFacets строит варианты фасетов по полной (нефильтрованной) коллекции.
// Фасеты с нулевым количеством не возвращаются.
func ComputeFacets(jobs []JobPosting) Facets {
	return Facets{
		Employment:   countFacets(employmentFacets, jobs),
		Experience:   countFacets(experienceFacets, jobs),
		Location:     countLocations(jobs),
		SalaryBounds: ComputeSalaryBounds(jobs),
	}
}

func countFacets(catalogue []facet, jobs []JobPosting) []FacetOption {
	out := make([]FacetOption, 0, len(catalogue))
	for _, f := range catalogue {
		n := 0
		for _, j := range jobs {
			if f.match(j) {
				n++
			}
		}
		if n > 0 {
			out = append(out, FacetOption{ID: f.id, Label: f.label, Icon: f.icon, Count: n})
		}
	}
	return out
}

func countLocations(jobs []JobPosting) []FacetOption {
	counts := make(map[string]int, len(locationFacets))
	for _, j := range jobs {
		counts[cityBucket(j.Location)]++
	}
	out := make([]FacetOption, 0, len(counts))
	for _, f := range locationFacets {
		if n := counts[f.id]; n > 0 {
			out = append(out, FacetOption{ID: f.id, Label: f.label, Icon: f.icon, Count: n})
		}
	}
	// ties keep catalogue order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ComputeSalaryBounds собирает все заданные min/max и округляет крайние значения
// до 50 000 вниз и вверх соответственно.
func ComputeSalaryBounds(jobs []JobPosting) SalaryBounds {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for _, j := range jobs {
		for _, v := range [...]*float64{j.Salary.Min, j.Salary.Max} {
			if !usable(v) {
				continue
			}
			found = true
			lo = math.Min(lo, *v)
			hi = math.Max(hi, *v)
		}
	}
	if !found {
		return DefaultSalaryBounds()
	}
	return SalaryBounds{
		Min: math.Floor(lo/salaryStep) * salaryStep,
		Max: math.Ceil(hi/salaryStep) * salaryStep,
	}
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

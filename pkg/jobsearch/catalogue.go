package jobsearch

import (
	"strings"

	"github.com/Withvansh/college-fest-sub003/pkg/nlp"
)

// facet описывает элемент каталога: идентификатор, подпись, подсказка иконки и
// собственный предикат. Счётчики и фильтрация используют один и тот же
// предикат, поэтому количество в фасете всегда совпадает с выдачей.
type facet struct {
	id    string
	label string
	icon  string
	match func(JobPosting) bool
}

// Идентификаторы фасетов занятости.
const (
	FacetFullTime    = "Full-time"
	FacetPartTime    = "Part-time"
	FacetContract    = "Contract"
	FacetInternship  = "Internship"
	FacetRemote      = "Remote"
	FacetSeniorLevel = "Senior Level"
)

// Идентификаторы фасетов опыта.
const (
	FacetExperienceEntry  = "entry"
	FacetExperienceMid    = "mid"
	FacetExperienceSenior = "senior"
)

// OtherCities: корзина для локаций вне списка городов.
const OtherCities = "other"

var employmentFacets = []facet{
	{id: FacetFullTime, label: "Full-time", icon: "briefcase", match: jobTypeIs(JobTypeFullTime)},
	{id: FacetPartTime, label: "Part-time", icon: "clock", match: jobTypeIs(JobTypePartTime)},
	{id: FacetContract, label: "Contract", icon: "file-text", match: jobTypeIs(JobTypeContract)},
	{id: FacetInternship, label: "Internship", icon: "graduation-cap", match: jobTypeIs(JobTypeInternship)},
	{id: FacetRemote, label: "Remote", icon: "home", match: func(j JobPosting) bool { return j.RemoteAllowed }},
	{id: FacetSeniorLevel, label: "Senior Level", icon: "award", match: isSeniorLevel},
}

var experienceFacets = []facet{
	{id: FacetExperienceEntry, label: "Entry Level", icon: "sprout", match: experienceIs(ExperienceEntry)},
	{id: FacetExperienceMid, label: "Mid Level", icon: "trending-up", match: experienceIs(ExperienceMid, ExperienceIntermediate)},
	{id: FacetExperienceSenior, label: "Senior Level", icon: "award", match: experienceIs(ExperienceSenior)},
}

// cities проверяются по порядку; вакансия попадает в первую подходящую корзину.
var cities = []struct {
	id     string
	label  string
	needle string
}{
	{id: "bangalore", label: "Bangalore", needle: "bangalore"},
	{id: "mumbai", label: "Mumbai", needle: "mumbai"},
	{id: "delhi", label: "Delhi NCR", needle: "delhi"},
	{id: "hyderabad", label: "Hyderabad", needle: "hyderabad"},
	{id: "pune", label: "Pune", needle: "pune"},
	{id: "chennai", label: "Chennai", needle: "chennai"},
	{id: "kolkata", label: "Kolkata", needle: "kolkata"},
}

var locationFacets = buildLocationFacets()

func buildLocationFacets() []facet {
	out := make([]facet, 0, len(cities)+1)
	for _, c := range cities {
		id := c.id
		out = append(out, facet{id: id, label: c.label, icon: "map-pin", match: func(j JobPosting) bool {
			return cityBucket(j.Location) == id
		}})
	}
	return append(out, facet{id: OtherCities, label: "Other Cities", icon: "globe", match: func(j JobPosting) bool {
		return cityBucket(j.Location) == OtherCities
	}})
}

// cityBucket возвращает идентификатор корзины города для строки локации.
func cityBucket(location string) string {
	loc := strings.ToLower(location)
	for _, c := range cities {
		if strings.Contains(loc, c.needle) {
			return c.id
		}
	}
	return OtherCities
}

func jobTypeIs(t JobType) func(JobPosting) bool {
	return func(j JobPosting) bool { return j.JobType == t }
}

func experienceIs(levels ...ExperienceLevel) func(JobPosting) bool {
	return func(j JobPosting) bool {
		for _, l := range levels {
			if j.ExperienceLevel == l {
				return true
			}
		}
		return false
	}
}

func isSeniorLevel(j JobPosting) bool {
	return j.ExperienceLevel == ExperienceSenior || j.ExperienceLevel == ExperienceExecutive
}

// lookup ищет фасет по идентификатору без учёта регистра и разделителей.
func lookup(catalogue []facet, id string) (facet, bool) {
	key := nlp.EnumKey(id)
	for _, f := range catalogue {
		if nlp.EnumKey(f.id) == key {
			return f, true
		}
	}
	return facet{}, false
}

package jobsearch_test

import (
	"time"

	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
)

func f64(v float64) *float64 { return &v }

var baseTime = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func ids(jobs []jobsearch.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

// scenarioJobs mirrors the two-posting end-to-end scenario.
func scenarioJobs() []jobsearch.JobPosting {
	return []jobsearch.JobPosting{
		{
			ID:              "J1",
			Title:           "Frontend Engineer",
			Company:         "Acme",
			Location:        "Mumbai, India",
			JobType:         jobsearch.JobTypeFullTime,
			ExperienceLevel: jobsearch.ExperienceSenior,
			SkillsRequired:  []string{"React"},
			Salary:          jobsearch.SalaryRange{Min: f64(80000), Max: f64(120000)},
			CreatedAt:       baseTime,
		},
		{
			ID:              "J2",
			Title:           "Backend Developer",
			Company:         "Globex",
			Location:        "Pune",
			JobType:         jobsearch.JobTypeContract,
			ExperienceLevel: jobsearch.ExperienceEntry,
			RemoteAllowed:   true,
			SkillsRequired:  []string{"Node"},
			CreatedAt:       baseTime.Add(time.Hour),
		},
	}
}

func mixedJobs() []jobsearch.JobPosting {
	return []jobsearch.JobPosting{
		{ID: "a", Title: "Go Developer", Company: "Initech", Location: "Bangalore", JobType: jobsearch.JobTypeFullTime,
			ExperienceLevel: jobsearch.ExperienceMid, SkillsRequired: []string{"Go", "PostgreSQL"},
			Salary: jobsearch.SalaryRange{Min: f64(900000), Max: f64(1400000)}, CreatedAt: baseTime.Add(-48 * time.Hour)},
		{ID: "b", Title: "Data Intern", Company: "Umbrella", Location: "New Delhi", JobType: jobsearch.JobTypeInternship,
			ExperienceLevel: jobsearch.ExperienceEntry, SkillsRequired: []string{"Python"},
			Salary: jobsearch.SalaryRange{Max: f64(20000)}, CreatedAt: baseTime.Add(-24 * time.Hour)},
		{ID: "c", Title: "Staff Engineer", Company: "Hooli", Location: "Remote", JobType: jobsearch.JobTypeFullTime,
			ExperienceLevel: jobsearch.ExperienceExecutive, RemoteAllowed: true, SkillsRequired: []string{"Go", "Kubernetes", "AWS"},
			Salary: jobsearch.SalaryRange{Min: f64(2500000)}, CreatedAt: baseTime},
		{ID: "d", Title: "Part-time Designer", Company: "Vandelay", Location: "Mumbai", JobType: jobsearch.JobTypePartTime,
			ExperienceLevel: jobsearch.ExperienceIntermediate, CreatedAt: baseTime.Add(-72 * time.Hour)},
		{ID: "e", Title: "Gig Writer", Company: "Pied Piper", Location: "Kochi", JobType: "gig",
			CreatedAt: baseTime.Add(-96 * time.Hour)},
	}
}

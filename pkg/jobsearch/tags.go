package jobsearch

import (
	"sort"
	"strings"
	"time"
)

// AvailableTags строит словарь тегов для фильтра: типы занятости, навыки и
// тег "remote", если есть хотя бы одна удалённая вакансия. Дубликаты с разным
// регистром схлопываются в первое встреченное написание.
func AvailableTags(jobs []JobPosting) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	remote := false
	for _, j := range jobs {
		add(string(j.JobType))
		for _, s := range j.SkillsRequired {
			add(s)
		}
		remote = remote || j.RemoteAllowed
	}
	if remote {
		add(remoteTerm)
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// PostedToday сообщает, опубликована ли вакансия в тот же календарный день, что и now
// (в часовом поясе now).
func PostedToday(j JobPosting, now time.Time) bool {
	if j.CreatedAt.IsZero() {
		return false
	}
	y1, m1, d1 := j.CreatedAt.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

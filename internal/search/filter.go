package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

// Known spellings of the big Vietnamese cities, consulted when a direct
// substring comparison fails.
var cityAliases = map[string][]string{
	"hà nội":      {"hanoi", "ha noi", "hn"},
	"hanoi":       {"hà nội", "ha noi", "hn"},
	"hồ chí minh": {"hcm", "ho chi minh", "tp.hcm"},
	"hcm":         {"hồ chí minh", "ho chi minh", "tp.hcm"},
	"đà nẵng":     {"danang", "da nang", "dn"},
	"danang":      {"đà nẵng", "da nang", "dn"},
}

var salaryNumberPattern = regexp.MustCompile(`[\d,]+`)

// withCityAliases widens a city filter with the known alternate
// spellings, so storage-level predicates see them as well.
func withCityAliases(cities []string) []string {
	if len(cities) == 0 {
		return nil
	}
	widened := make([]string, 0, len(cities))
	for _, city := range cities {
		widened = append(widened, city)
		widened = append(widened, cityAliases[strings.ToLower(city)]...)
	}
	return lo.Uniq(widened)
}

// FilterEngine applies structured filters to a candidate set. Dimensions
// combine with AND, values within a dimension with OR. Order is preserved.
type FilterEngine struct {
	analyzer Analyzer
}

func NewFilterEngine(analyzer Analyzer) *FilterEngine {
	return &FilterEngine{analyzer: analyzer}
}

func (e *FilterEngine) Apply(jobs []models.Job, filters Filters) []models.Job {
	if filters.IsEmpty() {
		return jobs
	}
	return lo.Filter(jobs, func(job models.Job, _ int) bool {
		return e.matches(job, filters)
	})
}

func (e *FilterEngine) matches(job models.Job, filters Filters) bool {
	features := e.analyzer.Analyze(job)
	content := strings.ToLower(job.Title + " " + job.Description + " " + job.Requirements)

	if len(filters.Cities) > 0 && !matchesCity(job.City, filters.Cities) {
		return false
	}

	if len(filters.Types) > 0 && !matchesType(job.Type, features.RemoteWorkType, filters.Types) {
		return false
	}

	if filters.SalaryMin > 0 || filters.SalaryMax > 0 {
		salary := ExtractSalary(job.Salary)
		if salary == 0 && job.Salary != "" && !strings.Contains(job.Salary, models.SalaryNegotiable) {
			log.Warnf("unparseable salary %q on job %s, treated as zero", job.Salary, job.ID)
		}
		if filters.SalaryMin > 0 && salary < filters.SalaryMin {
			return false
		}
		if filters.SalaryMax > 0 && salary > filters.SalaryMax {
			return false
		}
	}

	if len(filters.Fields) > 0 {
		jobField := strings.ToLower(job.Field)
		match := lo.SomeBy(filters.Fields, func(field string) bool {
			fieldLower := strings.ToLower(field)
			return substringEither(jobField, fieldLower) || strings.Contains(content, fieldLower)
		})
		if !match {
			return false
		}
	}

	if len(filters.Experience) > 0 {
		match := lo.SomeBy(filters.Experience, func(exp string) bool {
			expLower := strings.ToLower(exp)
			return substringEither(features.ExperienceLevel, expLower) || strings.Contains(content, expLower)
		})
		if !match {
			return false
		}
	}

	if len(filters.Skills) > 0 {
		match := lo.SomeBy(filters.Skills, func(skill string) bool {
			skillLower := strings.ToLower(skill)
			return lo.SomeBy(features.Skills, func(jobSkill string) bool {
				return substringEither(jobSkill, skillLower)
			})
		})
		if !match {
			return false
		}
	}

	if filters.RemoteWork != "" && features.RemoteWorkType != filters.RemoteWork {
		return false
	}

	return true
}

func matchesCity(jobCity string, wanted []string) bool {
	jobCityLower := strings.ToLower(jobCity)
	return lo.SomeBy(wanted, func(city string) bool {
		cityLower := strings.ToLower(city)
		if substringEither(jobCityLower, cityLower) {
			return true
		}
		for _, alias := range cityAliases[cityLower] {
			if substringEither(jobCityLower, alias) {
				return true
			}
		}
		return false
	})
}

func matchesType(jobType, remoteWorkType string, wanted []string) bool {
	comparable := strings.ToLower(jobType)
	// Content-detected remote mode widens the stored type, so a "remote"
	// filter can match a full-time posting done from home.
	if remoteWorkType == RemoteWork {
		comparable += " remote"
	}
	if remoteWorkType == HybridWork {
		comparable += " hybrid"
	}
	return lo.SomeBy(wanted, func(t string) bool {
		return substringEither(comparable, strings.ToLower(t))
	})
}

// ExtractSalary pulls the largest number out of a free-text salary. A
// "triệu" (or "tr") unit scales by a million. Unparseable text yields 0,
// which fails any positive salaryMin filter.
func ExtractSalary(salaryText string) int64 {
	if salaryText == "" {
		return 0
	}

	lowered := strings.ToLower(salaryText)
	groups := salaryNumberPattern.FindAllString(lowered, -1)

	var max int64
	for _, group := range groups {
		cleaned := strings.ReplaceAll(group, ",", "")
		if cleaned == "" {
			continue
		}
		value, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			continue
		}
		if value > max {
			max = value
		}
	}

	if max > 0 && (strings.Contains(lowered, "triệu") || strings.Contains(lowered, "tr")) {
		return max * 1_000_000
	}
	return max
}

func substringEither(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

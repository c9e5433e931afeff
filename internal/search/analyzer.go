package search

import (
	"strings"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

const (
	RemoteWork = "remote"
	HybridWork = "hybrid"
	OnsiteWork = "onsite"
)

const LevelNotSpecified = "not-specified"

// Features are derived from a job's free text on every search call; they
// are never persisted.
type Features struct {
	Skills          []string
	ExperienceLevel string
	RemoteWorkType  string
}

// Analyzer derives ContentFeatures from a job. Implemented by
// ContentAnalyzer and its caching decorator.
type Analyzer interface {
	Analyze(job models.Job) Features
}

type skillEntry struct {
	tag      string
	keywords []string
}

// Tables are ordered slices so that the derived skill list is stable
// across calls.
var skillTable = []skillEntry{
	{"javascript", []string{"javascript", "js", "nodejs", "node.js", "react", "vue", "angular"}},
	{"python", []string{"python", "django", "flask", "fastapi", "pandas"}},
	{"java", []string{"java", "spring", "springboot", "maven", "gradle"}},
	{"csharp", []string{"c#", "csharp", ".net", "asp.net"}},
	{"php", []string{"php", "laravel", "symfony", "wordpress"}},
	{"sql", []string{"sql", "mysql", "postgresql", "mongodb", "database"}},
	{"aws", []string{"aws", "amazon web services", "ec2", "s3", "lambda"}},
	{"docker", []string{"docker", "kubernetes", "k8s", "container"}},
	{"git", []string{"git", "github", "gitlab", "version control"}},
	{"communication", []string{"communication", "giao tiếp", "biểu hiện"}},
	{"leadership", []string{"leadership", "lãnh đạo", "quản lý", "đội nhóm"}},
	{"english", []string{"english", "tiếng anh", "communication skills"}},
	{"problem-solving", []string{"problem solving", "giải quyết vấn đề", "analytical"}},
}

type levelEntry struct {
	level    string
	patterns []string
}

// First match wins; the slice order is the precedence, fresher first.
var levelTable = []levelEntry{
	{"fresher", []string{"fresher", "new graduate", "sinh viên mới ra trường", "mới ra trường", "0-1 năm", "<1 năm"}},
	{"junior", []string{"junior", "nhân viên", "1-3 năm", "1 năm", "2 năm", "3 năm"}},
	{"mid-level", []string{"mid", "middle", "3-5 năm", "4 năm", "5 năm", "experienced"}},
	{"senior", []string{"senior", "chuyên viên", "5+ năm", "6+", "7+"}},
	{"lead", []string{"lead", "trưởng nhóm", "team lead", "technical lead"}},
	{"manager", []string{"manager", "quản lý", "head", "director", "giám đốc"}},
}

var remotePatterns = []string{
	"remote", "work from home", "wfh", "làm việc tại nhà", "online",
	"địa điểm linh hoạt", "hybrid", "linh hoạt", "flexible",
}

var onsitePatterns = []string{"onsite", "tại văn phòng", "có mặt", "office"}

// ContentAnalyzer is stateless; Analyze is deterministic and never fails,
// a job with empty text simply yields an empty feature set.
type ContentAnalyzer struct{}

func NewContentAnalyzer() *ContentAnalyzer {
	return &ContentAnalyzer{}
}

func (a *ContentAnalyzer) Analyze(job models.Job) Features {
	corpus := strings.ToLower(job.Title + " " + job.Description + " " + job.Requirements)
	typedCorpus := corpus + " " + strings.ToLower(job.Type)

	return Features{
		Skills:          extractSkills(corpus),
		ExperienceLevel: detectExperienceLevel(corpus),
		RemoteWorkType:  detectRemoteWork(typedCorpus),
	}
}

func extractSkills(corpus string) []string {
	var found []string
	for _, entry := range skillTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(corpus, keyword) {
				found = append(found, entry.tag)
				break
			}
		}
	}
	return found
}

func detectExperienceLevel(corpus string) string {
	for _, entry := range levelTable {
		for _, pattern := range entry.patterns {
			if strings.Contains(corpus, pattern) {
				return entry.level
			}
		}
	}
	return LevelNotSpecified
}

func detectRemoteWork(corpus string) string {
	remote := containsAny(corpus, remotePatterns)
	if !remote {
		return OnsiteWork
	}
	if containsAny(corpus, onsitePatterns) {
		return HybridWork
	}
	return RemoteWork
}

func containsAny(corpus string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(corpus, pattern) {
			return true
		}
	}
	return false
}

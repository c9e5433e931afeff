package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

func newTestScorer(now time.Time) *Scorer {
	scorer := NewScorer(NewContentAnalyzer())
	scorer.now = func() time.Time { return now }
	return scorer
}

func Test_ExactScore_TitleHitOutweighsDescriptionHit(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)
	terms := []string{"javascript"}

	inTitle := models.Job{Title: "Javascript Developer", CreatedAt: now}
	inDescription := models.Job{Description: "Cần biết javascript", CreatedAt: now}

	assert.Greater(t, scorer.ExactScore(inTitle, terms), scorer.ExactScore(inDescription, terms))
}

func Test_ExactScore_FreshCompleteJobScoresHigh(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	job := models.Job{
		Title:        "Senior JavaScript Developer",
		Description:  "Phát triển ứng dụng web với React",
		Requirements: "Thành thạo JavaScript, 5+ năm kinh nghiệm",
		Salary:       "30-40 triệu",
		CreatedAt:    now,
	}

	// Both terms hit title and requirements on the normalized and the
	// folded text, plus recency, salary and completeness bonuses.
	score := scorer.ExactScore(job, []string{"javascript", "developer"})
	assert.GreaterOrEqual(t, score, 200)
}

func Test_ExactScore_FoldedMatchScoresLowerThanDirectMatch(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	accented := models.Job{Title: "Kỹ sư cầu nối", CreatedAt: now}

	direct := scorer.ExactScore(accented, []string{"kỹ sư"})
	foldedOnly := scorer.ExactScore(accented, []string{"ky su"})

	assert.Greater(t, direct, foldedOnly)
	assert.Greater(t, foldedOnly, 0)
}

func Test_ExactScore_RecencyBonusDecaysWithAge(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)
	terms := []string{"marketing"}

	fresh := models.Job{Title: "Marketing Executive", CreatedAt: now.AddDate(0, 0, -1)}
	older := models.Job{Title: "Marketing Executive", CreatedAt: now.AddDate(0, 0, -20)}
	stale := models.Job{Title: "Marketing Executive", CreatedAt: now.AddDate(0, 0, -120)}

	assert.Greater(t, scorer.ExactScore(fresh, terms), scorer.ExactScore(older, terms))
	assert.Greater(t, scorer.ExactScore(older, terms), scorer.ExactScore(stale, terms))
}

func Test_ExactScore_NegotiableSalaryGetsNoSalaryBonus(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)
	terms := []string{"kế toán"}

	concrete := models.Job{Title: "Kế toán", Salary: "12 triệu", CreatedAt: now}
	negotiable := models.Job{Title: "Kế toán", Salary: models.SalaryNegotiable, CreatedAt: now}

	assert.Equal(t, 10, scorer.ExactScore(concrete, terms)-scorer.ExactScore(negotiable, terms))
}

func Test_AuxiliaryScore_SkillAgreementCountsWithoutDirectHit(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	// "javascript" never appears literally in the text, but the derived
	// skill set contains it.
	job := models.Job{
		Title:       "Frontend Developer",
		Description: "Xây dựng giao diện với React và Vue",
		CreatedAt:   now.AddDate(0, 0, -60),
	}

	assert.Greater(t, scorer.AuxiliaryScore(job, []string{"javascript"}), 0)
}

func Test_AuxiliaryScore_RemoteTermAgreesWithDetectedMode(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	remote := models.Job{Title: "Tester", Description: "work from home", CreatedAt: now.AddDate(0, 0, -60)}
	onsite := models.Job{Title: "Tester", Description: "làm tại văn phòng", CreatedAt: now.AddDate(0, 0, -60)}

	assert.Greater(t, scorer.AuxiliaryScore(remote, []string{"remote"}),
		scorer.AuxiliaryScore(onsite, []string{"remote"}))
}

func Test_AuxiliaryScore_UnrelatedJobStaysBelowThreshold(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	job := models.Job{Title: "Đầu bếp", CreatedAt: now.AddDate(0, 0, -200)}

	assert.Less(t, scorer.AuxiliaryScore(job, []string{"javascript"}), AuxiliaryScoreThreshold)
}

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Normalize_RemovesStopWordsAndPunctuation(t *testing.T) {
	assert.Equal(t, "lập trình viên javascript", Normalize("Lập trình viên và JavaScript!!!"))
	assert.Equal(t, "tuyển dụng gấp", Normalize("  Tuyển   dụng, gấp... "))
}

func Test_Normalize_WhenEmpty_ShouldReturnEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("và của cho"))
}

func Test_Tokenize_KeepsDuplicateTerms(t *testing.T) {
	terms := Tokenize("java java developer")
	assert.Equal(t, []string{"java", "java", "developer"}, terms)
}

func Test_Tokenize_WhenOnlyStopWords_ShouldReturnNil(t *testing.T) {
	assert.Nil(t, Tokenize("và của"))
	assert.Nil(t, Tokenize(""))
}

func Test_FoldDiacritics_MatchesAccentedAndUnaccented(t *testing.T) {
	assert.Equal(t, FoldDiacritics("ha noi"), FoldDiacritics("Hà Nội"))
	assert.Equal(t, "ha noi", FoldDiacritics("Hà Nội"))
}

func Test_FoldDiacritics_HandlesVietnameseD(t *testing.T) {
	assert.Equal(t, "da nang", FoldDiacritics("Đà Nẵng"))
	assert.Equal(t, "dong nai", FoldDiacritics("Đồng Nai"))
}

func Test_FoldDiacritics_WhenEmpty_ShouldReturnEmpty(t *testing.T) {
	assert.Equal(t, "", FoldDiacritics(""))
}

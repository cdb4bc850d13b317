package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRuleSet() *RuleSet {
	return NewRuleSet(
		[]string{"xuy", "jalab", "fuck"},
		[]string{"jamshid"},
	)
}

func TestClassifyTextProfanity(t *testing.T) {
	assert := assert.New(t)
	rules := testRuleSet()

	for _, text := range []string{
		"xuy",
		"XUY",
		"salom XuY bormisan",
		"fuck this",
	} {
		cat, ok := ClassifyText(text, rules)
		assert.True(ok, "text: %q", text)
		assert.Equal(CategoryProfanity, cat, "text: %q", text)
	}
}

func TestClassifyTextExceptionWins(t *testing.T) {
	assert := assert.New(t)
	rules := testRuleSet()

	// 同时命中禁用词和例外词时不算违规
	cat, ok := ClassifyText("xuy Jamshid", rules)
	assert.False(ok)
	assert.Equal(Category(""), cat)
}

func TestClassifyTextAdvertisement(t *testing.T) {
	assert := assert.New(t)
	rules := testRuleSet()

	for _, text := range []string{
		"kanalga obuna bo'ling t.me/kanal",
		"http://example.com",
		"https://example.com",
		"www.example.com",
	} {
		cat, ok := ClassifyText(text, rules)
		assert.True(ok, "text: %q", text)
		assert.Equal(CategoryAdvertisement, cat, "text: %q", text)
	}
}

func TestClassifyTextProfanityBeatsAdvertisement(t *testing.T) {
	assert := assert.New(t)
	rules := testRuleSet()

	// 两类同时命中时只报告 profanity
	cat, ok := ClassifyText("xuy https://example.com", rules)
	assert.True(ok)
	assert.Equal(CategoryProfanity, cat)
}

func TestClassifyTextClean(t *testing.T) {
	assert := assert.New(t)
	rules := testRuleSet()

	cat, ok := ClassifyText("assalomu alaykum", rules)
	assert.False(ok)
	assert.Equal(Category(""), cat)
}

func TestClassifyMediaThresholds(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		verdict Verdict
		flagged bool
	}{
		{Verdict{AdultScore: 50, ViolenceScore: 0}, true},
		{Verdict{AdultScore: 49, ViolenceScore: 24}, false},
		{Verdict{AdultScore: 0, ViolenceScore: 25}, true},
		{Verdict{AdultScore: 100, ViolenceScore: 100}, true},
		{Verdict{AdultScore: 0, ViolenceScore: 0}, false},
	}

	for _, c := range cases {
		cat, ok := ClassifyMedia(c.verdict)
		assert.Equal(c.flagged, ok, "verdict: %+v", c.verdict)
		if c.flagged {
			assert.Equal(CategoryAdultContent, cat, "verdict: %+v", c.verdict)
		}
	}
}

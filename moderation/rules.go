package moderation

import "strings"

// Category 违规类别
type Category string

const (
	CategoryProfanity     Category = "profanity"
	CategoryAdvertisement Category = "advertisement"
	CategoryAdultContent  Category = "adult_content"
)

// 广告判定使用的链接标记
var linkMarkers = []string{"t.me/", "http://", "https://", "www."}

// RuleSet 文本审查规则：禁用词与例外词，均为小写子串
type RuleSet struct {
	forbidden  []string
	exceptions []string
}

// NewRuleSet 构建规则集，所有词条统一转为小写
func NewRuleSet(forbidden, exceptions []string) *RuleSet {
	rs := &RuleSet{
		forbidden:  make([]string, 0, len(forbidden)),
		exceptions: make([]string, 0, len(exceptions)),
	}
	for _, w := range forbidden {
		if w = strings.TrimSpace(strings.ToLower(w)); w != "" {
			rs.forbidden = append(rs.forbidden, w)
		}
	}
	for _, w := range exceptions {
		if w = strings.TrimSpace(strings.ToLower(w)); w != "" {
			rs.exceptions = append(rs.exceptions, w)
		}
	}
	return rs
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// ClassifyText 对消息文本分类。命中禁用词且未命中例外词时返回
// profanity；否则文本包含链接标记时返回 advertisement。按此固定
// 顺序匹配，最多报告一个类别。
func ClassifyText(text string, rules *RuleSet) (Category, bool) {
	lower := strings.ToLower(text)

	if containsAny(lower, rules.forbidden) && !containsAny(lower, rules.exceptions) {
		return CategoryProfanity, true
	}
	if containsAny(lower, linkMarkers) {
		return CategoryAdvertisement, true
	}
	return "", false
}

// Verdict 外部视觉分类器的打分，0-100
type Verdict struct {
	AdultScore    int
	ViolenceScore int
}

// 媒体判定阈值。暴力阈值刻意低于成人内容阈值
const (
	adultScoreThreshold    = 50
	violenceScoreThreshold = 25
)

// ClassifyMedia 根据视觉分类器的打分判定媒体是否违规
func ClassifyMedia(v Verdict) (Category, bool) {
	if v.AdultScore >= adultScoreThreshold || v.ViolenceScore >= violenceScoreThreshold {
		return CategoryAdultContent, true
	}
	return "", false
}

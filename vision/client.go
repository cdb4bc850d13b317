// Package vision 封装 Google Cloud Vision SafeSearch 检测调用
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/therahmonqulov/serjantbek/moderation"
	"github.com/therahmonqulov/serjantbek/utils"
)

const defaultEndpoint = "https://vision.googleapis.com/v1/images:annotate"

// Client Vision API 客户端
type Client struct {
	Client   *http.Client
	APIKey   string
	Endpoint string
}

// NewClient 创建 Vision API 客户端，内部带重试和超时
func NewClient(apiKey string) *Client {
	return &Client{
		Client:   utils.RobustHTTPClient(),
		APIKey:   apiKey,
		Endpoint: defaultEndpoint,
	}
}

// schema: https://cloud.google.com/vision/docs/reference/rest/v1/images/annotate
type annotateRequest struct {
	Requests []annotateRequestEntry `json:"requests"`
}

type annotateRequestEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []annotateResponseEntry `json:"responses"`
}

type annotateResponseEntry struct {
	SafeSearchAnnotation *SafeSearch `json:"safeSearchAnnotation"`
}

// SafeSearch 各类别的五级可能性判定
type SafeSearch struct {
	Adult    string `json:"adult"`
	Spoof    string `json:"spoof"`
	Medical  string `json:"medical"`
	Violence string `json:"violence"`
	Racy     string `json:"racy"`
}

// 五级判定到 0-100 分值的映射，未知值按 0 处理
var likelihoodScores = map[string]int{
	"VERY_UNLIKELY": 0,
	"UNLIKELY":      25,
	"POSSIBLE":      50,
	"LIKELY":        75,
	"VERY_LIKELY":   100,
}

// LikelihoodScore 五级判定转分值
func LikelihoodScore(likelihood string) int {
	return likelihoodScores[likelihood]
}

// Verdict 转换为审查引擎使用的打分
func (s *SafeSearch) Verdict() moderation.Verdict {
	return moderation.Verdict{
		AdultScore:    LikelihoodScore(s.Adult),
		ViolenceScore: LikelihoodScore(s.Violence),
	}
}

// AnnotateSafeSearch 提交 base64 图片做 SafeSearch 检测。
// 图片没有判定结果时返回全空的 SafeSearch（各项按 0 分处理）。
func (c *Client) AnnotateSafeSearch(ctx context.Context, imageBase64 string) (*SafeSearch, error) {
	slog.Debug("提交图片做 SafeSearch 检测", "size", len(imageBase64))

	reqBody, err := json.Marshal(annotateRequest{
		Requests: []annotateRequestEntry{
			{
				Image:    annotateImage{Content: imageBase64},
				Features: []annotateFeature{{Type: "SAFE_SEARCH_DETECTION"}},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("key", c.APIKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	defer func() {
		visionAPIDuration.Observe(time.Since(start).Seconds())
	}()

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision 请求失败: %w", err)
	}
	defer res.Body.Close()

	visionAPICount.WithLabelValues(fmt.Sprint(res.StatusCode)).Inc()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision 请求失败 statusCode=%d", res.StatusCode)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("读取 vision 响应失败: %w", err)
	}

	var annotated annotateResponse
	if err := json.Unmarshal(resBody, &annotated); err != nil {
		return nil, fmt.Errorf("解析 vision 响应失败: %w", err)
	}

	if len(annotated.Responses) == 0 || annotated.Responses[0].SafeSearchAnnotation == nil {
		return &SafeSearch{}, nil
	}
	return annotated.Responses[0].SafeSearchAnnotation, nil
}

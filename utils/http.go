package utils

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// RobustHTTPClient 生成带重试的 HTTP 客户端。连接错误、5xx 和
// 429 会自动重试，对外仍是标准的 http.Client 接口。
func RobustHTTPClient() *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.HTTPClient.Timeout = 30 * time.Second
	retryClient.Logger = nil
	return retryClient.StandardClient()
}

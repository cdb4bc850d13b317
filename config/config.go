package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config 存储机器人的配置信息
type Config struct {
	Token          string   `json:"token"`           // Telegram Bot Token
	GoogleAPIKey   string   `json:"google_api_key"`  // Google Vision API Key
	WebhookURL     string   `json:"webhook_url"`     // Webhook 地址，为空时改用长轮询
	ListenAddr     string   `json:"listen_addr"`     // HTTP 监听地址
	DatabasePath   string   `json:"database_path"`   // SQLite数据库路径
	Debug          bool     `json:"debug"`           // 是否启用调试模式
	ForbiddenTerms []string `json:"forbidden_terms"` // 禁用词列表，为空时使用内置列表
	ExceptionTerms []string `json:"exception_terms"` // 例外词列表，为空时使用内置列表
}

// 内置禁用词列表
var defaultForbiddenTerms = []string{
	// o'zbekcha
	"jalab", "jalap", "xuet", "amdan", "dalbayop", "haromi", "sex", "jallab", "jala", "ambosh", "sikib", "kot",
	"kotbosh", "dalbayopmisiz", "nahuy", "qotoq", "qo'toq", "blyat", "qotoqbosh", "suka", "naxuy", "naxui",
	"og'zingga olgin", "poxuy", "pshnx", "pshnyx", "xaramxor", "haramxor", "poxui", "jalla", "bilat", "pizda",
	"pizdes", "pizdets", "pizdetz", "pidaraz", "xuy", "dalban", "dalpan", "yiban", "haramhor", "horomhor",
	"haromdan bolgan", "xaromi", "xaromdan", "chumo", "chumolik", "sikaman", "gandon", "gandonlik", "xuyet",
	"ittaraman", "seks", "dalbayob", "dalbayoblik", "dalbayobmisan", "xoromxor", "horomxor", "ske", "dnx", "naxxuy",
	"nahhuy", "barsa", "barsalona", "visca",
	// inglizcha
	"fuck",
}

// 内置例外词列表
var defaultExceptionTerms = []string{
	"jamshid",
}

// LoadConfig 从文件加载配置，环境变量中的密钥优先于文件
func LoadConfig(path string) (*Config, error) {
	var config Config

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 环境变量覆盖
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		config.Token = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		config.GoogleAPIKey = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		config.WebhookURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}

	// 设置默认值
	if config.DatabasePath == "" {
		config.DatabasePath = "./serjantbek.db"
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":3000"
	}
	if len(config.ForbiddenTerms) == 0 {
		config.ForbiddenTerms = defaultForbiddenTerms
	}
	if len(config.ExceptionTerms) == 0 {
		config.ExceptionTerms = defaultExceptionTerms
	}

	// 缺少必需密钥时启动失败
	if config.Token == "" {
		return nil, fmt.Errorf("缺少 BOT_TOKEN")
	}
	if config.GoogleAPIKey == "" {
		return nil, fmt.Errorf("缺少 GOOGLE_API_KEY")
	}

	return &config, nil
}

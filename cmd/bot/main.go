package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/therahmonqulov/serjantbek/config"
	"github.com/therahmonqulov/serjantbek/db"
	"github.com/therahmonqulov/serjantbek/handlers"
	"github.com/therahmonqulov/serjantbek/vision"
)

func main() {
	// 解析命令行参数
	configPath := flag.String("config", "config.json", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化数据库
	database, err := db.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	defer database.Close()

	// 初始化 Telegram Bot
	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("初始化 Telegram Bot 失败: %v", err)
	}

	// 设置调试模式
	bot.Debug = cfg.Debug
	log.Printf("授权账号 %s", bot.Self.UserName)

	// 创建消息处理器
	handler := handlers.New(bot, database, cfg, vision.NewClient(cfg.GoogleAPIKey))

	// 配置了 webhook 时走 webhook，否则走长轮询
	var updates tgbotapi.UpdatesChannel
	if cfg.WebhookURL != "" {
		wh, err := tgbotapi.NewWebhook(cfg.WebhookURL)
		if err != nil {
			log.Fatalf("构造 webhook 配置失败: %v", err)
		}
		if _, err := bot.Request(wh); err != nil {
			log.Fatalf("设置 webhook 失败: %v", err)
		}
		log.Printf("webhook 已设置为 %s", cfg.WebhookURL)
		updates = bot.ListenForWebhook("/bot")
	} else {
		updateConfig := tgbotapi.NewUpdate(0)
		updateConfig.Timeout = 60
		updates = bot.GetUpdatesChan(updateConfig)
	}

	// HTTP 服务承载 webhook 回调和 /metrics
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
			log.Fatalf("HTTP 服务异常退出: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("正在关闭...")
		bot.StopReceivingUpdates()
		os.Exit(0)
	}()

	// 每条更新独立处理，互不阻塞
	for update := range updates {
		update := update
		go func() {
			if err := handler.HandleUpdate(update); err != nil {
				log.Printf("处理更新失败: %v", err)
			}
		}()
	}
}

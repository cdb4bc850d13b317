package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	cache "github.com/patrickmn/go-cache"

	"github.com/therahmonqulov/serjantbek/config"
	"github.com/therahmonqulov/serjantbek/db"
	"github.com/therahmonqulov/serjantbek/db/models"
	"github.com/therahmonqulov/serjantbek/moderation"
	"github.com/therahmonqulov/serjantbek/utils"
	"github.com/therahmonqulov/serjantbek/vision"
)

// Handler 消息处理器
type Handler struct {
	Bot        *tgbotapi.BotAPI
	DB         *db.DB
	Config     *config.Config
	Rules      *moderation.RuleSet
	Ledger     *moderation.Ledger
	Enforcer   *moderation.Enforcer
	Vision     *vision.Client
	CommandMap map[string]func(message *tgbotapi.Message, args string) error

	logger     *slog.Logger
	httpClient *http.Client
	roleCache  *cache.Cache

	// 违规记录队列和保护锁
	violationQueue     []models.ViolationInfo
	violationQueueLock sync.Mutex
}

// New 创建一个新的处理器
func New(bot *tgbotapi.BotAPI, database *db.DB, cfg *config.Config, visionClient *vision.Client) *Handler {
	ledger := moderation.NewLedger()
	logger := slog.Default()

	h := &Handler{
		Bot:        bot,
		DB:         database,
		Config:     cfg,
		Rules:      moderation.NewRuleSet(cfg.ForbiddenTerms, cfg.ExceptionTerms),
		Ledger:     ledger,
		Enforcer:   moderation.NewEnforcer(&botActions{bot: bot}, ledger, logger),
		Vision:     visionClient,
		CommandMap: make(map[string]func(message *tgbotapi.Message, args string) error),
		logger:     logger,
		httpClient: utils.RobustHTTPClient(),
		roleCache:  cache.New(time.Minute, 5*time.Minute),
	}

	// 初始化命令映射
	h.CommandMap["start"] = h.HandleStart
	h.CommandMap["help"] = h.HandleHelp
	h.CommandMap["clear"] = h.HandleClear

	// 设置命令映射
	h.SetupCommands()

	// 启动批量落库goroutine
	go h.processViolationQueue()

	return h
}

// HandleUpdate 处理消息更新
func (h *Handler) HandleUpdate(update tgbotapi.Update) error {
	// 处理命令
	if update.Message != nil && update.Message.IsCommand() {
		return h.HandleCommand(update.Message)
	}

	// 处理普通消息
	if update.Message != nil {
		return h.HandleMessage(update.Message)
	}

	// 处理回调查询
	if update.CallbackQuery != nil {
		return h.HandleCallbackQuery(update.CallbackQuery)
	}

	// 处理机器人自身的成员状态变化
	if update.MyChatMember != nil {
		return h.HandleMyChatMember(update.MyChatMember)
	}

	return nil
}

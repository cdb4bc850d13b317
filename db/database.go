package db

import (
	"database/sql"
	"time"

	"github.com/therahmonqulov/serjantbek/db/models"
	_ "modernc.org/sqlite"
)

// DB 封装数据库连接和操作
type DB struct {
	conn *sql.DB
}

// New 创建一个新的数据库连接
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	if _, err := conn.Exec(`PRAGMA journal_mode=WAL;
		PRAGMA synchronous=NORMAL;
		PRAGMA busy_timeout=10000;
		PRAGMA cache_size=10000;
		PRAGMA temp_store=MEMORY;`); err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		return nil, err
	}

	return db, nil
}

// Close 关闭数据库连接
func (db *DB) Close() error {
	return db.conn.Close()
}

// init 初始化数据库表结构
func (db *DB) init() error {
	// 创建违规记录表
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS violations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chat_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			username TEXT,
			message_id INTEGER NOT NULL,
			category TEXT NOT NULL,
			message_text TEXT,
			recorded_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// 创建禁言记录表
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS mutes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chat_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			until TIMESTAMP NOT NULL,
			muted_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// BeginTx 开启一个事务
func (db *DB) BeginTx() (*sql.Tx, error) {
	return db.conn.Begin()
}

// LogViolation 记录一条违规
func (db *DB) LogViolation(info models.ViolationInfo) error {
	_, err := db.conn.Exec(`
		INSERT INTO violations (chat_id, user_id, username, message_id, category, message_text, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, info.ChatID, info.UserID, info.Username, info.MessageID, info.Category, info.MessageText, time.Now())
	return err
}

// LogViolationsBatch 在事务内批量记录违规，全部成功返回 true
func (db *DB) LogViolationsBatch(tx *sql.Tx, infos []models.ViolationInfo) bool {
	stmt, err := tx.Prepare(`
		INSERT INTO violations (chat_id, user_id, username, message_id, category, message_text, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return false
	}
	defer stmt.Close()

	now := time.Now()
	for _, info := range infos {
		if _, err := stmt.Exec(info.ChatID, info.UserID, info.Username,
			info.MessageID, info.Category, info.MessageText, now); err != nil {
			return false
		}
	}
	return true
}

// LogMute 记录一次禁言
func (db *DB) LogMute(chatID, userID int64, until time.Time) error {
	_, err := db.conn.Exec(`
		INSERT INTO mutes (chat_id, user_id, until, muted_at)
		VALUES (?, ?, ?, ?)
	`, chatID, userID, until, time.Now())
	return err
}

// GetStats 获取群组的统计信息
func (db *DB) GetStats(chatID int64) (*models.Stats, error) {
	stats := &models.Stats{
		ByCategory: make(map[string]int64),
	}

	err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM violations WHERE chat_id = ?
	`, chatID).Scan(&stats.TotalViolations)
	if err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`
		SELECT category, COUNT(*) FROM violations WHERE chat_id = ? GROUP BY category
	`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = db.conn.QueryRow(`
		SELECT COUNT(*) FROM mutes WHERE chat_id = ?
	`, chatID).Scan(&stats.TotalMutes)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

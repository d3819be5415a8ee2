package db

import (
	"fmt"

	"backoffice/internal/config"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect は設定のドライバでDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig(logger.Warn))
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}
}

// ファイルのSQLiteを開く（外部キー有効）
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(path+"?_foreign_keys=on", logger.Warn)
}

// テスト用のインメモリDB。呼ぶたびに別のDBになる。
func OpenMemory() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	return openSQLite(dsn, logger.Silent)
}

func openSQLite(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), gormConfig(level))
	if err != nil {
		return nil, err
	}

	//SQLiteは書き込みが1本なので接続も1本にする
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		//一意・外部キー違反をgormのエラーに変換
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}
}

package config

import (
	"fmt"

	"github.com/EXCALOFRIO/RonaldosVinicius/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB : 프리셋 마스터 데이터용 연결 (DB_DRIVER 미설정 시 nil)
var DB *gorm.DB

// Connect : DB_DRIVER에 맞는 GORM 연결 생성 후 테이블 마이그레이션
func Connect() error {
	if DBDriver == "" {
		Log.Info("DB_DRIVER 미설정: 내장 프리셋 카탈로그만 사용합니다")
		return nil
	}

	var dialector gorm.Dialector
	switch DBDriver {
	case "mysql":
		dialector = mysql.Open(GetDSN())
	case "postgres":
		dialector = postgres.Open(GetDSN())
	default:
		return fmt.Errorf("지원하지 않는 DB_DRIVER: %q", DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("%s 연결 실패: %w", DBDriver, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("커넥션 풀 조회 실패: %w", err)
	}
	sqlDB.SetMaxOpenConns(DBMaxOpenConns)

	// 프리셋 테이블이 없으면 자동으로 생성
	if err := database.AutoMigrate(&models.DrinkPreset{}); err != nil {
		return fmt.Errorf("AutoMigrate 실패: %w", err)
	}

	Log.Info("DB 연결 성공", zap.String("driver", DBDriver), zap.String("host", DBHost))
	DB = database
	return nil
}

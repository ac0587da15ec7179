package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// 환경변수 값들
var (
	// 서버 설정
	ServerPort     string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string // CORS 허용 Origin 목록

	// 로그 설정
	LogLevel string

	// DB 설정 (DBDriver가 비어 있으면 DB 없이 내장 프리셋만 사용)
	DBDriver   string
	DBUsername string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxOpenConns int

	// 프리셋 카탈로그 YAML 경로 (비어 있으면 내장 카탈로그)
	PresetsPath string

	// Prometheus /metrics 노출 여부
	MetricsEnabled bool
)

// LoadEnv : .env 파일에서 환경변수 로드
func LoadEnv() {
	// .env 파일 로드 (없으면 시스템 환경변수 사용)
	if err := godotenv.Load(); err != nil {
		log.Println(".env 파일을 찾을 수 없습니다. 시스템 환경변수를 사용합니다.")
	} else {
		log.Println(".env 파일 로드 완료")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "debug")
	AppEnv = getEnv("APP_ENV", "development")
	AllowedOrigins = getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	LogLevel = getEnv("LOG_LEVEL", "info")

	DBDriver = strings.ToLower(getEnv("DB_DRIVER", ""))
	DBUsername = getEnv("DB_USERNAME", "root")
	DBPassword = getEnv("DB_PASSWORD", "")
	DBHost = getEnv("DB_HOST", "127.0.0.1")
	DBPort = getEnv("DB_PORT", defaultDBPort(DBDriver))
	DBName = getEnv("DB_NAME", "bac_db")
	DBMaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", 10)

	PresetsPath = getEnv("PRESETS_PATH", "")
	MetricsEnabled = getEnvAsBool("METRICS_ENABLED", true)
}

// lookupEnv : 값이 있고 parse에 성공하면 그 값, 아니면 기본값
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := parse(raw)
	if err != nil {
		log.Printf("%s=%q 값을 해석할 수 없어 기본값을 사용합니다", key, raw)
		return defaultValue
	}
	return value
}

func getEnv(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(s string) (string, error) { return s, nil })
}

func getEnvAsInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func getEnvAsBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// getEnvAsSlice : 쉼표로 구분된 목록 (빈 항목은 버림)
func getEnvAsSlice(key string, defaultValue []string) []string {
	return lookupEnv(key, defaultValue, func(s string) ([]string, error) {
		var items []string
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return nil, errors.New("빈 목록")
		}
		return items, nil
	})
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

// GetDSN : 드라이버별 DB 연결 문자열 생성
func GetDSN() string {
	if DBDriver == "postgres" {
		return "host=" + DBHost + " user=" + DBUsername + " password=" + DBPassword +
			" dbname=" + DBName + " port=" + DBPort + " sslmode=disable"
	}
	return DBUsername + ":" + DBPassword + "@tcp(" + DBHost + ":" + DBPort + ")/" + DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

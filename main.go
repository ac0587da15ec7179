package main

import (
	"context"
	"log"
	"net/http"

	"github.com/EXCALOFRIO/RonaldosVinicius/config"
	"github.com/EXCALOFRIO/RonaldosVinicius/controllers"
	"github.com/EXCALOFRIO/RonaldosVinicius/middleware"
	"github.com/EXCALOFRIO/RonaldosVinicius/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 환경변수 로드 (.env 파일)
	config.LoadEnv()

	// 2. 로거 초기화
	if err := config.InitLogger(); err != nil {
		log.Fatal("로거 초기화 실패: ", err)
	}
	defer config.Log.Sync()

	// 3. DB 연결 (DB_DRIVER 설정 시에만)
	if err := config.Connect(); err != nil {
		config.Log.Fatal("DB 연결 실패! .env 파일을 확인해주세요", zap.Error(err))
	}

	// 4. 프리셋 카탈로그 초기화
	if err := services.InitPresetCatalog(context.Background(), config.PresetsPath, config.DB); err != nil {
		config.Log.Fatal("프리셋 카탈로그 초기화 실패", zap.Error(err))
	}

	// 5. 커스텀 검증 태그 등록
	if err := controllers.RegisterValidators(); err != nil {
		config.Log.Fatal("검증 태그 등록 실패", zap.Error(err))
	}

	gin.SetMode(config.GinMode)
	r := setupRouter()

	// 6. 서버 실행
	config.Log.Info("서버 시작", zap.String("addr", "http://localhost:"+config.ServerPort))
	if err := r.Run(":" + config.ServerPort); err != nil {
		config.Log.Fatal("서버 종료", zap.Error(err))
	}
}

// setupRouter : 미들웨어와 라우트 구성
func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(config.Log))

	if config.MetricsEnabled {
		middleware.AppMetrics = middleware.NewMetrics("bac")
		r.Use(middleware.AppMetrics.Handler())
		r.GET("/metrics", middleware.AppMetrics.Expose())
	}

	// CORS 설정 (프론트엔드 허용)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// API 라우팅 정의
	api := r.Group("/api")
	{
		// 시뮬레이션
		api.POST("/simulate", controllers.Simulate)              // 농도 시계열 + 요약
		api.POST("/concentration", controllers.GetConcentration) // 특정 시각 농도
		api.GET("/limits", controllers.GetLegalLimits)           // 법정 기준

		// 타임라인 편집
		api.POST("/timeline/resolve", controllers.ResolveTimeline)
		api.POST("/timeline/add", controllers.AddDrink)
		api.POST("/timeline/remove", controllers.RemoveDrink)
		api.POST("/timeline/update", controllers.UpdateDrink)
		api.POST("/timeline/preset", controllers.ApplyPreset)

		// 프리셋
		api.GET("/presets", controllers.GetPresets)
		api.GET("/presets/:kind/:key", controllers.GetPreset)
		api.GET("/durations", controllers.GetDurations)
		api.GET("/kinds", controllers.GetDrinkKinds)
	}

	return r
}

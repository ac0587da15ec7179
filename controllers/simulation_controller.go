package controllers

import (
	"net/http"

	"github.com/EXCALOFRIO/RonaldosVinicius/config"
	"github.com/EXCALOFRIO/RonaldosVinicius/middleware"
	"github.com/EXCALOFRIO/RonaldosVinicius/models"
	"github.com/EXCALOFRIO/RonaldosVinicius/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ========================================
// 알코올 농도 시뮬레이션 API
// ========================================

// Simulate : 음주 기록으로 농도 시계열과 요약 지표 계산 (핵심!)
// POST /api/simulate
func Simulate(c *gin.Context) {
	var input models.SimulateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit := unitOrDefault(input.Unit)

	series := services.Simulate(input.Drinks, input.Factors, unit)
	summary := services.Summarize(series, unit)

	middleware.AppMetrics.ObserveSimulation(string(unit), len(series))
	config.Log.Debug("simulation",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Int("drinks", len(input.Drinks)),
		zap.Int("samples", len(series)),
		zap.Float64("peak", summary.Peak.Value),
	)

	c.JSON(http.StatusOK, models.SimulateResponse{
		Unit:    unit,
		Series:  series,
		Summary: summary,
	})
}

// GetConcentration : 특정 시각의 농도 하나만 계산
// POST /api/concentration
func GetConcentration(c *gin.Context) {
	var input models.ConcentrationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit := unitOrDefault(input.Unit)

	bloodGL := services.Aggregate(input.Drinks, input.TimeMinutes, input.Factors)
	c.JSON(http.StatusOK, gin.H{
		"unit":          unit,
		"timeMinutes":   input.TimeMinutes,
		"concentration": services.ConvertConcentration(bloodGL, unit),
		"legalLimit":    services.LegalLimitFor(unit),
	})
}

// GetLegalLimits : 단위별 법정 기준 (일반 / 초보·직업)
// GET /api/limits
func GetLegalLimits(c *gin.Context) {
	c.JSON(http.StatusOK, services.LegalLimits)
}

// 단위를 안 보내면 혈중 농도
func unitOrDefault(unit models.Unit) models.Unit {
	if unit == "" {
		return models.UnitBlood
	}
	return unit
}

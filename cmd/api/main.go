package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KrE80r/energy-front/internal/api/handlers"
	"github.com/KrE80r/energy-front/internal/api/middleware"
	"github.com/KrE80r/energy-front/internal/config"
	"github.com/KrE80r/energy-front/internal/data"
	"github.com/KrE80r/energy-front/internal/logging"
)

func main() {
	cfgPath := os.Getenv("ENERGYFRONT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	var cfg *config.Config
	if _, err := os.Stat(cfgPath); err == nil {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			logging.Logger.Fatal("load config", zap.String("path", cfgPath), zap.Error(err))
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Logger.Fatal("init logging", zap.Error(err))
	}
	defer logging.Sync()

	plansPath := cfg.PlansFile
	if env := os.Getenv("ENERGYFRONT_PLANS"); env != "" {
		plansPath = env
	}
	if plansPath == "" {
		logging.Logger.Fatal("no plans file configured (plans_file or ENERGYFRONT_PLANS)")
	}

	records, skipped, err := data.LoadPlans(plansPath)
	if err != nil {
		logging.Logger.Fatal("load plans", zap.String("path", plansPath), zap.Error(err))
	}
	for _, serr := range skipped {
		logging.Logger.Warn("skipped malformed plan", zap.Error(serr))
	}
	records = cfg.FilterRecords(records)
	logging.Logger.Info("plans loaded",
		zap.String("path", plansPath),
		zap.Int("records", len(records)),
		zap.Int("skipped", len(skipped)),
	)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	rankHandler := handlers.NewRankHandler(records)
	calculateHandler := handlers.NewCalculateHandler(records)
	plansHandler := handlers.NewPlansHandler(records)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "plans": len(records)})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/rank", rankHandler.RankPlans)
		api.POST("/calculate", calculateHandler.CalculatePlan)
		api.GET("/plans", plansHandler.ListPlans)
		api.GET("/personas", handlers.ListPersonas)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logging.Logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logging.Logger.Fatal("server exited", zap.Error(err))
	}
}

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v3"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/api"
	"github.com/vieclamviet/job-search/internal/api/handlers"
	"github.com/vieclamviet/job-search/internal/api/middleware"
	"github.com/vieclamviet/job-search/internal/config"
	"github.com/vieclamviet/job-search/internal/logger"
	"github.com/vieclamviet/job-search/internal/metrics"
	"github.com/vieclamviet/job-search/internal/repositories"
	"github.com/vieclamviet/job-search/internal/search"
	"github.com/vieclamviet/job-search/internal/services"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)
	behaviors := repositories.NewBehaviorsRepository(dbContext.DB)

	cleaner, err := services.NewJobsCleaner(jobs)
	if err != nil {
		log.Fatalf("can't create jobs cleaner: %v", err)
	}
	defer cleaner.Stop()

	bus := EventBus.New()

	tracker, err := services.NewBehaviorTracker(bus, behaviors)
	if err != nil {
		log.Fatalf("can't create behavior tracker: %v", err)
	}

	analyzer := search.NewCachedAnalyzer(search.NewContentAnalyzer())
	searchService := search.NewService(jobs, analyzer)
	suggester := search.NewSuggester(jobs)
	recommender := search.NewRecommender(jobs)

	server := api.NewServer(cfg.Server.Port,
		[]fiber.Handler{
			middleware.AccessLog(),
			middleware.RateLimit(cfg.Server.MaxRequestsPerSecond),
		},
		handlers.NewSearchHandler(searchService, tracker, bus,
			cfg.Search.DefaultPageSizeOrDefault(), cfg.Search.MaxPageSizeOrDefault()),
		handlers.NewCatalogHandler(suggester, cfg.Search.SuggestionLimitOrDefault()),
		handlers.NewRecommendationsHandler(recommender, tracker,
			cfg.Search.DefaultPageSizeOrDefault(), cfg.Search.MaxPageSizeOrDefault()),
		handlers.NewJobsHandler(jobs, bus),
	)

	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}
	log.Info("Services stopped.")
}

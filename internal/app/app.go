package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/petiteligue/ligue-api/internal/config"
	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/infrastructure/repository/memory"
	"github.com/petiteligue/ligue-api/internal/infrastructure/repository/postgres"
	"github.com/petiteligue/ligue-api/internal/interfaces/httpapi"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
	"github.com/petiteligue/ligue-api/internal/platform/logging"
	"github.com/petiteligue/ligue-api/internal/usecase"
)

// App owns the HTTP server and the storage handle behind it.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	storeTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		storeTTL = -1
	}
	store := cache.NewStore(storeTTL)

	var (
		teamRepo   team.Repository
		seasonRepo season.Repository
		matchRepo  match.Repository
		ratingRepo rating.Repository
		db         *sqlx.DB
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		teamRepo = postgres.NewTeamRepository(db)
		seasonRepo = postgres.NewSeasonRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		ratingRepo = postgres.NewRatingRepository(db)
		logger.Info("storage ready", "driver", cfg.StorageDriver, "database", dbNameFromURL(cfg.DBURL))
	default:
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		seasonRepo = memory.NewSeasonRepository(memory.SeedSeasons())
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
		ratingRepo = memory.NewRatingRepository()
		logger.Info("storage ready", "driver", cfg.StorageDriver)
	}

	ratingSvc := usecase.NewRatingService(seasonRepo, teamRepo, matchRepo, ratingRepo, store, logger)
	handler := httpapi.NewHandler(
		usecase.NewTeamService(teamRepo),
		usecase.NewSeasonService(seasonRepo, matchRepo, teamRepo, store),
		usecase.NewMatchService(matchRepo, seasonRepo, teamRepo, store),
		ratingSvc,
		usecase.NewStandingsService(seasonRepo, teamRepo, matchRepo, store),
		usecase.NewRecomputeService(seasonRepo, ratingSvc, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

// Close releases resources the app holds beyond the HTTP server.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

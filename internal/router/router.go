package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "redpanda-site/docs"
	"redpanda-site/internal/adapters/assets"
	"redpanda-site/internal/adapters/catalog"
	"redpanda-site/internal/adapters/storage/local"
	"redpanda-site/internal/adapters/storage/memory"
	pg "redpanda-site/internal/adapters/storage/postgres"
	"redpanda-site/internal/config"
	"redpanda-site/internal/domain/diary"
	"redpanda-site/internal/domain/pandas"
	"redpanda-site/internal/middleware"
	"redpanda-site/internal/platform/httpclient"
	"redpanda-site/internal/platform/logger"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger

	// Inyectables para tests; si vienen nil se arma la pila real
	// (Excel remoto + snapshot, HEADs al bucket, Postgres por DSN o
	// in-memory).
	Loader    pandas.Loader
	Checker   assets.ExistenceChecker
	DiaryRepo diary.Repository
	Uploads   diary.ImageStore
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	loader := opts.Loader
	if loader == nil {
		loader = catalog.NewCachedLoader(
			catalog.NewLoader(
				httpclient.New(cfg.FetchTimeout),
				catalog.LoaderOptions{
					SourceURL:    cfg.SourceURL,
					FallbackPath: cfg.FallbackPath,
					HeaderRows:   cfg.HeaderRows,
				},
				log,
			),
			catalog.DefaultCacheTTL,
		)
	}

	checker := opts.Checker
	if checker == nil {
		checker = assets.NewHTTPChecker(httpclient.New(cfg.ProbeTimeout), cfg.AssetBaseURL)
	}
	resolver := assets.NewCachedResolver(assets.NewResolver(checker), assets.DefaultCacheTTL)

	diaryRepo := opts.DiaryRepo
	if diaryRepo == nil {
		if cfg.DatabaseDSN != "" {
			if db, err := pg.Open(cfg.DatabaseDSN); err == nil {
				diaryRepo = pg.NewDiaryRepo(db)
			} else {
				log.Warn("postgres unavailable, falling back to in-memory diary", map[string]any{"err": err.Error()})
			}
		}
		if diaryRepo == nil {
			diaryRepo = memory.NewDiaryRepo()
		}
	}

	uploads := opts.Uploads
	if uploads == nil {
		store, err := local.NewUploadStore(cfg.UploadDir)
		if err != nil {
			log.Error("upload dir unusable, storing in temp dir", map[string]any{"dir": cfg.UploadDir, "err": err.Error()})
			store, _ = local.NewUploadStore(os.TempDir())
		}
		uploads = store
		if store != nil {
			r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.Dir()))))
		}
	}

	pandasSvc := pandas.NewService(loader, resolver)
	diarySvc := diary.NewService(diaryRepo, uploads)

	pandas.RegisterRoutes(r, pandasSvc, diarySvc, cfg.AssetBaseURL)
	diary.RegisterRoutes(r, diarySvc, pandasSvc)

	return r
}

package router

import (
	"database/sql"
	"net/http"
	"time"

	"straysense/internal/adapters/auth/jwtauth"
	mem "straysense/internal/adapters/storage/memory"
	pg "straysense/internal/adapters/storage/postgres"
	"straysense/internal/domain/adoptions"
	"straysense/internal/domain/animals"
	"straysense/internal/domain/sessions"
	"straysense/internal/domain/shelters"
	"straysense/internal/domain/stats"
	"straysense/internal/domain/strayreports"
	"straysense/internal/domain/users"
	"straysense/internal/domain/vaccinations"
	"straysense/internal/middleware"
	"straysense/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory (solo dev).
	DB *sql.DB

	JWTSecret     string
	AdminPassword string
	SessionTTL    time.Duration

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	var (
		usersRepo        users.Repository
		sessionsRepo     sessions.Repository
		animalsRepo      animals.Repository
		sheltersRepo     shelters.Repository
		reportsRepo      strayreports.Repository
		adoptionsRepo    adoptions.Repository
		vaccinationsRepo vaccinations.Repository
		statsRepo        stats.Repository
	)

	if opts.DB != nil {
		usersRepo = pg.NewUsersRepo(opts.DB)
		sessionsRepo = pg.NewSessionsRepo(opts.DB)
		animalsRepo = pg.NewAnimalsRepo(opts.DB)
		sheltersRepo = pg.NewSheltersRepo(opts.DB)
		reportsRepo = pg.NewStrayReportsRepo(opts.DB)
		adoptionsRepo = pg.NewAdoptionsRepo(opts.DB)
		vaccinationsRepo = pg.NewVaccinationsRepo(opts.DB)
		statsRepo = pg.NewStatsRepo(opts.DB)
	} else {
		memUsers := mem.NewUsersRepo()
		memAnimals := mem.NewAnimalsRepo()
		memShelters := mem.NewSheltersRepo()
		memReports := mem.NewStrayReportsRepo(memUsers)
		memAdoptions := mem.NewAdoptionsRepo(memAnimals, memUsers)
		memVaccinations := mem.NewVaccinationsRepo(memAnimals)

		usersRepo = memUsers
		sessionsRepo = mem.NewSessionsRepo()
		animalsRepo = memAnimals
		sheltersRepo = memShelters
		reportsRepo = memReports
		adoptionsRepo = memAdoptions
		vaccinationsRepo = memVaccinations
		statsRepo = mem.NewStatsRepo(memUsers, memAnimals, memReports, memShelters, memAdoptions, memVaccinations)

		if opts.Logger != nil {
			opts.Logger.Warn("no DB configured, using in-memory storage", nil)
		}
	}

	codec := jwtauth.New(opts.JWTSecret)

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	sessionsSvc := sessions.NewService(sessionsRepo, usersSvc, codec, codec, opts.SessionTTL, opts.AdminPassword)
	reportsSvc := strayreports.NewService(reportsRepo)
	animalsSvc := animals.NewService(animalsRepo, reportsSvc)
	sheltersSvc := shelters.NewService(sheltersRepo, animalsSvc)
	adoptionsSvc := adoptions.NewService(adoptionsRepo, usersSvc)
	vaccinationsSvc := vaccinations.NewService(vaccinationsRepo)
	statsSvc := stats.NewService(statsRepo)

	sessionGate := middleware.RequireSession(sessionsSvc)
	adminGate := middleware.RequireAdmin(codec)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, sessionGate)
		sessions.RegisterRoutes(api, sessionsSvc, sessionGate)
		animals.RegisterRoutes(api, animalsSvc, adminGate)
		shelters.RegisterRoutes(api, sheltersSvc, adminGate)
		strayreports.RegisterRoutes(api, reportsSvc, sessionGate, adminGate)
		adoptions.RegisterRoutes(api, adoptionsSvc, sessionGate, adminGate)
		vaccinations.RegisterRoutes(api, vaccinationsSvc, sessionGate, adminGate)
		stats.RegisterRoutes(api, statsSvc, adminGate)
	})

	return r
}

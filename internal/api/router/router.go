package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "petshop/docs" // registra a especificação swagger
	"petshop/internal/api/auth"
	"petshop/internal/api/catalog"
	"petshop/internal/api/client"
	"petshop/internal/api/pet"
	"petshop/internal/api/schedule"
	"petshop/internal/domain"
	"petshop/internal/pkg/httpresp"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/middleware"
	"petshop/internal/pkg/validation"
	"petshop/internal/service/authservice"
	"petshop/internal/service/catalogservice"
	"petshop/internal/service/clientservice"
	"petshop/internal/service/petservice"
	"petshop/internal/service/reportservice"
	"petshop/internal/service/scheduleservice"
)

// Handlers reúne os handlers já montados de cada recurso.
type Handlers struct {
	Client   *client.Handler
	Pet      *pet.Handler
	Catalog  *catalog.Handler
	Schedule *schedule.Handler
	Auth     *auth.Handler // nil quando o login está desabilitado
}

// TokenIssuer é o serviço de tokens usado tanto no login quanto no middleware de autenticação.
type TokenIssuer interface {
	authservice.TokenIssuer
	middleware.TokenService
}

// NewHandlers monta a cadeia Repository -> Service -> Handler sobre store.
// Com tokens nil a rota de login não é registrada.
func NewHandlers(store domain.Store, tokens TokenIssuer, operator authservice.Operator, log logger.Logger) Handlers {
	resp := httpresp.New(log, validation.New())

	clientSvc := clientservice.NewService(store.Clients, store.Pets, store.Schedules, log)
	petSvc := petservice.NewService(store.Pets, store.Clients, store.Schedules, log)
	catalogSvc := catalogservice.NewService(store.Services, log)
	scheduleSvc := scheduleservice.NewService(store.Schedules, store.Clients, store.Pets, store.Services, log)
	reportSvc := reportservice.NewService(store.Clients, store.Pets, store.Services, store.Schedules, log)

	h := Handlers{
		Client:   client.NewHandler(clientSvc, reportSvc, resp),
		Pet:      pet.NewHandler(petSvc, resp),
		Catalog:  catalog.NewHandler(catalogSvc, reportSvc, resp),
		Schedule: schedule.NewHandler(scheduleSvc, reportSvc, resp),
	}
	if tokens != nil {
		h.Auth = auth.NewHandler(authservice.NewService(operator, tokens, log), resp)
	}
	return h
}

// Options controla os middlewares opcionais.
type Options struct {
	Logger logger.Logger
	// Tokens nil desliga a exigência de JWT nas rotas de escrita.
	Tokens middleware.TokenService
	// RateLimit nil desliga a limitação de requisições.
	RateLimit func(http.Handler) http.Handler
	// Registry recebe as métricas HTTP; nil cria um registro próprio.
	Registry *prometheus.Registry
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Handler)
	if opts.RateLimit != nil {
		r.Use(opts.RateLimit)
	}

	// rotas de infraestrutura
	r.Get("/health", HealthHandler)
	r.Get("/ping", PingHandler)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// escrita exige token de admin quando a autenticação está ligada
	guard := func(r chi.Router) chi.Router {
		if opts.Tokens == nil {
			return r
		}
		return r.With(middleware.NewAuthMiddleware(opts.Tokens), middleware.PermissionMiddleware(domain.RoleAdmin))
	}

	if h.Auth != nil {
		r.Post("/auth/login", h.Auth.LoginHandler)
	}

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.Client.ListClientsHandler)
		r.Get("/total/schedules/by/client", h.Client.ClientTotalsHandler)
		r.Get("/{clientID}", h.Client.GetClientByIDHandler)
		r.Get("/{clientID}/schedules", h.Client.ClientSchedulesHandler)

		w := guard(r)
		w.Post("/", h.Client.CreateClientHandler)
		w.Put("/{clientID}", h.Client.UpdateClientHandler)
		w.Patch("/{clientID}", h.Client.UpdateClientHandler)
		w.Delete("/{clientID}", h.Client.DeleteClientHandler)
	})

	r.Route("/pets", func(r chi.Router) {
		r.Get("/", h.Pet.ListPetsHandler)
		r.Get("/{petName}/pet-name", h.Pet.SearchPetsHandler)
		r.Get("/{clientID}", h.Pet.ListPetsByClientHandler)

		w := guard(r)
		w.Post("/{clientID}/pet", h.Pet.CreatePetHandler)
		w.Put("/{clientID}/pets/{petID}", h.Pet.UpdatePetHandler)
		w.Patch("/{clientID}/pets/{petID}", h.Pet.UpdatePetHandler)
		w.Delete("/{clientID}/pets/{petID}", h.Pet.DeletePetHandler)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.Catalog.ListServicesHandler)
		r.Get("/category-price", h.Catalog.ServicesByPriceBandHandler)
		r.Get("/total-services", h.Catalog.CountServicesHandler)
		r.Get("/{serviceID}", h.Catalog.GetServiceByIDHandler)

		w := guard(r)
		w.Post("/", h.Catalog.CreateServiceHandler)
		w.Put("/{serviceID}", h.Catalog.UpdateServiceHandler)
		w.Patch("/{serviceID}", h.Catalog.UpdateServiceHandler)
		w.Delete("/{serviceID}", h.Catalog.DeleteServiceHandler)
	})

	r.Route("/schedules", func(r chi.Router) {
		r.Get("/", h.Schedule.ListSchedulesHandler)
		r.Get("/total/schedules", h.Schedule.CountSchedulesHandler)
		r.Get("/{scheduleID}", h.Schedule.GetScheduleByIDHandler)
		r.Get("/{scheduleID}/detail", h.Schedule.ScheduleDetailHandler)

		w := guard(r)
		w.Post("/", h.Schedule.CreateScheduleHandler)
		w.Put("/{scheduleID}", h.Schedule.UpdateScheduleHandler)
		w.Patch("/{scheduleID}", h.Schedule.UpdateScheduleHandler)
		w.Delete("/{scheduleID}", h.Schedule.DeleteScheduleHandler)
	})

	return r
}

// HealthHandler informa que o processo está de pé.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

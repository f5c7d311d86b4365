package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/infra"
	"github.com/xela07ax/mrfashion-backend/internal/infra/auth"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/handler"
	"go.uber.org/zap"
)

type Server struct {
	router  *chi.Mux
	logger  *zap.Logger
	cfg     *infra.Config
	metrics *infra.Metrics

	// Проверка подписи токена (HS256)
	authValidator auth.TokenValidator

	// Свежая проверка роли в БД на каждый привилегированный запрос
	roles RoleChecker

	authHandler     *handler.AuthHandler     // /authentication
	userHandler     *handler.UserHandler     // /users, /user/{email}
	productHandler  *handler.ProductHandler  // /products
	wishlistHandler *handler.WishlistHandler // /wishlists
}

// NewServer собирает HTTP-сервер витрины со всеми зависимостями.
func NewServer(
	cfg *infra.Config,
	logger *zap.Logger,
	metrics *infra.Metrics,
	reg *prometheus.Registry,
	authValidator auth.TokenValidator,
	roles RoleChecker,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	productH *handler.ProductHandler,
	wishlistH *handler.WishlistHandler,
) *Server {
	s := &Server{
		router:          chi.NewRouter(),
		logger:          logger.Named("storefront-api"),
		cfg:             cfg,
		metrics:         metrics,
		authValidator:   authValidator,
		roles:           roles,
		authHandler:     authH,
		userHandler:     userH,
		productHandler:  productH,
		wishlistHandler: wishlistH,
	}

	s.routes(reg)
	return s
}

func (s *Server) routes(reg *prometheus.Registry) {
	r := s.router

	// --- 1. Глобальные инфраструктурные Middleware (для всех) ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.metricsMiddleware)

	// --- 2. ПУБЛИЧНЫЕ РОУТЫ ---
	r.Group(func(r chi.Router) {
		// Liveness
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("Mr. Fashion server is running..!"))
		})
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		if reg != nil {
			r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		}

		// Выпуск токена доступен без токена
		r.Post("/authentication", s.authHandler.IssueToken)

		// Регистрация и чтение пользователей
		r.Post("/users", s.userHandler.Create)
		r.Get("/users", s.userHandler.List)
		r.Get("/user/{email}", s.userHandler.GetByEmail)

		// Каталог открыт для витрины
		r.Get("/products", s.productHandler.Catalog)
		r.Get("/products/{email}", s.productHandler.BySeller)

		// Добавление и чтение вишлиста
		r.Post("/wishlists", s.wishlistHandler.Add)
		r.Get("/wishlists/{email}", s.wishlistHandler.List)
	})

	// --- 3. ЗАЩИЩЕННЫЙ ПЕРИМЕТР (Требуют bearer-токен) ---
	r.Group(func(r chi.Router) {
		r.Use(auth.NewMiddleware(s.authValidator, s.logger))

		// Создание товара — только для роли seller, роль читается из БД
		r.With(s.requireRole(domain.RoleSeller)).Post("/products", s.productHandler.Create)

		// Остальные мутации требуют аутентификации, но не роли
		r.Put("/users/{id}", s.userHandler.UpdateRole)
		r.Delete("/users/{id}", s.userHandler.Delete)
		r.Put("/products/{id}", s.productHandler.Update)
		r.Delete("/products/{id}", s.productHandler.Delete)
		r.Delete("/wishlists/{id}", s.wishlistHandler.Delete)
	})
}

// ServeHTTP позволяет использовать Server как стандартный http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

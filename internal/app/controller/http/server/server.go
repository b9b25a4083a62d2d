package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/laundrypro/go-laundry-service/internal/app/config"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/auth"
	cart_controller "github.com/laundrypro/go-laundry-service/internal/app/controller/http/cart"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/middleware/logger"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/middleware/role"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/middleware/token"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/orders"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/services"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/stats"
	storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/model"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/notification"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	carts         *cart.Store
	notifications *notification.Center

	authenticator auth.AuthUser
	catalog       services.Services
	cartHandlers  cart_controller.Cart
	orderHandlers orders.Order
	dashboard     stats.Stats
}

func New(config config.Config, storage storage.Storage) *HTTPServer {
	carts := cart.NewStore()
	notifications := notification.NewCenter(config.NotificationTTL)

	authenticator := auth.New(storage)
	catalog := services.New(storage)
	cartHandlers := cart_controller.New(storage, carts, notifications)
	orderHandlers := orders.New(storage, carts, notifications)
	dashboard := stats.New(storage)

	mux := createMux(authenticator, catalog, cartHandlers, orderHandlers, dashboard)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:        server,
		config:        config,
		storage:       storage,
		carts:         carts,
		notifications: notifications,
		authenticator: authenticator,
		catalog:       catalog,
		cartHandlers:  cartHandlers,
		orderHandlers: orderHandlers,
		dashboard:     dashboard,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(
	authenticator auth.AuthUser,
	catalog services.Services,
	cartHandlers cart_controller.Cart,
	orderHandlers orders.Order,
	dashboard stats.Stats,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	r.Use(token.TokenParserMiddleware)

	r.Post("/api/auth/register", authenticator.RegisterUser())
	r.Post("/api/auth/login", authenticator.AuthenticateUser())

	r.Get("/api/services", catalog.ListActive())

	r.Get("/api/cart", cartHandlers.GetCart())
	r.Post("/api/cart/items", cartHandlers.AddItem())
	r.Put("/api/cart/items/{serviceID}", cartHandlers.UpdateQuantity())
	r.Delete("/api/cart/items/{serviceID}", cartHandlers.RemoveItem())
	r.Delete("/api/cart", cartHandlers.ClearCart())
	r.Put("/api/cart/details", cartHandlers.UpdateDetails())

	r.Get("/api/notifications", cartHandlers.GetNotifications())
	r.Delete("/api/notifications/{notificationID}", cartHandlers.DismissNotification())

	r.Post("/api/orders", orderHandlers.SubmitOrder())
	r.Get("/api/orders", orderHandlers.GetUserOrders())
	r.Get("/api/orders/{orderID}", orderHandlers.GetOrder())

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(role.AdminMiddleware)

		r.Get("/services", catalog.ListAll())
		r.Post("/services", catalog.CreateService())
		r.Put("/services/{serviceID}", catalog.UpdateService())
		r.Delete("/services/{serviceID}", catalog.DeleteService())

		r.Get("/orders", orderHandlers.ListOrders())
		r.Put("/orders/{orderID}/status", orderHandlers.UpdateStatus())

		r.Get("/dashboard", dashboard.GetDashboard())
	})

	return r
}

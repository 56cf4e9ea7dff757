package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-client/config"
	"hotel-client/controllers"
	"hotel-client/jobs"
	middlewares "hotel-client/middleware"
	"hotel-client/routes"
	"hotel-client/services"
	"hotel-client/services/logger"
	"hotel-client/services/notification"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	router, m, c := config.InitApp(cfg)

	session := services.NewSession(appLogger)
	backend := services.NewBackendClient(services.BackendClientOptions{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
		Session: session,
		Logger:  appLogger,
	})

	var cache services.RoomCache
	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, room snapshot cache disabled: %v", err)
	} else if rdb != nil {
		defer rdb.Close()
		cache = services.NewRedisRoomCache(rdb, cfg.RoomCacheTTL)
	}

	view := services.NewRoomView(services.RoomViewOptions{
		Fetcher: backend,
		Session: session,
		Cache:   cache,
		Logger:  appLogger,
	})
	view.Subscribe(notification.NewRoomBroadcaster(notification.NewMelodyService(m), appLogger))

	stream := services.NewAvailabilityStream(services.AvailabilityStreamOptions{
		URL:    backend.BaseURL() + services.AvailabilityStreamPath,
		Sink:   view,
		Logger: appLogger,
	})
	stream.Start(ctx)

	// a new login reopens the stream if it has closed and shows the
	// cached rooms until the first fetch lands
	session.Subscribe(func(ev services.SessionEvent) {
		if _, ok := ev.(services.LoggedIn); ok {
			view.Warm(ctx)
			stream.Start(ctx)
		}
	})

	facade := services.NewBookingFacade(services.BookingFacadeOptions{
		Backend: backend,
		Rooms:   view,
		Session: session,
		Logger:  appLogger,
	})

	if err := jobs.InitCronJobs(c, cfg.RefreshSpec, view, session, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	controllers.NewLiveController(m, view, appLogger).Register()
	config.InitWebSocket(router, m, middlewares.RequireSession(session))

	routes.SetupRoutes(router, session, routes.Controllers{
		Auth: controllers.NewAuthController(controllers.AuthControllerOptions{
			Backend: backend,
			Session: session,
			Rooms:   view,
			Logger:  appLogger,
		}),
		Rooms: controllers.NewRoomController(controllers.RoomControllerOptions{
			Backend: backend,
			View:    view,
			Stream:  stream,
			Logger:  appLogger,
		}),
		Bookings: controllers.NewBookingController(facade),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s, backend %s", cfg.Port, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stop()
	m.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/config"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/database"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/handler"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/repository"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/service"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/storage"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/logger"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/metrics"
	"github.com/ramonfbmiranda/arquivosmaverick/pkg/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

// pinger is satisfied by every backing service the readiness probe checks.
type pinger func(ctx context.Context) error

// app carries the runtime dependencies the router needs.
type app struct {
	cfg     *config.Config
	store   *repository.Store
	redis   *redis.Client
	uploads *storage.MinIOStorage
	deps    map[string]pinger
}

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal, LOG_FORMAT: text|json
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.SetFormat(os.Getenv("LOG_FORMAT"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Enabled(), cfg.RateLimit.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: cfg, deps: map[string]pinger{}}

	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts)
		if err != nil {
			logger.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer disconnect(client)
		a.store = repository.NewMongoStore(client.Database(cfg.MongoDB.Database))
		if err := a.store.EnsureIndexes(ctx); err != nil {
			logger.Warnf("ensure indexes: %v", err)
		}
		a.deps["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		logger.Infof("using MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warn("MONGODB_URI not set: using in-memory store, data is lost on restart")
		a.store = repository.NewMemoryStore()
	}

	if addr := cfg.Redis.Addr(); addr != "" {
		a.redis = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer a.redis.Close()
		if err := a.redis.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
		} else {
			logger.Infof("connected to Redis: %s", addr)
		}
		if cfg.RateLimit.UseRedis {
			a.deps["redis"] = func(ctx context.Context) error { return a.redis.Ping(ctx).Err() }
		}
	}

	if cfg.MinIO.Enabled() {
		st, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("photo uploads disabled: %v", err)
		} else {
			a.uploads = st
			a.deps["minio"] = st.Ping
			logger.Infof("photo uploads stored in bucket %q", cfg.MinIO.Bucket)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := a.router()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("%s listening on %s", handler.Banner, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

func (a *app) router() *gin.Engine {
	if a.cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(), middleware.Metrics(), middleware.CORS(a.cfg.CORS.Origins))

	if rl := a.cfg.RateLimit; rl.Enabled {
		if rl.UseRedis && a.redis != nil {
			win := time.Duration(rl.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(a.redis, rl.RPS, rl.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(rl.RPS, rl.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", a.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.RegisterSwagger(r)

	svc := service.New(a.store)
	var opts []handler.Option
	if a.uploads != nil {
		opts = append(opts, handler.WithUploads(a.uploads, a.cfg.Upload.MaxBytes))
	}
	handler.New(svc, opts...).Register(r)
	return r
}

// ready returns 200 only when every configured backing service answers.
func (a *app) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ready := true
	deps := map[string]bool{}
	for name, ping := range a.deps {
		ok := ping(ctx) == nil
		deps[name] = ok
		ready = ready && ok
	}
	body := gin.H{"deps": deps, "uptime": time.Since(startTime).String()}
	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ready"
	c.JSON(http.StatusOK, body)
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warnf("mongo disconnect: %v", err)
	}
}

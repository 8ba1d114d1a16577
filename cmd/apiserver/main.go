package main

// @title           Order Management API
// @version         1.0
// @description     订单管理后端 API，提供订单生命周期管理、事件发布与全文检索服务

// @host      localhost:8080
// @BasePath  /api/v1

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"oms/api/internal/app/config"
	"oms/api/internal/app/domains/modules/mdevent"
	"oms/api/internal/app/domains/modules/mdorder"
	"oms/api/internal/app/domains/modules/mdsearch"
	"oms/api/internal/app/domains/repo/rporder"
	"oms/api/internal/app/domains/repo/rpsearch"
	"oms/api/internal/app/domains/services/svorder"
	"oms/api/internal/app/infra/mq/kafka"
	"oms/api/internal/app/infra/persistence/mysql"
	"oms/api/internal/app/pkg/logger"
	orderhandler "oms/api/internal/app/server/handlers/order"
	"oms/api/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	// 3. 初始化 MySQL（权威存储，连不上直接退出）
	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to mysql: %v", err)
	}
	defer mysql.Close(db)

	if err := mysql.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 4. 初始化 Elasticsearch（检索加速层，索引建失败只告警）
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Elasticsearch.Addresses,
	})
	if err != nil {
		log.Fatalf("Failed to create elasticsearch client: %v", err)
	}

	searchRepo := rpsearch.NewSearchRepository(esClient, cfg.Elasticsearch.IndexName)
	if err := searchRepo.EnsureIndex(ctx); err != nil {
		appLogger.Warnf(ctx, "ensure search index failed, queries will fall back to mysql: %v", err)
	}

	// 5. 初始化 Kafka 连接管理器，后台发起首次连接，不阻塞启动
	connMgr := kafka.NewConnectionManager(
		kafka.NewSaramaDialer(cfg.Kafka),
		cfg.Kafka.ConnectionTimeout,
		kafka.RetryPolicy{
			MaxAttempts:  cfg.Kafka.Retry.MaxAttempts,
			InitialDelay: cfg.Kafka.Retry.InitialDelay,
			Factor:       cfg.Kafka.Retry.Factor,
			MaxDelay:     cfg.Kafka.Retry.MaxDelay,
		},
		appLogger,
	)
	go connMgr.Connect(context.Background())

	producer := kafka.NewProducer(connMgr, appLogger)

	// 6. 组装领域模块与服务
	orderRepo := rporder.NewOrderRepository(db)
	orderModule := mdorder.NewOrderModule(orderRepo)
	eventModule := mdevent.NewEventModule(producer)
	searchModule := mdsearch.NewSearchModule(searchRepo, orderRepo, appLogger)
	orderService := svorder.NewOrderService(orderModule, eventModule, searchModule, appLogger)
	orderHandler := orderhandler.NewOrderHandler(orderService)

	engine := routers.SetupRoutes(orderHandler, appLogger)

	// 7. 启动 HTTP Server（后台 goroutine）
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 8. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, connMgr)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server, connMgr *kafka.ConnectionManager) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 1. 停止 HTTP Server
	log.Println("Stopping HTTP server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}

	// 2. 断开 Kafka 连接
	log.Println("Disconnecting kafka producer...")
	connMgr.Disconnect(ctx)

	log.Println("All services stopped gracefully")
}

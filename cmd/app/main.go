package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"backoffice/cmd"
	adapterhttp "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres/accountrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/rabbitmq"
	"backoffice/internal/core/ports"
	"backoffice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	publisher := connectPublisher(configs, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(
		root.CreateAdminReportQueryHandler(),
		configs.DigestSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:        goDotEnvVariable("AMQP_URL"),
		DigestSchedule: goDotEnvVariable("DIGEST_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &accountrepo.AccountDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// connectPublisher dials the notification broker. Events are fire and forget,
// so a broker outage at startup degrades to running without notifications
// rather than refusing to serve.
func connectPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	conn, err := rabbitmq.Connect(configs.AmqpURL)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, notifications disabled", "error", err)
		return nil
	}
	return rabbitmq.NewEventPublisher(conn)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	createOrderHandler := root.CreateCreateOrderCommandHandler()
	changeOrderStatusHandler := root.CreateChangeOrderStatusCommandHandler()
	updateOrderHandler := root.CreateUpdateOrderCommandHandler()
	deleteOrderHandler := root.CreateDeleteOrderCommandHandler()

	server := adapterhttp.NewServer(
		&createOrderHandler,
		&changeOrderStatusHandler,
		&updateOrderHandler,
		&deleteOrderHandler,
		root.CreateGetActiveOrdersQueryHandler(),
		root.CreateAdminReportQueryHandler(),
		root.CreateDeliveryReportQueryHandler(),
		root.CreateShopReportQueryHandler(),
		root.CreateComprehensiveReportQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

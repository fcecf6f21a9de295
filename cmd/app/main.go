package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"kitchenpos/cmd"
	httpserver "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/adapters/out/postgres/tablegrouprepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"
	"kitchenpos/internal/adapters/out/rabbitmq"
	"kitchenpos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateOutboxRepository(), publisher, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
		&tablerepo.OrderTableDTO{},
		&tablegrouprepo.TableGroupDTO{},
		&outboxrepo.OutboxEventDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateProductCommandHandler(),
		app.CreateCreateMenuGroupCommandHandler(),
		app.CreateCreateMenuCommandHandler(),
		app.CreateCreateOrderTableCommandHandler(),
		app.CreateChangeTableEmptyCommandHandler(),
		app.CreateChangeTableGuestsCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGroupTablesCommandHandler(),
		app.CreateUngroupTablesCommandHandler(),
		app.CreateGetAllMenusQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllOrderTablesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

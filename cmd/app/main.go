package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"production/cmd"
	httpadapter "production/internal/adapters/in/http"
	"production/internal/adapters/out/postgres/accountrepo"
	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/productrepo"
	"production/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateGetAllOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
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
		RedisAddr:   goDotEnvVariable("REDIS_ADDR"),
		TokenSecret: goDotEnvVariable("TOKEN_SECRET"),
		TokenTTL:    goDotEnvVariable("TOKEN_TTL_HOURS"),
		BcryptCost:  goDotEnvVariable("BCRYPT_COST"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{}, &accountrepo.AccountDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Dependencies{
		CreateOrderHandler:        app.CreateCreateOrderCommandHandler(),
		StartStageHandler:         app.CreateStartStageCommandHandler(),
		CompleteStageHandler:      app.CreateCompleteStageCommandHandler(),
		ConfirmShipmentHandler:    app.CreateConfirmShipmentCommandHandler(),
		CancelOrderHandler:        app.CreateCancelOrderCommandHandler(),
		ReturnOrderHandler:        app.CreateReturnOrderCommandHandler(),
		SetStatusHandler:          app.CreateSetStatusCommandHandler(),
		DeleteOrderHandler:        app.CreateDeleteOrderCommandHandler(),
		CreateProductHandler:      app.CreateCreateProductCommandHandler(),
		UpdateProductHandler:      app.CreateUpdateProductCommandHandler(),
		DeleteProductHandler:      app.CreateDeleteProductCommandHandler(),
		RegisterAccountHandler:    app.CreateRegisterAccountCommandHandler(),
		GetAllOrdersHandler:       app.CreateGetAllOrdersQueryHandler(),
		GetDepartmentQueueHandler: app.CreateGetDepartmentQueueQueryHandler(),
		GetCatalogHandler:         app.CreateGetCatalogQueryHandler(),
		GetDashboardHandler:       app.CreateGetDashboardQueryHandler(),
		GetReportHandler:          app.CreateGetReportQueryHandler(),
		GetAccountHandler:         app.CreateGetAccountQueryHandler(),
		GetAccountByLoginHandler:  app.CreateGetAccountByLoginQueryHandler(),
		PasswordHasher:            app.PasswordHasher(),
		TokenStrategy:             app.TokenStrategy(),
		Sessions:                  app.SessionStateStore(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

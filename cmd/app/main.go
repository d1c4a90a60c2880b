package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"vintage/cmd"
	httpadapter "vintage/internal/adapters/in/http"
	"vintage/internal/adapters/out/postgres/billrepo"
	"vintage/internal/adapters/out/postgres/carrierrepo"
	"vintage/internal/adapters/out/postgres/itemrepo"
	"vintage/internal/adapters/out/postgres/orderrepo"
	"vintage/internal/adapters/out/postgres/platformrepo"
	"vintage/internal/adapters/out/postgres/userrepo"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/jobs"
	"vintage/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db)

	seedPlatform(&app, configs)
	startJobs(&app, configs)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		StartDate:  goDotEnvVariable("START_DATE"),

		DayTickSchedule: goDotEnvVariableOrDefault("DAY_TICK_SCHEDULE", jobs.DefaultDayTickSchedule),
	}
	return config
}

func goDotEnvVariableOrDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&carrierrepo.CarrierDTO{},
		&itemrepo.ItemDTO{},
		&itemrepo.OwnershipRecordDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&billrepo.BillDTO{},
		&billrepo.BillLineDTO{},
		&platformrepo.PlatformDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// seedPlatform creates the singleton platform row on first boot, setting the
// simulation clock to the configured start date.
func seedPlatform(app *cmd.CompositionRoot, configs cmd.Config) {
	ctx := context.Background()
	uow := app.CreateUnitOfWork()

	_, err := uow.PlatformRepository().Get(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Error reading platform: %v", err)
	}

	startDate, err := kernel.DateFromString(configs.StartDate)
	if err != nil {
		log.Fatalf("Error parsing START_DATE: %v", err)
	}

	vintage, err := platform.NewPlatform(kernel.NewUUID(), startDate)
	if err != nil {
		log.Fatalf("Error creating platform: %v", err)
	}

	if err = uow.PlatformRepository().Update(ctx, vintage); err != nil {
		log.Fatalf("Error seeding platform: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceClockCommandHandler(),
		app.CreateGetPlatformStatusQueryHandler(),
		configs.DayTickSchedule,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateCarrierCommandHandler(),
		app.CreateListItemCommandHandler(),
		app.CreateRelistItemCommandHandler(),
		app.CreateDelistItemCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateRemoveOrderItemCommandHandler(),
		app.CreateAdvanceClockCommandHandler(),
		app.CreateReturnOrderCommandHandler(),
		app.CreateGetCarriersQueryHandler(),
		app.CreateGetListedItemsQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetUserBillsQueryHandler(),
		app.CreateGetPlatformStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

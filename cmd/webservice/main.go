package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iwootapp/iwoot/config"
	"github.com/iwootapp/iwoot/internal/controller"
	"github.com/iwootapp/iwoot/internal/infrastructure/database/mongodb"
	"github.com/iwootapp/iwoot/internal/infrastructure/message-queue/kafka"
	objectstorage "github.com/iwootapp/iwoot/internal/infrastructure/object-storage/gridfs"
	"github.com/iwootapp/iwoot/internal/infrastructure/tracing"
	"github.com/iwootapp/iwoot/internal/middleware"
	"github.com/iwootapp/iwoot/internal/repository"
	"github.com/iwootapp/iwoot/internal/service"
	pkgdto "github.com/iwootapp/iwoot/pkg/dto"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()
	db, err := mongodb.ConnectToMongoDB(
		fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort),
		config.MongoDBConfig.DBName,
	)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	if config.TracingConfig.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, "iwoot")
		if err != nil {
			log.Warn().Err(err).Str("component", "main").Msg("tracing disabled")
		} else {
			defer tracerProvider.Shutdown(context.Background())
		}
	}

	kafkaProducer := kafka.CreateKafkaProducer(config)

	bucket, err := objectstorage.CreateBucket(db)
	if err != nil {
		panic(err)
	}

	e := echo.New()
	e.Use(middleware.Logger)
	g := e.Group("/api/v1")

	isLoggedIn := middleware.Auth(config.JWTSecret)

	productRepo := repository.CreateNewProductRepository(db)
	receiptRepo := repository.CreateNewReceiptRepository(db)

	productSvc := service.CreateProductService(productRepo, *config, kafkaProducer)
	receiptSvc := service.CreateReceiptService(receiptRepo, *config, kafkaProducer)
	lookupSvc := service.CreateLookupService(*config)
	uploadSvc := service.CreateUploadService(bucket)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateReceiptController(g, receiptSvc, isLoggedIn)
	controller.CreateLookupController(g, lookupSvc, isLoggedIn)
	controller.CreateUploadController(g, uploadSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return pkgdto.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}

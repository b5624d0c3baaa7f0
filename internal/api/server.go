package api

import (
	"context"
	"log"

	"github.com/ailawatlas/catalog_service/config"
	"github.com/ailawatlas/catalog_service/infra/mail"
	"github.com/ailawatlas/catalog_service/infra/queue"
	"github.com/ailawatlas/catalog_service/internal/api/rest/handlers"
	"github.com/ailawatlas/catalog_service/internal/domain"
	"github.com/ailawatlas/catalog_service/internal/helper"
	"github.com/ailawatlas/catalog_service/internal/interfaces"
	"github.com/ailawatlas/catalog_service/internal/repository"
	"github.com/ailawatlas/catalog_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260829

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Law{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	lawRepo := repository.NewLawRepository(db)
	seedLaws(lawRepo)

	// ---------- Infra ----------
	notifier := buildNotifier(cfg)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)

	// ---------- Service ----------
	userSvc := services.NewUserService(userRepo, notifier, authHelper)
	lawSvc := services.NewLawService(lawRepo)

	// ---------- Handler ----------
	userHandler := handlers.NewUserHandler(userSvc, authHelper)
	userHandler.SetupRoutes(app)

	lawHandler := handlers.NewLawHandler(lawSvc)
	lawHandler.SetupRoutes(app, authHelper)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// buildNotifier picks how verification codes leave the process: straight over
// SMTP, or as events on a Kafka topic for a mail dispatcher. With the kafka
// provider and a consumer group configured, the dispatcher runs in-process.
func buildNotifier(cfg config.Config) interfaces.VerificationNotifier {
	mailer := mail.NewService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
		cfg.MailSubject,
	)

	if cfg.MailProvider != "kafka" {
		return mailer
	}

	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	if cfg.KafkaGroupID != "" {
		consumer := queue.NewKafkaConsumer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaGroupID,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
			handlers.NewMailHandler(mailer),
		)
		go consumer.Listen()
	}

	return producer
}

func seedLaws(repo repository.LawRepository) {
	ctx := context.Background()

	count, err := repo.CountLaws(ctx)
	if err != nil || count > 0 {
		return
	}

	laws := []domain.Law{
		{
			Country:  "European Union",
			Title:    "AI Act",
			Summary:  "Comprehensive law classifying AI systems by risk level.",
			FullText: "Full text of the European Union AI Act...",
		},
		{
			Country:  "China",
			Title:    "Measures for the Management of Generative AI",
			Summary:  "Requirements for AI-generated content.",
			FullText: "Full text of the measures for the management of generative AI in China...",
		},
		{
			Country:  "United States",
			Title:    "Executive Order on Safe and Trustworthy AI",
			Summary:  "Presidential executive order on safety standards.",
			FullText: "Full text of the executive order on safe and trustworthy AI in the United States...",
		},
	}

	for i := range laws {
		if _, err := repo.CreateLaw(ctx, &laws[i]); err != nil {
			log.Printf("seed law error: %v", err)
		}
	}
}

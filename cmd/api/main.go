package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"arunika/internal/adapter/api"
	"arunika/internal/adapter/api/handler"
	apimiddleware "arunika/internal/adapter/api/middleware"
	"arunika/internal/adapter/api/router"
	"arunika/internal/adapter/repository"
	"arunika/internal/infrastructure/firebase"
	"arunika/internal/infrastructure/storage"
	"arunika/internal/upload"
	"arunika/internal/usecase"
	"arunika/pkg/config"
	"arunika/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), falling
	// back to a credentials file for local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.StorageProjectID,
		cfg.StorageCredentials,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	capability := upload.DetectCapability(cfg.StorageBucket, cfg.StorageProjectID, cfg.StorageCredentials)
	if capability.DirectUpload {
		logger.Info("Upload mode: direct streaming")
	} else {
		logger.Warn("Upload mode: memory-buffered fallback (incomplete storage credentials)")
	}

	uploader := upload.NewUploader(storageClient)
	compensator := upload.NewCompensator(storageClient)
	gate := upload.NewGate(uploader, compensator, capability)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	serviceRepo := repository.NewFirestoreServiceRepository(firestoreClient)
	teamMemberRepo := repository.NewFirestoreTeamMemberRepository(firestoreClient)
	milestoneRepo := repository.NewFirestoreMilestoneRepository(firestoreClient)
	consultationRepo := repository.NewFirestoreConsultationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, uploader, compensator)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, uploader, compensator)
	teamMemberUseCase := usecase.NewTeamMemberUseCase(teamMemberRepo, uploader, compensator)
	milestoneUseCase := usecase.NewMilestoneUseCase(milestoneRepo)
	consultationUseCase := usecase.NewConsultationUseCase(consultationRepo)

	handler.Setup(projectUseCase, serviceUseCase, teamMemberUseCase, milestoneUseCase, consultationUseCase, gate)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/stitchlabs/workshop-backend-go/internal/config"
	appHTTP "github.com/stitchlabs/workshop-backend-go/internal/handler/http"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/cron"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/jwt"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/storage"
	"github.com/stitchlabs/workshop-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stitchlabs/workshop-backend-go/internal/service/attendance"
	serviceAuth "github.com/stitchlabs/workshop-backend-go/internal/service/auth"
	"github.com/stitchlabs/workshop-backend-go/internal/service/file"
	inventoryService "github.com/stitchlabs/workshop-backend-go/internal/service/inventory"
	paymentService "github.com/stitchlabs/workshop-backend-go/internal/service/payment"
	payrollService "github.com/stitchlabs/workshop-backend-go/internal/service/payroll"
	workerService "github.com/stitchlabs/workshop-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db, cfg.Ledger.UpsertScanWindow)
	inventoryRepo := postgresql.NewInventoryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	writeLock := locker.NewWriteLock(cfg.Lock.WriteTimeout)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(JWTService, cfg.Admin.Username, cfg.Admin.PasswordHash)
	workerSvc := workerService.NewWorkerService(db, writeLock, workerRepo, fileService)
	attendanceSvc := attendanceService.NewAttendanceService(db, writeLock, attendanceRepo)
	paymentSvc := paymentService.NewPaymentService(db, writeLock, paymentRepo)
	payrollSvc := payrollService.NewPayrollService(workerRepo, attendanceRepo, paymentRepo)
	inventorySvc := inventoryService.NewInventoryService(db, writeLock, inventoryRepo, fileService)

	authHandler := appHTTP.NewAuthHandler(authService)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	inventoryHandler := appHTTP.NewInventoryHandler(inventorySvc)
	legacyHandler := appHTTP.NewLegacyHandler(
		authHandler,
		workerHandler,
		attendanceHandler,
		paymentHandler,
		payrollHandler,
		inventoryHandler,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-blob-audit", cfg.Cron.AttendanceAuditInterval, attendanceSvc.AuditBlobs)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		workerHandler,
		attendanceHandler,
		paymentHandler,
		payrollHandler,
		inventoryHandler,
		legacyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- http.ListenAndServe(port, router)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		fmt.Println("Server error:", err)
	case sig := <-stop:
		fmt.Println("Shutting down on signal:", sig)
	}
}

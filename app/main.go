package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"schoolmgmt/config"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/delivery"
	"schoolmgmt/services/school/repository"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on the environment")
	}

	log = config.GetLogrusInstance()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	startHTTP(cfg)
}

func startHTTP(cfg *config.Config) {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig(cfg))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	authMW := middleware.NewAuth(cfg.JWTSecret)
	gateway := config.NewPaymentGateway(cfg)
	mailer := config.NewMailer(cfg)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	parentRepo := repository.NewParentRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	academicRepo := repository.NewAcademicRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	examRepo := repository.NewExamRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	admissionRepo := repository.NewAdmissionRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Usecases
	authUC := usecase.NewAuthUsecase(userRepo, studentRepo, teacherRepo, parentRepo, adminRepo, authMW)
	peopleUC := usecase.NewPeopleUsecase(userRepo, studentRepo, teacherRepo, parentRepo, adminRepo, academicRepo)
	academicUC := usecase.NewAcademicUsecase(academicRepo, teacherRepo, studentRepo)
	attendanceUC := usecase.NewAttendanceUsecase(attendanceRepo, studentRepo, academicRepo)
	feeUC := usecase.NewFeeUsecase(feeRepo, studentRepo, parentRepo)
	examUC := usecase.NewExamUsecase(examRepo, studentRepo, academicRepo, teacherRepo)
	assignmentUC := usecase.NewAssignmentUsecase(assignmentRepo, studentRepo, teacherRepo, academicRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, studentRepo, teacherRepo, parentRepo, academicRepo)
	noticeUC := usecase.NewNoticeUsecase(noticeRepo)
	admissionUC := usecase.NewAdmissionUsecase(admissionRepo)
	paymentUC := usecase.NewPaymentUsecase(gateway, feeRepo, studentRepo)
	notifyUC := usecase.NewNotifyUsecase(mailer, userRepo, studentRepo, teacherRepo, parentRepo, feeRepo)
	aiUC := usecase.NewAIUsecase(config.NewAIProvider(cfg))
	bulkUC := usecase.NewBulkUsecase(peopleUC, academicRepo, studentRepo, teacherRepo, feeRepo, attendanceRepo)
	dashboardUC := usecase.NewDashboardUsecase(studentRepo, teacherRepo, parentRepo, academicRepo, attendanceUC, attendanceRepo, feeRepo, examRepo, assignmentRepo, admissionRepo, noticeRepo)

	// Delivery
	delivery.NewAuthHandler(app, authMW, authUC)
	delivery.NewAdminHandler(app, authMW, peopleUC, academicUC, attendanceUC, feeUC, examUC, noticeUC, admissionUC, dashboardUC)
	delivery.NewTeacherHandler(app, authMW, teacherRepo, peopleUC, academicUC, attendanceUC, examUC, assignmentUC, messageUC, noticeUC, dashboardUC)
	delivery.NewParentHandler(app, authMW, parentRepo, studentRepo, academicUC, attendanceUC, feeUC, examUC, assignmentUC, messageUC, noticeUC, dashboardUC)
	delivery.NewStudentHandler(app, authMW, studentRepo, academicUC, attendanceUC, feeUC, examUC, assignmentUC, noticeUC, dashboardUC)
	delivery.NewPaymentHandler(app, authMW, paymentUC, parentRepo)
	delivery.NewAdmissionHandler(app, admissionUC)
	delivery.NewNotificationHandler(app, authMW, notifyUC)
	delivery.NewAIHandler(app, authMW, aiUC)
	delivery.NewBulkHandler(app, authMW, bulkUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s", cfg.ListenAddress())
		if err := app.Listen(cfg.ListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tagpoint/attendance-backend-go/internal/config"
	appHTTP "github.com/tagpoint/attendance-backend-go/internal/handler/http"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/database"
	"github.com/tagpoint/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tagpoint/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/tagpoint/attendance-backend-go/internal/service/employee"
	"github.com/tagpoint/attendance-backend-go/internal/service/export"
	seedService "github.com/tagpoint/attendance-backend-go/internal/service/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		fmt.Println("Error preparing database schema:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	txManager := postgresql.NewTxManager(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo)
	excelSvc := export.NewExcelService()
	seedSvc := seedService.NewSeedService(txManager, employeeRepo, attendanceRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, excelSvc)
	infoHandler := appHTTP.NewInfoHandler(attendanceSvc)
	seedHandler := appHTTP.NewSeedHandler(seedSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.CORS.AllowedOrigins,
		employeeHandler,
		attendanceHandler,
		infoHandler,
		seedHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

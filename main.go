package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/YoYolops/boardcamp/app/echoServer"
	categoryctrl "github.com/YoYolops/boardcamp/app/echoServer/controller/category"
	customerctrl "github.com/YoYolops/boardcamp/app/echoServer/controller/customer"
	gamectrl "github.com/YoYolops/boardcamp/app/echoServer/controller/game"
	rentalctrl "github.com/YoYolops/boardcamp/app/echoServer/controller/rental"
	"github.com/YoYolops/boardcamp/app/echoServer/validation"
	"github.com/YoYolops/boardcamp/config"
	categoryrepo "github.com/YoYolops/boardcamp/repository/category"
	customerrepo "github.com/YoYolops/boardcamp/repository/customer"
	gamerepo "github.com/YoYolops/boardcamp/repository/game"
	rentalrepo "github.com/YoYolops/boardcamp/repository/rental"
	categorysvc "github.com/YoYolops/boardcamp/service/category"
	customersvc "github.com/YoYolops/boardcamp/service/customer"
	gamesvc "github.com/YoYolops/boardcamp/service/game"
	rentalsvc "github.com/YoYolops/boardcamp/service/rental"
	"github.com/YoYolops/boardcamp/util/database"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	catr := categoryrepo.New(db)
	gr := gamerepo.New(db)
	cr := customerrepo.New(db)
	rr := rentalrepo.New(db)

	// services
	cats := categorysvc.New(catr)
	gs := gamesvc.New(gr)
	cs := customersvc.New(cr)
	rs := rentalsvc.New(rr)

	// controllers
	v := validator.New()
	categoryC := &categoryctrl.Controller{Svc: cats, V: v, Log: log}
	gameC := &gamectrl.Controller{Svc: gs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	echoServer.Register(e, echoServer.C{
		Category: categoryC,
		Game:     gameC,
		Customer: customerC,
		Rental:   rentalC,
	})

	slog.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

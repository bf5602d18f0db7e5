// poojactl is the maintenance CLI: the roster listing and the
// reset-to-unassigned operation run against the datastore directly.
//
//	poojactl list-users
//	poojactl reset-user someone@example.com
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pooja-setu/internal/core/config"
	"pooja-setu/internal/core/database"
	"pooja-setu/internal/core/logger"
	"pooja-setu/internal/domain"
	"pooja-setu/internal/repo"
	"pooja-setu/internal/service"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           "silent",
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	users := repo.NewUserRepo(db)
	profiles := service.NewProfileService(users, log)

	switch flag.Arg(0) {
	case "list-users":
		list, _, err := profiles.List(domain.UserFilter{Limit: 100})
		if err != nil {
			log.Fatal("list users", zap.Error(err))
		}
		for _, u := range list {
			fmt.Printf("%-40s  %-10s  %s\n", u.Email, u.Role, u.FullName)
		}
		fmt.Printf("%d user(s)\n", len(list))

	case "reset-user":
		if flag.NArg() < 2 {
			usage()
		}
		email := flag.Arg(1)
		u, err := profiles.Reset(email)
		if err == domain.ErrNotFound {
			log.Fatal("user not found", zap.String("email", email))
		}
		if err != nil {
			log.Fatal("reset user", zap.Error(err))
		}
		fmt.Printf("%s reset to %s\n", u.Email, u.Role)

	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: poojactl list-users | reset-user <email>")
	os.Exit(2)
}

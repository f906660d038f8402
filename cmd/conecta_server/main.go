package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/conectahub/conecta/internal/config"
	"github.com/conectahub/conecta/internal/database"
	"github.com/conectahub/conecta/internal/notify"
	"github.com/conectahub/conecta/internal/service"
	"github.com/conectahub/conecta/internal/token"
)

var (
	gitRevision = "unknown"
	gitBranch   = "unknown"
)

type App struct {
	logger *slog.Logger
	config *config.AppConfig

	dbm *database.DatabaseManager

	applications *service.ApplicationService
	members      *service.MemberService
	dashboard    *service.DashboardService
}

func NewApp(cfg *config.AppConfig) *App {
	app := &App{
		logger: slog.Default(),
		config: cfg,
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app.dbm = database.New(db)

	codec := token.NewCodec(cfg.JwtSecret(), cfg.InviteTTL())
	notifier := notify.NewLogNotifier()

	app.applications = service.NewApplicationService(app.dbm, codec, notifier, cfg.BaseURL())
	app.members = service.NewMemberService(app.dbm, codec, notifier)
	app.dashboard = service.NewDashboardService(app.dbm)

	return app
}

func openDatabase(cfg *config.AppConfig) (*gorm.DB, error) {
	gc := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if dsn := cfg.DBUrl(); dsn != "" {
		return gorm.Open(postgres.Open(dsn), gc)
	}

	return gorm.Open(sqlite.Open(cfg.DB()), gc)
}

func (app *App) Run() {
	if err := app.dbm.Migrate(); err != nil {
		log.Fatal(err)
	}

	srv := NewHttpServer(app, app.config.HTTPAddr())

	go func() {
		app.logger.Info("listening on " + srv.Address())

		if err := srv.Listen(); err != nil {
			panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c

	app.logger.Info("exiting...")
	_ = srv.Shutdown()
}

func getVersion() string {
	return fmt.Sprintf("%s:%s", gitBranch, gitRevision)
}

func main() {
	var debug = flag.Bool("debug", false, "debug logging")
	var seed = flag.Bool("seed", false, "load demo data on start")
	var conf = flag.String("config", "conecta.yml", "name of config file")
	flag.Parse()

	cfg := config.NewAppConfig()
	cfg.Load(*conf)

	if err := cfg.LoadEnv("CONECTA_"); err != nil {
		panic(err)
	}

	if *debug {
		cfg.Set("debug", true)
	}

	var h slog.Handler
	if cfg.Debug() {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	slog.SetDefault(slog.New(h))
	slog.Default().Info("starting conecta server " + getVersion())

	app := NewApp(cfg)

	if *seed {
		if err := app.dbm.Migrate(); err != nil {
			log.Fatal(err)
		}

		app.seed()
	}

	app.Run()
}

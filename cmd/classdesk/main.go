package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/lamdoan/classdesk/internal/api"
	"github.com/lamdoan/classdesk/internal/config"
	"github.com/lamdoan/classdesk/internal/data"
	"github.com/lamdoan/classdesk/internal/demo"
	"github.com/lamdoan/classdesk/internal/export"
	"github.com/lamdoan/classdesk/internal/health"
	"github.com/lamdoan/classdesk/internal/logger"
	"github.com/lamdoan/classdesk/internal/model"
	"github.com/lamdoan/classdesk/internal/session"
	"github.com/lamdoan/classdesk/internal/storage/file"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	email := flag.String("email", "", "login email (required unless a session is restored)")
	password := flag.String("password", "", "login password")
	classID := flag.String("class", "", "restrict the roster to one class id")
	search := flag.String("search", "", "case-insensitive roster search term")
	exportPath := flag.String("export", "", "write the roster to this .xlsx file")
	logout := flag.Bool("logout", false, "clear the stored session and exit")
	version := flag.Bool("version", false, "print build information and exit")
	flag.Parse()

	if *version {
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// a missing .env is fine; the environment still applies
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	store, err := file.NewStore(cfg.State.FilePath)
	if err != nil {
		logger.Fatal("failed to open state store", "error", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, store, logger)
	probe := health.NewProbe(client, cfg.API.ProbeInterval, logger)
	probe.Check(ctx)
	go probe.Run(ctx)

	sessions := session.NewManager(client, store, probe, demo.Credentials(), logger)

	if *logout {
		sessions.Restore(ctx)
		sessions.Logout(ctx)
		fmt.Println("logged out")
		return
	}

	if sessions.Restore(ctx) {
		if err := sessions.Verify(ctx); err != nil {
			logger.Info("stored session is no longer valid", "error", err.Error())
		}
	}

	if !sessions.Authenticated() {
		if *email == "" || *password == "" {
			log.Fatal("no stored session: -email and -password are required")
		}
		if _, err := sessions.Login(ctx, *email, *password); err != nil {
			logger.Fatal("login failed", "error", err)
		}
	}

	manager := data.NewManager(client, probe, data.LogNotifier{Logger: logger}, logger)
	manager.LoadAll(ctx)

	viewer, _ := sessions.CurrentUser()
	students := manager.FilteredStudents(viewer, model.StudentFilter{
		ClassID: *classID,
		Search:  *search,
	})

	printRoster(students, manager)

	if *exportPath != "" {
		if err := export.WriteRoster(*exportPath, students, manager); err != nil {
			logger.Fatal("failed to export roster", "error", err)
		}
		fmt.Printf("roster written to %s\n", *exportPath)
	}
}

func printRoster(students []model.Student, manager *data.Manager) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSAINT NAME\tFULL NAME\tCLASS\tGUARDIAN\tPHONE")
	for _, s := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.SaintName, s.FullName(), manager.ClassName(s.ClassID), s.Guardian, s.Phone)
	}
	w.Flush()

	fmt.Printf("%d student(s)\n", len(students))
}

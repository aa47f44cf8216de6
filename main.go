package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railbook/internal/cli"
	"railbook/internal/config"
	"railbook/internal/repositories"
	"railbook/internal/services"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := config.LoadEnv()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	users, err := repositories.NewUserRepository(env.UsersFile)
	if err != nil {
		log.Fatalf("load users: %v", err)
	}
	trains, err := repositories.NewTrainRepository(env.TrainsFile)
	if err != nil {
		log.Fatalf("load trains: %v", err)
	}

	console := cli.NewConsole(os.Stdin, os.Stdout, cli.NewPalette(!env.NoColor))
	app := &cli.App{
		Console: console,
		Env:     env,
		Auth: services.AuthService{
			Users:       users,
			SessionFile: env.SessionFile,
			Secret:      []byte(env.SessionSecret),
		},
		Booking: services.BookingService{Users: users, Trains: trains},
		Users:   services.UserService{Users: users},
		Tickets: services.TicketService{Trains: trains},
		Docs:    services.DocsService{},
	}

	app.Run()
	exitApp(console)
}

// exitApp counts down before terminating. SIGINT during the countdown
// terminates immediately with a distinct exit status.
func exitApp(console *cli.Console) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	console.Println("Exiting app in 5 seconds...")
	for i := 5; i > 0; i-- {
		select {
		case <-quit:
			console.Println("Interrupted! Exiting immediately.")
			os.Exit(1)
		case <-time.After(time.Second):
			console.Println(fmt.Sprintf("Closing in %d...", i))
		}
	}
	os.Exit(0)
}

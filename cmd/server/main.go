// Command server runs the student-brigade REST API until SIGINT or SIGTERM.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; run with -env to list the variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/VMatyagin/so-rest/internal/app"
	"github.com/VMatyagin/so-rest/internal/config"
)

func main() {
	listEnv := flag.Bool("env", false, "print the supported environment variables and exit")
	flag.Parse()

	if *listEnv {
		desc, err := config.Describe()
		if err != nil {
			log.Fatalf("describe config: %v", err)
		}
		fmt.Println(desc)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		stop()
		os.Exit(1)
	}
}

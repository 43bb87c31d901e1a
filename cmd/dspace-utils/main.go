package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dspace-utils/internal/client"
	"github.com/MKhiriev/dspace-utils/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var app client.Client = client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, os.Stderr)
	code := app.Execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}

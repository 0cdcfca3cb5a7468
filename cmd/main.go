package main

import "github.com/avelinov/go-task-api/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	pgPool := app.ConnectPostgres()
	defer app.DisconnectPostgres(pgPool)

	app.MustListenAndServeHTTP(pgPool)
}

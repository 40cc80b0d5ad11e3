package main

import "github.com/deusflow/secdigest/internal/app"

func main() {
	app.Run()
}

package main

import (
	"context"

	"github.com/nfrund/waypoint/internal/server"
)

func main() {
	s := server.New()
	s.MustRegisterModules(context.Background())
	s.Start()
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rtwalk/go-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.New(nil)

	log.Printf("Path tracer render server")
	log.Printf("POST http://localhost:%d/api/render to render a scene", *port)

	if err := webServer.Start(fmt.Sprintf(":%d", *port)); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

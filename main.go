package main

import (
	"github.com/ailawatlas/catalog_service/config"
	"github.com/ailawatlas/catalog_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}

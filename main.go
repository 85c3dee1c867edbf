package main

import (
	"flag"
	"log"
	"strings"

	"github.com/JFRG28/money-monitor-vWeb/config"
	"github.com/JFRG28/money-monitor-vWeb/database"
	"github.com/JFRG28/money-monitor-vWeb/router"
)

// @title Money Monitor API
// @version 1.0
// @description API para gestión de gastos personales, balances y deudas
// @host localhost:8000
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "ruta del archivo de configuración externo (opcional)")
	flag.StringVar(&configFile, "c", "", "ruta del archivo de configuración (abreviado)")
	flag.StringVar(&port, "port", "", "puerto de escucha, ej: 8000 o :8000")
	flag.StringVar(&port, "p", "", "puerto de escucha (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "mostrar versión")
	flag.BoolVar(&showVersion, "v", false, "mostrar versión (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Money Monitor API v1.0.0")
		return
	}

	// Configuración: embebida + archivo externo opcional + variables de entorno
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("error al cargar la configuración: %v", err)
	}

	// El puerto de la línea de comandos gana sobre la configuración
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("puerto indicado por línea de comandos: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("error al inicializar la base de datos: %v", err)
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  Money Monitor API iniciado")
	log.Printf("==========================================")
	log.Printf("  API:      http://localhost%s/api/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("error al iniciar el servidor: %v", err)
	}
}

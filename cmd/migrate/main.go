package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", "", "Directorio de migraciones (vacío: MIGRATIONS_PATH o las embebidas)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if migrationsPath == "" {
		migrationsPath = cfg.DB.MigrationsPath
	}

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), migrationsPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer func() { _ = m.Close() }()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "step":
		if len(args) < 2 {
			log.Fatal().Msg("uso: migrate step <n>")
		}
		n, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			log.Fatal().Str("value", args[1]).Msg("cantidad de pasos inválida")
		}
		err = m.Steps(n)
	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("uso: migrate force <version>")
		}
		v, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			log.Fatal().Str("value", args[1]).Msg("versión inválida")
		}
		err = m.Force(v)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Fatal().Err(verr).Msg("leer versión")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión actual")
	default:
		log.Error().Str("command", command).Msg("comando desconocido")
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración fallida")
	}
}

func printUsage() {
	fmt.Println(`Migraciones de la base de clientes

Uso:
  migrate [-path dir] <comando> [argumentos]

Comandos:
  up              Aplica todas las migraciones pendientes
  down            Revierte todas las migraciones
  step <n>        Aplica n migraciones (positivo=up, negativo=down)
  force <version> Fija la versión sin ejecutar (salir de estado dirty)
  version         Muestra la versión actual

Variables de entorno:
  DATABASE_URL o DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE`)
}

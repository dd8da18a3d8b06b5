package main

import (
	"flag"
	"fmt"

	"github.com/lreinoso/riostore/internal/application/auth"
	"github.com/lreinoso/riostore/internal/application/backup"
	"github.com/lreinoso/riostore/internal/application/document"
	"github.com/lreinoso/riostore/internal/infrastructure/archive"
	infrapdf "github.com/lreinoso/riostore/internal/infrastructure/pdf"
	"github.com/lreinoso/riostore/internal/infrastructure/sqlite"
	"github.com/lreinoso/riostore/pkg/config"
	"github.com/lreinoso/riostore/pkg/logger"
)

func main() {
	exportPath := flag.String("export", "", "exporta un respaldo del almacén a la ruta dada y termina")
	importPath := flag.String("import", "", "restaura el almacén desde el respaldo dado y termina")
	pdfID := flag.Int64("pdf", 0, "genera el PDF del documento con ese ID y termina")
	pdfDest := flag.String("dest", ".", "directorio de salida para -pdf")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	store, err := sqlite.Open(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el almacén")
	}
	defer store.Close()

	backupUC := backup.NewBackupUseCase(store.Path, log)

	// La restauración pisa el archivo del almacén: se cierra el handle antes
	// de copiar y se termina para que el próximo arranque lea el nuevo.
	if *importPath != "" {
		if err := store.Close(); err != nil {
			log.Fatal().Err(err).Msg("cerrar el almacén")
		}
		if err := backupUC.Import(*importPath); err != nil {
			log.Fatal().Err(err).Msg("restaurar respaldo")
		}
		return
	}

	userRepo := sqlite.NewUserRepository(store.DB)
	productRepo := sqlite.NewProductRepository(store.DB)
	clientRepo := sqlite.NewClientRepository(store.DB)
	docRepo := sqlite.NewDocumentRepository(store.DB)
	txRunner := sqlite.NewTxRunner(store.DB)

	authUC := auth.NewAuthUseCase(userRepo)
	if cfg.Admin.Password != "" {
		created, err := authUC.EnsureInitialAdmin(cfg.Admin.FullName, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador inicial")
		}
		if created {
			log.Info().Str("username", cfg.Admin.Username).Msg("administrador inicial creado")
		}
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Business{
		Name:    cfg.Business.Name,
		RUC:     cfg.Business.RUC,
		Address: cfg.Business.Address,
		Phone:   cfg.Business.Phone,
		Email:   cfg.Business.Email,
	})
	archiver := archive.New(cfg.Store.ArchiveDir)
	documentUC := document.NewDocumentUseCase(
		txRunner, docRepo, productRepo, clientRepo, pdfGenerator, archiver, log,
	)

	switch {
	case *exportPath != "":
		if err := backupUC.Export(*exportPath); err != nil {
			log.Fatal().Err(err).Msg("exportar respaldo")
		}
	case *pdfID != 0:
		path, err := documentUC.GeneratePDF(*pdfID, *pdfDest)
		if err != nil {
			log.Fatal().Err(err).Int64("id", *pdfID).Msg("generar pdf")
		}
		fmt.Println(path)
	default:
		users, err := userRepo.Count()
		if err != nil {
			log.Fatal().Err(err).Msg("leer el almacén")
		}
		docs, err := docRepo.List()
		if err != nil {
			log.Fatal().Err(err).Msg("leer el almacén")
		}
		log.Info().
			Int64("usuarios", users).
			Int("documentos", len(docs)).
			Str("store", store.Path).
			Msg("almacén listo")
	}
}

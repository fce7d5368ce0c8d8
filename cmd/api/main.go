package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/apotek-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek"
	"github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek/apotekclient"
	"github.com/vfg2006/apotek-report-api/infrastructure/migration"
	"github.com/vfg2006/apotek-report-api/infrastructure/repository"
	"github.com/vfg2006/apotek-report-api/internal/api"
	"github.com/vfg2006/apotek-report-api/internal/config"
	"github.com/vfg2006/apotek-report-api/internal/scheduler"
	"github.com/vfg2006/apotek-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/apotek-report-api/internal/usecases/reporting"
	"github.com/vfg2006/apotek-report-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(log.Options{
		Level:          cfg.App.LogLevel,
		File:           cfg.App.LogFile,
		FileMaxSizeMB:  cfg.App.LogFileMaxSizeMB,
		FileMaxBackups: cfg.App.LogFileMaxBackups,
		FileMaxAgeDays: cfg.App.LogFileMaxAgeDays,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// histórico mensal é opcional; sem banco o relatório funciona só em memória
	var snapshotRepo repository.MonthlySalesSnapshotRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações do banco de dados")
		}

		snapshotRepo = repository.NewMonthlySalesSnapshotRepository(pgConn)
	} else {
		logrus.Info("Banco de dados desabilitado, histórico mensal de vendas indisponível")
	}

	authenticator := authenticating.NewService(cfg)

	apotekClient := apotekclient.NewClient(cfg)
	apotekIntegrator := apotek.New(apotekClient)

	reportService := reporting.NewService(cfg, apotekIntegrator, snapshotRepo)

	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de vendas")
	}

	server, err := api.New(cfg, reportService, authenticator, reportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do main para achar o .env local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Mantendo diretório de trabalho atual")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

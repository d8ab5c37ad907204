// Package bootstrap wires configuration, infrastructure and use cases
// into a runnable application. No package-level singletons; everything
// hangs off the App.
package bootstrap

import (
	"log/slog"

	mcpadapter "github.com/telota/bbaw-dse-mcp/internal/adapters/mcp"
	"github.com/telota/bbaw-dse-mcp/internal/config"
	"github.com/telota/bbaw-dse-mcp/internal/core/usecase"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority/geonames"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority/gnd"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority/wikidata"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/correspsearch"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/existdb"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/lettercache"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/resilience"
	"github.com/telota/bbaw-dse-mcp/internal/observability/metrics"
)

// registerService combines register entry reads with mentions
// aggregation behind one inbound port.
type registerService struct {
	*usecase.RegisterUseCase
	*usecase.MentionsUseCase
}

// App owns all per-edition state and the shared authority transport.
type App struct {
	Metrics *metrics.ServerMetrics

	Schleiermacher mcpadapter.Toolset
	ActaBorussica  mcpadapter.Toolset
	Authorities    mcpadapter.AuthorityClients

	sdClient           *existdb.Client
	abClient           *existdb.Client
	authorityTransport *authority.Transport
}

func New(cfg config.Config, logger *slog.Logger) *App {
	m := metrics.NewServerMetrics(cfg.ServerName)
	app := &App{Metrics: m}

	// Schleiermacher digital: the full corpus with letters, diaries,
	// lectures and the biographical chronology.
	sdURL, sdUsername, sdPassword := cfg.SchleiermacherStore()
	app.sdClient = existdb.New(sdURL, sdUsername, sdPassword, cfg.StoreTimeout)
	sdQueries := existdb.NewQuerySet(cfg.SchleiermacherDataPath, cfg.SchleiermacherCachePath)
	sdBackend := existdb.NewEdition(app.sdClient, sdQueries).WithMetrics(m, "sd", "existdb")
	sdCache := lettercache.New(app.sdClient, sdQueries.LetterSnapshotPath(), logger).WithMetrics(m, "sd", "existdb")

	app.Schleiermacher = mcpadapter.Toolset{
		Search:    usecase.NewSearchUseCase(sdBackend),
		Letters:   usecase.NewLetterUseCase(sdCache, sdBackend),
		Documents: usecase.NewDocumentUseCase(sdBackend),
		Register: registerService{
			RegisterUseCase: usecase.NewRegisterUseCase(sdBackend),
			MentionsUseCase: usecase.NewMentionsUseCase(sdBackend, sdCache, logger).WithMetrics(m, "sd"),
		},
		Chronology: usecase.NewChronologyUseCase(sdBackend),
		Diary:      usecase.NewDiaryUseCase(sdBackend),
		Admin:      usecase.NewAdminUseCase(app.sdClient, cfg.SchleiermacherAppPath, cfg.SchleiermacherDataPath),
	}

	// Acta Borussica: protocols and biographical dossiers. No letter
	// snapshot, diary or chronology corpora, so those services stay nil
	// and their tools are not registered.
	app.abClient = existdb.New(cfg.ActaBorussicaURL, cfg.ActaBorussicaUsername, cfg.ActaBorussicaPassword, cfg.StoreTimeout)
	abQueries := existdb.NewQuerySet(cfg.ActaBorussicaDataPath, "")
	abBackend := existdb.NewEdition(app.abClient, abQueries).WithMetrics(m, "ab", "existdb")

	app.ActaBorussica = mcpadapter.Toolset{
		Search:    usecase.NewSearchUseCase(abBackend),
		Documents: usecase.NewDocumentUseCase(abBackend),
		Register: registerService{
			RegisterUseCase: usecase.NewRegisterUseCase(abBackend),
			MentionsUseCase: usecase.NewMentionsUseCase(abBackend, nil, logger).WithMetrics(m, "ab"),
		},
		Admin: usecase.NewAdminUseCase(app.abClient, cfg.ActaBorussicaAppPath, cfg.ActaBorussicaDataPath),
	}

	// Authority lookups share one rate-limited, breaker-wrapped transport.
	exec := resilience.NewExecutor(resilience.DefaultConfig(), logger)
	app.authorityTransport = authority.NewTransport(cfg.AuthorityTimeout, cfg.AuthorityRPS, exec)
	app.Authorities = mcpadapter.AuthorityClients{
		GND:           gnd.New(cfg.GNDAPIURL, app.authorityTransport),
		Wikidata:      wikidata.New(cfg.WikidataAPIURL, app.authorityTransport),
		CorrespSearch: correspsearch.New(cfg.CorrespSearchURL, app.authorityTransport),
	}
	if cfg.GeoNamesUsername != "" {
		app.Authorities.GeoNames = geonames.New(cfg.GeoNamesAPIURL, cfg.GeoNamesUsername, app.authorityTransport)
	}

	return app
}

// Close releases all HTTP clients.
func (a *App) Close() {
	a.sdClient.Close()
	a.abClient.Close()
	a.authorityTransport.Close()
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/datasources"
	"github.com/jbeshir/private-content-feed/internal/datasources/memory"
	"github.com/jbeshir/private-content-feed/internal/datasources/mysql"
	"github.com/jbeshir/private-content-feed/internal/datasources/relayer"
	"github.com/jbeshir/private-content-feed/internal/lifecycle"
	"github.com/jbeshir/private-content-feed/internal/registry"
	"github.com/jbeshir/private-content-feed/internal/session"
	"github.com/jbeshir/private-content-feed/internal/transport/web/router"
	"github.com/jbeshir/private-content-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Service is the wired client core.
type Service struct {
	Registry     *registry.Client
	Lifecycle    *lifecycle.Manager
	Orchestrator *session.Orchestrator
	Recommend    *command.RecommendContent
}

// NewService wires the client core over a registry and an FHE gateway.
func NewService(
	repo datasources.RegistryRepository,
	gateway datasources.Gateway,
	contractAddress string,
	lifecycleConfig lifecycle.Config,
	statusConfig session.StatusConfig,
) *Service {
	registryClient := registry.NewClient(repo)
	manager := lifecycle.NewManager(registryClient, gateway, contractAddress, lifecycleConfig)

	createContentCmd := command.NewCreateContent(registryClient, gateway, nil, contractAddress)
	decryptScoreCmd := command.NewDecryptScore(manager)
	checkAvailabilityCmd := command.NewCheckAvailability(registryClient)

	orchestrator := session.NewOrchestrator(
		gateway,
		registryClient,
		manager,
		createContentCmd,
		decryptScoreCmd,
		checkAvailabilityCmd,
		session.NewStatusChannel(statusConfig),
	)

	return &Service{
		Registry:     registryClient,
		Lifecycle:    manager,
		Orchestrator: orchestrator,
		Recommend:    command.NewRecommendContent(manager),
	}
}

// Handler builds the HTTP surface of a service.
func (s *Service) Handler(rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
) (http.Handler, error) {
	return router.MakeRouter(
		s.Orchestrator,
		s.Recommend,
		s.Registry,
		rssFeedBaseURL,
		rssFeedAuthorName,
		rssFeedAuthorEmail,
		rssCacheMaxAge,
	)
}

func Setup(ctx context.Context) ([]Component, error) {
	contractAddress := MustGetEnvAsString(ctx, "REGISTRY_CONTRACT_ADDRESS")
	vault := memory.NewVault()

	repo, err := setupRegistryRepository(ctx, contractAddress, vault)
	if err != nil {
		return nil, fmt.Errorf("setting up registry repository: %w", err)
	}

	gateway, err := setupGateway(ctx, vault)
	if err != nil {
		return nil, fmt.Errorf("setting up FHE gateway: %w", err)
	}

	svc := NewService(repo, gateway, contractAddress, lifecycleConfigFromEnv(ctx), statusConfigFromEnv(ctx))

	httpRouter, err := svc.Handler(
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		GetEnvAsStringOr(ctx, "RSS_FEED_AUTHOR_NAME", ""),
		GetEnvAsStringOr(ctx, "RSS_FEED_AUTHOR_EMAIL", ""),
		GetEnvAsDurationOr(ctx, "RSS_FEED_CACHE_MAX_AGE", 5*time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	httpServer := &server.Server{
		TLSDisabled: MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
		Router:      httpRouter,
	}
	if httpServer.TLSDisabled {
		httpServer.TLSDisabledPort = MustGetEnvAsInt(ctx, "PORT")
	} else {
		httpServer.AutocertHostnames = MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES")
	}

	return []Component{httpServer}, nil
}

func setupRegistryRepository(
	ctx context.Context, contractAddress string, vault *memory.Vault,
) (datasources.RegistryRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "REGISTRY_DRIVER"); driver {
	case "memory":
		if gatewayDriver := MustGetEnvAsString(ctx, "GATEWAY_DRIVER"); gatewayDriver != "memory" {
			return nil, fmt.Errorf("memory registry requires the memory gateway, got [%s]", gatewayDriver)
		}
		return memory.NewLedger(contractAddress, vault), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return mysql.NewRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown registry driver [%s]", driver)
	}
}

func setupGateway(ctx context.Context, vault *memory.Vault) (datasources.Gateway, error) {
	switch driver := MustGetEnvAsString(ctx, "GATEWAY_DRIVER"); driver {
	case "memory":
		return memory.NewGateway(vault), nil
	case "relayer":
		return relayer.NewClient(MustGetEnvAsString(ctx, "RELAYER_URL"), &http.Client{Timeout: time.Minute}), nil
	default:
		return nil, fmt.Errorf("unknown gateway driver [%s]", driver)
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"infinity8/config"
	"infinity8/gateway"
	"infinity8/handlers"
	"infinity8/routes"
	"infinity8/services/assistant"
	"infinity8/services/bookings"
	"infinity8/services/identity"
	"infinity8/services/spaces"
	"infinity8/services/workflow"
	"infinity8/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Gateway clients for the core API and the agent.
	coreClient := gateway.NewClient(config.AppConfig.CoreAPIBaseURL, config.UpstreamTimeout())
	agentClient := gateway.NewClient(config.AppConfig.AgentBaseURL, config.UpstreamTimeout())

	spacesAPI := gateway.NewSpacesClient(coreClient)
	bookingsAPI := gateway.NewBookingsClient(coreClient)
	adminAPI := gateway.NewAdminClient(coreClient)
	identityAPI := gateway.NewIdentityClient(coreClient)
	agentAPI := gateway.NewAgentClient(agentClient)

	// Services.
	resolver := identity.NewResolver(identityAPI, utils.GetAuthCacheClient())
	spaceService := spaces.NewService(spacesAPI, utils.GetCacheClient())
	bookingService := bookings.NewService(bookingsAPI, bookings.NewRedisViewStore(utils.GetCacheClient()))
	assistantService := assistant.NewService(agentAPI, assistant.NewRedisContextStore(utils.GetAssistantCacheClient()))

	contiguity := workflow.ContiguityAllowGaps
	if config.AppConfig.WorkflowRequireContiguous {
		contiguity = workflow.ContiguityReject
	}
	sessionStore := workflow.NewRedisSnapshotStore(utils.GetSessionCacheClient(), config.WorkflowSessionTTL())
	sessionManager := workflow.NewSessionManager(
		sessionStore,
		workflow.NewGatewayDeps(spacesAPI, bookingsAPI, identity.ContextAuthState{}),
		workflow.Options{Contiguity: contiguity},
		config.WorkflowSessionTTL(),
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Spaces:    spaceService,
		Bookings:  bookingService,
		Assistant: assistantService,
		Identity:  resolver,
		Admin:     adminAPI,
		Sessions:  sessionManager,
	}

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.MaxRequestsPerMin)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

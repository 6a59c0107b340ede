package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/bestpath/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/bestpath/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/bestpath/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type API struct {
	log *zap.Logger
	hub *controllers.Hub

	// base context of websocket sessions, they outlive the upgrade request.
	ctx context.Context
	wg  sync.WaitGroup

	mu sync.Mutex
	// set once closeWebsockets starts; no new sessions after that.
	closing bool
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log, ctx: context.Background()}
}

// Handler builds the full middleware chain in front of the planner routes and the websocket endpoint.
func (api *API) Handler(ctx context.Context, config http_server.Config, plannerService controllers.PlannerService) http.Handler {
	api.ctx = ctx
	api.hub = controllers.NewHub(plannerService)

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", RequestIDHeader},
		ExposedHeaders:   []string{"Link", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	plannerRoutes := controllers.New(plannerService, api.log)
	plannerRoutes.Routes(group)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", api.handleWebsocket)
	mux.Handle("/", http.TimeoutHandler(router, config.Timeout, "request timed out"))

	var mwChain []alice.Constructor
	mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Labels, Logger(api.log))
	if config.UseRateLimit {
		mwChain = append(mwChain, Limit(rate.NewLimiter(rate.Limit(config.RateLimitRPS), config.RateLimitBurst)))
	}
	return alice.New(mwChain...).Then(mux)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	plannerService controllers.PlannerService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(ctx, config, plannerService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		api.closeWebsockets()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		api.closeWebsockets()
		return nil
	}
}

// acquireSession reserves a websocket session slot, false once shutdown has started.
func (api *API) acquireSession() bool {
	api.mu.Lock()
	defer api.mu.Unlock()
	if api.closing {
		return false
	}
	api.wg.Add(1)
	return true
}

func (api *API) isClosing() bool {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.closing
}

func (api *API) closeWebsockets() {
	api.mu.Lock()
	api.closing = true
	api.mu.Unlock()

	if api.hub != nil {
		api.hub.RemoveAllUser()
	}
	api.wg.Wait()
}

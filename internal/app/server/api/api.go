// Resource-oriented CRUD surface:
//
//	POST   /api/contacts       # create (201, or 422 with per-field violations)
//	GET    /api/contacts       # paged/filtered/sorted collection read
//	GET    /api/contacts/{id}  # single read (404 when absent)
//	PUT    /api/contacts/{id}  # partial update (404 when absent)
//	DELETE /api/contacts/{id}  # delete (204, 404 when absent)
//	        /api/groups        # same shape, unpaged list, 409 on delete-in-use
//	GET    /api/v1/health      # liveness + database reachability
package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	contactAPI "rolodex/internal/app/server/api/http/contact"
	groupAPI "rolodex/internal/app/server/api/http/group"
	healthAPI "rolodex/internal/app/server/api/http/health"
	"rolodex/internal/app/server/api/http/middleware"
	"rolodex/internal/app/server/api/http/middleware/logger"
	"rolodex/internal/app/server/api/http/middleware/requestid"
	"rolodex/internal/domain/contact"
	"rolodex/internal/domain/group"
	"rolodex/internal/infrastructure/storage/postgres"
	"rolodex/internal/infrastructure/storage/rediscache"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Contact *contactAPI.Handler
	Group   *groupAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
// A non-nil cache wraps the contact repository with the read-through layer.
func New(storage *postgres.Storage, cache rediscache.KV, cacheTTL time.Duration, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Rolodex API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(storage, cache, cacheTTL, log)
	h.Health.SetupRoutes(API)
	h.Contact.SetupRoutes(API)
	h.Group.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cache rediscache.KV, cacheTTL time.Duration, log *slog.Logger) *Handlers {
	requestIDMW := requestid.Middleware()
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestIDMW)
	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(storage, log, middlewares.GetAllAndClear())

	var contactRepo contact.Repository = postgres.NewContactRepository(storage.Pool(), log)
	if cache != nil {
		contactRepo = rediscache.NewContactRepository(cache, contactRepo, cacheTTL, log)
	}
	contactService := contact.NewService(contactRepo, contact.NewValidator(), log)
	middlewares.Add(requestIDMW)
	middlewares.Add(loggerMW.Middleware())
	contactHandler := contactAPI.NewHandler(contactService, log, middlewares.GetAllAndClear())

	groupRepo := postgres.NewGroupRepository(storage.Pool(), log)
	groupService := group.NewService(groupRepo, log)
	middlewares.Add(requestIDMW)
	middlewares.Add(loggerMW.Middleware())
	groupHandler := groupAPI.NewHandler(groupService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Contact: contactHandler,
		Group:   groupHandler,
	}
}

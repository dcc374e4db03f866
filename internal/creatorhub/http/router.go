package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/service"
	"github.com/aussiebroadwan/creatorhub/internal/creatorhub/store"
	"github.com/aussiebroadwan/creatorhub/pkg/httpx"
	"github.com/aussiebroadwan/creatorhub/pkg/jwtx"
	"github.com/aussiebroadwan/creatorhub/pkg/slogx"

	_ "github.com/aussiebroadwan/creatorhub/api/creatorhub" // Swagger docs
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configures the router's global behaviour.
type Options struct {
	BuildVersion   string
	AllowedOrigins []string
	RateLimits     httpx.RateLimitProfiles
	Metrics        *httpx.Metrics // nil disables /metrics
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler // built by ApplyRoutes

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles
	metrics      *httpx.Metrics

	store             store.Store
	AuthService       *service.AuthService
	AdminService      *service.AdminService
	InviteService     *service.InviteService
	RosterService     *service.RosterService
	CampaignService   *service.CampaignService
	AssignmentService *service.AssignmentService
}

func NewRouter(st store.Store, signer jwtx.Signer, logger *slog.Logger, opts Options) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: opts.BuildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       opts.RateLimits,
		metrics:      opts.Metrics,
		store:        st,
	}

	if r.limits == (httpx.RateLimitProfiles{}) {
		r.limits = httpx.DefaultRateLimitProfiles()
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
			MaxAge:         300,
		}),
	}
	// Metrics reads the matched pattern, so it has to sit right on the mux.
	if r.metrics != nil {
		r.middlewares = append(r.middlewares, r.metrics.Middleware())
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAdmin()
	r.registerOnboarding()
	r.registerCampaigns()
	r.registerRoster()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CreatorHub API
//	@version		0.1.0
//	@description	Campaign and influencer roster management for talent managers.
//	@description
//	@description				Managers run campaigns and keep a roster of creators. Creators join through single-use onboarding invites.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/creatorhub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				EdDSA signed access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// authn is the bearer check every protected route starts with.
func (r *Router) authn() httpx.Middleware {
	return httpx.Authn(&authenticator{auth: r.AuthService})
}

// manager guards a manager route; writes get the moderate limit, reads the lenient one.
func (r *Router) manager(h http.HandlerFunc, write bool) http.Handler {
	limit := r.limits.Lenient
	if write {
		limit = r.limits.Moderate
	}
	return httpx.Chain(h,
		r.authn(),
		httpx.RequireRole(httpx.RoleManager),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints are brute-force targets.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.limits.Strict, "email"),
		),
	)

	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.authn(),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		AdminService:  r.AdminService,
		InviteService: r.InviteService,
	}

	r.Mux.Handle("POST /v1/admin/invites", r.manager(h.HandleCreateInvite, true))
	r.Mux.Handle("GET /v1/admin/influencers/pending", r.manager(h.HandleListPending, false))
	r.Mux.Handle("POST /v1/admin/influencers/{userId}/approve", r.manager(h.HandleApprove, true))
	r.Mux.Handle("POST /v1/admin/roster/{id}/link", r.manager(h.HandleLinkRoster, true))
}

func (r *Router) registerOnboarding() {
	h := &OnboardingHandler{InviteService: r.InviteService}

	r.Mux.Handle("GET /v1/onboarding/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("POST /v1/onboarding/complete",
		httpx.Chain(http.HandlerFunc(h.HandleComplete),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
}

func (r *Router) registerCampaigns() {
	h := &CampaignsHandler{CampaignService: r.CampaignService}
	a := &AssignmentsHandler{AssignmentService: r.AssignmentService}

	r.Mux.Handle("POST /v1/campaigns", r.manager(h.HandleCreate, true))
	r.Mux.Handle("GET /v1/campaigns", r.manager(h.HandleList, false))
	r.Mux.Handle("PUT /v1/campaigns/{id}", r.manager(h.HandleUpdate, true))
	r.Mux.Handle("DELETE /v1/campaigns/{id}", r.manager(h.HandleDelete, true))

	r.Mux.Handle("GET /v1/campaigns/assigned",
		httpx.Chain(http.HandlerFunc(h.HandleListAssigned),
			r.authn(),
			httpx.RequireApprovedInfluencer(),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
	)

	// Managers and approved influencers both read campaigns; the service
	// decides what each may see.
	r.Mux.Handle("GET /v1/campaigns/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(r.limits.Lenient),
		),
	)

	r.Mux.Handle("POST /v1/campaigns/{id}/influencers", r.manager(a.HandleAdd, true))
	r.Mux.Handle("GET /v1/campaigns/{id}/influencers", r.manager(a.HandleList, false))
	r.Mux.Handle("DELETE /v1/campaigns/{id}/influencers/{influencerId}", r.manager(a.HandleRemove, true))
}

func (r *Router) registerRoster() {
	h := &RosterHandler{RosterService: r.RosterService}

	r.Mux.Handle("POST /v1/roster", r.manager(h.HandleCreate, true))
	r.Mux.Handle("GET /v1/roster", r.manager(h.HandleListAll, false))
	r.Mux.Handle("GET /v1/roster/mine", r.manager(h.HandleListMine, false))
	r.Mux.Handle("GET /v1/roster/{id}", r.manager(h.HandleGet, false))
	r.Mux.Handle("PUT /v1/roster/{id}", r.manager(h.HandleUpdate, true))
	r.Mux.Handle("DELETE /v1/roster/{id}", r.manager(h.HandleDelete, true))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}

package handler

import (
	"net/http"

	"github.com/rbfernandes/classificados-api/internal/api/handler/router"
	"github.com/rbfernandes/classificados-api/internal/scheduler"
	"github.com/rbfernandes/classificados-api/internal/usecases/advertising"
	"github.com/rbfernandes/classificados-api/internal/usecases/authenticating"
	"github.com/rbfernandes/classificados-api/internal/usecases/promoting"
	"github.com/rbfernandes/classificados-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

// Promotions retorna as rotas de gerenciamento de promoções do painel
func Promotions(service promoting.PromotionManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/promotions/:category",
			Method:      http.MethodGet,
			Handler:     ListPromotions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/promotions/:category",
			Method:      http.MethodPost,
			Handler:     CreatePromotion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/promotions/:category/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePromotion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/promotions/:category/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePromotion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/promotions/:category/:id/toggle",
			Method:      http.MethodPost,
			Handler:     TogglePromotion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Banners é a rota pública de resolução do carrossel
func Banners(service promoting.PromotionManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/banners/:category",
			Method:  http.MethodGet,
			Handler: GetVisibleBanners(service),
		},
	}
}

func Ads(service advertising.AdService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
		{
			Path:        "/v1/ads/summary",
			Method:      http.MethodGet,
			Handler:     GetAdSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

func CronJobs(service *scheduler.PromotionSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/promotion-sync/run",
			Method:      http.MethodPost,
			Handler:     RunPromotionSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrModerator()},
		},
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gymapi/internal/api/controllers"
	"gymapi/internal/config"
	"gymapi/internal/services"
	"gymapi/pkg/middleware"
	"gymapi/pkg/utils"
)

func ProvideRouter(
	cfg *config.Config,
	log *logrus.Logger,
	plansController *controllers.PlansController,
	membersController *controllers.MembersController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(cfg.GinMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		services.UseJSONFieldNames(v)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.RequestLogger(c).WithField("panic", recovered).Error("recovered from panic")
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
		r.Use(metrics.Middleware())
	}
	if cfg.RateLimitEnabled() {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	r.Use(middleware.SanitizeInputMiddleware())

	RegisterRoutes(r, plansController, membersController, healthController)
	if metrics != nil {
		r.GET("/metrics", metrics.Handler())
	}

	return r
}

func RegisterRoutes(r *gin.Engine,
	plansController *controllers.PlansController,
	membersController *controllers.MembersController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.Health)

	membersGroup := r.Group("/members")
	membersGroup.GET("", membersController.ListMembers)
	membersGroup.POST("", membersController.CreateMember)
	membersGroup.GET("/:id", membersController.GetMemberById)
	membersGroup.PUT("/:id", membersController.UpdateMember)
	membersGroup.DELETE("/:id", membersController.DeleteMember)
	r.GET("/membersByName/:first_name/:last_name", membersController.GetMemberByName)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", plansController.ListPlans)
	plansGroup.POST("", plansController.CreatePlan)
	plansGroup.GET("/:id", plansController.GetPlanById)
	plansGroup.PUT("/:id", plansController.UpdatePlan)
	plansGroup.DELETE("/:id", plansController.DeletePlan)
	plansGroup.GET("/:id/members", plansController.ListMembersOfPlan)
	r.GET("/plansByName/:name", plansController.GetPlanByName)
}

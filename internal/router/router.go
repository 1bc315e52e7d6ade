package router

import (
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/handler"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB                      *gorm.DB
	JWTSecret               string
	AuthHandler             *handler.AuthHandler
	ProgramHandler          *handler.ProgramHandler
	ProgramAdminHandler     *handler.ProgramAdminHandler
	ProfileHandler          *handler.ProfileHandler
	ApplicationHandler      *handler.ApplicationHandler
	ApplicationAdminHandler *handler.ApplicationAdminHandler
	TaskHandler             *handler.TaskHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api/v1")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/refresh", deps.AuthHandler.Refresh)
		auth.POST("/verify", deps.AuthHandler.Verify)
	}

	// Public catalog
	api.GET("/programs", deps.ProgramHandler.List)
	api.GET("/programs/:id", deps.ProgramHandler.Detail)
	api.GET("/lookups/skills", deps.ProfileHandler.ListSkills)
	api.GET("/lookups/interests", deps.ProfileHandler.ListInterests)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		authed.GET("/auth/me", deps.AuthHandler.Me)
		authed.POST("/auth/logout", deps.AuthHandler.Logout)

		authed.POST("/programs/:id/apply", deps.ApplicationHandler.Apply)

		me := authed.Group("/me")
		{
			me.GET("/profile", deps.ProfileHandler.Me)
			me.PATCH("/profile", deps.ProfileHandler.Update)
			me.PUT("/profile/skills", deps.ProfileHandler.SetSkills)
			me.PUT("/profile/interests", deps.ProfileHandler.SetInterests)

			me.GET("/applications", deps.ApplicationHandler.ListMine)
			me.POST("/applications/:id/withdraw", deps.ApplicationHandler.Withdraw)
			me.PATCH("/applications/:id/note", deps.ApplicationHandler.UpdateNote)
			me.POST("/applications/:id/log_hours", deps.ApplicationHandler.LogHours)

			me.GET("/tasks", deps.TaskHandler.ListMine)
			me.GET("/tasks/:id/items", deps.TaskHandler.ListItems)
			me.POST("/tasks/:id/items/:item_id/toggle", deps.TaskHandler.ToggleItem)
			me.PATCH("/tasks/:id/progress", deps.TaskHandler.UpdateProgress)
		}

		// Manager routes. Program and application actions are gated
		// per-handler by the target program's kind.
		admin := authed.Group("/admin")
		admin.Use(middleware.RequireRole(model.RoleServiceManager, model.RoleProjectManager, model.RoleVolunteerManager))
		{
			admin.GET("/programs", deps.ProgramAdminHandler.List)
			admin.POST("/programs", deps.ProgramAdminHandler.Create)
			admin.PATCH("/programs/:id", deps.ProgramAdminHandler.Update)
			admin.POST("/programs/:id/publish", deps.ProgramAdminHandler.Publish)
			admin.POST("/programs/:id/unpublish", deps.ProgramAdminHandler.Unpublish)
			admin.POST("/programs/:id/mark_done", deps.ProgramAdminHandler.MarkDone)

			admin.GET("/applications", deps.ApplicationAdminHandler.List)
			admin.POST("/applications/:id/approve", deps.ApplicationAdminHandler.Approve)
			admin.POST("/applications/:id/reject", deps.ApplicationAdminHandler.Reject)
			admin.POST("/applications/:id/tasks", deps.ApplicationAdminHandler.CreateTask)
			admin.POST("/tasks/:id/items", deps.ApplicationAdminHandler.CreateTaskItem)
		}
	}
}

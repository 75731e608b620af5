package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListUserEvents(c *ginext.Context)
	GetUserEvent(c *ginext.Context)
	UpdateUserEvent(c *ginext.Context)
	SearchEventsAdmin(c *ginext.Context)
	UpdateEventAdmin(c *ginext.Context)
	SearchEventsPublic(c *ginext.Context)
	GetEventPublic(c *ginext.Context)

	CreateRequest(c *ginext.Context)
	ListUserRequests(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	DecideRequests(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	CreateCategory(c *ginext.Context)
	RenameCategory(c *ginext.Context)
	DeleteCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
	GetCategory(c *ginext.Context)

	CreateCompilation(c *ginext.Context)
	UpdateCompilation(c *ginext.Context)
	DeleteCompilation(c *ginext.Context)
	ListCompilations(c *ginext.Context)
	GetCompilation(c *ginext.Context)

	CreateComment(c *ginext.Context)
	UpdateComment(c *ginext.Context)
	DeleteOwnComment(c *ginext.Context)
	ListUserComments(c *ginext.Context)
	ListEventComments(c *ginext.Context)
	GetComment(c *ginext.Context)
	ListCommentsAdmin(c *ginext.Context)
	DeleteCommentAdmin(c *ginext.Context)
}

type StatsHandler interface {
	SaveHit(c *ginext.Context)
	GetStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Private: acting user taken from the path
	user := router.Group("/users/:userId")
	{
		user.POST("/events", h.CreateEvent)
		user.GET("/events", h.ListUserEvents)
		user.GET("/events/:eventId", h.GetUserEvent)
		user.PATCH("/events/:eventId", h.UpdateUserEvent)
		user.GET("/events/:eventId/requests", h.ListEventRequests)
		user.PATCH("/events/:eventId/requests", h.DecideRequests)

		user.POST("/requests", h.CreateRequest)
		user.GET("/requests", h.ListUserRequests)
		user.PATCH("/requests/:requestId/cancel", h.CancelRequest)

		user.POST("/comments", h.CreateComment)
		user.GET("/comments", h.ListUserComments)
		user.PATCH("/comments/:commentId", h.UpdateComment)
		user.DELETE("/comments/:commentId", h.DeleteOwnComment)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/events", h.SearchEventsAdmin)
		admin.PATCH("/events/:eventId", h.UpdateEventAdmin)

		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:userId", h.DeleteUser)

		admin.POST("/categories", h.CreateCategory)
		admin.PATCH("/categories/:catId", h.RenameCategory)
		admin.DELETE("/categories/:catId", h.DeleteCategory)

		admin.POST("/compilations", h.CreateCompilation)
		admin.PATCH("/compilations/:compId", h.UpdateCompilation)
		admin.DELETE("/compilations/:compId", h.DeleteCompilation)

		admin.GET("/comments", h.ListCommentsAdmin)
		admin.DELETE("/comments/:commentId", h.DeleteCommentAdmin)
	}

	router.GET("/events", h.SearchEventsPublic)
	router.GET("/events/:eventId", h.GetEventPublic)
	router.GET("/events/:eventId/comments", h.ListEventComments)
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:catId", h.GetCategory)
	router.GET("/compilations", h.ListCompilations)
	router.GET("/compilations/:compId", h.GetCompilation)
	router.GET("/comments/:commentId", h.GetComment)

	router.GET("/health", health)

	return router
}

func InitStatsRouter(mode string, h StatsHandler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.POST("/hit", h.SaveHit)
	router.GET("/stats", h.GetStats)
	router.GET("/health", health)

	return router
}

func health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

package dashboard

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/avandyck/daypack/internal/insights"
	"github.com/avandyck/daypack/internal/models"
	"github.com/gin-gonic/gin"
)

// restHooks binds one entity's façade operations to the generic REST routes.
type restHooks[T any] struct {
	fetch  func(ctx context.Context) []T
	save   func(ctx context.Context, rec *T) []T
	update func(ctx context.Context, rec *T) []T
	del    func(ctx context.Context, id string) []T
	setID  func(rec *T, id string)
}

// restRoutes registers GET/POST/PUT/DELETE for one entity collection. Every
// mutation responds with the authoritative post-write collection, so clients
// re-render from the response instead of splicing their own state.
func restRoutes[T any](api *gin.RouterGroup, path string, h restHooks[T]) {
	api.GET("/"+path, func(c *gin.Context) {
		c.JSON(http.StatusOK, h.fetch(c.Request.Context()))
	})
	api.POST("/"+path, func(c *gin.Context) {
		var rec T
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, h.save(c.Request.Context(), &rec))
	})
	api.PUT("/"+path+"/:id", func(c *gin.Context) {
		var rec T
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.setID(&rec, c.Param("id"))
		c.JSON(http.StatusOK, h.update(c.Request.Context(), &rec))
	})
	api.DELETE("/"+path+"/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.del(c.Request.Context(), c.Param("id")))
	})
}

// registerRoutes sets up all dashboard routes on the Gin router.
func registerRoutes(router *gin.Engine, deps Deps) {
	// Embedded static assets (served from assets/ subdir of the embed.FS).
	staticFS, _ := fs.Sub(assetsFS, "assets")
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "layout.html", gin.H{"owner": deps.Owner})
	})

	st := deps.Store
	api := router.Group("/api")

	restRoutes(api, "daily", restHooks[models.DailyEntry]{
		fetch:  st.FetchDailyEntries,
		save:   st.SaveDailyEntry,
		update: st.UpdateDailyEntry,
		del:    st.DeleteDailyEntry,
		setID:  func(r *models.DailyEntry, id string) { r.ID = id },
	})
	restRoutes(api, "todos", restHooks[models.Todo]{
		fetch:  st.FetchTodos,
		save:   st.SaveTodo,
		update: st.UpdateTodo,
		del:    st.DeleteTodo,
		setID:  func(r *models.Todo, id string) { r.ID = id },
	})
	restRoutes(api, "ideas", restHooks[models.Idea]{
		fetch:  st.FetchIdeas,
		save:   st.SaveIdea,
		update: st.UpdateIdea,
		del:    st.DeleteIdea,
		setID:  func(r *models.Idea, id string) { r.ID = id },
	})
	restRoutes(api, "outcomes", restHooks[models.WeeklyOutcome]{
		fetch:  st.FetchOutcomes,
		save:   st.SaveOutcome,
		update: st.UpdateOutcome,
		del:    st.DeleteOutcome,
		setID:  func(r *models.WeeklyOutcome, id string) { r.ID = id },
	})
	restRoutes(api, "gates", restHooks[models.DecisionGate]{
		fetch:  st.FetchGates,
		save:   st.SaveGate,
		update: st.UpdateGate,
		del:    st.DeleteGate,
		setID:  func(r *models.DecisionGate, id string) { r.ID = id },
	})
	restRoutes(api, "contacts", restHooks[models.Contact]{
		fetch:  st.FetchContacts,
		save:   st.SaveContact,
		update: st.UpdateContact,
		del:    st.DeleteContact,
		setID:  func(r *models.Contact, id string) { r.ID = id },
	})
	restRoutes(api, "discoveries", restHooks[models.Discovery]{
		fetch:  st.FetchDiscoveries,
		save:   st.SaveDiscovery,
		update: st.UpdateDiscovery,
		del:    st.DeleteDiscovery,
		setID:  func(r *models.Discovery, id string) { r.ID = id },
	})
	restRoutes(api, "expenses", restHooks[models.Expense]{
		fetch:  st.FetchExpenses,
		save:   st.SaveExpense,
		update: st.UpdateExpense,
		del:    st.DeleteExpense,
		setID:  func(r *models.Expense, id string) { r.ID = id },
	})

	api.POST("/todos/:id/toggle", func(c *gin.Context) {
		c.JSON(http.StatusOK, st.ToggleTodo(c.Request.Context(), c.Param("id")))
	})

	api.POST("/sync", func(c *gin.Context) {
		if err := st.SyncAll(c.Request.Context()); err != nil {
			// Degraded, not failed: cached state still serves.
			c.JSON(http.StatusOK, gin.H{"synced": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"synced": true})
	})

	// View projections, served from the cache for instant paint.
	views := router.Group("/api/views")
	views.GET("/summary", func(c *gin.Context) {
		c.JSON(http.StatusOK, BuildSummary(gatherData(deps), todayLocal()))
	})
	views.GET("/tasks", func(c *gin.Context) {
		c.JSON(http.StatusOK, GroupTodos(st.GetTodos(), todayLocal()))
	})
	views.GET("/ideas", func(c *gin.Context) {
		c.JSON(http.StatusOK, SortIdeas(st.GetIdeas()))
	})
	views.GET("/daily", func(c *gin.Context) {
		c.JSON(http.StatusOK, SortDailyEntries(st.GetDailyEntries()))
	})
	views.GET("/discoveries", func(c *gin.Context) {
		c.JSON(http.StatusOK, SortDiscoveries(st.GetDiscoveries()))
	})

	api.GET("/insights", func(c *gin.Context) {
		report := computeInsights(deps)
		resp := gin.H{"report": report}
		if c.Query("coach") == "1" && deps.Coach != nil {
			resp["coaching"] = deps.Coach.Summary(c.Request.Context(), report)
		}
		c.JSON(http.StatusOK, resp)
	})
	api.GET("/insights/report", func(c *gin.Context) {
		c.Header("Content-Disposition", `attachment; filename="daypack-insights.json"`)
		c.Header("Content-Type", "application/json")
		if err := insights.WriteJSON(c.Writer, computeInsights(deps)); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	})
}

// gatherData reads every cached collection for the projections.
func gatherData(deps Deps) Data {
	st := deps.Store
	return Data{
		Dailies:     st.GetDailyEntries(),
		Todos:       st.GetTodos(),
		Ideas:       st.GetIdeas(),
		Outcomes:    st.GetOutcomes(),
		Gates:       st.GetGates(),
		Contacts:    st.GetContacts(),
		Discoveries: st.GetDiscoveries(),
		Expenses:    st.GetExpenses(),
	}
}

func computeInsights(deps Deps) insights.Report {
	d := gatherData(deps)
	return insights.Compute(insights.Data{
		Dailies:     d.Dailies,
		Todos:       d.Todos,
		Ideas:       d.Ideas,
		Outcomes:    d.Outcomes,
		Gates:       d.Gates,
		Contacts:    d.Contacts,
		Discoveries: d.Discoveries,
		Expenses:    d.Expenses,
	}, deps.Now())
}

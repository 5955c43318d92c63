package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "workdesk/docs"
)

// Process-wide state, assigned once at startup and overridden by tests.
var (
	store Store
	ws    *Workspace
)

// @title Workdesk API
// @version 1.0
// @description Workspace backend: ledger sheets, schedules, member roster, notes.
// @BasePath /
func main() {
	if err := SetupCommands().Execute(); err != nil {
		log.Fatal(err)
	}
}

// openStore builds the configured store adapter.
func openStore(ctx context.Context) (Store, error) {
	driver := getEnvOrDefault("STORE_DRIVER", "postgres")

	switch driver {
	case "postgres":
		return newPostgresStore(ctx, filepath.Join(".", "db", "migrations"))
	case "sqlite":
		return newSqliteStore(getEnvOrDefault("SQLITE_PATH", filepath.Join("data", "workdesk.db")))
	case "memory":
		return newMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// runServer wires the store, loads the workspace and serves HTTP until the
// process dies.
func runServer() error {
	ctx := context.Background()

	s, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	store = s
	defer store.Close()

	ws, err = loadWorkspace(ctx, store)
	if err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}
	log.Printf("Workspace loaded: %d sheets, %d schedules, %d members, %d notes",
		len(ws.Sheets), len(ws.Schedules), len(ws.Members), len(ws.Notes))

	r := setupRouter()

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	return r.Run(":" + port)
}

// setupRouter registers middleware and all routes.
func setupRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	registerRoutes(r)

	r.Static("/files", uploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// registerRoutes attaches every API route. Shared with the test router.
func registerRoutes(r *gin.Engine) {
	// Sheets and ledger
	r.GET("/api/sheets", getSheets)
	r.POST("/api/sheets", createSheet)
	r.PUT("/api/sheets/:id", renameSheet)
	r.DELETE("/api/sheets/:id", deleteSheet)
	r.PUT("/api/sheets/:id/activate", activateSheet)
	r.GET("/api/sheets/:id/entries", getSheetEntries)
	r.GET("/api/sheets/:id/summary", getSheetSummary)
	r.GET("/api/sheets/:id/export", exportSheet)
	r.POST("/api/sheets/:id/import", importSheet)
	r.POST("/api/entries", createEntry)
	r.PUT("/api/entries/:id", updateEntry)
	r.DELETE("/api/entries/:id", deleteEntry)
	r.POST("/api/entries/undo", undoEntryDelete)

	// Schedules
	r.GET("/api/schedules", getSchedules)
	r.GET("/api/schedules/defaults", getScheduleDefaults)
	r.POST("/api/schedules", createSchedule)
	r.PUT("/api/schedules/:id", updateSchedule)
	r.DELETE("/api/schedules/:id", deleteSchedule)
	r.PUT("/api/schedules/date/:date", confirmScheduleDate)
	r.DELETE("/api/schedules/date/:date", deleteScheduleDate)
	r.POST("/api/schedules/undo", undoScheduleDelete)

	// Roster and notes
	r.GET("/api/members", getMembers)
	r.POST("/api/members", createMember)
	r.PUT("/api/members/:id", updateMember)
	r.DELETE("/api/members/:id", deleteMember)
	r.GET("/api/notes", getNotes)
	r.POST("/api/notes", createNote)
	r.PUT("/api/notes/:id", updateNote)
	r.DELETE("/api/notes/:id", deleteNote)

	// Settings and glue
	r.GET("/api/settings", getSettings)
	r.PUT("/api/settings", updateSettings)
	r.POST("/api/upload", uploadFile)
	r.POST("/api/shorten", shortenURL)
	r.GET("/s/:code", resolveShortlink)
	r.POST("/api/sms", relaySMS)
}

// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/leaderboard", leaderboardHandler)
	}
}

// statusHandler returns the bot and engine status
func statusHandler(c *gin.Context) {
	client := discord.Get()
	eng := engine.Get()

	botOnline := false
	uptime := ""
	if client != nil {
		botOnline = client.IsReady()
		uptime = time.Since(client.StartTime).Round(time.Second).String()
	}

	status := gin.H{
		"status": "ok",
		"bot": gin.H{
			"isOnline": botOnline,
			"uptime":   uptime,
		},
	}

	if eng != nil {
		status["engine"] = gin.H{
			"trackedUsers": eng.Progression.Size(),
			"balances":     eng.Economy.Size(),
			"activeRuns":   eng.Doors.ActiveSessions(),
		}
	}

	c.JSON(http.StatusOK, status)
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "CovenBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// leaderboardHandler returns the top ranked users by level and XP
func leaderboardHandler(c *gin.Context) {
	eng := engine.Get()
	if eng == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Engine Offline",
			"message": "The engagement engine is not available right now.",
		})
		return
	}

	entries := eng.Progression.Top(10)
	board := make([]gin.H, 0, len(entries))
	for i, e := range entries {
		board = append(board, gin.H{
			"rank":   i + 1,
			"userId": e.UserID,
			"xp":     e.XP,
			"level":  e.Level,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": board,
	})
}

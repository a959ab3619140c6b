package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/config"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/db"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/handler"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/logger"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/router"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/service"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	configDir := flag.String("config", "", "directory containing config.yaml")
	flag.Parse()

	config.InitConfig(*configDir)
	logger.Init(config.Get().Log)
	defer logger.Sync()

	db.InitDB()

	uploadPath := ensureUploadDirectories()

	gin.SetMode(config.Get().Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	buildApp(r, db.DB, uploadPath)

	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		logger.S.Infow("server started",
			"app", consts.ApplicationName,
			"version", consts.ApplicationVersion,
			"port", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.S.Fatalw("server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.S.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.S.Fatalw("forced shutdown", "err", err)
	}
	logger.S.Info("server exited")
}

// ensureUploadDirectories creates the blob store root with one subdirectory
// per namespace and returns the root path.
func ensureUploadDirectories() string {
	uploadPath := config.Get().Upload.Path
	for _, ns := range []string{consts.NamespacePhotos, consts.NamespaceAvatars} {
		if err := os.MkdirAll(filepath.Join(uploadPath, ns), 0755); err != nil {
			logger.S.Fatalw("cannot create upload directory", "path", uploadPath, "err", err)
		}
	}
	return uploadPath
}

// buildApp wires repositories, services, handlers and routes onto the engine.
func buildApp(r *gin.Engine, gdb *gorm.DB, uploadPath string) {
	blobs := storage.NewDiskStore(uploadPath, config.Get().Upload.URLPrefix)
	services := service.NewServices(repository.NewRepositories(gdb), blobs)
	router.NewRouter(handler.New(services, blobs)).Init(r)
}

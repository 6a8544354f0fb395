package http

import (
	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/service"
	"github.com/MKhiriev/yousign-node/internal/utils"
	"github.com/MKhiriev/yousign-node/models"
)

type Handler struct {
	services  *service.Services
	defaults  models.Parameters
	cfg       config.Server
	buildInfo models.AppBuildInfo
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		defaults:  cfg.DefaultParameters(),
		cfg:       cfg.Server,
		buildInfo: buildInfo,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

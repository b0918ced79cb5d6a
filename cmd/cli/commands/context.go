package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/acampayo/mealdraw/internal/config"
	"github.com/acampayo/mealdraw/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database // nil when no database is configured
	Logger   *zap.Logger
	Ctx      context.Context
}

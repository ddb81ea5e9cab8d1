package commands

import (
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

func setupLogger(settings config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(&settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

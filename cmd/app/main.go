package main

import (
	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"
	"todoapi/shared/timezone"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}

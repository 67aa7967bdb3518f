package handler

import (
	"net/http"
	"sync"

	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"
	"todoapi/shared/timezone"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. The service, and with it the store connection, is built
// on the first request and reused for the life of the instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.SetOutput(cfg)
		logger.SetLogLevel(cfg)
		timezone.Init(cfg.App.Timezone)

		service = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}

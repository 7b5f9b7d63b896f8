package middleware

import (
	"io"
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request through logrus. Test mode discards the
// output so failures stay readable.
func RequestLogger(env string) func(http.Handler) http.Handler {
	log := logrus.New()
	if env == "test" {
		log.SetOutput(io.Discard)
	}
	return logger.Logger("router", log)
}

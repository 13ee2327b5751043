package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler.
// Requests without an X-Request-ID header get a generated one, echoed in the response.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := getLogrusFields(ftm, c, d)
		switch cfg.Logger {
		case nil:
			log.WithFields(fields).Info(message)
		default:
			entity := cfg.Logger.WithFields(fields)
			if c.Response().StatusCode() >= fiber.StatusMultipleChoices {
				entity.Warn(message)
			} else {
				entity.Info(message)
			}
		}
		return err
	}
}

const message = "api request"

package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagLatency = "latency"
	TagStatus  = "status"
	TagMethod  = "method"
	TagPath    = "path"
	TagURL     = "url"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "resBody"
	RequestID  = "requestId"
)

// LocalRequestID is the ctx.Locals key holding the request id.
const LocalRequestID = "requestid"

// FuncTag extracts a log field from the request
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.Response().StatusCode() < fiber.StatusBadRequest {
				return ""
			}
			return string(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			id, _ := c.Locals(LocalRequestID).(string)
			return id
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}

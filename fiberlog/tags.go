package fiberlog

import (
	"github.com/gofiber/fiber/v2"
)

const (
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

// FuncTag resolves one log field per request
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag)
	for _, tag := range cfg.Tags {
		switch tag {
		case TagStatus:
			ftm[TagStatus] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Response().StatusCode()
			}
		case TagLatency:
			ftm[TagLatency] = func(c *fiber.Ctx, d *data) interface{} {
				return d.end.Sub(d.start).String()
			}
		case TagMethod:
			ftm[TagMethod] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Method()
			}
		case TagPath:
			ftm[TagPath] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Path()
			}
		case TagIP:
			ftm[TagIP] = func(c *fiber.Ctx, d *data) interface{} {
				return c.IP()
			}
		case TagBody:
			ftm[TagBody] = func(c *fiber.Ctx, d *data) interface{} {
				return string(c.Body())
			}
		case TagResBody:
			ftm[TagResBody] = func(c *fiber.Ctx, d *data) interface{} {
				return string(c.Response().Body())
			}
		case RequestID:
			ftm[RequestID] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Get(fiber.HeaderXRequestID)
			}
		}
	}
	return ftm
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// multiQuery reúne un parámetro repetible que también admite lista separada
// por comas: ?grade=Prime&grade=Recycled o ?grade=Prime,Recycled.
func multiQuery(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

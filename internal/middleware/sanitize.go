package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SanitizeBody rewrites JSON body keys containing Mongo operator characters
// ('$' or '.') before any handler parses the body, closing off operator
// injection through field names. Non-JSON and unparsable bodies pass through
// untouched; the body parser deals with those later.
//
// Only the body is sanitized. Query and path parameters never reach a Mongo
// filter directly: identifiers go through ObjectIDFromHex, which rejects
// anything that is not plain hex.
func SanitizeBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 || !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
			return c.Next()
		}

		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return c.Next()
		}

		cleaned, err := json.Marshal(sanitizeValue(decoded))
		if err != nil {
			return c.Next()
		}
		c.Request().SetBody(cleaned)

		return c.Next()
	}
}

func sanitizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		cleaned := make(map[string]interface{}, len(value))
		for k, inner := range value {
			cleaned[sanitizeKey(k)] = sanitizeValue(inner)
		}
		return cleaned
	case []interface{}:
		for i, inner := range value {
			value[i] = sanitizeValue(inner)
		}
		return value
	default:
		return value
	}
}

func sanitizeKey(k string) string {
	return strings.NewReplacer("$", "_", ".", "_").Replace(k)
}
